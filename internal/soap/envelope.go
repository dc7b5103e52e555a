// Package soap exposes the same resource operations as the REST router
// through a SOAP 1.1 document endpoint. The envelope handling is hand-rolled
// on encoding/xml; only the small subset of SOAP the service speaks is
// implemented.
package soap

import (
	"encoding/xml"
	"io"
	"net/http"

	"gym-registration-api/internal/service"
)

const (
	envelopeOpen = xml.Header +
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:tns="urn:gym-registration"><soap:Body>`
	envelopeClose = `</soap:Body></soap:Envelope>`
)

var errMalformed = service.Invalid("malformed SOAP envelope")

// requestOperation walks the decoder past the Envelope and Body start tags
// (skipping an optional Header) and returns the operation element.
func requestOperation(dec *xml.Decoder) (xml.StartElement, error) {
	seenEnvelope, seenBody := false, false
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, errMalformed
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case !seenEnvelope:
			if start.Name.Local != "Envelope" {
				return xml.StartElement{}, errMalformed
			}
			seenEnvelope = true
		case !seenBody:
			switch start.Name.Local {
			case "Header":
				if err := dec.Skip(); err != nil {
					return xml.StartElement{}, errMalformed
				}
			case "Body":
				seenBody = true
			default:
				return xml.StartElement{}, errMalformed
			}
		default:
			return start, nil
		}
	}
}

type soapFault struct {
	XMLName     xml.Name `xml:"soap:Fault"`
	FaultCode   string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

func writeEnvelope(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, envelopeOpen)
	_ = xml.NewEncoder(w).Encode(payload)
	_, _ = io.WriteString(w, envelopeClose)
}

func writeFault(w http.ResponseWriter, code, msg string) {
	writeEnvelope(w, http.StatusInternalServerError, soapFault{
		FaultCode:   code,
		FaultString: msg,
	})
}
