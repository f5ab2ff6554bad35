package unipile

import (
	"encoding/base64"
	"encoding/json"
)

// Kind tags the shape of an Outcome.
type Kind string

const (
	KindStructured Kind = "structured"
	KindRaw        Kind = "raw"
	KindBinary     Kind = "binary"
	KindError      Kind = "error"
)

/*
Outcome is the normalized result of a single gateway call. Every value that
originates at or below the backend boundary is one of the types in this file;
only transport and configuration faults travel on the error channel instead.
*/
type Outcome interface {
	Kind() Kind
}

// Structured carries a decoded JSON document, passed through unchanged.
type Structured struct {
	Value json.RawMessage
}

func (Structured) Kind() Kind { return KindStructured }

// MarshalJSON emits the backend document byte for byte.
func (s Structured) MarshalJSON() ([]byte, error) {
	if len(s.Value) == 0 {
		return []byte("null"), nil
	}

	return s.Value, nil
}

// Raw is returned for a 2xx response whose body is not valid JSON.
type Raw struct {
	RawResponse string `json:"raw_response"`
}

func (Raw) Kind() Kind { return KindRaw }

// Binary carries a non-JSON payload such as an attachment or a resume.
type Binary struct {
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
	DataBase64  string `json:"data_base64"`
}

func (Binary) Kind() Kind { return KindBinary }

// Bytes decodes the base64 payload.
func (b Binary) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(b.DataBase64)
}

func newBinary(contentType string, body []byte) Binary {
	return Binary{
		ContentType: contentType,
		SizeBytes:   len(body),
		DataBase64:  base64.StdEncoding.EncodeToString(body),
	}
}

/*
Failure is the error shape. Backend failures carry the raw response body and
the HTTP status; caller input errors, which never reach the network, carry
only a message.
*/
type Failure struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (Failure) Kind() Kind { return KindError }

// LocalError builds the Failure returned for input rejected before any request is made.
func LocalError(msg string) Failure {
	return Failure{Error: msg}
}
