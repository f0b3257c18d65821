package epoint

import (
	"bytes"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

type Payload map[string]any

type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("epoint: encode payload: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("epoint: decode data: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// Signer produces and checks base64(sha1(secret + data + secret)) signatures.
type Signer struct {
	secret string
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Encode serializes payload as compact JSON with sorted keys and returns
// the base64 data blob together with its signature.
func (s *Signer) Encode(payload Payload) (data, signature string, err error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", "", &EncodingError{Err: err}
	}
	raw := bytes.TrimRight(buf.Bytes(), "\n")

	data = base64.StdEncoding.EncodeToString(raw)
	return data, s.Sign(data), nil
}

func (s *Signer) Sign(data string) string {
	sum := sha1.Sum([]byte(s.secret + data + s.secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *Signer) Verify(data, signature string) bool {
	expected := s.Sign(data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func Decode(data string) (Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, &DecodingError{Err: err}
	}

	var payload Payload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, &DecodingError{Err: err}
	}
	return payload, nil
}
