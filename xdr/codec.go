package xdr

import "encoding/base64"

// Codec is implemented by every XDR type in this package. EncodeTo/DecodeFrom never panic on
// foreseeable malformed input; they return an *Error.
type Codec interface {
	EncodeTo(e *Encoder) error
	DecodeFrom(d *Decoder) error
}

// Marshal encodes v to raw XDR bytes.
func Marshal(v Codec) ([]byte, error) {
	e := NewEncoder()
	if err := v.EncodeTo(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes raw XDR bytes into v. Decoding is strict: trailing bytes are an error.
func Unmarshal(b []byte, v Codec) error {
	d := NewDecoder(b)
	if err := v.DecodeFrom(d); err != nil {
		return err
	}
	return d.DecodeEOF("envelope")
}

// MarshalBase64 encodes v to the standard, padded base64 alphabet.
func MarshalBase64(v Codec) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes a standard-alphabet, padded base64 string into v.
func UnmarshalBase64(s string, v Codec) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	return Unmarshal(b, v)
}
