package http

import (
	"bytes"
	"io"
)

// Validate checks that input starts with a well-formed HTTP/1.1 message whose
// body is complete. It returns nil if valid, or a *ParseError identifying the
// problem. Bytes after the body are not examined.
func Validate(input string) error {
	return validate([]byte(input))
}

// ValidateReader reads all data from r and validates it as an HTTP/1.1 message.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return validate(data)
}

func validate(data []byte) error {
	r := bytesReader(data)
	var err error
	if DetectMessageType(data) == TypeResponse {
		_, err = ReadResponseWith[struct{}](r, discard{})
	} else {
		_, err = ReadRequestWith[struct{}](r, discard{})
	}
	return err
}

// discard accepts every well-formed message and keeps nothing.
type discard struct{}

func (discard) SetMethod(string)                 {}
func (discard) SetTarget(string)                 {}
func (discard) SetStatus(int)                    {}
func (discard) SetVersion(Version)               {}
func (discard) AddHeader(string, string)         {}
func (discard) SetBody([]byte) (struct{}, error) { return struct{}{}, nil }

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
