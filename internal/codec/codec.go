// Package codec encodes and decodes OpenMenuStandard documents. The
// pretty and compact encodings are semantically interchangeable; Parse
// is the canonical entry point and never hands back a document that
// fails validation.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/openmenustandard/go-openmenu/internal/oms"
	"github.com/openmenustandard/go-openmenu/internal/validation"
)

// Pretty serializes a document with indentation, the form used for
// files and human inspection.
func Pretty(doc *oms.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Compact serializes a document without whitespace, the form used for
// URL parameters and short-range tag payloads.
func Compact(doc *oms.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Parse decodes a document and validates it. A structurally valid but
// semantically invalid document is rejected here, before the caller
// ever sees it.
func Parse(data []byte) (*oms.Document, error) {
	var doc oms.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := validation.Document(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeParam renders a document as base64 of its compact encoding,
// suitable for embedding in a URL parameter or NFC tag.
func EncodeParam(doc *oms.Document) (string, error) {
	data, err := Compact(doc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeParam reverses EncodeParam. Invalid base64 and invalid UTF-8
// are reported as such before any attempt to parse the document.
func DecodeParam(encoded string) (*oms.Document, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 encoding", oms.ErrInvalidFieldValue)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8 encoding", oms.ErrInvalidFieldValue)
	}
	return Parse(data)
}
