// Package omsfile persists documents as whole files: one document per
// file, pretty-printed, no framing. There is no incremental update
// path; a save rewrites the entire file.
package omsfile

import (
	"fmt"
	"os"

	"github.com/openmenustandard/go-openmenu/internal/codec"
	"github.com/openmenustandard/go-openmenu/internal/oms"
)

// Save writes a document to path in the pretty encoding.
func Save(doc *oms.Document, path string) error {
	data, err := codec.Pretty(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Load reads the whole file at path and parses it through the
// validating entry point.
func Load(path string) (*oms.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return codec.Parse(data)
}
