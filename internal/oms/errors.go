package oms

import "errors"

// Error taxonomy for the document engine. Callers match with errors.Is;
// concrete messages are wrapped around these sentinels with %w.
var (
	// ErrValidation is the undetailed validation failure (e.g. an empty
	// item list, or a structural field check).
	ErrValidation = errors.New("validation failed")

	// ErrMissingRequiredField marks a mandatory value or required
	// selection that is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidFieldValue marks a value that is present but violates a
	// constraint: membership, bounds, cardinality, or a cross-field rule.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrInvalidCustomizationType marks an unrecognized customization
	// type token.
	ErrInvalidCustomizationType = errors.New("invalid customization type")

	// ErrInvalidVendorType marks an unrecognized vendor type.
	ErrInvalidVendorType = errors.New("invalid vendor type")

	// ErrInvalidURL marks a malformed omenu:// link.
	ErrInvalidURL = errors.New("invalid omenu url")

	// ErrUnknown is the catch-all for failures with no better class.
	ErrUnknown = errors.New("unknown error")
)
