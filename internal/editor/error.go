package editor

import "errors"

var (
	// -- Resource State --
	ErrSessionNotFound = errors.New("editor session not found")

	// -- Validation & Input --
	ErrVariantsUnsupported = errors.New("product type does not support variants")
	ErrConfirmRequired     = errors.New("variant removal requires confirmation")
	ErrDraftIncomplete     = errors.New("variant name and sku are required")
)
