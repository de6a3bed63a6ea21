package product

import "errors"

var (
	// -- Validation & Input --
	ErrIDRequired       = errors.New("product id is required")
	ErrNameEmpty        = errors.New("name cannot be empty")
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// -- Resource State --
	ErrNotFound = errors.New("product not found")
)
