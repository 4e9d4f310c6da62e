package domain

import "errors"

// Domain errors.
var (
	ErrCatalogMismatch    = errors.New("locale catalog does not match translation tables")
	ErrUnknownTableFormat = errors.New("unknown translation table format")
	ErrNoTables           = errors.New("no translation tables found")
)
