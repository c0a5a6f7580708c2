package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("product not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOutOfRange        = errors.New("value out of allowed range")
	ErrNotEligible       = errors.New("product not eligible as free item")
	ErrEmptyCatalog      = errors.New("catalog is empty")
)
