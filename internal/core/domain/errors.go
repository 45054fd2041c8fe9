// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Signature errors
	ErrEmptyFormatName  = errors.New("format name cannot be empty")
	ErrInvalidExtension = errors.New("extension must start with a dot")
	ErrInvalidSignature = errors.New("invalid signature rule")

	// Run-level errors (fatales: abortan antes de procesar nada)
	ErrCacheDirNotFound = errors.New("cache directory does not exist or is not a directory")
	ErrOutputUnwritable = errors.New("output directory cannot be created or written")

	// Per-file errors (absorbidos en el RunSummary, nunca detienen el batch)
	ErrUnrecognizedFormat = errors.New("header matches no known image signature")
	ErrDuplicateContent   = errors.New("identical content already extracted")
	ErrCopyFailed         = errors.New("copy failed")
)
