package core

import "errors"

var (
	// Configuration errors.
	ErrInvalidTimeout  = errors.New("core: timeout must be positive")
	ErrInvalidLogLevel = errors.New("core: invalid log level")

	// Registration errors.
	ErrNilPlugin    = errors.New("core: nil plugin")
	ErrNilExtension = errors.New("core: nil extension")
)
