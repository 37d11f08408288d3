package config

import (
	"errors"

	"github.com/dshills/voicenav/internal/config/loader"
	"github.com/dshills/voicenav/internal/config/registry"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownSetting indicates the setting path is not registered.
	ErrUnknownSetting = registry.ErrUnknownSetting

	// ErrInvalidValue indicates a value that fails coercion or validation.
	ErrInvalidValue = registry.ErrInvalidValue

	// ErrUnsupportedFormat indicates a settings file with an unknown extension.
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat

	// ErrClosed indicates use of a closed Config.
	ErrClosed = errors.New("config closed")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
