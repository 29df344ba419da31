// Package errors provides structured error handling for the Strut bar engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindExtents indicates a widget natural-size query failure.
	KindExtents
	// KindConfig indicates a bar configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindExtents:
		return "extents"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// StrutError represents a structured error in the Strut engine.
type StrutError struct {
	// Op is the operation that failed (e.g., "layout.Compute").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StrutError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StrutError) Unwrap() error {
	return e.Err
}

// ConfigError represents a failure to load or validate a bar configuration.
type ConfigError struct {
	// Path is the configuration file path, if known.
	Path string
	// Field is the offending field or widget name.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
