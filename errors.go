// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"errors"
	"fmt"
)

var (
	// ErrReadElementFile is returned when element tree file loading fails.
	ErrReadElementFile = errors.New("read element file")
	// ErrDecodeElement is returned when serialized element tree decoding fails.
	ErrDecodeElement = errors.New("decode element")
	// ErrUnknownFormat is returned when requested input format is not supported.
	ErrUnknownFormat = errors.New("unknown input format")
	// ErrNilElement is returned when render input has no root element.
	ErrNilElement = errors.New("nil root element")
	// ErrMalformedElement is returned when an element cannot be rendered from its structure.
	ErrMalformedElement = errors.New("malformed element")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)

// ElementError reports a failure tied to one node of the element tree.
type ElementError struct {
	// Path locates the node, for example "content[0].content.key".
	Path string
	// Err is the underlying cause, usually ErrMalformedElement or ErrDecodeElement.
	Err error
}

// Error implements error.
func (e *ElementError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s at %s", e.Err, e.Path)
}

// Unwrap returns the underlying cause.
func (e *ElementError) Unwrap() error {
	return e.Err
}

// elementErrorf builds ElementError wrapping sentinel with formatted detail.
func elementErrorf(path string, sentinel error, format string, args ...any) error {
	return &ElementError{
		Path: path,
		Err:  fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}
