package rson

import (
	"fmt"
	"reflect"
)

var (
	errInvalidJSON       = fmt.Errorf("input is not valid JSON")
	errTargetNotPointer  = fmt.Errorf("decode target must be a non-nil pointer")
	errUnsupportedKind   = fmt.Errorf("no converter and no JSON mapping")
	errUnsupportedMapKey = fmt.Errorf("unsupported map key type")

	errSetupFailed = fmt.Errorf("rson: engine setup failed")
)

// MalformedInputError is returned by Decode when the text is not a single,
// well-formed JSON value.
type MalformedInputError struct {
	err error
}

func (e *MalformedInputError) Error() string {
	return "rson: malformed input: " + e.err.Error()
}

func (e *MalformedInputError) Unwrap() error {
	return e.err
}

// TypeMismatchError is returned by Decode when well-formed JSON cannot
// populate the requested type, including when a converter rejects the
// JSON it was given.
type TypeMismatchError struct {
	Type reflect.Type
	err  error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("rson: cannot decode into %s: %v", typeString(e.Type), e.err)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.err
}

// UnsupportedTypeError is returned by Encode when a value contains a type
// that has neither a converter nor a JSON mapping, or when a converter
// fails to produce JSON for a value.
type UnsupportedTypeError struct {
	Type reflect.Type
	err  error
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("rson: cannot encode %s: %v", typeString(e.Type), e.err)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return e.err
}

// EngineFinalizedError is returned when a converter is registered after the
// engine was set up. The registration has no effect.
type EngineFinalizedError struct {
	Type reflect.Type
}

func (e *EngineFinalizedError) Error() string {
	return fmt.Sprintf("rson: converter for %s registered after the engine was finalized", typeString(e.Type))
}

func typeString(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}
