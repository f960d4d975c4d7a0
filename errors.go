package igfd

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the builder and the optional features.
// All of them are detected before any native resource is touched.
var (
	// ErrNulByte marks a string argument containing an embedded NUL;
	// such strings cannot cross the C boundary intact.
	ErrNulByte = errors.New("string contains an embedded NUL byte")

	// ErrBuilderConsumed marks a second finalization of the same builder.
	ErrBuilderConsumed = errors.New("builder already finalized")

	// ErrKeyAlreadyOpen marks an attempt to reopen a dialog key before
	// Close. The engine's behavior for that sequence is unspecified, so
	// the bridge refuses to issue the call.
	ErrKeyAlreadyOpen = errors.New("dialog key is already open; call Close first")

	// ErrUnsupported marks a feature the loaded engine was built
	// without, or a host platform the loader cannot serve.
	ErrUnsupported = errors.New("feature not supported by the loaded dialog engine")
)

// ConfigError reports which builder field was rejected and why.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
