package shader

import (
	"errors"
	"fmt"
)

// ErrCompile is the sentinel matched by every *CompileError.
var ErrCompile = errors.New("shader: compile error")

// CompileError is returned by Registry.CreateShader when a shader cannot be
// registered.
//
// When the requested name is already taken, Existing holds the ID of the
// shader registered under it so callers can reuse that shader instead.
type CompileError struct {
	Name     string
	Existing ShaderID
	Reason   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCompile, e.Reason)
}

// Unwrap returns ErrCompile.
func (e *CompileError) Unwrap() error { return ErrCompile }
