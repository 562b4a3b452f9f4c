package glg

import (
	"errors"
	"fmt"
)

var (
	ErrWindowCreation = errors.New("glg: unable to create window")
	ErrContextInit    = errors.New("glg: unable to initialize GL context")
)

// ShaderError carries the driver diagnostic for a failed compile or link.
type ShaderError struct {
	// Stage is "vertex", "fragment" or "program" for link failures.
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("glg: %s failed: %s", e.action(), e.Log)
}

func (e *ShaderError) action() string {
	if e.Stage == "program" {
		return "program link"
	}
	return e.Stage + " shader compilation"
}
