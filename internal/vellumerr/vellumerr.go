// Package vellumerr defines the error taxonomy shared across the engine and
// its file-loading collaborators: load errors (fatal to a directory load),
// phonetic-reference parsing errors, and the two shapes of transform error
// that a scripted rewrite can raise.
package vellumerr

import "fmt"

// LoadError wraps a failure encountered while reading or assembling a tree,
// transform, phonetics, or globals file. Always fatal to the load that
// produced it — the caller must not treat the resulting tree as usable.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load: %v", e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError wraps err with the path that produced it.
func NewLoadError(path string, err error) *LoadError {
	if err == nil {
		return nil
	}
	return &LoadError{Path: path, Err: err}
}

// PhoneticParsingError is raised when a PhoneticReference token is malformed:
// mixed-case, a multi-character token without the space-separated form, or
// an empty reference.
type PhoneticParsingError struct {
	Reference string
	Reason    string
}

func (e *PhoneticParsingError) Error() string {
	return fmt.Sprintf("phonetic reference %q: %s", e.Reference, e.Reason)
}

// TransformError is implemented by every error a scripted transform can
// raise: EvalError (script failed at runtime) and ScriptReturnValueError
// (script returned a shape the host does not accept).
type TransformError interface {
	error
	transformError()
}

// EvalError reports that a script failed during evaluation.
type EvalError struct {
	File string
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating script %s: %v", e.File, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

func (*EvalError) transformError() {}

// ScriptReturnValueError reports that a script's `result` global was neither
// a string nor a list of strings.
type ScriptReturnValueError struct {
	File string
	Got  string
}

func (e *ScriptReturnValueError) Error() string {
	return fmt.Sprintf("script %s: result must be a string or list of strings, got %s", e.File, e.Got)
}

func (*ScriptReturnValueError) transformError() {}
