package pipeline

import "fmt"

// Stage names the pipeline state a run failed in.
type Stage string

const (
	StageValidate Stage = "validate"
	StageLog      Stage = "log"
)

// InvalidPayloadError names the first missing or malformed required field.
type InvalidPayloadError struct {
	Field  string
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload: field %q %s", e.Field, e.Reason)
}

// DecodeError marks one image whose embedded data could not be decoded. It
// degrades that image to the empty locator; it never fails a submission.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image %d could not be decoded: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StageError is the terminal failure outcome of a run: the stage it happened
// in and its cause. Only the validate and log stages can produce one.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
