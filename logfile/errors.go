package logfile

import (
	"errors"
	"fmt"
)

// DecodeError reports a log file that could not be parsed. The file is skipped.
type DecodeError struct {
	FileName string
	Field    string // JSON path of the offending field, if known
	Err      error
}

func newDecodeError(fileName string, err error) *DecodeError {
	de := &DecodeError{FileName: fileName, Err: err}
	var fe *fieldError
	if errors.As(err, &fe) {
		de.Field = fe.Path
		de.Err = fe.Err
	}
	return de
}

func (e *DecodeError) Error() string {
	name := e.FileName
	if name == "" {
		name = "log"
	}
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %s: %v", name, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message is the error text without the file prefix, for diagnostics that key by file separately.
func (e *DecodeError) Message() string {
	if e.Field != "" {
		return fmt.Sprintf("field %s: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

// AccessError reports a directory that could not be read. Nothing is loaded.
type AccessError struct {
	Dir string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access %s: %v", e.Dir, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// IsMissingField reports whether err is a DecodeError caused by an absent required field.
func IsMissingField(err error) bool {
	return errors.Is(err, errMissing)
}
