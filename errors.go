/*
Copyright 2024 The stdf2atdf Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stdf

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is to test for these across the wrapped
// context each constructor below attaches.
var (
	ErrInputNotFound    error = errors.New("no STDF input files found")
	ErrNotBinary        error = errors.New("stream does not look like STDF")
	ErrUnknownRecord    error = errors.New("unknown STDF record type")
	ErrShortPayload     error = errors.New("short record payload")
	ErrDecodeOverrun    error = errors.New("decode cursor past end of payload")
	ErrUnknownDType     error = errors.New("unknown STDF data type code")
	ErrTemplateNotFound error = errors.New("no template registered for record type")
	ErrUnknownHook      error = errors.New("unknown preprocessor hook")
	ErrWriteError       error = errors.New("output write failed")
	ErrWorkerError      error = errors.New("worker failed")
	ErrLoadError        error = errors.New("relational load failed")
)

// NotBinary reports that path does not look like an STDF stream.
func NotBinary(path string) error {
	return fmt.Errorf("%w: %s", ErrNotBinary, path)
}

// UnknownRecord reports an on-wire (rec_typ, rec_sub) pair with no matching
// RecordType.
func UnknownRecord(recTyp, recSub uint8) error {
	return fmt.Errorf("%w: rec_typ=%d rec_sub=%d", ErrUnknownRecord, recTyp, recSub)
}

// ShortPayload reports a frame whose declared length could not be fully read.
func ShortPayload(want, got int) error {
	return fmt.Errorf("%w: wanted %d bytes, read %d", ErrShortPayload, want, got)
}

// DecodeOverrun reports a record whose decode cursor ran past the end of the
// payload partway through field. The record's already-decoded fields remain
// usable.
func DecodeOverrun(rt RecordType, field string, cause error) error {
	return fmt.Errorf("%w: %s.%s: %v", ErrDecodeOverrun, rt, field, cause)
}

// TemplateNotFound reports a RecordType with no registered template.
func TemplateNotFound(rt RecordType) error {
	return fmt.Errorf("%w: %s", ErrTemplateNotFound, rt)
}

// UnknownDType reports a field declared with a data type code the codec does
// not recognize. This indicates a bug in a template, not malformed input.
func UnknownDType(code string) error {
	return fmt.Errorf("%w: %s", ErrUnknownDType, code)
}

// WriteError reports that writing output for path failed.
func WriteError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrWriteError, path, cause)
}

// WorkerError reports that the worker processing path failed or panicked.
func WorkerError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrWorkerError, path, cause)
}

// LoadError reports that the relational loader failed for path.
func LoadError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrLoadError, path, cause)
}

// UnknownHook reports a preprocessor name with no registered Hook.
func UnknownHook(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownHook, name)
}

// UnknownRecordName reports a -r/--records flag value that does not name a
// known RecordType.
func UnknownRecordName(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownRecord, name)
}
