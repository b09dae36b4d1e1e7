package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EDECODE   int = 124 // external decoder failed
	EALIGN    int = 125 // bit string not aligned to byte boundary
	EINTERNAL int = 126 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EDECODE:
		return "decode-error"
	case EALIGN:
		return "misaligned"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// Error kinds. Every error created by this module carries one of these in its
// chain, so clients may use errors.Is to classify a failure.
var (
	// ConfigurationError flags an invalid canvas configuration.
	ConfigurationError = errors.New("configuration error")
	// ExternalDecodeError flags a failure of the image decoding collaborator.
	ExternalDecodeError = errors.New("external decode error")
	// MisalignedBitLength flags a bit string which does not fill whole bytes.
	MisalignedBitLength = errors.New("misaligned bit length")
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// kindError chains a specific cause to an error kind.
type kindError struct {
	kind  error
	cause error
}

func (e kindError) Error() string {
	return e.cause.Error()
}

func (e kindError) Unwrap() []error {
	return []error{e.cause, e.kind}
}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// KindError creates a coded error of a given kind (see ConfigurationError etc.).
// cause is the specific reason, e.g. a sentinel error of a package, and may be nil.
func KindError(kind error, cause error, code int, format string, v ...interface{}) error {
	if cause == nil {
		cause = kind
	} else {
		cause = kindError{kind: kind, cause: cause}
	}
	return WrapError(cause, code, format, v...)
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}
