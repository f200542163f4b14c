package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so predefined values work as sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e != nil && t != nil && e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the extraction pipeline.
var (
	// ErrCourseNotFound means the detail page lacks the summary region, i.e.
	// the course code does not exist in the catalogue.
	ErrCourseNotFound = New("COURSE_NOT_FOUND", http.StatusNotFound, "course not found")
	// ErrParse means a required structural anchor or text pattern was absent
	// or malformed on an upstream page.
	ErrParse = New("PARSE_ERROR", http.StatusBadGateway, "failed to parse upstream document")
	// ErrVocabulary means a source code string maps to no member of a closed
	// vocabulary.
	ErrVocabulary = New("VOCABULARY_ERROR", http.StatusBadGateway, "unrecognized source value")
	// ErrUpstream means an upstream fetch failed at the transport level.
	ErrUpstream = New("UPSTREAM_ERROR", http.StatusBadGateway, "upstream request failed")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// Parsef builds a ParseError with a formatted message.
func Parsef(format string, args ...interface{}) *Error {
	return New(ErrParse.Code, ErrParse.Status, fmt.Sprintf(format, args...))
}

// Vocabularyf builds a VocabularyError naming the offending raw value.
func Vocabularyf(format string, args ...interface{}) *Error {
	return New(ErrVocabulary.Code, ErrVocabulary.Status, fmt.Sprintf(format, args...))
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}
