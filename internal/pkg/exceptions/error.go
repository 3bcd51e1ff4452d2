package exceptions

import (
	"errors"
	"fmt"
	"helpmynew-service/internal/pkg/constvars"
	"runtime"
	"strings"
)

// Error kinds. Every CustomError carries one of them, so callers can branch
// with errors.Is(err, ErrKindNotFound) without inspecting status codes.
var (
	ErrKindValidation         = errors.New("validation error")
	ErrKindAccessDenied       = errors.New("access denied")
	ErrKindNotFound           = errors.New("not found")
	ErrKindInvalidTransition  = errors.New("invalid transition")
	ErrKindPaymentMismatch    = errors.New("payment mismatch")
	ErrKindInvalidWebhook     = errors.New("invalid webhook")
	ErrKindGatewayUnavailable = errors.New("gateway unavailable")
	ErrKindUnauthorized       = errors.New("unauthorized")
	ErrKindInternal           = errors.New("internal error")
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Kind          error      `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

// BuildNewCustomError wraps err (may be nil) and records the caller frames
// outside this package.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Success:       false,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     getLocations(3),
		Kind:          kindFromStatus(statusCode),
		Err:           err,
	}
}

func (e *CustomError) withKind(kind error) *CustomError {
	e.Kind = kind
	return e
}

// As returns the CustomError inside err, or an internal error wrapping err.
func As(err error) *CustomError {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}
	return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
}

func kindFromStatus(statusCode int) error {
	switch statusCode {
	case constvars.StatusBadRequest:
		return ErrKindValidation
	case constvars.StatusUnauthorized:
		return ErrKindUnauthorized
	case constvars.StatusForbidden:
		return ErrKindAccessDenied
	case constvars.StatusNotFound:
		return ErrKindNotFound
	case constvars.StatusConflict:
		return ErrKindInvalidTransition
	case constvars.StatusBadGateway, constvars.StatusGatewayTimeout:
		return ErrKindGatewayUnavailable
	default:
		return ErrKindInternal
	}
}

func getLocations(skip int) []Location {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return []Location{{File: constvars.ResponseUnknown, FunctionName: constvars.ResponseUnknown}}
	}

	frames := runtime.CallersFrames(pcs[:n])
	locations := make([]Location, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "internal/pkg/exceptions") && !strings.HasPrefix(frame.Function, "runtime.") {
			locations = append(locations, Location{
				File:         frame.File,
				Line:         frame.Line,
				FunctionName: frame.Function,
			})
		}
		if !more || len(locations) == 3 {
			break
		}
	}
	return locations
}
