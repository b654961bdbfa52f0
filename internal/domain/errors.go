package domain

import (
	"errors"
	"fmt"
)

// Stable machine-readable failure categories surfaced in PrintResult.
type ErrorCode string

const (
	CodeNone          ErrorCode = ""
	CodeConfiguration ErrorCode = "NO_PRINTER_CONFIGURED"
	CodeAdapterOff    ErrorCode = "BLUETOOTH_DISABLED"
	CodeConnection    ErrorCode = "CONNECTION_FAILED"
	CodeTimeout       ErrorCode = "WRITE_TIMEOUT"
	CodeEncoding      ErrorCode = "QR_ENCODING_FAILED"
	CodeInternal      ErrorCode = "PRINT_FAILED"
)

// PrintError is a categorized failure from the print subsystem.
// Message is safe to show to a user; Err holds the wrapped cause.
type PrintError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *PrintError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PrintError) Unwrap() error { return e.Err }

// No printer identity has been persisted yet.
func NewConfigurationError() *PrintError {
	return &PrintError{
		Code:    CodeConfiguration,
		Message: "No printer paired. Pair a printer before printing.",
	}
}

// The radio adapter is disabled; terminal until externally re-enabled.
func NewAdapterError() *PrintError {
	return &PrintError{
		Code:    CodeAdapterOff,
		Message: "Bluetooth is turned off. Enable Bluetooth and try again.",
	}
}

// The printer stayed unreachable after bounded reconnect attempts.
func NewConnectionError(attempts int, cause error) *PrintError {
	return &PrintError{
		Code:    CodeConnection,
		Message: fmt.Sprintf("Could not reach the printer after %d attempts. Check it is on and in range.", attempts),
		Err:     cause,
	}
}

// The established link dropped while a job was in flight.
func NewLinkLostError(cause error) *PrintError {
	return &PrintError{
		Code:    CodeConnection,
		Message: "Lost the printer connection while printing. Move closer and try again.",
		Err:     cause,
	}
}

// A connect or physical write exceeded its deadline. Distinct from a
// connection failure: the device may still complete the job physically.
func NewTimeoutError(op string, cause error) *PrintError {
	return &PrintError{
		Code:    CodeTimeout,
		Message: fmt.Sprintf("The printer did not acknowledge the %s in time. It may still finish printing.", op),
		Err:     cause,
	}
}

// The QR payload cannot be encoded for the selected symbol tier.
func NewEncodingError(cause error) *PrintError {
	return &PrintError{
		Code:    CodeEncoding,
		Message: "Could not encode the QR code for this label size.",
		Err:     cause,
	}
}

// CodeOf maps any error to its taxonomy code, defaulting to CodeInternal.
func CodeOf(err error) ErrorCode {
	var pe *PrintError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeInternal
}

// UserMessage returns the remediation string for an error, falling back to
// a generic line so raw internal traces never reach the user.
func UserMessage(err error) string {
	var pe *PrintError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return "Printing failed. Please try again."
}
