package errors

import (
	"bytes"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// OrderNotFound is returned when cancelling or modifying an unknown order id.
	OrderNotFound ErrorCode = "order_not_found"
	// PriceLevelNotFound is returned when looking up a price with no resting limit level.
	PriceLevelNotFound ErrorCode = "price_level_not_found"
	// StopLevelNotFound is returned when looking up a price with no resting stop level.
	StopLevelNotFound ErrorCode = "stop_level_not_found"
	// InvalidQuantity is returned when an order quantity is not positive.
	InvalidQuantity ErrorCode = "invalid_quantity"
	// InvalidPrice is returned when a limit or stop price is not positive.
	InvalidPrice ErrorCode = "invalid_price"
	// DuplicateOrderID is returned when an order id is already resting in the book.
	DuplicateOrderID ErrorCode = "duplicate_order_id"

	// MalformedCommand is returned when a command line has missing or unparsable fields.
	MalformedCommand ErrorCode = "malformed_command"
	// UnknownCommand is returned when a command line starts with an unknown verb.
	UnknownCommand ErrorCode = "unknown_command"
	// CommandReadError is returned when the command source cannot be read.
	CommandReadError ErrorCode = "command_read_error"
	// ReportWriteError is returned when a timing report row cannot be written.
	ReportWriteError ErrorCode = "report_write_error"
	// OrderWriteError is returned when the generator cannot write a command.
	OrderWriteError ErrorCode = "order_write_error"
	// EngineStopped is returned when submitting to an engine that is not running.
	EngineStopped ErrorCode = "engine_stopped"
)

// BaseError is an `error` type containing an array of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether any ErrorDetails were collected.
func (b *BaseError) HasDetails() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		if err.Object != nil {
			buff.WriteString("; object: ")
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// PrependFields prepend all field on ErrorDetails with given prefix. Will skip ErrorDetail without field
func (b *BaseError) PrependFields(prefix string) {
	for _, d := range b.GetDetails() {
		if d.Field == "" {
			continue
		}
		d.Field = prefix + d.Field
	}
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code ErrorCode) bool {
	for _, d := range b.GetDetails() {
		if d.Code == string(code) {
			return true
		}
	}
	return false
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code ErrorCode) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.GetDetails() {
		if d.Code != string(code) {
			return false
		}
	}
	return true
}
