package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrFieldNotFound     = NewError(ErrCodeNotFound, "field not found")
	ErrSeasonNotFound    = NewError(ErrCodeNotFound, "cultivation season not found")
	ErrWorkOrderNotFound = NewError(ErrCodeNotFound, "work order not found")
	ErrTemplateNotFound  = NewError(ErrCodeNotFound, "template not found")
	ErrUserNotFound      = NewError(ErrCodeNotFound, "user not found")
	ErrUnauthorized      = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrInvalidPayload    = NewError(ErrCodeInvalid, "invalid payload")

	// ErrInvalidDate signals a planting or activity date that does not parse
	// as a calendar day.
	ErrInvalidDate = NewError(ErrCodeInvalid, "invalid calendar date")

	// ErrUnresolvedParent signals a template construction ordering violation:
	// a child activity referenced a parent that has not been created yet.
	ErrUnresolvedParent = NewError(ErrCodeInvalid, "activity references an unresolved parent")

	// ErrInvalidActivity covers drafts with missing required fields, an
	// unknown activity kind, or startDate > endDate.
	ErrInvalidActivity = NewError(ErrCodeInvalid, "invalid activity")

	// ErrActiveSeasonConflict is returned when materialization targets a
	// field that already has an active cultivation season.
	ErrActiveSeasonConflict = NewError(ErrCodeConflict, "field already has an active cultivation season")

	// ErrNoAssignee is returned when neither the field's assigned user nor
	// the eligible role set yields a responsible party.
	ErrNoAssignee = NewError(ErrCodeConflict, "no eligible assignee for field")

	// ErrSeasonHasWorkOrders blocks season deletion while work orders still
	// reference it.
	ErrSeasonHasWorkOrders = NewError(ErrCodeConflict, "cultivation season has associated work orders")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// MaterializationError reports a partially failed materialization: the
// season was created but one or more work orders could not be persisted.
// Compensating cleanup has already run by the time the caller sees it.
type MaterializationError struct {
	SeasonName       string
	FailedActivities []string
	Err              error
}

func (e *MaterializationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("materialization of season %q failed for %d activities: %v",
		e.SeasonName, len(e.FailedActivities), e.Err)
}

func (e *MaterializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
