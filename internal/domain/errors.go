package domain

import "fmt"

type ErrCode string

const (
	CodeValidation       ErrCode = "validation_error"
	CodeUnauthorized     ErrCode = "unauthorized"
	CodeForbidden        ErrCode = "forbidden"
	CodeNotFound         ErrCode = "not_found"
	CodeConflict         ErrCode = "conflict"
	CodeMethodNotAllowed ErrCode = "method_not_allowed"
	CodeInternal         ErrCode = "internal_error"
)

// AppError carries an error code and the human-readable message that ends
// up in the response body.
type AppError struct {
	Code    ErrCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrValidation(msg string) error   { return &AppError{Code: CodeValidation, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }
func ErrForbidden(msg string) error    { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) error     { return &AppError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) error     { return &AppError{Code: CodeInternal, Message: msg} }
