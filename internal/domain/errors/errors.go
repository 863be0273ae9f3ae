package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business code so WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"المنتج غير موجود",
		"",
	)

	// Cart errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"العنصر غير موجود في السلة",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"سلة التسوق فارغة.",
		"",
	)

	// Coupon errors
	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"الكود غير صالح أو غير مفعل.",
		"",
	)

	// Checkout errors
	ErrCheckoutSubmitted = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_ALREADY_SUBMITTED",
		"تم تقديم الطلب بالفعل",
		"",
	)

	// Persistence errors
	ErrRemoteDisabled = NewBaseError(
		http.StatusConflict,
		"REMOTE_DISABLED",
		"Firebase غير مفعل",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"الطلب غير موجود",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"اسم المستخدم أو كلمة المرور خاطئان",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"الوصول محصور لمشرفي الموقع.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"لا تملك صلاحية الوصول",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"تعذر معالجة كلمة المرور",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"البيانات المدخلة غير صالحة",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"حدث خطأ داخلي",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"المورد غير موجود",
		"",
	)
)

// ValidationError reports the first failed rule of a form
type ValidationError struct {
	Field string
	Code  string
	Msg   string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Msg: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return e.Code
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.Msg
}

// Details returns the offending field
func (e *ValidationError) Details() string {
	return e.Field
}

// PersistenceError is a failed call against the remote store
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

// NewPersistenceError creates a persistence error for a remote operation
func NewPersistenceError(op, collection string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrapf(e.Err, "remote %s on %s failed", e.Op, e.Collection).Error()
}

// Unwrap exposes the underlying remote error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "تعذر الحفظ في Firebase"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}
