package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// Business errors
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError tạo lỗi dữ liệu đầu vào không hợp lệ
func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// NewConflictError tạo lỗi vi phạm ràng buộc nghiệp vụ
func NewConflictError(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

// NewInvalidStateError tạo lỗi thao tác từ trạng thái không cho phép,
// message phải kèm trạng thái hiện tại để tiện chẩn đoán
func NewInvalidStateError(message string) *AppError {
	return NewAppError(ErrCodeInvalidState, message, nil)
}

// NewNotFoundError tạo lỗi không tìm thấy bản ghi
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi cho trước không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Lease errors
	ErrLeaseNotFound      = errors.New("lease not found")
	ErrRoomOccupied       = errors.New("room already has an active lease")
	ErrLeaseNotDraft      = errors.New("lease is not in draft state")
	ErrLeaseNotActive     = errors.New("lease is not active")
	ErrLeaseAlreadyEnded  = errors.New("lease already terminated or expired")
	ErrLeaseStatusChanged = errors.New("lease status changed concurrently")

	// Billing errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyPaid         = errors.New("transaction already paid")

	// Entity errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrBuildingNotFound = errors.New("building not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrRateNotFound     = errors.New("electricity rate not found")
)
