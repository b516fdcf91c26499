package errors

import "net/http"

// Submission workflow
var (
	ErrMissingAsset         = NewBaseError(http.StatusBadRequest, "MISSING_ASSET", "이미지를 반드시 업로드해야 합니다", "")
	ErrNoChange             = NewBaseError(http.StatusBadRequest, "NO_CHANGE", "수정된 부분이 없습니다", "")
	ErrInvalidListingValue  = NewBaseError(http.StatusBadRequest, "INVALID_LISTING_VALUE", "입력 값이 올바르지 않습니다", "")
	ErrAuthFailed           = NewBaseError(http.StatusUnauthorized, "AUTH_FAILED", "로그인 정보를 확인할 수 없습니다", "")
	ErrUploadFailed         = NewBaseError(http.StatusBadGateway, "UPLOAD_FAILED", "이미지 업로드에 실패했습니다", "")
	ErrPersistFailed        = NewBaseError(http.StatusInternalServerError, "PERSIST_FAILED", "게시물 저장 중 오류가 발생했습니다", "")
	ErrSubmissionInProgress = NewBaseError(http.StatusConflict, "SUBMISSION_IN_PROGRESS", "이미 제출 중입니다", "")
	ErrImageTooLarge        = NewBaseError(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "이미지 용량이 너무 큽니다", "")
)

// Listing lookups
var (
	ErrListingNotFound  = NewBaseError(http.StatusNotFound, "LISTING_NOT_FOUND", "게시글을 찾을 수 없습니다", "")
	ErrListingForbidden = NewBaseError(http.StatusForbidden, "LISTING_FORBIDDEN", "본인이 작성한 게시글만 수정할 수 있습니다", "")
)

var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "입력 데이터 검증에 실패했습니다", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "시스템 내부 오류", "")
)

// MissingFieldError names the first required draft field left empty.
type MissingFieldError struct {
	Field string
}

func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

func (e *MissingFieldError) Error() string     { return "missing required field: " + e.Field }
func (e *MissingFieldError) HTTPCode() int     { return http.StatusBadRequest }
func (e *MissingFieldError) ErrorCode() string { return "MISSING_FIELD" }
func (e *MissingFieldError) Message() string   { return e.Field + " 부분을 입력해주세요" }
func (e *MissingFieldError) Details() string   { return e.Field }

// DatabaseExecuteError hides a driver failure behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string     { return "database execution failed: " + e.err.Error() }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "데이터베이스 실행 실패" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
