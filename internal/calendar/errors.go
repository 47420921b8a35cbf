package calendar

import "errors"

var (
	ErrAccessDenied = errors.New("캘린더 접근 권한이 거부되었습니다.")
	ErrInvalidDate  = errors.New("유효하지 않은 날짜입니다.")
	ErrSaveFailed   = errors.New("일정 저장에 실패했습니다")
)

// SaveFailedError carries the store's error message verbatim.
type SaveFailedError struct {
	Reason string
}

func (e *SaveFailedError) Error() string {
	return ErrSaveFailed.Error() + ": " + e.Reason
}

func (e *SaveFailedError) Unwrap() error {
	return ErrSaveFailed
}
