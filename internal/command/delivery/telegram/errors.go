package telegram

import (
	"errors"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/internal/command"
)

const genericErrorMessage = "요청을 처리하는 중 오류가 발생했습니다. 다시 시도해 주세요."

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, calendar.ErrInvalidDate):
		return "⚠️ " + err.Error() + "\n날짜를 함께 말씀해 주세요. 예: \"내일\", \"8월 8일\", \"토요일\""
	case errors.Is(err, calendar.ErrAccessDenied),
		errors.Is(err, calendar.ErrSaveFailed),
		errors.Is(err, command.ErrEmptyInput):
		return "⚠️ " + err.Error()
	default:
		return genericErrorMessage
	}
}
