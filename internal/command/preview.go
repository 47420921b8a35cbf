package command

import (
	"fmt"
	"strings"
	"time"
)

// Preview row labels, in display order.
const (
	LabelTitle       = "제목"
	LabelDate        = "날짜"
	LabelAttendees   = "참석자"
	LabelLocation    = "장소"
	LabelDuration    = "지속시간"
	LabelDescription = "설명"
)

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// PreviewRow is one labelled line of a command preview.
type PreviewRow struct {
	Label string
	Value string
}

// Preview lists the recognised fields of cmd for display. Absent fields are omitted.
func Preview(cmd ParsedCommand) []PreviewRow {
	rows := []PreviewRow{{Label: LabelTitle, Value: cmd.Title}}
	if cmd.Date != nil {
		rows = append(rows, PreviewRow{Label: LabelDate, Value: FormatDate(*cmd.Date)})
	}
	if len(cmd.Attendees) > 0 {
		rows = append(rows, PreviewRow{Label: LabelAttendees, Value: strings.Join(cmd.Attendees, ", ")})
	}
	if cmd.Location != "" {
		rows = append(rows, PreviewRow{Label: LabelLocation, Value: cmd.Location})
	}
	if cmd.Duration > 0 {
		rows = append(rows, PreviewRow{Label: LabelDuration, Value: FormatDuration(cmd.Duration)})
	}
	if cmd.Description != "" {
		rows = append(rows, PreviewRow{Label: LabelDescription, Value: cmd.Description})
	}
	return rows
}

// FormatDate renders t as "2024년 8월 8일 목요일 오전 10:00".
func FormatDate(t time.Time) string {
	meridiem := "오전"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "오후"
	}
	if hour = hour % 12; hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d년 %d월 %d일 %s %s %d:%02d",
		t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()], meridiem, hour, t.Minute())
}

// FormatDuration renders d in whole days, hours or minutes, using the largest unit that fits.
func FormatDuration(d time.Duration) string {
	hours := int(d / time.Hour)
	switch {
	case hours >= 24:
		return fmt.Sprintf("%d일", hours/24)
	case hours > 0:
		return fmt.Sprintf("%d시간", hours)
	default:
		return fmt.Sprintf("%d분", int(d/time.Minute))
	}
}
