package datemath

import "time"

// DefaultHour is the hour pinned by the month/day and weekday rules.
const DefaultHour = 10

// Korean date keywords.
const (
	KeywordToday    = "오늘"
	KeywordTomorrow = "내일"
	KeywordNextWeek = "다음주"
)

// weekdayNames lists weekday keywords in the order they are tested (Monday first).
var weekdayNames = []struct {
	name    string
	weekday time.Weekday
}{
	{"월요일", time.Monday},
	{"화요일", time.Tuesday},
	{"수요일", time.Wednesday},
	{"목요일", time.Thursday},
	{"금요일", time.Friday},
	{"토요일", time.Saturday},
	{"일요일", time.Sunday},
}

// Keywords returns every literal date keyword the parser recognises.
func Keywords() []string {
	out := []string{KeywordToday, KeywordTomorrow, KeywordNextWeek}
	for _, w := range weekdayNames {
		out = append(out, w.name)
	}
	return out
}
