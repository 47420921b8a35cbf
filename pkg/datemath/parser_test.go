package datemath_test

import (
	"testing"
	"time"

	"voice-calendar-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestExtract(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantRule datemath.RuleKind
		wantOK   bool
	}{
		{
			name:     "Month and day",
			text:     "8월 8일에 우리 가족과 만나는 일정을 캘린더에 추가해줘",
			want:     time.Date(2024, 8, 8, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleMonthDay,
			wantOK:   true,
		},
		{
			name:     "Month and day without space",
			text:     "12월25일 파티",
			want:     time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleMonthDay,
			wantOK:   true,
		},
		{
			name:     "Month and day with leading zeros",
			text:     "03월 07일 회의",
			want:     time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleMonthDay,
			wantOK:   true,
		},
		{
			name:     "Zero month skips rule and falls through to today",
			text:     "0월 5일 오늘 회의",
			want:     startOfBase,
			wantRule: datemath.RuleToday,
			wantOK:   true,
		},
		{
			name:     "Month and day wins over today",
			text:     "오늘 말고 6월 1일",
			want:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleMonthDay,
			wantOK:   true,
		},
		{
			name:     "Today",
			text:     "오늘 저녁 7시에 가족과 저녁 식사",
			want:     startOfBase,
			wantRule: datemath.RuleToday,
			wantOK:   true,
		},
		{
			name:     "Tomorrow keeps time of day",
			text:     "내일 오후 2시에 친구와 만나기",
			want:     baseTime.AddDate(0, 0, 1),
			wantRule: datemath.RuleTomorrow,
			wantOK:   true,
		},
		{
			name:     "Today wins over tomorrow",
			text:     "오늘 아니면 내일",
			want:     startOfBase,
			wantRule: datemath.RuleToday,
			wantOK:   true,
		},
		{
			name:     "Next week wins over weekday",
			text:     "다음주 월요일에 팀 미팅",
			want:     baseTime.AddDate(0, 0, 7),
			wantRule: datemath.RuleNextWeek,
			wantOK:   true,
		},
		{
			name:     "Saturday from Wednesday",
			text:     "토요일 오후에 영화 보기",
			want:     time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleWeekday,
			wantOK:   true,
		},
		{
			name:     "Monday from Wednesday",
			text:     "월요일 회의",
			want:     time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleWeekday,
			wantOK:   true,
		},
		{
			name:     "Same weekday jumps a week",
			text:     "수요일 스터디",
			want:     time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleWeekday,
			wantOK:   true,
		},
		{
			name:     "Monday is tested before Friday",
			text:     "금요일 아니면 월요일",
			want:     time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC),
			wantRule: datemath.RuleWeekday,
			wantOK:   true,
		},
		{
			name:   "No date",
			text:   "친구와 만나기",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Extract(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.AbsoluteTime.Equal(tt.want) {
				t.Errorf("Extract() got = %v, want %v", got.AbsoluteTime, tt.want)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Extract() rule = %s, want %s", got.Rule, tt.wantRule)
			}
		})
	}
}

func TestExtract_ConvertsToParserLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seoul := parser.Location()

	// 2024-05-01 20:00 UTC is already 2024-05-02 05:00 in Seoul.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got, ok := parser.Extract("오늘", base)
	if !ok {
		t.Fatalf("expected today to match")
	}
	want := time.Date(2024, 5, 2, 0, 0, 0, 0, seoul)
	if !got.AbsoluteTime.Equal(want) {
		t.Errorf("got %v, want %v", got.AbsoluteTime, want)
	}
}

func TestPatternsAndKeywords(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	// month/day + today + tomorrow + next week + seven weekdays
	if n := len(parser.Patterns()); n != 11 {
		t.Errorf("expected 11 patterns, got %d", n)
	}
	if n := len(datemath.Keywords()); n != 10 {
		t.Errorf("expected 10 keywords, got %d", n)
	}
}
