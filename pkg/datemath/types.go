package datemath

import "time"

// RuleKind names the date rule that produced a ParseResult.
type RuleKind string

const (
	RuleMonthDay RuleKind = "month_day"
	RuleToday    RuleKind = "today"
	RuleTomorrow RuleKind = "tomorrow"
	RuleNextWeek RuleKind = "next_week"
	RuleWeekday  RuleKind = "weekday"
)

// ParseResult holds the result of extracting a date expression from a command.
type ParseResult struct {
	AbsoluteTime time.Time
	Rule         RuleKind
	Matched      string // substring of the command that triggered the rule
}
