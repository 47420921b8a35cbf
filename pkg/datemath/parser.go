package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	monthDayPattern = regexp.MustCompile(`(\d+)월\s*(\d+)일`)
	digitsPattern   = regexp.MustCompile(`\d+`)
)

// rule is one entry of the ordered date grammar. resolve may decline a match,
// in which case evaluation continues with the next rule.
type rule struct {
	kind    RuleKind
	pattern *regexp.Regexp
	resolve func(p *Parser, matched string, now time.Time) (time.Time, bool)
}

// Parser extracts Korean date expressions from free text.
type Parser struct {
	location *time.Location
	rules    []rule
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, rules: buildRules()}, nil
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Extract returns the first date expression found in text, evaluating rules in
// priority order: month/day, today, tomorrow, next week, weekday names.
func (p *Parser) Extract(text string, now time.Time) (ParseResult, bool) {
	now = now.In(p.location)

	for _, r := range p.rules {
		matched := r.pattern.FindString(text)
		if matched == "" {
			continue
		}
		t, ok := r.resolve(p, matched, now)
		if !ok {
			continue
		}
		return ParseResult{AbsoluteTime: t, Rule: r.kind, Matched: matched}, true
	}

	return ParseResult{}, false
}

// Patterns returns the patterns of every date rule, in priority order.
func (p *Parser) Patterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r.pattern)
	}
	return out
}

func buildRules() []rule {
	rules := []rule{
		{kind: RuleMonthDay, pattern: monthDayPattern, resolve: (*Parser).resolveMonthDay},
		{kind: RuleToday, pattern: literal(KeywordToday), resolve: func(p *Parser, _ string, now time.Time) (time.Time, bool) {
			return p.startOfDay(now), true
		}},
		{kind: RuleTomorrow, pattern: literal(KeywordTomorrow), resolve: func(_ *Parser, _ string, now time.Time) (time.Time, bool) {
			return now.AddDate(0, 0, 1), true
		}},
		{kind: RuleNextWeek, pattern: literal(KeywordNextWeek), resolve: func(_ *Parser, _ string, now time.Time) (time.Time, bool) {
			return now.AddDate(0, 0, 7), true
		}},
	}

	for _, w := range weekdayNames {
		target := w.weekday
		rules = append(rules, rule{
			kind:    RuleWeekday,
			pattern: literal(w.name),
			resolve: func(p *Parser, _ string, now time.Time) (time.Time, bool) {
				return p.nextWeekday(target, now), true
			},
		})
	}

	return rules
}

func literal(s string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(s))
}

// resolveMonthDay handles "8월 8일" style expressions. Month and day come from the
// first two positive digit groups in the matched text.
func (p *Parser) resolveMonthDay(matched string, now time.Time) (time.Time, bool) {
	nums := make([]int, 0, 2)
	for _, group := range digitsPattern.FindAllString(matched, -1) {
		n, err := strconv.Atoi(group)
		if err != nil || n <= 0 {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return time.Time{}, false
	}

	return time.Date(now.Year(), time.Month(nums[0]), nums[1], DefaultHour, 0, 0, 0, p.location), true
}

// nextWeekday returns the next occurrence of target strictly after today, at DefaultHour.
func (p *Parser) nextWeekday(target time.Weekday, now time.Time) time.Time {
	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	d := now.AddDate(0, 0, daysUntil)
	return time.Date(d.Year(), d.Month(), d.Day(), DefaultHour, 0, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
