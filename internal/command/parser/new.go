package parser

import (
	"regexp"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/pkg/datemath"
)

// Parser is the rule-based command parser. It holds no mutable state and is
// safe for concurrent use.
type Parser struct {
	dates        *datemath.Parser
	datePatterns []*regexp.Regexp
	dateKeywords []string
}

var _ command.Parser = (*Parser)(nil)

// New creates a Parser that resolves dates with the given date parser.
func New(dates *datemath.Parser) *Parser {
	return &Parser{
		dates:        dates,
		datePatterns: dates.Patterns(),
		dateKeywords: datemath.Keywords(),
	}
}
