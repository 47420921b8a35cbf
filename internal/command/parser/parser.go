package parser

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"voice-calendar-assistant/internal/command"
)

// Parse converts one command line into a ParsedCommand. Every stage reads the
// original text independently; none of them fails.
func (p *Parser) Parse(text string, now time.Time) command.ParsedCommand {
	lowered := strings.ToLower(text)

	return command.ParsedCommand{
		Action:    command.ActionAdd,
		Date:      p.extractDate(lowered, now),
		Title:     p.extractTitle(text),
		Attendees: extractAttendees(lowered),
		Location:  p.extractLocation(lowered),
		Duration:  extractDuration(lowered),
	}
}

func (p *Parser) extractDate(text string, now time.Time) *time.Time {
	res, ok := p.dates.Extract(text, now)
	if !ok {
		return nil
	}
	t := res.AbsoluteTime
	return &t
}

// extractTitle strips date expressions, action words and attendee words from the
// original text.
func (p *Parser) extractTitle(text string) string {
	title := text

	for _, re := range p.datePatterns {
		title = re.ReplaceAllLiteralString(title, "")
	}
	for _, w := range actionWords {
		title = strings.ReplaceAll(title, w, "")
	}
	for _, w := range attendeeWords {
		title = strings.ReplaceAll(title, w, "")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return command.DefaultTitle
	}
	return title
}

func extractAttendees(text string) []string {
	attendees := make([]string, 0, len(attendeeRules))
	for _, r := range attendeeRules {
		if containsAny(text, r.cues) {
			attendees = append(attendees, r.label)
		}
	}
	return attendees
}

// extractLocation returns the first place phrase, trying patterns in priority order.
func (p *Parser) extractLocation(text string) string {
	for _, re := range locationPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			place := text[m[2]:m[3]]
			if p.isPlace(text, m[0], place) {
				return place
			}
		}
	}
	return ""
}

// isPlace rejects candidates glued to a number ("8일에", "2시에") and words that
// name a date, a time of day or the calendar itself.
func (p *Parser) isPlace(text string, start int, place string) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsDigit(prev) {
			return false
		}
	}
	if _, ok := nonPlaceWords[place]; ok {
		return false
	}
	return !containsAny(place, p.dateKeywords)
}

func extractDuration(text string) time.Duration {
	for _, r := range durationRules {
		if containsAny(text, r.cues) {
			return r.duration
		}
	}
	return command.DefaultDuration
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
