package parser

import (
	"regexp"
	"time"
)

// actionWords are stripped from the title, in this order.
var actionWords = []string{"추가해줘", "등록해줘", "일정", "캘린더에", "에"}

// attendeeWords are stripped from the title after actionWords, in this order.
var attendeeWords = []string{"우리 가족", "가족", "친구", "동료", "팀"}

// attendeeRules map literal cues to a group label. Each rule contributes at most once.
var attendeeRules = []struct {
	cues  []string
	label string
}{
	{cues: []string{"우리 가족", "가족"}, label: "가족"},
	{cues: []string{"친구"}, label: "친구"},
	{cues: []string{"동료", "팀"}, label: "동료"},
}

// locationPatterns capture a Hangul place followed by a particle, in priority order.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([가-힣]+)에서`),
	regexp.MustCompile(`([가-힣]+)에`),
	regexp.MustCompile(`([가-힣]+)로`),
}

// nonPlaceWords are location candidates that name a time or the calendar itself.
var nonPlaceWords = map[string]struct{}{
	"오전": {}, "오후": {}, "아침": {}, "점심": {}, "저녁": {}, "밤": {}, "새벽": {},
	"캘린더": {}, "일정": {},
}

// durationRules are scanned first-match-wins.
var durationRules = []struct {
	cues     []string
	duration time.Duration
}{
	{cues: []string{"하루", "종일"}, duration: 24 * time.Hour},
	{cues: []string{"반나절"}, duration: 4 * time.Hour},
	{cues: []string{"2시간"}, duration: 2 * time.Hour},
	{cues: []string{"3시간"}, duration: 3 * time.Hour},
	{cues: []string{"4시간"}, duration: 4 * time.Hour},
}
