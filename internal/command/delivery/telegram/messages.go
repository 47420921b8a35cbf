package telegram

import (
	"fmt"
	"strings"

	"voice-calendar-assistant/internal/command"
)

const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdHistory = "/history"
	cmdClear   = "/clear"
)

const (
	startMessage = "👋 *음성 캘린더 비서*에 오신 것을 환영합니다!\n\n" +
		"일정을 말하듯이 보내 주시면 캘린더에 추가해 드립니다.\n\n" +
		"_예: \"내일 오후 2시에 친구와 만나기\"_\n\n" +
		"사용법은 /help 를 입력하세요."
	voiceMessage   = "🎙️ 음성 메시지는 아직 지원하지 않습니다. 텍스트로 보내 주세요."
	clearedMessage = "🗑️ 최근 명령 기록을 삭제했습니다."
	emptyHistory   = "최근 명령 기록이 없습니다."
)

func helpMessage() string {
	var b strings.Builder
	b.WriteString("*사용법*\n\n날짜와 할 일을 자연스럽게 입력하세요. 예시:\n")
	for _, ex := range command.ExampleCommands {
		b.WriteString("• `")
		b.WriteString(ex)
		b.WriteString("`\n")
	}
	b.WriteString("\n/history 최근 명령 보기\n/clear 기록 삭제")
	return b.String()
}

func previewMessage(cmd command.ParsedCommand) string {
	var b strings.Builder
	b.WriteString("📋 *일정 미리보기*\n")
	for _, row := range command.Preview(cmd) {
		fmt.Fprintf(&b, "\n%s: %s", row.Label, row.Value)
	}
	return b.String()
}

func savedMessage(out command.AddOutput) string {
	msg := fmt.Sprintf("✅ *%s* 일정을 캘린더에 추가했습니다.", out.Command.Title)
	if out.Event.Link != "" && strings.HasPrefix(out.Event.Link, "http") {
		msg += fmt.Sprintf("\n📅 [캘린더에서 보기](%s)", out.Event.Link)
	}
	return msg
}

func historyMessage(out command.HistoryOutput) string {
	if out.Count == 0 {
		return emptyHistory
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*최근 명령 %d개*\n", out.Count)
	for i, e := range out.Entries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, e.Text)
		if e.Command.Date != nil {
			fmt.Fprintf(&b, "\n   %s", command.FormatDate(*e.Command.Date))
		}
	}
	return b.String()
}
