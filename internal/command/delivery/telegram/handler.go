package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/model"
	pkgResponse "voice-calendar-assistant/pkg/response"
	pkgTelegram "voice-calendar-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine,
// since a calendar write can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	if msg.Voice != nil {
		return h.bot.SendMessage(ctx, chatID, voiceMessage)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := scopeOf(msg)

	switch text {
	case cmdStart:
		return h.bot.SendMessageWithMode(ctx, chatID, startMessage, pkgTelegram.ParseModeMarkdown)
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, helpMessage(), pkgTelegram.ParseModeMarkdown)
	case cmdHistory:
		out, err := h.uc.History(ctx, sc)
		if err != nil {
			return h.reportError(ctx, chatID, err)
		}
		return h.bot.SendMessageWithMode(ctx, chatID, historyMessage(out), pkgTelegram.ParseModeMarkdown)
	case cmdClear:
		if err := h.uc.ClearHistory(ctx, sc); err != nil {
			return h.reportError(ctx, chatID, err)
		}
		return h.bot.SendMessage(ctx, chatID, clearedMessage)
	}

	now := time.Unix(msg.Date, 0)
	if msg.Date == 0 {
		now = time.Time{}
	}

	parsed, err := h.uc.Parse(ctx, sc, command.ParseInput{Text: text, Now: now})
	if err != nil {
		return h.reportError(ctx, chatID, err)
	}

	if err := h.bot.SendMessageWithMode(ctx, chatID, previewMessage(parsed.Command), pkgTelegram.ParseModeMarkdown); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send preview: %v", err)
	}

	cmd := parsed.Command
	out, err := h.uc.AddToCalendar(ctx, sc, command.AddInput{Command: &cmd})
	if err != nil {
		return h.reportError(ctx, chatID, err)
	}

	return h.bot.SendMessageWithMode(ctx, chatID, savedMessage(out), pkgTelegram.ParseModeMarkdown)
}

// reportError tells the user what went wrong; the original error is only logged.
func (h *handler) reportError(ctx context.Context, chatID int64, err error) error {
	h.l.Warnf(ctx, "telegram handler: chat=%d: %v", chatID, err)
	return h.bot.SendMessage(ctx, chatID, errorMessage(err))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}
