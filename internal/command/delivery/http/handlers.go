package http

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/pkg/response"
)

// Parse godoc
// @Summary     Parse a scheduling command
// @Description Extracts date, title, attendees, location and duration from Korean text. Nothing is written to the calendar.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Caller ID"
// @Param       body      body   parseReq true  "Command text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/commands/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// AddToCalendar godoc
// @Summary     Add a command to the calendar
// @Description Parses the text (or takes a pre-parsed command) and saves it as a calendar event.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller ID"
// @Param       body      body   addReq true  "Command text or parsed command"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Calendar access denied"
// @Failure     422 {object} response.Resp "No date in command"
// @Failure     502 {object} response.Resp "Calendar save failed"
// @Router      /api/v1/commands/calendar [POST]
func (h *handler) AddToCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddToCalendar(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddToCalendar: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newAddResp(output))
}

// History godoc
// @Summary     Recent commands
// @Description Returns the caller's recent commands, oldest first.
// @Tags        Commands
// @Produce     json
// @Param       X-User-ID header string false "Caller ID"
// @Success     200 {object} historyResp
// @Router      /api/v1/commands/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear recent commands
// @Tags        Commands
// @Produce     json
// @Param       X-User-ID header string false "Caller ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/commands/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// Examples godoc
// @Summary     Example commands
// @Tags        Commands
// @Produce     json
// @Success     200 {object} examplesResp
// @Router      /api/v1/commands/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	response.OK(c, examplesResp{Examples: command.ExampleCommands})
}
