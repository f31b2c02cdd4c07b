package handler

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"phonequest/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleLeaderboard handles /leaderboard
func (h *Handler) handleLeaderboard(c tele.Context) error {
	board, err := h.stats.Leaderboard()
	if err != nil {
		return h.fail(c, "Failed to build leaderboard", err)
	}
	if board == "" {
		return c.Send(msgNoLeaderboard)
	}
	return c.Send(board)
}

// handleProgress handles /progress username
func (h *Handler) handleProgress(c tele.Context) error {
	args := commandArgs(c)
	if len(args) < 1 {
		return c.Send(usageProgress)
	}
	username := args[0]

	user, err := h.users.ByUsername(username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.Send(fmt.Sprintf(msgUnknownUser, username))
	}
	if err != nil {
		return h.fail(c, "Failed to find user", err)
	}

	report, err := h.stats.Progress(user.UserID)
	if err != nil {
		return h.fail(c, "Failed to build progress", err)
	}
	if report.Empty() {
		return c.Send(msgNoProgress)
	}

	header := fmt.Sprintf(msgProgress, username, domain.DateString(report.Start))
	text := html.EscapeString(header) + "\n<pre>" + html.EscapeString(report.Table()) + "</pre>"
	return c.Send(text, tele.ModeHTML)
}

// handleAddAlias handles /add_alias number name...
func (h *Handler) handleAddAlias(c tele.Context) error {
	args := commandArgs(c)
	if len(args) < 2 {
		return c.Send(usageAddAlias)
	}

	if err := h.aliases.Set(args[0], strings.Join(args[1:], " ")); err != nil {
		return h.fail(c, "Failed to add alias", err)
	}
	return c.Send(msgAliasAdded)
}

// handleRemoveAlias handles /remove_alias number
func (h *Handler) handleRemoveAlias(c tele.Context) error {
	args := commandArgs(c)
	if len(args) < 1 {
		return c.Send(usageRemoveAlias)
	}

	if err := h.aliases.Remove(args[0]); err != nil {
		return h.fail(c, "Failed to remove alias", err)
	}
	return c.Send(msgAliasRemoved)
}
