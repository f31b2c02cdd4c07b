package handler

import (
	"phonequest/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHelp handles /start and /help, listing the commands of the user's role
func (h *Handler) handleHelp(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User asked for help",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	role, _ := h.users.RoleOf(userID)
	if role == domain.RoleAdmin {
		return c.Send(helpAdmin)
	}
	return c.Send(helpCaptain)
}
