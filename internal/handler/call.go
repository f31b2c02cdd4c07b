package handler

import (
	"errors"
	"fmt"

	"phonequest/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCall handles /call number [password]
func (h *Handler) handleCall(c tele.Context) error {
	userID := c.Sender().ID

	phone, password, ok := parseKey(commandArgs(c))
	if !ok {
		return c.Send(usageCall)
	}

	reply, found, err := h.calls.Call(userID, c.Message().Time(), phone, password)
	if errors.Is(err, service.ErrNetworkPaused) {
		return c.Send(msgNetworkDown)
	}
	if err != nil {
		return h.fail(c, "Failed to make call", err)
	}

	h.logger.Info("Call made",
		zap.Int64("user_id", userID),
		zap.String("phone", phone),
		zap.Bool("answered", found),
	)

	if !found {
		return c.Send(msgNoAnswer)
	}
	if err := h.sendReply(c.Recipient(), reply); err != nil {
		return h.fail(c, "Failed to send reply", err)
	}
	return nil
}

// handleStatus handles /status
func (h *Handler) handleStatus(c tele.Context) error {
	count, err := h.stats.Status(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to count calls", err)
	}
	return c.Send(fmt.Sprintf(msgCallCount, count))
}
