package handler

import (
	"errors"
	"fmt"
	"strings"

	"phonequest/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

// handleAddNumber handles /add_number number [password]
func (h *Handler) handleAddNumber(c tele.Context) error {
	phone, password, ok := parseKey(commandArgs(c))
	if !ok {
		return c.Send(usageAddNumber)
	}

	err := h.sessions.StartAddNumber(c.Sender().ID, phone, password)
	if errors.Is(err, domain.ErrSessionBusy) {
		return c.Send(msgBusy)
	}
	if err != nil {
		return h.fail(c, "Failed to start add number session", err)
	}
	return c.Send(fmt.Sprintf(msgAddNumberStarted, phone, passwordString(password)))
}

// handleBroadcast handles /broadcast
func (h *Handler) handleBroadcast(c tele.Context) error {
	err := h.sessions.StartBroadcast(c.Sender().ID)
	if errors.Is(err, domain.ErrSessionBusy) {
		return c.Send(msgBusy)
	}
	if err != nil {
		return h.fail(c, "Failed to start broadcast session", err)
	}
	return c.Send(msgBroadcastStarted)
}

// handleContent appends any non-command message to the admin's active session
func (h *Handler) handleContent(c tele.Context) error {
	msg := c.Message()
	if msg != nil && strings.HasPrefix(msg.Text, "/") {
		// Unknown command
		return nil
	}

	part, ok := contentFromMessage(msg)
	if !ok {
		return c.Send(msgNotAdded)
	}

	err := h.sessions.Append(c.Sender().ID, part)
	if errors.Is(err, domain.ErrNoActiveSession) {
		return c.Send(msgNotAdded)
	}
	if err != nil {
		return h.fail(c, "Failed to append content", err)
	}
	return nil
}

// handleDone handles /done
func (h *Handler) handleDone(c tele.Context) error {
	outcome, err := h.sessions.Finish(c.Sender().ID)
	if errors.Is(err, domain.ErrNoActiveSession) {
		return c.Send(msgNoSession)
	}
	if err != nil {
		return h.fail(c, "Failed to finish session", err)
	}

	switch outcome.Kind {
	case domain.OutcomeNumberAdded:
		return c.Send(msgNumberAdded)
	case domain.OutcomeNumberDeleted:
		return c.Send(msgNumberDeleted)
	case domain.OutcomeBroadcastReady:
		return h.broadcast(c, outcome.Reply)
	}
	return nil
}

// handleCancel handles /cancel
func (h *Handler) handleCancel(c tele.Context) error {
	err := h.sessions.Cancel(c.Sender().ID)
	if errors.Is(err, domain.ErrNoActiveSession) {
		return c.Send(msgNoSession)
	}
	if err != nil {
		return h.fail(c, "Failed to cancel session", err)
	}
	return c.Send(msgCancelled)
}

// broadcast delivers reply to every captain and reports the result to the admin
func (h *Handler) broadcast(c tele.Context, reply domain.Reply) error {
	if reply.IsEmpty() {
		return c.Send(msgBroadcastEmpty)
	}

	captains := h.users.Captains()
	if len(captains) == 0 {
		return c.Send(msgNoCaptains)
	}

	errs := h.deliver(captains, reply)

	lines := make([]string, 0, len(captains))
	for i, captain := range captains {
		if errs[i] != nil {
			h.logger.Warn("Failed to deliver broadcast",
				zap.Int64("captain_id", captain.UserID),
				zap.String("username", captain.Username),
				zap.Error(errs[i]),
			)
			lines = append(lines, fmt.Sprintf(msgCaptainInactive, captain.Username))
			continue
		}
		lines = append(lines, fmt.Sprintf(msgSentToCaptain, captain.Username))
	}

	h.logger.Info("Broadcast delivered",
		zap.Int64("user_id", c.Sender().ID),
		zap.Int("captains", len(captains)),
		zap.Int("parts", reply.Len()),
	)
	return c.Send(strings.Join(lines, "\n"))
}

// deliver sends reply to every captain with bounded concurrency.
// The result holds one error (or nil) per captain, in order.
func (h *Handler) deliver(captains []domain.User, reply domain.Reply) []error {
	errs := make([]error, len(captains))

	limit := h.broadcastConcurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, captain := range captains {
		i, captain := i, captain
		g.Go(func() error {
			errs[i] = h.sendReply(tele.ChatID(captain.UserID), reply)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
