package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"phonequest/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddCaptain handles /add_captain user_id username
func (h *Handler) handleAddCaptain(c tele.Context) error {
	args := commandArgs(c)
	if len(args) < 2 {
		return c.Send(usageAddCaptain)
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(usageAddCaptain)
	}

	if err := h.users.AddCaptain(userID, args[1]); err != nil {
		return h.fail(c, "Failed to add captain", err)
	}
	return c.Send(msgCaptainAdded)
}

// handleRemoveCaptain handles /remove_captain user_id
func (h *Handler) handleRemoveCaptain(c tele.Context) error {
	args := commandArgs(c)
	if len(args) < 1 {
		return c.Send(usageRemoveCaptain)
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(usageRemoveCaptain)
	}

	err = h.users.RemoveCaptain(userID)
	if errors.Is(err, service.ErrNotCaptain) {
		return c.Send(msgNotCaptain)
	}
	if err != nil {
		return h.fail(c, "Failed to remove captain", err)
	}
	return c.Send(msgCaptainRemoved)
}

// handleListUsers handles /list_users
func (h *Handler) handleListUsers(c tele.Context) error {
	users := h.users.Users()
	if len(users) == 0 {
		return c.Send(msgNoUsers)
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%s (%d) — %s", u.Username, u.UserID, u.Role))
	}
	return c.Send(strings.Join(lines, "\n"))
}

// handlePauseCalls handles /pause_calls
func (h *Handler) handlePauseCalls(c tele.Context) error {
	changed, err := h.pause.Pause()
	if err != nil {
		return h.fail(c, "Failed to pause calls", err)
	}
	if !changed {
		return c.Send(msgAlreadyPaused)
	}
	return c.Send(msgPaused)
}

// handleResumeCalls handles /resume_calls
func (h *Handler) handleResumeCalls(c tele.Context) error {
	changed, err := h.pause.Resume()
	if err != nil {
		return h.fail(c, "Failed to resume calls", err)
	}
	if !changed {
		return c.Send(msgNotPaused)
	}
	return c.Send(msgResumed)
}

// handleReadUsers handles /read_users
func (h *Handler) handleReadUsers(c tele.Context) error {
	if err := h.users.Reload(); err != nil {
		return h.fail(c, "Failed to reload users", err)
	}
	return c.Send(msgUsersReloaded)
}

// handleReadPhonebook handles /read_phonebook, reloading numbers and aliases
func (h *Handler) handleReadPhonebook(c tele.Context) error {
	if err := h.phonebook.Reload(); err != nil {
		return h.fail(c, "Failed to reload phonebook", err)
	}
	if err := h.aliases.Reload(); err != nil {
		return h.fail(c, "Failed to reload aliases", err)
	}

	h.logger.Info("Phonebook reloaded",
		zap.Int64("user_id", c.Sender().ID),
		zap.Int("numbers", h.phonebook.Snapshot().Len()),
	)
	return c.Send(msgPhonebookReloaded)
}
