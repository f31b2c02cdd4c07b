package handler

import (
	"phonequest/internal/middleware"
	"phonequest/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender delivers messages to arbitrary chats
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Services groups everything the handlers depend on
type Services struct {
	Users     *service.UserService
	Sessions  *service.SessionService
	Phonebook *service.PhonebookService
	Calls     *service.CallService
	Stats     *service.StatsService
	Pause     *service.PauseService
	Aliases   *service.AliasService
}

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	sender Sender
	logger *zap.Logger

	users     *service.UserService
	sessions  *service.SessionService
	phonebook *service.PhonebookService
	calls     *service.CallService
	stats     *service.StatsService
	pause     *service.PauseService
	aliases   *service.AliasService

	broadcastConcurrency int
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, services Services, broadcastConcurrency int, logger *zap.Logger) *Handler {
	return &Handler{
		bot:                  bot,
		sender:               bot,
		logger:               logger,
		users:                services.Users,
		sessions:             services.Sessions,
		phonebook:            services.Phonebook,
		calls:                services.Calls,
		stats:                services.Stats,
		pause:                services.Pause,
		aliases:              services.Aliases,
		broadcastConcurrency: broadcastConcurrency,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Recovery(h.logger))
	h.bot.Use(middleware.Logging(h.logger))

	// Everyone with a role
	registered := h.bot.Group()
	registered.Use(middleware.RequireRegistered(h.users, h.logger))
	registered.Handle("/start", h.handleHelp)
	registered.Handle("/help", h.handleHelp)
	registered.Handle("/call", h.handleCall)
	registered.Handle("/status", h.handleStatus)

	admin := h.bot.Group()
	admin.Use(middleware.RequireAdmin(h.users, h.logger))

	// Adding numbers and broadcasting
	admin.Handle("/add_number", h.handleAddNumber)
	admin.Handle("/broadcast", h.handleBroadcast)
	admin.Handle("/done", h.handleDone)
	admin.Handle("/cancel", h.handleCancel)

	// Captain administration
	admin.Handle("/add_captain", h.handleAddCaptain)
	admin.Handle("/remove_captain", h.handleRemoveCaptain)
	admin.Handle("/list_users", h.handleListUsers)

	// Pause control
	admin.Handle("/pause_calls", h.handlePauseCalls)
	admin.Handle("/resume_calls", h.handleResumeCalls)

	// Progress
	admin.Handle("/leaderboard", h.handleLeaderboard)
	admin.Handle("/progress", h.handleProgress)
	admin.Handle("/add_alias", h.handleAddAlias)
	admin.Handle("/remove_alias", h.handleRemoveAlias)

	// Reloading from storage
	admin.Handle("/read_users", h.handleReadUsers)
	admin.Handle("/read_phonebook", h.handleReadPhonebook)

	// Session content
	admin.Handle(tele.OnText, h.handleContent)
	admin.Handle(tele.OnPhoto, h.handleContent)
	admin.Handle(tele.OnSticker, h.handleContent)
	admin.Handle(tele.OnVoice, h.handleContent)
	admin.Handle(tele.OnDocument, h.handleContent)
}

// fail logs err and answers the user with a generic error
func (h *Handler) fail(c tele.Context, msg string, err error) error {
	fields := []zap.Field{zap.Error(err)}
	if sender := c.Sender(); sender != nil {
		fields = append(fields, zap.Int64("user_id", sender.ID))
	}
	h.logger.Error(msg, fields...)
	return c.Send(msgTechnicalError)
}
