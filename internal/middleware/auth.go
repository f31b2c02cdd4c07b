package middleware

import (
	"phonequest/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// msgUnknownUser is the answer to anyone without a required role
const msgUnknownUser = "А ви від кого?"

// RoleResolver looks up the role of a Telegram user
type RoleResolver interface {
	RoleOf(userID int64) (domain.Role, bool)
}

// RequireRole creates middleware that lets through only users holding one of roles
func RequireRole(users RoleResolver, logger *zap.Logger, roles ...domain.Role) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			role, ok := users.RoleOf(sender.ID)
			if ok {
				for _, allowed := range roles {
					if role == allowed {
						return next(c)
					}
				}
			}

			logger.Warn("Access denied",
				zap.Int64("user_id", sender.ID),
				zap.String("username", sender.Username),
				zap.String("text", c.Text()),
			)
			return c.Send(msgUnknownUser)
		}
	}
}

// RequireAdmin creates middleware that lets through only admins
func RequireAdmin(users RoleResolver, logger *zap.Logger) tele.MiddlewareFunc {
	return RequireRole(users, logger, domain.RoleAdmin)
}

// RequireRegistered creates middleware that lets through admins and captains
func RequireRegistered(users RoleResolver, logger *zap.Logger) tele.MiddlewareFunc {
	return RequireRole(users, logger, domain.RoleAdmin, domain.RoleCaptain)
}
