package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// msgTechnicalError is sent when a handler fails unexpectedly
const msgTechnicalError = "Технічна помилка"

// Recovery creates middleware that turns handler panics into a logged
// technical error reply
func Recovery(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					fields := []zap.Field{zap.Any("panic", r), zap.Stack("stack")}
					if sender := c.Sender(); sender != nil {
						fields = append(fields, zap.Int64("user_id", sender.ID))
					}
					logger.Error("Recovered from panic in handler", fields...)
					err = c.Send(msgTechnicalError)
				}
			}()
			return next(c)
		}
	}
}

// Logging creates middleware that logs every incoming update at debug level
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Debug("Received message",
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
					zap.String("text", c.Text()),
				)
			}
			return next(c)
		}
	}
}
