package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	SessionCookie = "dashboard_session"
	SessionHeader = "X-Session-ID"

	sessionContextKey = "session_id"
	sessionMaxAge     = 24 * 60 * 60
)

// SessionMiddleware - middleware, привязывающий запрос к сессии дашборда.
// ID берется из заголовка X-Session-ID или cookie; отсутствующий или
// некорректный ID заменяется новым.
func SessionMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(SessionCookie)
		}

		if _, err := uuid.Parse(id); err != nil {
			if id != "" {
				log.WithField("session_id", id).Warn("Invalid session ID provided")
			}
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID возвращает ID сессии, установленный SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
