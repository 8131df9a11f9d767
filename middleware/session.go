package middleware

import (
	"stayrooted/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey       = "sessionId"
	sessionProvidedKey = "sessionProvided"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(constants.SessionIDHeader)
		provided := sessionID != ""
		if !provided {
			sessionID = uuid.NewString()
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(sessionProvidedKey, provided)
		c.Writer.Header().Set(constants.SessionIDHeader, sessionID)

		c.Next()
	}
}

// SessionID trả về sessionId của request hiện tại
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// ClientSessionID chỉ trả về sessionId do client gửi lên; id vừa sinh thì trả về ""
func ClientSessionID(c *gin.Context) string {
	if !c.GetBool(sessionProvidedKey) {
		return ""
	}
	return SessionID(c)
}
