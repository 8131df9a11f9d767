package controllers

import (
	"stayrooted/response"
	"stayrooted/services"
	"stayrooted/services/logger"
	"stayrooted/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// NotificationController mở kết nối websocket nhận thông báo booking
type NotificationController struct {
	auth   *services.AuthService
	melody *melody.Melody
	logger logger.Logger
}

func NewNotificationController(auth *services.AuthService, m *melody.Melody, log logger.Logger) *NotificationController {
	return &NotificationController{auth: auth, melody: m, logger: log}
}

// Connect nâng cấp lên websocket; token (query "token") gắn kết nối với user
func (ctl *NotificationController) Connect(c *gin.Context) {
	keys := map[string]interface{}{}
	if token := c.Query("token"); token != "" {
		user, err := ctl.auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			response.FromError(c, err)
			return
		}
		keys[notification.UserKey] = user.ID
	}

	if err := ctl.melody.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		ctl.logger.Error("websocket upgrade failed: %v", err)
	}
}
