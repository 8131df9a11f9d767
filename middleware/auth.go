package middleware

import (
	"strings"

	"stayrooted/constants"
	"stayrooted/models"
	"stayrooted/response"
	"stayrooted/services"

	"github.com/gin-gonic/gin"
)

const (
	userKey  = "user"
	tokenKey = "accessToken"
)

// AuthMiddleware xử lý authentication: token hợp lệ và session còn tồn tại
func AuthMiddleware(auth *services.AuthService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 && !hasRole(user.Role, roles) {
			response.Forbidden(c, forbiddenMessage(roles))
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(userKey, user)
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func forbiddenMessage(roles []string) string {
	if len(roles) == 1 && roles[0] == constants.RoleHost {
		return constants.MsgHostOnly
	}
	return "Access denied"
}

// CurrentUser lấy user đã được AuthMiddleware gắn vào context
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
