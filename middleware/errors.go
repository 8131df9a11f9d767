package middleware

import (
	"stayrooted/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler render lỗi được đẩy vào c.Errors nếu handler chưa ghi response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		response.FromError(c, c.Errors.Last().Err)
	}
}
