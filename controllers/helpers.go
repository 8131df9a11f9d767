package controllers

import (
	stderrors "errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindOptionalJSON cho phép body rỗng (dùng giá trị mặc định)
func bindOptionalJSON(c *gin.Context, target interface{}) error {
	err := c.ShouldBindJSON(target)
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}
