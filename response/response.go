package response

import (
	"net/http"

	apperrors "stayrooted/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// SuccessWithMessage trả về response thành công kèm thông báo
func SuccessWithMessage(c *gin.Context, mess string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: mess,
		Data: data,
	})
}

// Created trả về response 201
func Created(c *gin.Context, mess string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: mess,
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Success",
		Total: total,
		Data:  data,
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Please log in to continue",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: message,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// ServiceUnavailable trả về response 503
func ServiceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError chọn status HTTP theo mã lỗi của AppError
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		Unauthorized(c)
	case apperrors.ErrCodeForbidden, apperrors.ErrCodeInvalidRole:
		Forbidden(c, appErr.Message)
	case apperrors.ErrCodeExperienceNotFound, apperrors.ErrCodeStayNotFound,
		apperrors.ErrCodeBookingNotFound, apperrors.ErrCodeDBNotFound:
		NotFound(c, appErr.Message)
	case apperrors.ErrCodeInvalidOperation:
		Conflict(c, appErr.Message)
	case apperrors.ErrCodeUnavailable:
		ServiceUnavailable(c, appErr.Message)
	case apperrors.ErrCodeDBError:
		ServerError(c)
	default:
		BadRequest(c, appErr.Message)
	}
}
