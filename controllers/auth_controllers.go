package controllers

import (
	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/middleware"
	"stayrooted/response"
	"stayrooted/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary      Đăng nhập (giả lập)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginInput  true  "Email và mật khẩu"
// @Success      200  {object}  response.Response
// @Router       /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, constants.MsgAuthFailed)
		return
	}

	resp, err := ctl.auth.Login(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Login successful", resp)
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, constants.MsgAuthFailed)
		return
	}

	resp, err := ctl.auth.Register(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, "Registration successful", resp)
}

func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "idToken is required")
		return
	}

	resp, err := ctl.auth.GoogleLogin(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Login successful", resp)
}

func (ctl *AuthController) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	if err := ctl.auth.Logout(c.Request.Context(), user.ID); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Logged out", nil)
}
