package controllers

import (
	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/middleware"
	"stayrooted/response"
	"stayrooted/services"

	"github.com/gin-gonic/gin"
)

type HostController struct {
	host   *services.HostService
	upload *services.UploadService
}

func NewHostController(host *services.HostService, upload *services.UploadService) *HostController {
	return &HostController{host: host, upload: upload}
}

// Dashboard godoc
// @Summary      Bảng điều khiển của host
// @Tags         host
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /host-dashboard [get]
func (ctl *HostController) Dashboard(c *gin.Context) {
	dash, err := ctl.host.Dashboard(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dash)
}

func (ctl *HostController) CreateExperience(c *gin.Context) {
	var form dto.ExperienceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := ctl.host.CreateExperience(c.Request.Context(), middleware.CurrentUser(c), form)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, constants.MsgExperienceCreatedDemo, draft)
}

func (ctl *HostController) CreateStay(c *gin.Context) {
	var form dto.StayForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := ctl.host.CreateStay(c.Request.Context(), middleware.CurrentUser(c), form)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, constants.MsgStayCreatedDemo, draft)
}

// UploadImages nhận một hoặc nhiều file ở field "files" (hoặc "file")
func (ctl *HostController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}
	files := form.File["files"]
	files = append(files, form.File["file"]...)

	resp, err := ctl.upload.UploadImages(c.Request.Context(), middleware.CurrentUser(c), files)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Upload successful", resp)
}
