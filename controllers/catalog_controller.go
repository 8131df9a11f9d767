package controllers

import (
	"stayrooted/dto"
	"stayrooted/middleware"
	"stayrooted/response"
	"stayrooted/services"
	"stayrooted/services/logger"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
	filters *services.FiltersCache
	logger  logger.Logger
}

func NewCatalogController(catalog *services.CatalogService, filters *services.FiltersCache, log logger.Logger) *CatalogController {
	return &CatalogController{catalog: catalog, filters: filters, logger: log}
}

// Home godoc
// @Summary      Trang chủ: experience và stay nổi bật
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /home [get]
func (ctl *CatalogController) Home(c *gin.Context) {
	home, err := ctl.catalog.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, home)
}

func (ctl *CatalogController) Options(c *gin.Context) {
	response.Success(c, ctl.catalog.Options())
}

func (ctl *CatalogController) Suggest(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "q is required")
		return
	}
	response.Success(c, ctl.catalog.Suggest(q))
}

// experienceFilters đọc bộ lọc từ query, gộp với bộ lọc cũ nếu merge=true
func (ctl *CatalogController) experienceFilters(c *gin.Context) (dto.ExperienceFilters, bool) {
	var filters dto.ExperienceFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid filters: "+err.Error())
		return filters, false
	}

	merged, err := ctl.filters.RememberExperienceFilters(c.Request.Context(), middleware.ClientSessionID(c), filters, c.Query("merge") == "true")
	if err != nil {
		// bộ lọc vẫn dùng được dù cache lỗi
		ctl.logger.Error("remember experience filters: %v", err)
		return filters, true
	}
	return merged, true
}

// ListExperiences godoc
// @Summary      Tìm kiếm experience
// @Tags         catalog
// @Produce      json
// @Param        search    query  string  false  "Từ khóa"
// @Param        city      query  string  false  "Thành phố"
// @Param        category  query  string  false  "Danh mục"
// @Param        priceMin  query  int     false  "Giá tối thiểu"
// @Param        priceMax  query  int     false  "Giá tối đa"
// @Success      200  {object}  response.ResponseTotal
// @Router       /experiences [get]
func (ctl *CatalogController) ListExperiences(c *gin.Context) {
	filters, ok := ctl.experienceFilters(c)
	if !ok {
		return
	}

	experiences, err := ctl.catalog.ListExperiences(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, experiences, len(experiences))
}

func (ctl *CatalogController) ExperiencesMap(c *gin.Context) {
	filters, ok := ctl.experienceFilters(c)
	if !ok {
		return
	}

	experiences, err := ctl.catalog.ListExperiences(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ctl.catalog.MapView(experiences))
}

func (ctl *CatalogController) LastFilters(c *gin.Context) {
	last, err := ctl.filters.GetLastFilters(c.Request.Context(), middleware.ClientSessionID(c))
	if err != nil {
		ctl.logger.Error("load last filters: %v", err)
		response.ServerError(c)
		return
	}
	response.Success(c, last)
}

// ClearLastFilters xóa bộ lọc đã nhớ của phiên
func (ctl *CatalogController) ClearLastFilters(c *gin.Context) {
	if err := ctl.filters.ClearLastFilters(c.Request.Context(), middleware.ClientSessionID(c)); err != nil {
		ctl.logger.Error("clear last filters: %v", err)
		response.ServerError(c)
		return
	}
	response.SuccessWithMessage(c, "Filters cleared", nil)
}

func (ctl *CatalogController) GetExperience(c *gin.Context) {
	exp, err := ctl.catalog.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, exp)
}

// ListStays godoc
// @Summary      Tìm kiếm homestay
// @Tags         catalog
// @Produce      json
// @Param        search        query  string  false  "Từ khóa"
// @Param        state         query  string  false  "Bang"
// @Param        propertyType  query  string  false  "Loại chỗ ở"
// @Param        priceMin      query  int     false  "Giá mỗi đêm tối thiểu"
// @Param        priceMax      query  int     false  "Giá mỗi đêm tối đa"
// @Param        guests        query  int     false  "Số khách"
// @Success      200  {object}  response.ResponseTotal
// @Router       /stays [get]
func (ctl *CatalogController) ListStays(c *gin.Context) {
	var filters dto.StayFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid filters: "+err.Error())
		return
	}

	merged, err := ctl.filters.RememberStayFilters(c.Request.Context(), middleware.ClientSessionID(c), filters, c.Query("merge") == "true")
	if err != nil {
		ctl.logger.Error("remember stay filters: %v", err)
		merged = filters
	}

	stays, err := ctl.catalog.ListStays(c.Request.Context(), merged)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, stays, len(stays))
}

func (ctl *CatalogController) GetStay(c *gin.Context) {
	stay, err := ctl.catalog.GetStay(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, stay)
}
