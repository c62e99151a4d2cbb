package controller

import (
	"aptitude_portal_backend/internal/repository"
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Codes   *service.AccessCodeService
	Results *repository.ResultRepository
}

func NewAdminController(codes *service.AccessCodeService, results *repository.ResultRepository) *AdminController {
	return &AdminController{Codes: codes, Results: results}
}

// @Summary Get the currently active access code
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/current-code [get]
func (c *AdminController) CurrentCode(ctx *gin.Context) {
	code, err := c.Codes.Current()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"code": code.Code})
}

type updateCodeReq struct {
	Code string `json:"code" binding:"required"`
}

// @Summary Replace the active access code
// @Tags admin
// @Accept json
// @Produce json
// @Param body body updateCodeReq true "New code"
// @Success 200 {object} util.Response
// @Router /admin/update-code [post]
func (c *AdminController) UpdateCode(ctx *gin.Context) {
	var req updateCodeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	code, err := c.Codes.Update(req.Code)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"success": true, "code": code.Code})
}

// @Summary List completed test results
// @Tags admin
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	results, total, err := c.Results.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": results, "total": total})
}
