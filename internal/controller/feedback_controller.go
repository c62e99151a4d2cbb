package controller

import (
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *service.FeedbackService
}

func NewFeedbackController(svc *service.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: svc}
}

// @Summary Submit candidate feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body service.FeedbackReq true "Feedback"
// @Success 201 {object} util.Response
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req service.FeedbackReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.Service.Submit(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, f)
}

// @Summary List candidate feedback
// @Tags feedback
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	fs, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": fs, "total": total})
}
