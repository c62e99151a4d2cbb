package controller

import (
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Add a question to the bank
// @Tags questions
// @Accept json
// @Produce json
// @Param body body service.QuestionReq true "Question"
// @Success 201 {object} util.Response
// @Router /questions/add [post]
func (c *QuestionController) AddQuestion(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.AddQuestion(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCategory) || errors.Is(err, util.ErrInvalidQuestion) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"message": "Question added successfully", "question": q})
}

// @Summary Add a comprehension passage with its five sub-questions
// @Tags questions
// @Accept json
// @Produce json
// @Param body body service.PassageReq true "Passage"
// @Success 201 {object} util.Response
// @Router /questions/comprehension [post]
func (c *QuestionController) AddPassage(ctx *gin.Context) {
	var req service.PassageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.AddPassage(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidPassage) || errors.Is(err, util.ErrInvalidQuestion) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

// @Summary List comprehension passages
// @Tags questions
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions/comprehension [get]
func (c *QuestionController) ListPassages(ctx *gin.Context) {
	ps, err := c.Service.ListPassages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ps)
}

// @Summary List bank questions, optionally by category
// @Tags questions
// @Produce json
// @Param category query string false "aptitude|core|verbal|programming"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	category := ctx.Query("category")

	qs, total, err := c.Service.ListQuestions(category, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": qs, "total": total})
}

// @Summary Delete a bank question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	if err := c.Service.DeleteQuestion(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Preview a composed paper for a department
// @Description Draws a fresh random paper without starting a session; the
// answer key is withheld. Fill counts expose thin pools.
// @Tags questions
// @Produce json
// @Param department path string true "Department tag"
// @Success 200 {object} util.Response
// @Router /questions/department/{department} [get]
func (c *QuestionController) DepartmentPreview(ctx *gin.Context) {
	department := ctx.Param("department")
	preview, err := c.Service.DepartmentPreview(department)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preview)
}
