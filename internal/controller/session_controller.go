package controller

import (
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/internal/util"
	"aptitude_portal_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(svc *service.SessionService) *SessionController {
	return &SessionController{Service: svc}
}

// @Summary Check whether a candidate has a live test session
// @Tags sessions
// @Produce json
// @Param email query string true "Candidate email"
// @Success 200 {object} util.Response
// @Router /users/check-active-session [get]
func (c *SessionController) CheckActiveSession(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		util.BadRequest(ctx, "email is required")
		return
	}

	status, err := c.Service.CheckActive(email)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

type startTestReq struct {
	Email      string `json:"email" binding:"required,email"`
	RegNo      string `json:"regNo" binding:"required"`
	Department string `json:"department" binding:"required"`
	AccessCode string `json:"accessCode" binding:"required"`
}

// @Summary Start a test attempt for a candidate
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body startTestReq true "Candidate registration"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response "invalid access code"
// @Failure 409 {object} util.Response "session already exists"
// @Router /users/start-test [post]
func (c *SessionController) StartTest(ctx *gin.Context) {
	var req startTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	started, err := c.Service.Start(req.Email, req.RegNo, req.Department, req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidAccessCode):
			util.Forbidden(ctx, "Invalid access code")
		case errors.Is(err, util.ErrActiveSessionExists):
			util.Conflict(ctx, "You already have an active test session")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SessionsStarted.WithLabelValues(req.Department).Inc()
	util.Created(ctx, started)
}

type submitTestReq struct {
	Email   string `json:"email" binding:"required,email"`
	Answers []*int `json:"answers"`
}

// @Summary Submit a candidate's answers and finish the attempt
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body submitTestReq true "Ordered answers; null means unanswered"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "no session to complete"
// @Router /users/submit-test [post]
func (c *SessionController) SubmitTest(ctx *gin.Context) {
	var req submitTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.Service.Complete(req.Email, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "No test session found for this candidate")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.SessionsCompleted.WithLabelValues(summary.Department).Inc()
	util.Success(ctx, summary)
}

// @Summary Look up a candidate's completed test
// @Tags sessions
// @Produce json
// @Param email query string true "Candidate email"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /users/search [get]
func (c *SessionController) Search(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		util.BadRequest(ctx, "email is required")
		return
	}

	res, err := c.Service.SearchCompleted(email)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, "No test data found for this user")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"email":          res.Email,
		"regNo":          res.RegNo,
		"department":     res.Department,
		"status":         "completed",
		"score":          res.Score,
		"totalQuestions": res.TotalQuestions,
		"completedAt":    res.CompletedAt,
	})
}

type emailReq struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Force-clear a candidate's session so they can restart
// @Tags admin
// @Accept json
// @Produce json
// @Param body body emailReq true "Candidate email"
// @Success 200 {object} util.Response
// @Router /users/admin-clear-session [post]
func (c *SessionController) AdminClearSession(ctx *gin.Context) {
	var req emailReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.AdminClear(req.Email); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": "success"})
}

// @Summary Delete a candidate's completed result so they can retake
// @Tags admin
// @Accept json
// @Produce json
// @Param body body emailReq true "Candidate email"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "no result to reset"
// @Router /users/reset-test [post]
func (c *SessionController) ResetTest(ctx *gin.Context) {
	var req emailReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.AdminReset(req.Email); err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, "No result to reset")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": "success"})
}

type progressReq struct {
	Email   string `json:"email" binding:"required,email"`
	Answers []*int `json:"answers"`
	Trace   int    `json:"trace"`
}

// @Summary Stash in-progress answers for crash recovery
// @Description Best-effort only; the stash is never used for scoring.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body progressReq true "Ledger snapshot"
// @Success 200 {object} util.Response
// @Router /users/session-progress [put]
func (c *SessionController) SaveProgress(ctx *gin.Context) {
	var req progressReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	snap := service.LedgerSnapshot{Answers: req.Answers, Trace: req.Trace}
	if err := c.Service.SaveProgress(ctx.Request.Context(), req.Email, snap); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "No test session found for this candidate")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"saved": true})
}

// @Summary Fetch the stashed in-progress answers
// @Tags sessions
// @Produce json
// @Param email query string true "Candidate email"
// @Success 200 {object} util.Response
// @Router /users/session-progress [get]
func (c *SessionController) GetProgress(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		util.BadRequest(ctx, "email is required")
		return
	}

	snap, err := c.Service.GetProgress(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "No test session found for this candidate")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}
