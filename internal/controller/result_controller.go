package controller

import (
	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Scoring *service.ScoringService
}

func NewResultController(scoring *service.ScoringService) *ResultController {
	return &ResultController{Scoring: scoring}
}

// TodayExamResults godoc
// @Summary Score today's exam
// @Description Scores every candidate registered for the exam dated today and returns the materialized results
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/today-exam-results [get]
func (c *ResultController) TodayExamResults(ctx *gin.Context) {
	report, err := c.Scoring.ScoreTodayExam()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"report": report})
}

// AllExamResults godoc
// @Summary Aggregate stored results
// @Description Returns every stored result grouped by exam
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/all-exam-results [get]
func (c *ResultController) AllExamResults(ctx *gin.Context) {
	report, err := c.Scoring.AggregateResults()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"report": report})
}

// CandidateResult godoc
// @Summary Fetch one candidate's result
// @Tags results
// @Produce json
// @Param examTitle query string true "exam title"
// @Param registrationId path string true "registration number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/results/{registrationId} [get]
func (c *ResultController) CandidateResult(ctx *gin.Context) {
	registrationNumber := ctx.Param("registrationId")
	examTitle := ctx.Query("examTitle")
	if examTitle == "" {
		util.BadRequest(ctx, "examTitle query parameter is required")
		return
	}

	result, err := c.Scoring.ResultFor(examTitle, registrationNumber)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"result": result})
}
