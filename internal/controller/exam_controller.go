package controller

import (
	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Exams *service.ExamService
}

func NewExamController(exams *service.ExamService) *ExamController {
	return &ExamController{Exams: exams}
}

// Upsert godoc
// @Summary Create or update an exam
// @Description One exam per calendar date; a second exam on a taken date is rejected
// @Tags exams
// @Accept json
// @Produce json
// @Param body body service.ExamRequest true "exam details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/admin/exams [post]
func (c *ExamController) Upsert(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	exam, err := c.Exams.Upsert(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"exam": exam})
}

// List godoc
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	exams, err := c.Exams.List()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"exams": exams})
}

// Get godoc
// @Summary Fetch one exam with its questions
// @Tags exams
// @Produce json
// @Param title path string true "exam title"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/exams/{title} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	exam, questions, err := c.Exams.Get(ctx.Param("title"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"exam": exam, "questions": questions})
}

// Today godoc
// @Summary Fetch the exam scheduled for today
// @Tags exams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/exams/today [get]
func (c *ExamController) Today(ctx *gin.Context) {
	exam, err := c.Exams.Today()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"exam": exam})
}
