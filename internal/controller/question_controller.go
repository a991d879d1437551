package controller

import (
	"strconv"

	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Questions *service.QuestionService
}

func NewQuestionController(questions *service.QuestionService) *QuestionController {
	return &QuestionController{Questions: questions}
}

func questionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return 0, false
	}
	return uint(id), true
}

// Create godoc
// @Summary Add a question to an exam
// @Description Appends a question at the next order position; exactly four options are required
// @Tags questions
// @Accept json
// @Produce json
// @Param title path string true "exam title"
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/exams/{title}/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	q, err := c.Questions.Create(ctx.Param("title"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"question": q})
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "question id"
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	q, err := c.Questions.Update(id, req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"question": q})
}

// Delete godoc
// @Summary Delete a question
// @Description Removes the question; remaining questions keep their order positions
// @Tags questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	if err := c.Questions.Delete(id); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "question deleted"})
}

// ListByExam godoc
// @Summary List an exam's questions with correct indices
// @Tags questions
// @Produce json
// @Param title path string true "exam title"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/exams/{title}/questions [get]
func (c *QuestionController) ListByExam(ctx *gin.Context) {
	qs, err := c.Questions.ListByExam(ctx.Param("title"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"questions": qs})
}
