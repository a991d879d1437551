package controller

import (
	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	Ingestion *service.IngestionService
}

func NewAnswerController(ingestion *service.IngestionService) *AnswerController {
	return &AnswerController{Ingestion: ingestion}
}

// SaveAnswer godoc
// @Summary Save a single answer
// @Description Records one answer for a candidate, replacing any earlier answer for the same question
// @Tags answers
// @Accept json
// @Produce json
// @Param body body service.AnswerSubmission true "answer submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/save-answer [post]
func (c *AnswerController) SaveAnswer(ctx *gin.Context) {
	var sub service.AnswerSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	answer, err := c.Ingestion.SaveIndividual(sub)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "answer saved", "answer": answer})
}

// SaveAllAnswers godoc
// @Summary Save a batch of answers
// @Description Records every answer in the batch, replacing earlier answers question by question
// @Tags answers
// @Accept json
// @Produce json
// @Param body body []service.AnswerSubmission true "answer batch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/save-all-answers [post]
func (c *AnswerController) SaveAllAnswers(ctx *gin.Context) {
	var subs []service.AnswerSubmission
	if err := ctx.ShouldBindJSON(&subs); err != nil {
		util.BadRequest(ctx, "request body must be an array of answers")
		return
	}
	if len(subs) == 0 {
		util.BadRequest(ctx, "answer batch is empty")
		return
	}

	saved, err := c.Ingestion.SaveBatch(subs, model.SourceIndividual, service.AllSubmissions)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "answers saved", "savedCount": saved})
}

// TimeoutSaveAnswers godoc
// @Summary Save answers on timer expiry
// @Description Records attempted answers when the exam timer runs out; skipped and unanswered entries are dropped
// @Tags answers
// @Accept json
// @Produce json
// @Param body body []service.AnswerSubmission true "answer batch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/timeout-save-answers [post]
func (c *AnswerController) TimeoutSaveAnswers(ctx *gin.Context) {
	var subs []service.AnswerSubmission
	if err := ctx.ShouldBindJSON(&subs); err != nil {
		util.BadRequest(ctx, "request body must be an array of answers")
		return
	}

	saved, err := c.Ingestion.SaveBatch(subs, model.SourceTimeout, service.AttemptedOnly)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "answers saved", "savedCount": saved})
}

type completeExamRequest struct {
	RegistrationNumber string                     `json:"registrationNumber"`
	ExamName           string                     `json:"examName"`
	Answers            []service.AnswerSubmission `json:"answers"`
}

// CompleteExam godoc
// @Summary Finish an exam
// @Description Records the candidate's final answers and marks the attempt submitted
// @Tags answers
// @Accept json
// @Produce json
// @Param body body completeExamRequest true "final submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/complete-exam [post]
func (c *AnswerController) CompleteExam(ctx *gin.Context) {
	var req completeExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	saved, err := c.Ingestion.Complete(req.RegistrationNumber, req.ExamName, req.Answers)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "exam completed", "savedCount": saved})
}

// CandidateAnswers godoc
// @Summary List a candidate's recorded answers
// @Tags answers
// @Produce json
// @Param registrationId path string true "registration number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/candidate-answers/{registrationId} [get]
func (c *AnswerController) CandidateAnswers(ctx *gin.Context) {
	registrationNumber := ctx.Param("registrationId")

	answers, err := c.Ingestion.AnswersFor(registrationNumber)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"answers": answers, "count": len(answers)})
}
