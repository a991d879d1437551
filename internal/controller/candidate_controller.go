package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateController struct {
	Candidates *service.CandidateService
	Storage    *service.StorageService
}

func NewCandidateController(candidates *service.CandidateService, storage *service.StorageService) *CandidateController {
	return &CandidateController{Candidates: candidates, Storage: storage}
}

// Register godoc
// @Summary Register a candidate for an exam
// @Description Multipart form: candidate fields plus an optional photo file. Returns the generated registration number.
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/register-candidate [post]
func (c *CandidateController) Register(ctx *gin.Context) {
	req := service.CandidateRequest{
		Name:        ctx.PostForm("name"),
		Email:       ctx.PostForm("email"),
		Phone:       ctx.PostForm("phone"),
		Gender:      ctx.PostForm("gender"),
		DateOfBirth: ctx.PostForm("dateOfBirth"),
		Address:     ctx.PostForm("address"),
		ExamTitle:   ctx.PostForm("examTitle"),
	}

	if file, err := ctx.FormFile("photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			util.FromError(ctx, util.UpstreamErr("failed to read photo", err))
			return
		}
		defer src.Close()

		ext := strings.ToLower(filepath.Ext(file.Filename))
		key := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)
		url, err := c.Storage.Upload(ctx.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			util.FromError(ctx, util.UpstreamErr("failed to store photo", err))
			return
		}
		req.PhotoURL = url
	}

	candidate, err := c.Candidates.Register(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"candidate": candidate, "registrationNumber": candidate.RegistrationNumber})
}

// StartSession godoc
// @Summary Open an exam session
// @Description Consumes the registration number and returns the exam's questions without correct answers
// @Tags candidates
// @Produce json
// @Param registrationId path string true "registration number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/start-exam/{registrationId} [post]
func (c *CandidateController) StartSession(ctx *gin.Context) {
	session, err := c.Candidates.StartSession(ctx.Param("registrationId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"session": session})
}

// Get godoc
// @Summary Fetch a candidate
// @Tags candidates
// @Produce json
// @Param registrationId path string true "registration number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/candidates/{registrationId} [get]
func (c *CandidateController) Get(ctx *gin.Context) {
	candidate, err := c.Candidates.Get(ctx.Param("registrationId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"candidate": candidate})
}

// ListByExam godoc
// @Summary List candidates registered to an exam
// @Tags candidates
// @Produce json
// @Param title path string true "exam title"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/exams/{title}/candidates [get]
func (c *CandidateController) ListByExam(ctx *gin.Context) {
	candidates, err := c.Candidates.ListByExam(ctx.Param("title"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"candidates": candidates, "count": len(candidates)})
}
