package controller

import (
	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	Materials *service.MaterialService
}

func NewMaterialController(materials *service.MaterialService) *MaterialController {
	return &MaterialController{Materials: materials}
}

// Upload godoc
// @Summary Upload a study material
// @Description Multipart form: title, examTitle, paid flag and the file. PDFs and videos only; video duration is probed on upload.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/materials [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.FromError(ctx, util.MissingFieldErr("file"))
		return
	}

	m, err := c.Materials.Upload(ctx.Request.Context(), service.MaterialUpload{
		Title:     ctx.PostForm("title"),
		ExamTitle: ctx.PostForm("examTitle"),
		Paid:      ctx.PostForm("paid") == "true",
		File:      file,
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"material": m})
}

// ListForCandidate godoc
// @Summary List an exam's study materials
// @Description Paid materials have their URLs withheld unless the registration has a captured payment
// @Tags materials
// @Produce json
// @Param title path string true "exam title"
// @Param registrationId query string false "registration number"
// @Success 200 {object} map[string]interface{}
// @Router /api/materials/{title} [get]
func (c *MaterialController) ListForCandidate(ctx *gin.Context) {
	ms, err := c.Materials.ListForCandidate(ctx.Param("title"), ctx.Query("registrationId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"materials": ms})
}

// ListAll godoc
// @Summary List every study material
// @Tags materials
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/materials [get]
func (c *MaterialController) ListAll(ctx *gin.Context) {
	ms, err := c.Materials.ListAll()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"materials": ms})
}

// Delete godoc
// @Summary Delete a study material
// @Tags materials
// @Produce json
// @Param id path string true "material id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	if err := c.Materials.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "material deleted"})
}
