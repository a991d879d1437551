package controller

import (
	"strconv"

	"exam_admin_backend/internal/service"
	"exam_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *service.NotificationService
}

func NewNotificationController(notifications *service.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// Create godoc
// @Summary Publish a notification
// @Description Stores the notification and pushes it to connected clients
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body service.NotificationRequest true "notification"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req service.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	n, err := c.Notifications.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"notification": n})
}

// ListActive godoc
// @Summary List active notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications [get]
func (c *NotificationController) ListActive(ctx *gin.Context) {
	ns, err := c.Notifications.ListActive()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"notifications": ns})
}

// ListAll godoc
// @Summary List all notifications including inactive ones
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/notifications [get]
func (c *NotificationController) ListAll(ctx *gin.Context) {
	ns, err := c.Notifications.ListAll()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"notifications": ns})
}

// Deactivate godoc
// @Summary Deactivate a notification
// @Tags notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/notifications/{id}/deactivate [post]
func (c *NotificationController) Deactivate(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid notification id")
		return
	}

	n, err := c.Notifications.Deactivate(uint(id))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"notification": n})
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid notification id")
		return
	}

	if err := c.Notifications.Delete(uint(id)); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "notification deleted"})
}
