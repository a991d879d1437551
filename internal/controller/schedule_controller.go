package controller

import (
	"exam_admin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	Hub *service.ScheduleHub
}

func NewScheduleController(hub *service.ScheduleHub) *ScheduleController {
	return &ScheduleController{Hub: hub}
}

// Subscribe godoc
// @Summary Subscribe to schedule events over websocket
// @Description Pushes exam reminders and notifications to the connected client
// @Tags schedule
// @Router /ws/schedule [get]
func (c *ScheduleController) Subscribe(ctx *gin.Context) {
	service.ServeScheduleWs(c.Hub, ctx.Writer, ctx.Request)
}
