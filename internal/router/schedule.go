package router

import (
	"shiftwave/internal/handler"

	"github.com/gin-gonic/gin"
)

type ScheduleRouter struct {
	scheduleHandler *handler.ScheduleHandler
}

func NewScheduleRouter(
	scheduleHandler *handler.ScheduleHandler,
) *ScheduleRouter {
	return &ScheduleRouter{
		scheduleHandler: scheduleHandler,
	}
}

func (sr *ScheduleRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin/venues/:venueID/schedules")
	{
		admin.POST("", sr.scheduleHandler.Generate)
		admin.GET("/:weekStartDate", sr.scheduleHandler.Get)
	}
}
