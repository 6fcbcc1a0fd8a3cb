package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/classtap/classtap/internal/app/controllers"
	"github.com/classtap/classtap/internal/pkg/live"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	scheduleController *controllers.ScheduleController,
	attendanceController *controllers.AttendanceController,
	hub *live.Hub,
	dbPool *pgxpool.Pool,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	schedule := v1.Group("/schedule")
	{
		schedule.GET("", scheduleController.GetSchedule)
		schedule.GET("/:id", scheduleController.GetScheduleItemByID)
	}

	attendance := v1.Group("/attendance")
	{
		attendance.POST("", attendanceController.Scan)
		attendance.GET("/session/:sessionId", attendanceController.GetSessionAttendance)
		attendance.GET("/session/:sessionId/summary", attendanceController.GetSessionSummary)
		attendance.GET("/session/:sessionId/live", hub.ServeSession)
		attendance.GET("/course/:courseId", attendanceController.GetCourseAttendance)
	}

	// Operational endpoints stay outside the versioned API group
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
