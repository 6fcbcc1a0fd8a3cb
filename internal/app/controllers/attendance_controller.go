package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/app/services"
	"github.com/classtap/classtap/internal/middleware"
)

// AttendanceController handles scan and attendance query endpoints
type AttendanceController struct {
	attendance *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendance: attendance,
	}
}

// Scan records an NFC scan as an attendance fact
// @Summary Record a scan
// @Description Resolves the scanned NFC tag to a student and records presence for the session exactly once. Re-tapping an already scanned card returns the original record with status 200.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.ScanRequest true "Scan payload"
// @Success 201 {object} dto.APIResponse{data=dto.ScanResponse} "Attendance recorded"
// @Success 200 {object} dto.APIResponse{data=dto.ScanResponse} "Already recorded for this session"
// @Failure 400 {object} dto.ErrorResponse "Invalid scan payload"
// @Failure 404 {object} dto.ErrorResponse "NFC tag not assigned to any student"
// @Failure 503 {object} dto.ErrorResponse "Attendance store unavailable"
// @Router /attendance [post]
func (c *AttendanceController) Scan(ctx *gin.Context) {
	var req dto.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scan payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.attendance.RecordScan(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyRecorded {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.NewAPIResponse(result))
}

// GetSessionAttendance lists the records of one session
// @Summary List attendance for a session
// @Description Retrieves all attendance records scoped to a session key, ordered by scan time
// @Tags attendance
// @Produce json
// @Param sessionId path string true "Session key"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing session id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/session/{sessionId} [get]
func (c *AttendanceController) GetSessionAttendance(ctx *gin.Context) {
	records, err := c.attendance.AttendanceForSession(ctx, ctx.Param("sessionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetSessionSummary aggregates one session against the course roster
// @Summary Session summary
// @Description Presence count, presence rate and per-student flags for one session
// @Tags attendance
// @Produce json
// @Param sessionId path string true "Session key"
// @Success 200 {object} dto.APIResponse{data=dto.SessionSummary} "Summary computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing session id"
// @Failure 404 {object} dto.ErrorResponse "No course can be determined for the session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/session/{sessionId}/summary [get]
func (c *AttendanceController) GetSessionSummary(ctx *gin.Context) {
	summary, err := c.attendance.SessionSummary(ctx, ctx.Param("sessionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// GetCourseAttendance lists all records of one course
// @Summary List attendance for a course
// @Description Retrieves all attendance records for a course across its sessions, ordered by scan time
// @Tags attendance
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/course/{courseId} [get]
func (c *AttendanceController) GetCourseAttendance(ctx *gin.Context) {
	courseIDStr := ctx.Param("courseId")
	courseID, err := strconv.ParseInt(courseIDStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendance.AttendanceForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
