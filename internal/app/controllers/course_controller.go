package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/app/services"
	"github.com/classtap/classtap/internal/middleware"
)

// CourseController handles course and roster endpoints
type CourseController struct {
	directory *services.DirectoryService
}

// NewCourseController creates a new CourseController
func NewCourseController(directory *services.DirectoryService) *CourseController {
	return &CourseController{
		directory: directory,
	}
}

// GetAllCourses retrieves all courses with their rosters
// @Summary List courses
// @Description Retrieves all courses, each with its enrolled students
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseWithStudents} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.directory.GetCoursesWithStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves one course with its roster
// @Summary Get course
// @Description Retrieves a specific course by id, with its enrolled students
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseWithStudents} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.directory.GetCourseWithStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}
