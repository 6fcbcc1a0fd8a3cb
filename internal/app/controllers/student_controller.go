package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/app/services"
	"github.com/classtap/classtap/internal/middleware"
)

// StudentController handles student directory endpoints
type StudentController struct {
	directory *services.DirectoryService
}

// NewStudentController creates a new StudentController
func NewStudentController(directory *services.DirectoryService) *StudentController {
	return &StudentController{
		directory: directory,
	}
}

// GetAllStudents retrieves all students
// @Summary List students
// @Description Retrieves all student identity records. NFC tag uids are never included.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.directory.GetStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}
