package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/app/services"
	"github.com/classtap/classtap/internal/middleware"
)

// ScheduleController handles weekly schedule endpoints
type ScheduleController struct {
	directory *services.DirectoryService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(directory *services.DirectoryService) *ScheduleController {
	return &ScheduleController{
		directory: directory,
	}
}

// GetSchedule retrieves the full weekly schedule
// @Summary List schedule items
// @Description Retrieves all recurring weekly time slots with their courses
// @Tags schedule
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleItem} "Schedule retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	items, err := c.directory.GetScheduleItems(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// GetScheduleItemByID retrieves a single schedule item
// @Summary Get schedule item
// @Description Retrieves a specific recurring time slot by id
// @Tags schedule
// @Produce json
// @Param id path int true "Schedule item ID"
// @Success 200 {object} dto.APIResponse{data=models.ScheduleItem} "Schedule item retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule item ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/{id} [get]
func (c *ScheduleController) GetScheduleItemByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule item ID")
		errorDetail = errorDetail.WithDetails("Schedule item ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.directory.GetScheduleItem(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(item))
}
