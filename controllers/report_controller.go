package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/middleware"
	"github.com/guardian-watch/web-go/models"
	"github.com/guardian-watch/web-go/validation"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type reportInput struct {
	Title       string `json:"title" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Severity    string `json:"severity" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Submit stores an incident report.
func (rc *ReportController) Submit(c *gin.Context) {
	var input reportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Missing fields"))
		return
	}
	if missing := validation.MissingFields(input); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, missingFieldsResponse(missing))
		return
	}

	report := models.Report{
		Title:       input.Title,
		Location:    input.Location,
		Severity:    input.Severity,
		Description: input.Description,
	}
	if err := rc.DB.Create(&report).Error; err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not save report")
		c.JSON(http.StatusInternalServerError, errorResponse(genericErrorMessage))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Report submitted"))
}
