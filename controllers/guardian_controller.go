package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/middleware"
	"github.com/guardian-watch/web-go/models"
	"github.com/guardian-watch/web-go/validation"
)

type GuardianController struct {
	DB *gorm.DB
}

func NewGuardianController(db *gorm.DB) *GuardianController {
	return &GuardianController{DB: db}
}

type joinInput struct {
	Name     string  `json:"name" validate:"required"`
	Contact  string  `json:"contact" validate:"required"`
	Location *string `json:"location"`
}

// Join signs a guardian up through the public form.
func (gc *GuardianController) Join(c *gin.Context) {
	var input joinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Missing required fields"))
		return
	}
	if missing := validation.MissingFields(input); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, missingFieldsResponse(missing))
		return
	}

	guardian := models.Guardian{
		Name:     input.Name,
		Contact:  input.Contact,
		Location: input.Location,
	}
	if err := gc.DB.Create(&guardian).Error; err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not save guardian")
		c.JSON(http.StatusInternalServerError, errorResponse(genericErrorMessage))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Guardian added"))
}
