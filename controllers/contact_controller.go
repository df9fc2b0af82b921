package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/middleware"
	"github.com/guardian-watch/web-go/models"
	"github.com/guardian-watch/web-go/validation"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type contactInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// Submit stores a message from the public contact form. The two name fields
// are stored as a single "first last" value.
func (cc *ContactController) Submit(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Missing fields"))
		return
	}
	if missing := validation.MissingFields(input); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, missingFieldsResponse(missing))
		return
	}

	msg := models.ContactMessage{
		Name:    input.FirstName + " " + input.LastName,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not save contact message")
		c.JSON(http.StatusInternalServerError, errorResponse(genericErrorMessage))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Message received"))
}
