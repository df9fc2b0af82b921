package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Fixed message for persistence failures; the real error is only logged.
const genericErrorMessage = "Something went wrong"

func successResponse(message string) gin.H {
	return gin.H{"status": "success", "message": message}
}

func errorResponse(message string) gin.H {
	return gin.H{"status": "error", "message": message}
}

func missingFieldsResponse(fields []string) gin.H {
	return errorResponse("Missing required fields: " + strings.Join(fields, ", "))
}
