package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageController serves the session-gated views. Each page is a pure read.
type PageController struct {
	DB *gorm.DB
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

func (pc *PageController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (pc *PageController) Community(c *gin.Context) {
	c.HTML(http.StatusOK, "community.html", nil)
}

func (pc *PageController) Reporting(c *gin.Context) {
	c.HTML(http.StatusOK, "reporting.html", nil)
}

func (pc *PageController) AIValidation(c *gin.Context) {
	c.HTML(http.StatusOK, "ai-validation.html", nil)
}

func (pc *PageController) Leaderboard(c *gin.Context) {
	c.HTML(http.StatusOK, "leaderboard.html", nil)
}

func (pc *PageController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", nil)
}

func (pc *PageController) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

func (pc *PageController) InternalError(c *gin.Context, _ interface{}) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
}
