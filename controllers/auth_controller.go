package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/middleware"
	"github.com/guardian-watch/web-go/models"
	"github.com/guardian-watch/web-go/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type credentialsInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Index sends everyone to the login page.
func (ac *AuthController) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"flashes": utils.Flashes(c)})
}

func (ac *AuthController) Register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBind(&input); err != nil {
		utils.Flash(c, "Username and password are required")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var existing models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		utils.Flash(c, "Username already exists")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := models.User{Username: input.Username}
	if err := user.SetPassword(input.Password); err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not hash password")
		utils.Flash(c, "Something went wrong, please try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		// Detail stays in the server log; the client gets a fixed message.
		middleware.RequestLogger(c).WithError(err).Error("Could not create user")
		utils.Flash(c, "Something went wrong, please try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	utils.Flash(c, "Registration successful! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	if _, ok := utils.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"flashes": utils.Flashes(c)})
}

func (ac *AuthController) Login(c *gin.Context) {
	if _, ok := utils.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var input credentialsInput
	if err := c.ShouldBind(&input); err != nil {
		ac.renderLoginError(c)
		return
	}

	var user models.User
	err := ac.DB.Where("username = ?", input.Username).First(&user).Error
	// Unknown username and wrong password are indistinguishable on purpose.
	if err != nil || !user.CheckPassword(input.Password) {
		ac.renderLoginError(c)
		return
	}

	if err := utils.LoginUser(c, user.ID); err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not save session")
		ac.renderLoginError(c)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (ac *AuthController) renderLoginError(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": []interface{}{"Invalid username or password"},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := utils.LogoutUser(c); err != nil {
		middleware.RequestLogger(c).WithError(err).Error("Could not clear session")
	}
	c.Redirect(http.StatusFound, "/login")
}

// Protected greets the authenticated user, mostly useful as a session
// smoke check.
func (ac *AuthController) Protected(c *gin.Context) {
	userID, _ := utils.CurrentUserID(c)

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.String(http.StatusOK, "Hello, %s!", user.Username)
}
