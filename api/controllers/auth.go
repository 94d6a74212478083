package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AniketJas/volunteer-signup/api/models"
	"github.com/AniketJas/volunteer-signup/auth"
)

type AuthController struct {
	gate *auth.Gate
}

func NewAuthController(gate *auth.Gate) *AuthController {
	return &AuthController{gate: gate}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/login", c.login)
	group.POST("/logout", c.logout)
	group.GET("/session", c.session)
}

// login godoc
// @Summary Log in as the admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Admin credentials"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if !c.gate.Login(req.Email, req.Password) {
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	g.JSON(http.StatusOK, &models.SessionResponse{LoggedIn: true, Email: req.Email})
}

// logout godoc
// @Summary Log out the admin session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /api/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	c.gate.Logout()
	g.JSON(http.StatusOK, &models.SessionResponse{LoggedIn: false})
}

// session godoc
// @Summary Get the current session state
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /api/session [get]
func (c *AuthController) session(g *gin.Context) {
	email, ok := c.gate.Identity()
	g.JSON(http.StatusOK, &models.SessionResponse{LoggedIn: ok, Email: email})
}
