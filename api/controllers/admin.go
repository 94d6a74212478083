package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AniketJas/volunteer-signup/api/models"
	"github.com/AniketJas/volunteer-signup/api/transport"
	"github.com/AniketJas/volunteer-signup/auth"
	"github.com/AniketJas/volunteer-signup/export"
	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
)

type AdminController struct {
	volunteers storage.VolunteerStorage
	logins     storage.AdminLoginStorage
}

func NewAdminController(volunteers storage.VolunteerStorage, logins storage.AdminLoginStorage) *AdminController {
	return &AdminController{
		volunteers: volunteers,
		logins:     logins,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine, gate *auth.Gate) {
	group := engine.Group("/api/admin", transport.SessionAuthMiddleware(gate))

	group.GET("/volunteers", c.listVolunteers)
	group.POST("/volunteers/:id/approve", c.approveVolunteer)
	group.GET("/stats", c.getStats)
	group.GET("/shifts", c.listShifts)
	group.GET("/logins", c.listLogins)
	group.GET("/export/volunteers.csv", c.exportVolunteersCSV)
	group.GET("/export/volunteers.json", c.exportVolunteersJSON)
	group.GET("/export/logins.json", c.exportLoginsJSON)
}

// listVolunteers godoc
// @Summary List all registered volunteers
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Volunteer
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/volunteers [get]
func (c *AdminController) listVolunteers(g *gin.Context) {
	volunteers := c.volunteers.List()
	logging.Log.Infof("ADMIN: listed %d volunteers", len(volunteers))
	g.JSON(http.StatusOK, volunteers)
}

// approveVolunteer godoc
// @Summary Approve a pending volunteer
// @Tags admin
// @Produce json
// @Param id path string true "Volunteer id"
// @Success 200 {object} storage.Volunteer
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/volunteers/{id}/approve [post]
func (c *AdminController) approveVolunteer(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing volunteer id"})
		return
	}

	if !c.volunteers.UpdateStatus(id, storage.StatusApproved) {
		logging.Log.Errorf("ADMIN: failed to approve volunteer %s", id)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update volunteer status"})
		return
	}

	for _, v := range c.volunteers.List() {
		if v.ID == id {
			logging.Log.Infof("ADMIN: approved volunteer %s (%s %s)", id, v.FirstName, v.LastName)
			g.JSON(http.StatusOK, v)
			return
		}
	}

	g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "volunteer not found"})
}

// getStats godoc
// @Summary Get volunteer counts per status
// @Tags admin
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/stats [get]
func (c *AdminController) getStats(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformVolunteerStats(c.volunteers.List()))
}

// listShifts godoc
// @Summary List scheduled shifts
// @Tags admin
// @Produce json
// @Success 200 {array} models.Shift
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/shifts [get]
func (c *AdminController) listShifts(g *gin.Context) {
	g.JSON(http.StatusOK, models.ShiftCatalog)
}

// listLogins godoc
// @Summary List recorded admin logins
// @Tags admin
// @Produce json
// @Success 200 {array} storage.AdminLogin
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/logins [get]
func (c *AdminController) listLogins(g *gin.Context) {
	logins := c.logins.List()
	logging.Log.Infof("ADMIN: listed %d logins", len(logins))
	g.JSON(http.StatusOK, logins)
}

// exportVolunteersCSV godoc
// @Summary Download the volunteer roster as CSV
// @Tags admin
// @Produce plain
// @Success 200 {string} string
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/export/volunteers.csv [get]
func (c *AdminController) exportVolunteersCSV(g *gin.Context) {
	content := export.VolunteersCSV(c.volunteers.List())
	serveDownload(g, export.VolunteersCSVFilename(), "text/csv; charset=utf-8", content)
}

// exportVolunteersJSON godoc
// @Summary Download the volunteer roster as JSON
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Volunteer
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/export/volunteers.json [get]
func (c *AdminController) exportVolunteersJSON(g *gin.Context) {
	content := export.VolunteersJSON(c.volunteers.List())
	serveDownload(g, export.VolunteersJSONFilename(), "application/json", content)
}

// exportLoginsJSON godoc
// @Summary Download the admin login log as JSON
// @Tags admin
// @Produce json
// @Success 200 {array} storage.AdminLogin
// @Failure 401 {object} models.ErrorResponse
// @Router /api/admin/export/logins.json [get]
func (c *AdminController) exportLoginsJSON(g *gin.Context) {
	content := export.AdminLoginsJSON(c.logins.List())
	serveDownload(g, export.AdminLoginsJSONFilename(), "application/json", content)
}

func serveDownload(g *gin.Context, filename string, contentType string, content string) {
	g.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	g.Data(http.StatusOK, contentType, []byte(content))
}
