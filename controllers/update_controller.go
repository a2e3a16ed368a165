package controllers

import (
	"errors"

	"applauncher/internal/models"
	"applauncher/services"

	"github.com/gin-gonic/gin"
)

type UpdateController struct {
	server *services.Server
}

func NewUpdateController(server *services.Server) *UpdateController {
	return &UpdateController{
		server: server,
	}
}

// StartRequest is the optional body of POST /api/v1/update.
type StartRequest struct {
	Dir string `json:"dir"`
}

/**
 * Register update and manifest routes
 * @param {*gin.Engine} r - Gin router instance
 */
func (u *UpdateController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	api.POST("/update", u.StartUpdate)
	api.GET("/update", u.GetUpdate)
	api.GET("/manifest", u.GetManifest)
}

// @Summary Start an update
// @Description Starts an update of the configured application, one run at a time
// @Tags Update
// @Accept json
// @Produce json
// @Param body body StartRequest false "Install directory for a first install"
// @Success 202 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/update [post]
func (u *UpdateController) StartUpdate(c *gin.Context) {
	var req StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, models.ErrorResponse{Code: "update.bad_request", Error: err.Error()})
			return
		}
	}
	id, err := u.server.Updates.Start(req.Dir)
	switch {
	case err == nil:
		c.JSON(202, gin.H{"id": id})
	case errors.Is(err, services.ErrRunInProgress):
		c.JSON(409, models.ErrorResponse{Code: "update.in_progress", Error: err.Error()})
	case errors.Is(err, services.ErrNoInstallDir):
		c.JSON(400, models.ErrorResponse{Code: "update.no_install_dir", Error: err.Error()})
	default:
		c.JSON(500, models.ErrorResponse{Code: "update." + models.KindOf(err), Error: err.Error()})
	}
}

// @Summary Update progress
// @Description Returns the state and events of the latest update
// @Tags Update
// @Produce json
// @Success 200 {object} models.RunSnapshot
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/update [get]
func (u *UpdateController) GetUpdate(c *gin.Context) {
	snap, ok := u.server.Updates.Latest()
	if !ok {
		c.JSON(404, models.ErrorResponse{Code: "update.not_found", Error: "No update has been started"})
		return
	}
	c.JSON(200, snap)
}

// @Summary Install manifest
// @Description Returns the persisted install manifest
// @Tags Manifest
// @Produce json
// @Success 200 {object} models.InstallManifest
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/manifest [get]
func (u *UpdateController) GetManifest(c *gin.Context) {
	m, _, err := u.server.Pipeline.Store.Load()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Code: "manifest." + models.KindOf(err), Error: err.Error()})
		return
	}
	c.JSON(200, m)
}
