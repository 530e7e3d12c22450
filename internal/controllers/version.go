package controllers

import (
	"net/http"

	"github.com/fireview/backend/internal/buildinfo"
	"github.com/gin-gonic/gin"
)

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version   string `json:"version" example:"1.1.0"`
	Commit    string `json:"commit" example:"0123456789abcdef"`
	BuildDate string `json:"buildDate" example:"2024-06-01T12:00:00Z"`
	GoVersion string `json:"goVersion" example:"go1.25.0"`
	Uptime    string `json:"uptime" example:"1h32m10s"`
}

// VersionPage is the view model for the version template.
type VersionPage struct {
	Build  buildinfo.Info
	Uptime string
}

// Version renders the build information, as HTML by default and as JSON
// with ?format=json.
func (co Controller) Version(c *gin.Context) {
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, VersionResponse{
			Data: VersionObject{
				Version:   co.build.Version,
				Commit:    co.build.Commit,
				BuildDate: co.build.BuildDate,
				GoVersion: co.build.GoVersion,
				Uptime:    co.build.Uptime().String(),
			},
		})
		return
	}

	c.HTML(http.StatusOK, "version.html", VersionPage{
		Build:  co.build,
		Uptime: co.build.Uptime().String(),
	})
}

// Healthz reports process liveness. It does not call the upstream API,
// a broken Firefly III connection shows up on the pages instead.
func (co Controller) Healthz(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
