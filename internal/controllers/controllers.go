// Package controllers holds the HTTP handlers for the dashboard pages.
//
// Every page is rendered server side. Handlers fetch from the Firefly III
// API, derive the view model and render a template. Upstream failures
// never fail the page, they render an error banner with empty data.
package controllers

import (
	"time"

	"github.com/fireview/backend/internal/buildinfo"
	"github.com/fireview/backend/internal/config"
	"github.com/fireview/backend/internal/firefly"
)

type Controller struct {
	cfg    *config.Config
	client *firefly.Client
	build  buildinfo.Info

	// now is replaceable in tests.
	now func() time.Time
}

func New(cfg *config.Config, client *firefly.Client, build buildinfo.Info) Controller {
	return Controller{
		cfg:    cfg,
		client: client,
		build:  build,
		now:    time.Now,
	}
}
