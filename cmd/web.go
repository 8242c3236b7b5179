/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/api"
	"github.com/humaidq/vitalboard/metrics"
	"github.com/humaidq/vitalboard/patient"
	"github.com/humaidq/vitalboard/routes"
	"github.com/humaidq/vitalboard/static"
	"github.com/humaidq/vitalboard/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the dashboard web server",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
	}, apiFlags()...),
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	port := strings.TrimSpace(cmd.String("port"))
	if port == "" {
		return errPortRequired
	}

	cfg := apiConfig(cmd)

	dir := patient.NewDirectory()
	dir.OnSelect(func(p patient.Patient) {
		directoryLogger.Info("patient selected", "patient_id", p.ID, "name", p.Name)
	})

	f, err := newApp(dir)
	if err != nil {
		return err
	}

	// The dashboard shows its loading state until this completes. A failure
	// is recorded on the directory and logged; the server keeps running.
	go func() {
		_ = api.LoadDirectory(ctx, api.NewClient(cfg), dir)
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      metrics.Middleware(f),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	appLogger.Info("starting web server", "port", port, "api_url", cfg.URL)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return errServerClosed
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

// newApp wires the dashboard routes around an already created directory.
func newApp(dir *patient.Directory) (*flamego.Flame, error) {
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer())
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
		FuncMaps:   []htmltemplate.FuncMap{routes.FuncMap()},
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Use(func(c flamego.Context) {
		c.Map(dir)
	})

	f.Get("/", routes.Dashboard)
	f.Post("/patients/{id}/select", csrf.Validate, routes.SelectPatient)
	f.Get("/patients/{id}/contact.vcf", routes.ContactCard)
	f.Get("/metrics", metrics.Handler().ServeHTTP)

	return f, nil
}
