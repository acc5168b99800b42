package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/miokit/mioviewer/internal/config"
	"github.com/miokit/mioviewer/internal/domain/viewer"
	"github.com/miokit/mioviewer/internal/platform/examples"
	"github.com/miokit/mioviewer/internal/platform/middleware"
	"github.com/miokit/mioviewer/internal/platform/pdf"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mio-server",
		Short: "Viewer backend for German MIO medical documents",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(examplesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <bundle-id>",
		Short: "Print the PDF content tree of a registered bundle as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildService()
			if err != nil {
				return err
			}
			tree, err := svc.ExportContent(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		},
	}
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the registered example bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildService()
			if err != nil {
				return err
			}
			for _, b := range svc.ListBundles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d entries\n", b.ID, b.Type, b.Entries)
			}
			return nil
		},
	}
}

// buildService wires the registry, catalog and projector from the
// current configuration.
func buildService() (*viewer.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	reg, err := examples.BuiltIn()
	if err != nil {
		return nil, nil, err
	}
	if cfg.ExamplesDir != "" {
		if err := reg.LoadDir(cfg.ExamplesDir); err != nil {
			return nil, nil, err
		}
	}
	projector := pdf.Projector{MaxDepth: cfg.PDFMaxDepth}
	return viewer.NewService(reg, terminology.NewCatalog(), projector), cfg, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	svc, cfg, err := buildService()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build service")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")
	viewer.NewHandler(svc).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Int("bundles", len(svc.ListBundles())).
			Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
