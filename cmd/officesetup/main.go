package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dentc/officesetup/internal/config"
	"github.com/dentc/officesetup/internal/domain/office"
	"github.com/dentc/officesetup/internal/domain/setup"
	"github.com/dentc/officesetup/internal/platform/auth"
	"github.com/dentc/officesetup/internal/platform/middleware"
	"github.com/dentc/officesetup/internal/platform/rest"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "officesetup",
		Short: "Office setup administration for the practice-management system",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(officesCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// serveCmd starts the mock backend: the demo dataset served over the same
// REST surface the production API exposes.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the mock office API over the demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	repo := office.NewMemoryRepository()
	repo.Seed(office.DemoOffices(), office.DemoMetadata())
	logger.Info().Int("offices", len(office.DemoOffices())).Msg("seeded demo dataset")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))

	if cfg.ResolvedAuthMode() == "token" {
		skipper := func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		}
		e.Use(auth.Middleware([]byte(cfg.AuthSecret), skipper))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	apiV1 := e.Group("/api/v1")
	office.NewHandler(repo).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting mock office API")
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

// officesCmd lists offices through the HTTP gateway, with the same filter
// the form's list view applies.
func officesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offices",
		Short: "List offices via the office API",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")

			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := rest.New(cfg.APIBaseURL, logger,
				rest.WithToken(cfg.APIToken),
				rest.WithTimeout(cfg.HTTPTimeout),
			)
			sess := setup.NewSession(office.NewHTTPRepository(client), logger)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
			defer cancel()
			if err := sess.Refresh(ctx); err != nil {
				return err
			}

			rows := sess.Filter(query)
			fmt.Printf("%-6s %-8s %s\n", "ID", "SHORT", "NAME")
			for _, o := range rows {
				fmt.Printf("%-6d %-8s %s\n", o.ID, o.ShortID, o.Name)
			}
			fmt.Printf("%d office(s)\n", len(rows))
			return nil
		},
	}
	cmd.Flags().String("query", "", "Filter by name, short id, or office id")
	return cmd
}

// tokenCmd mints a bearer token for a token-mode mock backend.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the mock office API",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET is not configured")
			}

			token, err := auth.MintToken([]byte(cfg.AuthSecret), subject, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().String("subject", "admin", "Token subject")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
