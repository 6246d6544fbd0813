package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	_ "github.com/saulo-duarte/question-bank/docs"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/container"
	"github.com/saulo-duarte/question-bank/internal/database"
	"github.com/saulo-duarte/question-bank/internal/router"
)

// @title                      Question Bank API
// @version                    1.0.0
// @description                API for Question Bank Application
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	app := &cli.App{
		Name:  "questionbank",
		Usage: "question bank API server and maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", EnvVars: []string{"PORT"}, Value: "8000"},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply the schema migration and exit",
				Action: migrate,
			},
			{
				Name:  "promote",
				Usage: "grant or revoke admin rights for a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.BoolFlag{Name: "revoke", Usage: "remove admin rights instead of granting them"},
				},
				Action: promote,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		config.Logger.WithError(err).Fatal("questionbank exited with error")
	}
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctr, err := container.Bootstrap(ctx)
	if err != nil {
		return err
	}
	defer ctr.Close()

	srv := &http.Server{
		Addr:              ":" + c.String("port"),
		Handler:           router.New(ctr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", srv.Addr).Info("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(c *cli.Context) error {
	cfg := config.Load()
	config.Init()

	db, err := database.Connect(c.Context, cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return database.Migrate(c.Context, db)
}

func promote(c *cli.Context) error {
	ctr, err := container.Bootstrap(c.Context)
	if err != nil {
		return err
	}
	defer ctr.Close()

	u, err := ctr.UserContainer.Service.SetAdmin(c.Context, c.String("email"), !c.Bool("revoke"))
	if err != nil {
		return err
	}

	config.Logger.WithField("email", u.Email).WithField("is_admin", u.IsAdmin).Info("User updated")
	return nil
}
