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
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"seroter.com/orderconsole/client"
	"seroter.com/orderconsole/config"
	"seroter.com/orderconsole/console"
	"seroter.com/orderconsole/web"
)

func main() {
	app := &cli.App{
		Name:  "orderconsole",
		Usage: "admin console for the Orders API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the console web server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Usage: "listen port (APP_PORT)"},
					&cli.StringFlag{Name: "api-url", Usage: "Orders API base URL (ORDERS_API_URL)"},
					&cli.StringFlag{Name: "api-prefix", Usage: "orders collection path (ORDERS_API_PREFIX)"},
				},
				Action: serve,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("orderconsole stopped")
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v := c.String("port"); v != "" {
		cfg.AppPort = v
	}
	if v := c.String("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v := c.String("api-prefix"); v != "" {
		cfg.APIPrefix = v
	}
	if err := cfg.SetupLogging(); err != nil {
		return err
	}

	api := client.New(cfg.APIURL,
		client.WithPrefix(cfg.APIPrefix),
		client.WithLogger(log.WithField("component", "client")),
	)
	ctrl := console.NewController(api, log.WithField("component", "console"))

	t, err := web.NewTemplate()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = t
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(web.LogMiddleware)
	web.NewHandler(ctrl).Register(e)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.AppPort)
		log.WithFields(log.Fields{"addr": addr, "api": cfg.APIURL + cfg.APIPrefix}).Info("started up")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	waitForKillSignal()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

func waitForKillSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	switch <-signals {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
