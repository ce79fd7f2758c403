// Package main barangay management API.
//
// @title           Barangay Management API
// @version         1.0
// @description     Barangay back office: asset rentals, payments, tracking, resident feeds.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"github.com/Maristella28/Bms-111925/app/echoServer"
	arctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/assetrequest"
	authctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/auth"
	dashctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/dashboard"
	exportctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/export"
	surveyctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/survey"
	"github.com/Maristella28/Bms-111925/app/echoServer/validation"
	"github.com/Maristella28/Bms-111925/config"
	arrepo "github.com/Maristella28/Bms-111925/repository/assetrequest"
	dashrepo "github.com/Maristella28/Bms-111925/repository/dashboard"
	hhrepo "github.com/Maristella28/Bms-111925/repository/household"
	userrepo "github.com/Maristella28/Bms-111925/repository/user"
	arsvc "github.com/Maristella28/Bms-111925/service/assetrequest"
	authsvc "github.com/Maristella28/Bms-111925/service/auth"
	dashsvc "github.com/Maristella28/Bms-111925/service/dashboard"
	exportsvc "github.com/Maristella28/Bms-111925/service/export"
	receiptsvc "github.com/Maristella28/Bms-111925/service/receipt"
	surveysvc "github.com/Maristella28/Bms-111925/service/survey"
	"github.com/Maristella28/Bms-111925/util/database"
	"github.com/Maristella28/Bms-111925/util/redisx"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// redis is optional; counts fall back to the DB without it
	rdb := redisx.New(ctx, cfg.RedisAddr)

	// repos
	ar := arrepo.New(db)
	dr := dashrepo.New(db)
	hr := hhrepo.New(db)
	ur := userrepo.New(db)

	// services
	receipts := receiptsvc.New()
	requests := arsvc.New(db, ar, receipts, rdb)
	dash := dashsvc.New(dr)
	surveys := surveysvc.New(hr)
	exports := exportsvc.New(ar)
	auth := authsvc.New(ur, cfg.JWTSecret)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: auth, V: v, Log: log}
	requestC := &arctrl.Controller{Svc: requests, Receipts: receipts, V: v, Log: log}
	dashC := &dashctrl.Controller{Svc: dash, Log: log}
	surveyC := &surveyctrl.Controller{Svc: surveys, Log: log}
	exportC := &exportctrl.Controller{Svc: exports, Log: log}

	// hourly overdue sweep
	cr := cron.New()
	if _, err := cr.AddFunc("@hourly", func() {
		n, err := requests.SweepOverdue(context.Background())
		if err != nil {
			log.Error("overdue sweep failed", "err", err)
			return
		}
		if n > 0 {
			log.Info("overdue sweep", "flagged", n)
		}
	}); err != nil {
		log.Error("cron setup failed", "err", err)
		os.Exit(1)
	}
	cr.Start()
	defer cr.Stop()

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Requests:  requestC,
		Dashboard: dashC,
		Survey:    surveyC,
		Export:    exportC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
