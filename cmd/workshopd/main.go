package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/GuimaraesZ/workshop/config"
	"github.com/GuimaraesZ/workshop/internal/api"
	"github.com/GuimaraesZ/workshop/internal/app"
	"github.com/GuimaraesZ/workshop/internal/auth"
	"github.com/GuimaraesZ/workshop/internal/categories"
	"github.com/GuimaraesZ/workshop/internal/orders"
	"github.com/GuimaraesZ/workshop/internal/products"
	"github.com/GuimaraesZ/workshop/internal/users"
	"github.com/GuimaraesZ/workshop/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config file")
	initdb   = flag.Bool("initdb", false, "drop and rebuild the database schema")
)

func printHelp() {
	if *h {
		fmt.Fprintln(os.Stderr, "workshopd usage: workshopd -h\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if *showVer {
		fmt.Println(config.DefaultAppConfig.System.Version)
		os.Exit(0)
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		os.Exit(0)
	}

	db := application.DB()

	userRepo := users.NewGormRepository(db)
	userSvc := users.NewService(userRepo)
	productSvc := products.NewService(products.NewGormRepository(db))
	categorySvc := categories.NewService(categories.NewGormRepository(db))
	orderSvc := orders.NewService(orders.NewGormRepository(db)).WithEvents(application)
	authSvc := auth.NewService(userRepo, cfg.Web.Secret).WithEvents(application)

	ws := webserver.NewWebServer(cfg)
	api.NewHandlers(cfg, db, userSvc, productSvc, categorySvc, orderSvc, authSvc).Register(ws)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ws.Start(ctx); err != nil {
		zap.S().Fatalf("webserver stopped: %v", err)
	}
}
