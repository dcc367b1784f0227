package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lazlle/menu-builder/internal/config"
	"github.com/lazlle/menu-builder/internal/database"
	"github.com/lazlle/menu-builder/internal/handler"
	"github.com/lazlle/menu-builder/internal/menu"
	appmw "github.com/lazlle/menu-builder/internal/middleware"
	"github.com/lazlle/menu-builder/internal/queue"
	"github.com/lazlle/menu-builder/internal/repository"
	"github.com/lazlle/menu-builder/internal/router"
	"github.com/lazlle/menu-builder/internal/service"
)

func main() {
	// Best-effort .env loading for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis backs the creation-time slug reservation guard. A nil client
	// disables the guard; the slug unique key remains the hard backstop.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; slug reservation guard disabled")
	}

	cafeRepo := repository.NewCafeRepo(db)
	menuRepo := repository.NewMenuRepo(db)

	builder := menu.NewBuilder(cafeRepo, menuRepo)
	cafeSvc := service.NewCafeService(cafeRepo, rdb, cfg.PublicDomain)

	e := echo.New()
	// The host rewrite must run before routing, hence Pre.
	e.Pre(appmw.TenantRewrite(cfg.RootDomains, cfg.PreviewSuffix))

	router.RegisterRoutes(e)
	router.RegisterAdmin(e, &handler.AdminHandler{Cafes: cafeSvc})
	router.RegisterPublic(e, &handler.PublicHandler{Menu: builder})

	// Background consumer keeps the menus.log record of every go-live.
	go func() {
		if err := queue.StartMenuPublishedConsumer(); err != nil {
			log.Printf("menu-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
