package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"gestordocumental_backend/internals/configs"
	database "gestordocumental_backend/internals/databases"
	docService "gestordocumental_backend/internals/features/documentos/service"
	middlewares "gestordocumental_backend/internals/middlewares"
	routes "gestordocumental_backend/internals/route"
	"gestordocumental_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             docService.MaxTamanoArchivo + (1 << 20), // archivo + metadatos
	})

	// gzip + 304 caching
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUIDv4()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	db := database.ConnectDB()
	database.TunePool(db)
	database.Migrate(db)

	if configs.GetEnv("SEED") == "1" {
		seeds.RunAllSeeds(db)
	}

	almacen, err := docService.NuevoAlmacen(configs.UploadDir)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Los archivos subidos se sirven estáticos bajo /uploads
	app.Static("/uploads", almacen.Dir)

	routes.SetupRoutes(app, db, almacen)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "4000")
	go func() {
		log.Printf("✅ Escuchando en :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(db)
	log.Println("👋 Servidor detenido")
}
