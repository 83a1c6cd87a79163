package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/Storefront/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.OrdersFile, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	catalog := NewCatalog()
	service := NewService(repository, catalog, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	app.Get("/products", handlers.Products)
	app.Get("/metrics", metrics.Handler())

	cashier := app.Group("/cashier")
	cashier.Post("/add_new_order", handlers.AddNewOrder)
	cashier.Get("/done_orders", handlers.DoneOrders)
	cashier.Put("/mark_paid/:id", handlers.MarkPaid)
	cashier.Get("/paid_orders", handlers.PaidOrders)
	cashier.Get("/generate_bill/:id", handlers.GenerateBill)

	consultant := app.Group("/consultant")
	consultant.Get("/accepted_orders", handlers.AcceptedOrders)
	consultant.Put("/update_status/:id", handlers.UpdateStatus)

	accountant := app.Group("/accountant")
	accountant.Get("/orders", handlers.Orders)
	accountant.Get("/orders_by_date", handlers.OrdersByDate)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
