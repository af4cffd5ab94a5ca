package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajneesh-anand/geenia-api/internal/catalog"
	"github.com/rajneesh-anand/geenia-api/internal/config"
	"github.com/rajneesh-anand/geenia-api/internal/db"
	"github.com/rajneesh-anand/geenia-api/internal/logger"
	"github.com/rajneesh-anand/geenia-api/internal/metrics"
	"github.com/rajneesh-anand/geenia-api/internal/notify"
	"github.com/rajneesh-anand/geenia-api/internal/order"
	"github.com/rajneesh-anand/geenia-api/internal/payment"
	"github.com/rajneesh-anand/geenia-api/internal/pricing"
	"github.com/rajneesh-anand/geenia-api/internal/transport/rest"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo := catalog.NewRepository(database)
	resolver := catalog.NewService(catalogRepo)

	calc := pricing.NewCalculator(pricing.ShippingRule{
		FreeAbove: cfg.FreeShippingAbove,
		FlatFee:   cfg.FlatShippingFee,
	}, cfg.Currency)

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	verifier := payment.NewVerifier(cfg.RazorpaySecret)

	events := notify.NewPublisher(256)
	go events.Run(ctx, notify.LogNotifier{})

	stats := &metrics.Checkout{}

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, resolver, calc, gateway, verifier, events, stats)

	handler := rest.NewHandler(orderSvc, stats)
	router := rest.NewRouter(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.L().Info("server running", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
