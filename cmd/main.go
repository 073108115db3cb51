package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/routes"
	"github.com/ThanapatNon/FOODMOOD/services"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Initialize()
	defer logger.Close()

	config.InitDB()
	config.InitMongo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer, err := utils.NewSESMailer()
	if err != nil {
		logger.Error("SES mailer unavailable, reminders will fail to send", zap.Error(err))
	}
	reminders := services.NewReminderService(config.DB, mailer, time.Minute)
	go reminders.Start(ctx)

	if coll := config.ProfileCollection(); coll != nil {
		sync := services.NewSyncService(config.DB, coll, 10*time.Minute)
		go sync.Start(ctx)
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	srv := &http.Server{Addr: addr, Handler: routes.SetupRouter()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
