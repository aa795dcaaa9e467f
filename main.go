package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"talent-tracker-backend/config"
	"talent-tracker-backend/db"
	"talent-tracker-backend/initializers"
	cvsweeper "talent-tracker-backend/lib/cv-sweeper"
)

func main() {
	initializers.InitAllServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.Conf.Upload.SweepIntervalMin > 0 {
		cvsweeper.StartWorker(ctx,
			time.Duration(config.Conf.Upload.SweepIntervalMin)*time.Minute,
			time.Duration(config.Conf.Upload.OrphanTTLMin)*time.Minute)
	}

	app := initializers.NewApp(initializers.AppConfig{
		BodyLimit:     config.Conf.App.BodyLimit,
		IsDevelopment: config.Conf.IsDevelopment(),
		Logger:        *initializers.LoggerConfig,
	})

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		sig, ok := <-c
		if !ok {
			return
		}
		log.WithField("signal", sig.String()).Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	addr := fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)
	log.WithField("addr", addr).Info("HTTP server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Error("HTTP server stopped with error")
		signal.Stop(c)
		close(c)
	}

	wg.Wait()
	if err := db.Close(); err != nil {
		log.WithError(err).Error("Error when closing database")
	}
	log.Info("HTTP server successfully stopped")
}
