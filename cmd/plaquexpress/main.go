package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/plaquexpress/internal/compress"
	"github.com/wellywell/plaquexpress/internal/config"
	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/handlers"
	"github.com/wellywell/plaquexpress/internal/notify"
	"github.com/wellywell/plaquexpress/internal/queue"
	"github.com/wellywell/plaquexpress/internal/router"
	"github.com/wellywell/plaquexpress/internal/sender"
	"github.com/wellywell/plaquexpress/internal/types"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logger.Fatal(err)
	}

	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logger.JSONFormatter{})

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs, err := newQueue(ctx, conf)
	if err != nil {
		logger.Fatal(err)
	}

	dispatcher := notify.NewDispatcher(database, emailSender(conf), whatsAppSender(conf))

	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := notify.RunWorkers(workersCtx, jobs.Jobs(), dispatcher, conf.NotifyWorkers, notify.DefaultJobTimeout); err != nil {
			logger.Error(err)
		}
	}()

	handlerSet, err := handlers.NewHandlerSet(handlers.Options{
		Secret:               conf.Secret,
		CookieExpiresSeconds: conf.AuthCookieExpiresIn,
		AdminLogin:           conf.AdminLogin,
		AdminPassword:        conf.AdminPassword,
		Scope:                types.Scope{TenantID: conf.TenantID, ProjectID: conf.ProjectID},
	}, database, jobs, dispatcher)
	if err != nil {
		logger.Fatal(err)
	}

	r := router.NewRouter(conf, handlerSet, compress.RequestUngzipper{})

	go func() {
		logger.Infof("Listening on %s", conf.RunAddress)
		if err := r.ListenAndServe(); err != nil {
			logger.Error(err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := r.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown: %s", err.Error())
	}

	// closing the queue lets workers drain what is already buffered
	if err := jobs.Close(); err != nil {
		logger.Errorf("Queue close: %s", err.Error())
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Warn("Notification workers did not stop in time")
		cancelWorkers()
		<-done
	}
}

func newQueue(ctx context.Context, conf *config.ServerConfig) (queue.Queue, error) {
	if conf.QueueBackend == config.KafkaQueue {
		k, err := queue.NewKafka(conf.KafkaBrokers, conf.KafkaTopic, conf.KafkaGroup)
		if err != nil {
			return nil, err
		}
		k.Start(ctx)
		return k, nil
	}
	return queue.NewMemory(conf.QueueSize), nil
}

func emailSender(conf *config.ServerConfig) sender.Sender {
	if conf.EmailAPIURL == "" || conf.EmailAPIKey == "" {
		logger.Warn("Email provider not configured, email notifications are only logged")
		return sender.NewLogSender(string(types.EmailChannel))
	}
	return sender.NewEmailClient(conf.EmailAPIURL, conf.EmailAPIKey, conf.EmailFrom)
}

func whatsAppSender(conf *config.ServerConfig) sender.Sender {
	if conf.WhatsAppToken == "" || conf.WhatsAppPhoneID == "" {
		logger.Warn("WhatsApp provider not configured, WhatsApp notifications are only logged")
		return sender.NewLogSender(string(types.WhatsAppChannel))
	}
	return sender.NewWhatsAppClient(conf.WhatsAppAPIURL, conf.WhatsAppToken, conf.WhatsAppPhoneID)
}
