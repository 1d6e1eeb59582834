// Package server boots the HTTP process: config, connections, middleware
// kernel, routes, background workers and graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/shallerhub/app/jobs"
	"github.com/shashiranjanraj/shallerhub/app/routes"
	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/config"
	"github.com/shashiranjanraj/shallerhub/pkg/cache"
	"github.com/shashiranjanraj/shallerhub/pkg/event"
	"github.com/shashiranjanraj/shallerhub/pkg/logger"
	"github.com/shashiranjanraj/shallerhub/pkg/metrics"
	"github.com/shashiranjanraj/shallerhub/pkg/middleware"
	"github.com/shashiranjanraj/shallerhub/pkg/mongodb"
	"github.com/shashiranjanraj/shallerhub/pkg/notification"
	"github.com/shashiranjanraj/shallerhub/pkg/queue"
	"github.com/shashiranjanraj/shallerhub/pkg/reqid"
	"github.com/shashiranjanraj/shallerhub/pkg/router"
	"github.com/shashiranjanraj/shallerhub/pkg/schedule"
	"github.com/shashiranjanraj/shallerhub/pkg/storage"
	"github.com/shashiranjanraj/shallerhub/pkg/workerpool"
)

const (
	queueWorkers       = 4
	broadcastPoolSize  = 16
	shutdownGraceLimit = 10 * time.Second
)

// Boot loads config and opens every connection the process needs.
// Used by the serve command and by the one-shot CLI commands (migrate,
// provision, queue:work).
func Boot() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := mongodb.Connect(); err != nil {
		return err
	}

	if config.Get("LOG_CHANNEL", "") == "mongo" {
		mh, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDB(), "shallerhub_logs")
		if err != nil {
			logger.Warn("server: mongo log channel unavailable", "error", err)
		} else {
			logger.AttachHandler(mh)
		}
	}

	if err := cache.Connect(); err != nil {
		// Redis is optional: the queue falls back to its memory driver.
		logger.Warn("server: redis unavailable, using in-memory queue", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseDB(mongodb.DB())

	storage.Connect()
	if hook := config.Get("SLACK_WEBHOOK_URL", ""); hook != "" {
		notification.SetSlackWebhook(hook)
	}
	jobs.Register()
	return nil
}

// Start boots the process and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := Boot(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go routes.LocationHub.Run()
	registerListeners()
	RegisterSchedule()
	schedule.Start(ctx)
	queue.StartWorkers(ctx, queueWorkers)

	r := buildRouter()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		fmt.Printf("Shallerhub running on %s\n", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceLimit)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	mongodb.Disconnect()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRouter assembles the middleware kernel and mounts the routes.
//
// Stack order (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func buildRouter() *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint — no auth, no rate limit concerns at this volume.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)
	return r
}

// Routes returns the named-route table for the route:list command.
func Routes() map[string]string {
	return buildRouter().Routes()
}

// registerListeners wires domain events. Location updates fan out to the
// websocket hub through a bounded pool so a ping storm cannot spawn
// unbounded goroutines.
func registerListeners() {
	pool := workerpool.New(broadcastPoolSize)

	event.Listen(services.EventLocationUpdated, func(payload interface{}) {
		upd, ok := payload.(services.LocationUpdate)
		if !ok {
			return
		}
		err := pool.Submit(func() {
			raw, err := json.Marshal(upd)
			if err != nil {
				return
			}
			routes.LocationHub.Broadcast <- raw
		})
		if errors.Is(err, workerpool.ErrPoolFull) {
			logger.Warn("server: location broadcast dropped", "user", upd.UserID)
		}
	})

	event.Listen(services.EventOTPSent, func(payload interface{}) {
		if mobile, ok := payload.(string); ok {
			logger.Debug("server: otp issued", "mobile", mobile)
		}
	})
}

// RegisterSchedule sets up recurring maintenance tasks. Exported so the
// standalone schedule:run command registers the same task set as serve.
func RegisterSchedule() {
	_, _, userSvc, _, _ := routes.Services()

	schedule.EveryMinute().
		Name("sweep-expired-otps").
		WithoutOverlapping().
		Run(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := userSvc.SweepExpiredOTPs(ctx); err != nil {
				logger.Error("server: otp sweep failed", "error", err)
			}
		})
}
