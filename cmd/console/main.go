package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Spok95/university-records-console/internal/api"
	"github.com/Spok95/university-records-console/internal/app"
	"github.com/Spok95/university-records-console/internal/config"
	"github.com/Spok95/university-records-console/internal/export"
	"github.com/Spok95/university-records-console/internal/jobs"
	"github.com/Spok95/university-records-console/internal/logging"
	"github.com/Spok95/university-records-console/internal/observability"
	"github.com/Spok95/university-records-console/internal/session"
	"github.com/Spok95/university-records-console/internal/store"
	"github.com/Spok95/university-records-console/internal/syncer"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "university-records-console")
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.Open(cfg.SessionFile, lg.Component("session"))
	snap := sess.Snapshot()

	token := ""
	if snap.Token != nil {
		token = *snap.Token
	}
	client := api.New(cfg.APIBaseURL, token, lg.Component("gateway"))

	if !snap.Authenticated && cfg.Email != "" && cfg.Password != "" {
		resp, err := client.Login(ctx, cfg.Email, cfg.Password)
		if err != nil {
			// Keep running unauthenticated; the periodic reloads will
			// surface the rejections until the credentials are fixed.
			lg.Sugar.Errorw("login failed", "err", err)
		} else {
			// Token first, authenticated flag last; the session store
			// does not enforce the ordering itself.
			sess.SetToken(&resp.Token)
			sess.SetEmail(&cfg.Email)
			sess.SetPassword(&cfg.Password)
			sess.SetAuthenticated(true)
		}
	}

	records := store.NewRecords()
	catalog := store.NewCatalog()
	recordsSync := syncer.NewRecords(client, records, lg.Component("syncer"))
	catalogSync := syncer.NewCatalog(client, catalog, records, lg.Component("syncer"))
	schedule := syncer.NewSchedule(client, lg.Component("syncer"))

	if err := recordsSync.Reload(ctx); err != nil {
		lg.Sugar.Warnw("initial records reload failed", "err", err)
	}
	if err := catalogSync.Reload(ctx); err != nil {
		lg.Sugar.Warnw("initial catalog reload failed", "err", err)
	}

	runner := jobs.New(ctx, lg.Base)
	runner.Every(cfg.RefreshInterval, "records_reload", recordsSync.Reload)
	runner.Every(cfg.RefreshInterval, "catalog_reload", catalogSync.Reload)
	if cfg.ExportFile != "" {
		runner.Every(cfg.ExportInterval, "export_snapshot", func(ctx context.Context) error {
			return export.Snapshot(ctx, schedule, records, catalog, cfg.ExportFile)
		})
	}

	_ = app.StartHTTP(ctx, cfg.HTTPAddr, client)
	lg.Base.Info("console sync agent up",
		zap.String("api", cfg.APIBaseURL),
		zap.String("http", cfg.HTTPAddr),
		zap.Duration("refresh", cfg.RefreshInterval))

	<-ctx.Done()
	lg.Base.Info("shutting down")
}
