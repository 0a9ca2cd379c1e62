package main

import (
	"context"
	"fmt"
	"io"

	"besttodo/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dbadapter "besttodo/internal/adapter/db"
	httpadapter "besttodo/internal/adapter/http"
	"besttodo/internal/adapter/http/handlers"
	httpmiddleware "besttodo/internal/adapter/http/middleware"
	"besttodo/internal/adapter/memory"
	appservice "besttodo/internal/app/service"
	"besttodo/internal/config"
	"besttodo/internal/core/ports"
)

type stores struct {
	tasks   ports.TaskRepository
	folders ports.FolderRepository
	health  ports.HealthChecker
	closer  io.Closer
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Warn("translations unavailable, error messages fall back to keys", zap.Error(err))
	}

	st, err := openStores(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	if st.closer != nil {
		defer func() {
			if err := st.closer.Close(); err != nil {
				logger.Warn("failed to close store connection", zap.Error(err))
			}
		}()
	}

	taskService := appservice.NewTaskService(st.tasks, st.folders)
	folderService := appservice.NewFolderService(st.folders)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.RouteOptions{
		AuthSubjectHeader: cfg.AuthSubjectHeader,
		CORSAllowOrigin:   cfg.CORSAllowOrigin,
	}, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(st.health, handlers.AppInfo{Name: cfg.AppName, Version: cfg.AppVersion}),
		Tasks:   handlers.NewTaskHandler(taskService),
		Folders: handlers.NewFolderHandler(folderService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zapCfg.Build()
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		store := memory.NewStore()
		return stores{tasks: store, folders: store, health: store}, nil
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return stores{}, err
	}

	tables := dbadapter.TablesFromConfig(cfg)
	if cfg.DbAutoMigrate {
		if err := dbadapter.Migrate(ctx, db, tables); err != nil {
			_ = db.Close()
			return stores{}, err
		}
	}

	return stores{
		tasks:   dbadapter.NewTaskRepository(db, tables),
		folders: dbadapter.NewFolderRepository(db, tables),
		health:  dbadapter.NewHealthChecker(db),
		closer:  db,
	}, nil
}
