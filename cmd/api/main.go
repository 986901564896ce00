package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/plastinin/leafguard/internal/adapter/http/handler"
	"github.com/plastinin/leafguard/internal/adapter/metrics"
	"github.com/plastinin/leafguard/internal/adapter/repository"
	"github.com/plastinin/leafguard/internal/config"
	"github.com/plastinin/leafguard/internal/usecase"
	"github.com/plastinin/leafguard/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	apphttp "github.com/plastinin/leafguard/internal/adapter/http"
	httpmiddleware "github.com/plastinin/leafguard/internal/adapter/http/middleware"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Инициализируем логгер
	log := logger.Must(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("Starting leafguard API",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	// Метрики Prometheus
	var (
		recorder    usecase.OutcomeRecorder
		httpMetrics *httpmiddleware.Metrics
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewValidationRecorder(reg)
		httpMetrics = httpmiddleware.NewMetrics(reg)
	}

	// Справочник заболеваний встроен в бинарник
	diseaseRepo := repository.NewDefaultDiseaseCatalog()

	// Инициализируем use cases
	validationUC := usecase.NewValidationUseCase(recorder, cfg.API.MaxBatchSize, log)
	catalogUC := usecase.NewCatalogUseCase(diseaseRepo, log)

	// Инициализируем handlers
	validationHandler := handler.NewValidationHandler(validationUC, cfg.API.MaxBodyBytes, log)
	diseaseHandler := handler.NewDiseaseHandler(catalogUC, log)
	healthHandler := handler.NewHealthHandler(log)

	// Создаём роутер
	router := apphttp.NewRouter(validationHandler, diseaseHandler, healthHandler, httpMetrics, log)

	// Создаём HTTP сервер
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("HTTP server starting",
			zap.String("addr", cfg.Server.Addr()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
