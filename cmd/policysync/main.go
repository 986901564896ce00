package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plastinin/leafguard/internal/adapter/storage"
	"github.com/plastinin/leafguard/internal/config"
	"github.com/plastinin/leafguard/internal/usecase"
	"github.com/plastinin/leafguard/pkg/logger"
	"go.uber.org/zap"
)

// Коды завершения
const (
	exitOK    = 0
	exitError = 1
	// Опубликованная политика расходится с текущей (только -check)
	exitDrift = 1
)

// Публикует политику загрузки в бакет со статикой сайта.
// С -check только сравнивает опубликованную политику с текущей.
func main() {
	os.Exit(run(os.Args[1:]))
}

// run возвращает код завершения, чтобы отложенные вызовы успели отработать
func run(args []string) int {
	flags := flag.NewFlagSet("policysync", flag.ContinueOnError)
	check := flags.Bool("check", false, "only verify the published policy")
	timeout := flags.Duration("timeout", 30*time.Second, "overall timeout")
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		return exitError
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create logger:", err)
		return exitError
	}
	defer log.Sync()

	log.Info("Starting leafguard policy sync",
		zap.String("endpoint", cfg.S3.Endpoint),
		zap.String("bucket", cfg.S3.Bucket),
		zap.String("key", cfg.S3.PolicyKey),
		zap.Bool("check", *check),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	// Инициализируем S3 Storage
	s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Error("Failed to connect to S3", zap.Error(err))
		return exitError
	}
	log.Info("Connected to S3")

	policyUC := usecase.NewPolicyUseCase(s3Storage, cfg.S3.PolicyKey, log)

	if *check {
		inSync, err := policyUC.InSync(ctx)
		if err != nil {
			log.Error("Failed to check upload policy", zap.Error(err))
			return exitError
		}
		if !inSync {
			return exitDrift
		}
		log.Info("Upload policy is up to date")
		return exitOK
	}

	result, err := policyUC.Publish(ctx)
	if err != nil {
		log.Error("Failed to publish upload policy", zap.Error(err))
		return exitError
	}

	log.Info("Policy sync finished",
		zap.String("key", result.Key),
		zap.String("url", result.URL),
	)

	return exitOK
}
