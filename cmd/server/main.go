package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "resume-tailor-service/docs"
	"resume-tailor-service/internal/generator"
	"resume-tailor-service/internal/repository/postgresql"
	"resume-tailor-service/internal/service"
	httptransport "resume-tailor-service/internal/transport/http"
	"resume-tailor-service/internal/worker"
)

// @title Resume Tailor Service API
// @version 1.0
// @description Stores job-application records and enriches them in the background with an AI-generated tailored summary and cover letter.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	// Missing credentials must stop the process here, never fail lazily
	// per request.
	apiKey := mustEnv("OPENAI_API_KEY")
	pgDSN := mustEnv("POSTGRES_DSN")

	addr := envOr("HTTP_ADDR", ":8080")
	model := envOr("OPENAI_MODEL", generator.DefaultModel)
	baseURL := os.Getenv("OPENAI_BASE_URL")
	workersCount := envIntOr("WORKERS", 4)
	genTimeout := time.Duration(envIntOr("GENERATION_TIMEOUT_SECONDS", 300)) * time.Second

	// Postgres
	pool, err := postgresql.NewPool(ctx, pgDSN)
	if err != nil {
		log.Fatalf("pg: %v", err)
	}
	defer pool.Close()

	// DI
	repo := postgresql.NewApplicationRepository(pool)
	gen := generator.NewClient(apiKey, model, baseURL)
	processor := worker.NewProcessor(repo, gen, genTimeout)
	taskPool := worker.NewPool(processor, workersCount)
	appSvc := service.NewApplicationService(repo, gen, taskPool)

	handler := httptransport.NewHandler(appSvc)
	server := &http.Server{
		Addr:    addr,
		Handler: httptransport.Routes(handler),
	}

	poolDone := make(chan struct{})
	go func() {
		taskPool.Run(ctx)
		close(poolDone)
	}()

	go func() {
		log.Printf("server started: addr=%s workers=%d model=%s", addr, workersCount, model)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	// Let queued generation tasks finish their terminal writes.
	<-poolDone

	log.Println("server stopped")
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing env: %s", key)
	}
	return v
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
