// cmd/assistant/commands/serve.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-assistant/internal/common/camunda"
	"inventory-assistant/internal/common/config"
	"inventory-assistant/internal/common/observability"
	"inventory-assistant/internal/server"
	answerquestion "inventory-assistant/internal/workers/assistant/answer-question"

	"github.com/spf13/cobra"
)

const startupRetries = 5

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat endpoint and the workflow worker",
		Long: `Serves POST /chatbot and /api/v1/chat plus /health, /ready and /metrics.
When camunda.broker_address is set, also subscribes to the
answer-inventory-question job type.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		log.Warn("observability disabled", map[string]interface{}{"error": err.Error()})
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = obs.Shutdown(ctx)
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, log, obs, startupRetries)
	if err != nil {
		return err
	}
	defer a.Close()

	var worker *camunda.Worker
	if cfg.Camunda.Enabled() {
		var client *camunda.Client
		err = retryWithBackoff(func() error {
			var connErr error
			client, connErr = camunda.NewClient(camunda.ClientConfig{
				GatewayAddress:         cfg.Camunda.BrokerAddress,
				UsePlaintextConnection: true,
				ConnectionTimeout:      10 * time.Second,
			})
			return connErr
		}, startupRetries, 2*time.Second, log, "Zeebe connection")
		if err != nil {
			return err
		}
		defer client.Close()
		a.checks["zeebe"] = client.HealthCheck

		wcfg := answerquestion.LoadConfig(cfg.Camunda)
		handler := answerquestion.NewHandler(wcfg, a.pipeline, log)
		worker = camunda.NewWorker(client.Zeebe(), wcfg.TaskType, wcfg.MaxJobsActive, wcfg.Timeout, handler, log)
	}

	opts := []server.Option{server.WithRequestTimeout(config.GetDuration(cfg.Server.RequestTimeout))}
	for name, check := range a.checks {
		opts = append(opts, server.WithReadinessCheck(name, check))
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.New(a.pipeline, log, opts...),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Info("Shutdown signal received, stopping...", nil)
	case err = <-errCh:
		log.Error("HTTP server failed", map[string]interface{}{"error": err.Error()})
	}

	if worker != nil {
		worker.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("HTTP server shutdown failed", map[string]interface{}{"error": shutdownErr.Error()})
	}

	log.Info("Shutdown complete", nil)
	return err
}
