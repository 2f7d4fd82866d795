// internal/workers/assistant/answer-question/handler.go

// Package answerquestion exposes the assistant to BPMN processes as a Zeebe
// job worker.
package answerquestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-assistant/internal/assistant/pipeline"
	apperrors "inventory-assistant/internal/common/errors"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "answer-inventory-question"

// Assistant is the inbound operation of the pipeline.
type Assistant interface {
	Handle(ctx context.Context, req pipeline.Request) pipeline.Response
}

type Handler struct {
	config    *Config
	assistant Assistant
	errors    *apperrors.ErrorHandler
	logger    logger.Logger
}

func NewHandler(config *Config, assistant Assistant, log logger.Logger) *Handler {
	if config.TaskType == "" {
		config.TaskType = TaskType
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	log = log.WithFields(map[string]interface{}{"taskType": config.TaskType})
	return &Handler{
		config:    config,
		assistant: assistant,
		errors:    apperrors.NewErrorHandler(log),
		logger:    log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		stdErr := apperrors.NewInputInvalidError(fmt.Sprintf("parse input: %v", err))
		metrics.WorkerJobsFailed.WithLabelValues(h.config.TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return stdErr
	}

	output := h.Execute(ctx, &input)

	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}

	metrics.WorkerJobsCompleted.WithLabelValues(h.config.TaskType).Inc()
	return nil
}

// Execute never fails: the pipeline always produces a reply.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	resp := h.assistant.Handle(ctx, pipeline.Request{
		Message:  input.Message,
		Language: input.Language,
		TenantID: input.TenantID,
	})
	return &Output{Reply: resp.Reply}
}
