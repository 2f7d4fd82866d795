// internal/workers/assistant/answer-question/config.go
package answerquestion

import (
	"time"

	"inventory-assistant/internal/common/config"
)

type Config struct {
	TaskType      string
	Timeout       time.Duration
	MaxJobsActive int
}

func LoadConfig(cfg config.CamundaConfig) *Config {
	return &Config{
		TaskType:      cfg.JobType,
		Timeout:       config.GetDuration(cfg.Timeout),
		MaxJobsActive: cfg.MaxJobsActive,
	}
}
