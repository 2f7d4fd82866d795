// cmd/assistant/commands/app.go
package commands

import (
	"context"
	"time"

	"inventory-assistant/internal/assistant/assembler"
	"inventory-assistant/internal/assistant/classifier"
	"inventory-assistant/internal/assistant/extractor"
	"inventory-assistant/internal/assistant/pipeline"
	"inventory-assistant/internal/assistant/renderer"
	"inventory-assistant/internal/assistant/validator"
	awsclients "inventory-assistant/internal/common/aws"
	"inventory-assistant/internal/common/config"
	"inventory-assistant/internal/common/database"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/observability"
	"inventory-assistant/internal/inventory"
	"inventory-assistant/internal/notify"
	"inventory-assistant/internal/oracle"
	"inventory-assistant/internal/server"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
)

// app is everything a command needs to answer questions.
type app struct {
	pipeline *pipeline.Pipeline
	obs      *observability.Observability
	checks   map[string]server.Check
	closers  []func() error
	log      logger.Logger
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// buildApp connects the stores and assembles the pipeline. retries bounds the
// startup connection attempts per dependency.
func buildApp(ctx context.Context, cfg *config.Config, log logger.Logger, obs *observability.Observability, retries int) (*app, error) {
	a := &app{obs: obs, checks: make(map[string]server.Check), log: log}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pg.Close)
	err = retryWithBackoff(func() error {
		return pg.Ping(ctx)
	}, retries, 2*time.Second, log, "PostgreSQL connection")
	if err != nil {
		a.Close()
		return nil, err
	}
	a.checks["postgres"] = pg.Ping
	log.Info("connected to PostgreSQL", nil)

	var store inventory.Store = inventory.NewPostgresStore(pg.DB, pg.QueryTimeout())

	if cfg.Database.Elasticsearch.Enabled() {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			a.Close()
			return nil, err
		}
		// optional: SearchStore falls back per request
		if err := es.Ping(ctx); err != nil {
			log.Warn("Elasticsearch unavailable, product search falls back to PostgreSQL", map[string]interface{}{"error": err.Error()})
		} else {
			log.Info("connected to Elasticsearch", nil)
		}
		a.checks["elasticsearch"] = es.Ping
		store = inventory.NewSearchStore(store, es.Client, es.Index(), log)
	}

	if cfg.Database.Redis.Enabled() {
		rdb := database.NewRedis(cfg.Database.Redis)
		a.closers = append(a.closers, rdb.Close)
		if err := rdb.Ping(ctx); err != nil {
			log.Warn("Redis unavailable, serving uncached", map[string]interface{}{"error": err.Error()})
		} else {
			log.Info("connected to Redis", nil)
		}
		a.checks["redis"] = rdb.Ping
		store = inventory.NewCachedStore(store, rdb.Client, rdb.TTL(), log)
	}

	stages, err := newStages(cfg, store, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	notifier, err := newNotifier(ctx, cfg.Notifications, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.pipeline = pipeline.New(stages, notifier, obs, log)
	return a, nil
}

// newStages builds the pipeline stages over store.
func newStages(cfg *config.Config, store inventory.Store, log logger.Logger) (pipeline.Stages, error) {
	catalog, err := renderer.NewCatalog(cfg.Languages.Default, renderer.DefaultProfiles()...)
	if err != nil {
		return pipeline.Stages{}, err
	}

	o, err := oracle.New(cfg.Oracle, log)
	if err != nil {
		return pipeline.Stages{}, err
	}

	var polish oracle.Completer
	if cfg.Oracle.Polish && cfg.Oracle.Provider != "none" {
		polish = o
	}

	return pipeline.Stages{
		Classifier: classifier.New(o, log),
		Extractor:  extractor.New(o, log),
		Validator:  validator.New(store, log),
		Assembler:  assembler.New(store, log),
		Renderer:   renderer.New(catalog, polish, log),
	}, nil
}

// newNotifier wires the configured transports. Missing transports are not
// an error; the dispatcher reports them per request.
func newNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*notify.Dispatcher, error) {
	opts := []notify.Option{notify.WithTimeout(config.GetDuration(cfg.Timeout))}

	var awsCfg *awssdk.Config
	loadAWS := func() (awssdk.Config, error) {
		if awsCfg == nil {
			c, err := awsclients.LoadConfig(ctx, cfg.AWS.Region)
			if err != nil {
				return awssdk.Config{}, err
			}
			awsCfg = &c
		}
		return *awsCfg, nil
	}

	switch cfg.Email.Provider {
	case "smtp":
		smtpCfg := notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			UseTLS:   cfg.SMTP.UseTLS,
		}
		if smtpCfg.Configured() {
			opts = append(opts, notify.WithEmail(notify.NewSMTPTransport(smtpCfg), cfg.Email.FromEmail))
		} else {
			log.Warn("SMTP settings incomplete, email notifications disabled", nil)
		}
	case "ses":
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		opts = append(opts, notify.WithEmail(notify.NewSESTransport(awsclients.NewSESClient(c)), cfg.Email.FromEmail))
	}

	if cfg.SMS.Enabled {
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		opts = append(opts, notify.WithSMS(notify.NewSNSTransport(awsclients.NewSNSClient(c), cfg.SMS.SenderID)))
	}

	return notify.NewDispatcher(log, opts...), nil
}
