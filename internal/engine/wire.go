package engine

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-process-scheduler/backend/internal/actuator"
	"ai-process-scheduler/backend/internal/audit"
	"ai-process-scheduler/backend/internal/predictor"
	"ai-process-scheduler/backend/internal/procs"
	"ai-process-scheduler/backend/internal/scheduler"
	"ai-process-scheduler/backend/internal/storage"
	"ai-process-scheduler/backend/pkg/config"
)

// FromConfig wires a live engine from application config: system process
// source, optional model-server predictor (with optional redis cache),
// optional Postgres history and audit log, and the OS actuator. The
// returned cleanup closes whatever was opened.
func FromConfig(cfg *config.Config) (*Engine, func(), error) {
	seed := cfg.Scheduler.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	schedCfg := scheduler.Config{
		Algorithm: cfg.Scheduler.Algorithm,
		Quantum:   cfg.Scheduler.Quantum,
		Priority:  scheduler.NewRandPriority(seed),
	}

	var closers []func()

	if cfg.Predictor.URL != "" {
		model := predictor.NewHTTPPredictor(cfg.Predictor.URL, cfg.Predictor.Timeout)
		var pred scheduler.Predictor = predictor.NewEstimator(model, predictor.NewBuilder(seed))
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
			closers = append(closers, func() { rdb.Close() })
			pred = predictor.NewCachedPredictor(pred, rdb, cfg.Redis.TTL)
		}
		schedCfg.Predictor = pred
	}

	e := New(procs.NewSystemSource(), schedCfg)

	e.WithActuator(actuator.New(actuator.Config{
		Enabled:      cfg.Actuator.Enabled,
		FIFOPriority: cfg.Actuator.FIFOPriority,
		RRPriority:   cfg.Actuator.RRPriority,
		NiceValue:    cfg.Actuator.NiceValue,
	}))

	if cfg.Audit.Enabled {
		auditLogger, err := audit.NewLogger(audit.Config{LogPath: cfg.Audit.LogPath})
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { auditLogger.Close() })
		e.WithAudit(auditLogger)
	}

	if cfg.Database.URL != "" {
		history, err := storage.Open(cfg.Database.URL)
		if err != nil {
			// History is an optional convenience; a dead database should
			// not keep the scheduler down.
			log.Printf("[engine] history disabled: %v", err)
		} else {
			closers = append(closers, func() { history.Close() })
			e.WithHistory(history)
		}
	}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return e, cleanup, nil
}

// History exposes the engine's optional cycle store for the API layer.
func (e *Engine) History() *storage.History {
	return e.history
}
