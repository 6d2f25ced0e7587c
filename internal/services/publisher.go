package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// DefaultResultStream is the redis stream finished games are appended to.
const DefaultResultStream = "gmcareer:results"

// PublisherConfig contains configuration for the result publisher
type PublisherConfig struct {
	StreamName       string
	MaxLength        int64
	BreakerThreshold uint32        // consecutive failures before the breaker opens
	BreakerTimeout   time.Duration // how long the breaker stays open
}

// ResultPublisher appends simulation events to a redis stream. Calls go
// through a circuit breaker so an unreachable redis does not slow down
// every week of simulation.
type ResultPublisher struct {
	client         *redis.Client
	logger         logrus.FieldLogger
	circuitBreaker *gobreaker.CircuitBreaker
	streamName     string
	maxLength      int64
}

// NewResultPublisher creates a publisher. A nil client makes Publish a no-op.
func NewResultPublisher(client *redis.Client, config PublisherConfig, logger logrus.FieldLogger) *ResultPublisher {
	if config.StreamName == "" {
		config.StreamName = DefaultResultStream
	}
	if config.MaxLength == 0 {
		config.MaxLength = 10000
	}
	if config.BreakerThreshold == 0 {
		config.BreakerThreshold = 5
	}
	if config.BreakerTimeout == 0 {
		config.BreakerTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "result-publisher",
		Timeout: config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.BreakerThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("Result publisher circuit breaker state changed")
		},
	})

	return &ResultPublisher{
		client:         client,
		logger:         logger,
		circuitBreaker: cb,
		streamName:     config.StreamName,
		maxLength:      config.MaxLength,
	}
}

// Publish appends one event to the stream and returns its event id.
func (p *ResultPublisher) Publish(ctx context.Context, eventType string, payload interface{}) (string, error) {
	if p.client == nil {
		return "", nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	eventID := uuid.NewString()

	_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
		return p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: p.streamName,
			MaxLen: p.maxLength,
			Approx: true,
			Values: map[string]interface{}{
				"event_id":    eventID,
				"type":        eventType,
				"occurred_at": time.Now().UTC().Format(time.RFC3339),
				"payload":     data,
			},
		}).Result()
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return eventID, nil
}

// BreakerState reports the circuit breaker state, for health checks.
func (p *ResultPublisher) BreakerState() string {
	return p.circuitBreaker.State().String()
}
