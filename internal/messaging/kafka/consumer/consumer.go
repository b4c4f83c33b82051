package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BalanceInitializer interface {
	InitializeForYear(ctx context.Context, employeeID string, year int) ([]leavebalance.LeaveBalanceResponse, error)
}

var (
	retryDelay    = time.Second
	maxRetryDelay = 30 * time.Second
)

// ErrPoisonMessage marks a message that will never succeed and is committed anyway.
var ErrPoisonMessage = errors.New("poison message")

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	balances BalanceInitializer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		// offset berikutnya tidak boleh di-commit sebelum pesan ini selesai
		if err := handleWithRetry(ctx, msg, balances, log); err != nil {
			log.Info("employee lifecycle consumer stopped",
				zap.Int64("uncommitted_offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleWithRetry retries the same message until it is handled, found to be
// poison, or ctx is cancelled. Only the cancellation error is returned.
func handleWithRetry(ctx context.Context, msg kafkago.Message, balances BalanceInitializer, log *zap.Logger) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := HandleEmployeeCreated(ctx, msg.Value, balances, log)
		if err == nil || errors.Is(err, ErrPoisonMessage) {
			return nil
		}

		log.Error("initialize leave balances failed, retrying",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// HandleEmployeeCreated opens the leave balances of a newly created employee
// for the year the event occurred in. Initialization is idempotent, so a
// redelivered event is harmless.
func HandleEmployeeCreated(
	ctx context.Context,
	value []byte,
	balances BalanceInitializer,
	log *zap.Logger,
) error {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Error("decode employee_created event failed", zap.Error(err))
		return ErrPoisonMessage
	}

	if event.EventType != "" && event.EventType != events.EventEmployeeCreated {
		log.Debug("skip employee lifecycle event", zap.String("event_type", event.EventType))
		return nil
	}

	if _, err := uuid.Parse(event.EmployeeID); err != nil {
		log.Error("employee_created event without valid employee_id", zap.String("employee_id", event.EmployeeID))
		return ErrPoisonMessage
	}

	year := event.OccurredAt.Year()
	if event.OccurredAt.IsZero() {
		year = time.Now().Year()
	}

	created, err := balances.InitializeForYear(ctx, event.EmployeeID, year)
	if err != nil {
		return err
	}

	log.Info("leave balances initialized from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
		zap.Int("year", year),
		zap.Int("balances", len(created)),
	)
	return nil
}
