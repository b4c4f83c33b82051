package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	"go-leave/internal/messaging/kafka/consumer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeInitializer struct {
	calls []string
	years []int
	err   error
}

func (f *fakeInitializer) InitializeForYear(ctx context.Context, employeeID string, year int) ([]leavebalance.LeaveBalanceResponse, error) {
	f.calls = append(f.calls, employeeID)
	f.years = append(f.years, year)
	if f.err != nil {
		return nil, f.err
	}
	return []leavebalance.LeaveBalanceResponse{{EmployeeID: employeeID, Year: year}}, nil
}

func employeeCreated(t *testing.T, id string, at time.Time) []byte {
	t.Helper()
	b, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		EmployeeID:    id,
		DateOfJoining: "2024-03-01",
		OccurredAt:    at,
	})
	assert.NoError(t, err)
	return b
}

func TestHandleEmployeeCreated(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("success - year taken from occurred_at", func(t *testing.T) {
		initializer := &fakeInitializer{}
		id := uuid.NewString()

		err := consumer.HandleEmployeeCreated(ctx, employeeCreated(t, id, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)), initializer, log)

		assert.NoError(t, err)
		assert.Equal(t, []string{id}, initializer.calls)
		assert.Equal(t, []int{2025}, initializer.years)
	})

	t.Run("negative - invalid json is poison", func(t *testing.T) {
		err := consumer.HandleEmployeeCreated(ctx, []byte("{"), &fakeInitializer{}, log)
		assert.ErrorIs(t, err, consumer.ErrPoisonMessage)
	})

	t.Run("negative - missing employee id is poison", func(t *testing.T) {
		err := consumer.HandleEmployeeCreated(ctx, employeeCreated(t, "", time.Now()), &fakeInitializer{}, log)
		assert.ErrorIs(t, err, consumer.ErrPoisonMessage)
	})

	t.Run("negative - service error is returned for retry", func(t *testing.T) {
		initializer := &fakeInitializer{err: errors.New("db down")}
		err := consumer.HandleEmployeeCreated(ctx, employeeCreated(t, uuid.NewString(), time.Now()), initializer, log)
		assert.EqualError(t, err, "db down")
	})

	t.Run("other event types are skipped", func(t *testing.T) {
		initializer := &fakeInitializer{}
		err := consumer.HandleEmployeeCreated(ctx, []byte(`{"event_type":"employee_deleted","employee_id":"x"}`), initializer, log)
		assert.NoError(t, err)
		assert.Empty(t, initializer.calls)
	})
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestConsumeEmployeeLifecycle_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	okID := uuid.NewString()
	flakyID := uuid.NewString()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: employeeCreated(t, okID, time.Now())},
			{Offset: 2, Value: []byte("garbage")},
			{Offset: 3, Value: employeeCreated(t, flakyID, time.Now())},
			{Offset: 4, Value: employeeCreated(t, okID, time.Now())},
		},
	}

	initializer := &flakyInitializer{failures: map[string]int{flakyID: 1}}

	consumer.ConsumeEmployeeLifecycle(ctx, reader, initializer, zap.NewNop())

	// offset 3 gagal sekali, diulang sebelum offset 4 diambil
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
	assert.Equal(t, []string{okID, flakyID, flakyID, okID}, initializer.calls)
}

func TestConsumeEmployeeLifecycle_StopsWithoutSkipping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	downID := uuid.NewString()
	nextID := uuid.NewString()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 10, Value: employeeCreated(t, downID, time.Now())},
			{Offset: 11, Value: employeeCreated(t, nextID, time.Now())},
		},
	}

	initializer := &flakyInitializer{
		failures: map[string]int{downID: 1000},
		onCall: func(n int) {
			if n == 3 {
				cancel()
			}
		},
	}

	consumer.ConsumeEmployeeLifecycle(ctx, reader, initializer, zap.NewNop())

	assert.Empty(t, reader.committed)
	assert.Equal(t, []string{downID, downID, downID}, initializer.calls)
	assert.Len(t, reader.msgs, 1)
}

type flakyInitializer struct {
	failures map[string]int
	calls    []string
	onCall   func(n int)
}

func (f *flakyInitializer) InitializeForYear(ctx context.Context, employeeID string, year int) ([]leavebalance.LeaveBalanceResponse, error) {
	f.calls = append(f.calls, employeeID)
	if f.onCall != nil {
		f.onCall(len(f.calls))
	}
	if f.failures[employeeID] > 0 {
		f.failures[employeeID]--
		return nil, errors.New("db down")
	}
	return nil, nil
}
