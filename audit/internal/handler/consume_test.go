package handler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/handler"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func encode(t *testing.T, id string, action kafka.Action) []byte {
	t.Helper()
	data, err := kafka.AuditEvent{
		ID: id, OccurredAt: time.Now().UTC(), Action: action, PatronID: 1, BookID: 2,
	}.Encode()
	require.NoError(t, err)
	return data
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []string
	)
	consumer := handler.NewConsumer(func(_ context.Context, ev kafka.AuditEvent) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.ID)
		return nil
	}, zap.NewExample().Named("test"))

	session := &fakeSession{ctx: context.Background()}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: encode(t, "a", kafka.ActionLoanOpened)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte("{not json")}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: encode(t, "b", kafka.ActionLoanClosed)}
	close(claim.messages)

	require.NoError(t, consumer.Setup(session))
	select {
	case <-consumer.Ready():
	default:
		t.Fatal("consumer not ready after setup")
	}
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []string{"a", "b"}, seen)
	// the poison message is marked so it is skipped
	require.Equal(t, []int64{1, 2, 3}, session.marked)
}

func TestConsumer_FailedStoreStopsClaim(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls = map[string]int{}
	)
	consumer := handler.NewConsumer(func(_ context.Context, ev kafka.AuditEvent) error {
		mu.Lock()
		defer mu.Unlock()
		calls[ev.ID]++
		if ev.ID == "b" {
			return errors.New("db down")
		}
		return nil
	}, zap.NewExample().Named("test"), handler.WithRetry(2, time.Millisecond))

	session := &fakeSession{ctx: context.Background()}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: encode(t, "a", kafka.ActionLoanOpened)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: encode(t, "b", kafka.ActionLoanClosed)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: encode(t, "c", kafka.ActionFinePaid)}
	close(claim.messages)

	require.Error(t, consumer.ConsumeClaim(session, claim))

	// nothing past the failed event is marked, so the group resumes at offset 2
	require.Equal(t, []int64{1}, session.marked)
	require.Equal(t, map[string]int{"a": 1, "b": 2}, calls)
}

func TestConsumer_RetriesStore(t *testing.T) {
	t.Parallel()

	failures := 1
	consumer := handler.NewConsumer(func(context.Context, kafka.AuditEvent) error {
		if failures > 0 {
			failures--
			return errors.New("connection reset")
		}
		return nil
	}, zap.NewExample().Named("test"), handler.WithRetry(3, time.Millisecond))

	session := &fakeSession{ctx: context.Background()}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 7, Value: encode(t, "a", kafka.ActionLoanOpened)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 8, Value: encode(t, "b", kafka.ActionLoanClosed)}
	close(claim.messages)

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Equal(t, []int64{7, 8}, session.marked)
}

func TestConsumer_StopsOnSessionDone(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(func(context.Context, kafka.AuditEvent) error { return nil }, zap.NewExample().Named("test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Empty(t, session.marked)
}
