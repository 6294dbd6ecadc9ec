package service_test

import (
	"context"
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/circuit_breaker"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	topic, key string
	payload    []byte
	err        error
}

func (f *fakeEnqueuer) Enqueue(topic, key string, v kafka.Encoder) error {
	f.topic, f.key = topic, key
	data, err := v.Encode()
	if err != nil {
		return err
	}
	f.payload = data
	return f.err
}

func TestKafkaPublisher(t *testing.T) {
	t.Parallel()
	enq := &fakeEnqueuer{}
	pub := service.NewKafkaPublisher(enq, zap.NewExample().Named("test"))

	pub.Publish(context.Background(), kafka.AuditEvent{ID: "x", Action: kafka.ActionLoanOpened, PatronID: 1, BookID: 42})
	require.Equal(t, kafka.AuditTopic, enq.topic)
	require.Equal(t, "42", enq.key)

	ev, err := kafka.DecodeAuditEvent(enq.payload)
	require.NoError(t, err)
	require.Equal(t, kafka.ActionLoanOpened, ev.Action)

	// delivery failures never reach the caller
	enq.err = circuit_breaker.ErrOpenCB
	require.NotPanics(t, func() {
		pub.Publish(context.Background(), kafka.AuditEvent{ID: "y", Action: kafka.ActionLoanClosed, BookID: 42})
	})
}
