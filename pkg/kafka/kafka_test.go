package kafka_test

import (
	"errors"
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/circuit_breaker"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestAuditEvent_Decode(t *testing.T) {
	t.Parallel()
	data := []byte(`{"id":"01J","occurredAt":"2026-03-01T10:00:00Z","action":"loan_closed","loanId":7,"patronId":2,"bookId":3,"amount":"40"}`)
	ev, err := kafka.DecodeAuditEvent(data)
	require.NoError(t, err)
	require.Equal(t, kafka.ActionLoanClosed, ev.Action)
	require.Equal(t, int64(7), ev.LoanID)
	require.Equal(t, "40", ev.Amount)
	require.True(t, ev.OccurredAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err = kafka.DecodeAuditEvent([]byte("{"))
	require.Error(t, err)
}

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageAndSucceed()
	producer.ExpectSendMessageAndFail(errors.New("broker down"))

	q := kafka.NewEnqueuer(producer, circuit_breaker.New(10, time.Second, 0.5, 1))
	ev := kafka.AuditEvent{ID: "1", Action: kafka.ActionLoanOpened, LoanID: 1, PatronID: 1, BookID: 1}

	require.NoError(t, q.Enqueue(kafka.AuditTopic, "1", ev))
	require.EqualError(t, q.Enqueue(kafka.AuditTopic, "1", ev), "broker down")
	require.NoError(t, producer.Close())
}
