package kafka

import (
	"github.com/FortunatoE/SistemaBiblioteca/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type Enqueuer interface {
	Enqueue(topic, key string, v Encoder) error
}

type Encoder interface {
	Encode() ([]byte, error)
}

// NewEnqueuer sends through a sync producer; once the breaker opens, sends
// fail fast with circuit_breaker.ErrOpenCB.
func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       cb,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic, key string, v Encoder) error {
	data, err := v.Encode()
	if err != nil {
		return errors.Wrap(err, "encode")
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}
