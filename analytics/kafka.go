package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lstlabs/stakeflow/sdk"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second
)

var _ sdk.AnalyticsSink = (*Kafka)(nil)

// ErrKafkaClosed is returned by Close when the publisher was already closed.
var ErrKafkaClosed = errors.New("kafka analytics publisher closed")

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the JSON value published for every analytics event.
type Event struct {
	Name      string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// Kafka publishes events to a topic from a background goroutine. Record never blocks: when the
// queue is full the event is dropped and logged.
type Kafka struct {
	writer MessageWriter
	lggr   sdk.Logger
	queue  chan kafka.Message
	done   chan struct{}
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

// NewKafkaWriter returns a writer for topic on brokers. Messages are keyed by depositor address so
// one depositor's events stay ordered within a partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              100,
		BatchTimeout:           10 * time.Millisecond,
	}
}

// NewKafka starts a publisher on writer.
func NewKafka(writer MessageWriter, lggr sdk.Logger) *Kafka {
	k := &Kafka{
		writer: writer,
		lggr:   lggr,
		queue:  make(chan kafka.Message, defaultQueueSize),
		done:   make(chan struct{}),
	}
	go k.run()

	return k
}

func (k *Kafka) Record(_ context.Context, event string, payload map[string]any) {
	value, err := json.Marshal(Event{Name: event, Payload: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		k.lggr.Warnw("failed to encode analytics event", "event", event, "error", err)
		return
	}

	key, _ := payload["address"].(string)
	msg := kafka.Message{Key: []byte(key), Value: value}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.closed {
		return
	}

	select {
	case k.queue <- msg:
	default:
		k.lggr.Warnw("analytics queue full, dropping event", "event", event)
	}
}

// Close flushes queued events and closes the writer.
func (k *Kafka) Close() error {
	err := ErrKafkaClosed
	k.once.Do(func() {
		k.mu.Lock()
		k.closed = true
		close(k.queue)
		k.mu.Unlock()

		<-k.done
		err = k.writer.Close()
	})

	return err
}

func (k *Kafka) run() {
	defer close(k.done)

	for msg := range k.queue {
		ctx, cancel := context.WithTimeout(context.Background(), defaultWriteTimeout)
		if err := k.writer.WriteMessages(ctx, msg); err != nil {
			k.lggr.Warnw("failed to publish analytics event", "error", err)
		}
		cancel()
	}
}
