package stream

import (
	"context"
	"fmt"
	"time"

	"skybook/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes ticket lifecycle events to the audit stream.
type Producer interface {
	Publish(ctx context.Context, event *TicketEvent) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka event producer
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	TimeoutMs    int
	RequiredAcks sarama.RequiredAcks
	Compression  sarama.CompressionCodec
	Idempotent   bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:      brokers,
		Topic:        topic,
		RetryMax:     3,
		TimeoutMs:    10000,
		RequiredAcks: sarama.WaitForAll,
		Compression:  sarama.CompressionSnappy,
		Idempotent:   true,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	logger   *logger.Logger
}

// NewKafkaProducer creates a synchronous Kafka producer for ticket events.
func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.Compression
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.Idempotent
	if config.Idempotent {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps per-flight event ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
		logger:   logger.GetDefault(),
	}, nil
}

func (kp *kafkaProducer) Publish(ctx context.Context, event *TicketEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ticket event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.Topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send ticket event to Kafka: %w", err)
	}

	kp.logger.Debug("ticket event published",
		"topic", kp.config.Topic,
		"partition", partition,
		"offset", offset,
		"type", string(event.Type),
		"ticket_id", event.TicketID.String(),
	)
	return nil
}

func (kp *kafkaProducer) createHeaders(event *TicketEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("flight_id"), Value: []byte(event.FlightID.String())},
		{Key: []byte("producer"), Value: []byte("skybook-tickets")},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
	}
}

func (kp *kafkaProducer) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// NoopProducer drops events. Used when Kafka is disabled.
type NoopProducer struct{}

func NewNoopProducer() Producer {
	return &NoopProducer{}
}

func (n *NoopProducer) Publish(ctx context.Context, event *TicketEvent) error { return nil }

func (n *NoopProducer) Close() error { return nil }
