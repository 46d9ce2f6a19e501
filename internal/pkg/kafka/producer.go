package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
)

// Producer publishes order status events. Publishing is fire-and-forget:
// a broker outage must never fail an already committed status transition,
// so delivery errors are drained from the async producer and logged.
type Producer struct {
	log      logger.Logger
	producer sarama.AsyncProducer
	topic    string
}

func NewProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Errors = true

	asyncProducer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	p := &Producer{
		log:      producerLog,
		producer: asyncProducer,
		topic:    cfg.Topic,
	}

	go p.drainErrors()

	return p, nil
}

func (p *Producer) OrderStatusChanged(_ context.Context, event entities.OrderStatusEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
		).Error("marshal order status event")
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		// Keyed by order id so per-order events stay ordered within a partition.
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}
}

func (p *Producer) drainErrors() {
	for producerErr := range p.producer.Errors() {
		p.log.With(
			logger.NewField("error", producerErr.Err),
		).Error("order status event publish failed")
	}
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
