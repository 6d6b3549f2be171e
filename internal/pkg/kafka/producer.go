package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"entregas/internal/pkg/config"
	"entregas/pkg/logger"
)

// StatusChangedEvent é o payload publicado quando o status de um
// pedido muda (criação, edição ou exclusão).
type StatusChangedEvent struct {
	PedidoID   int64     `json:"pedido_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer publica eventos de status em um tópico Kafka. É
// melhor-esforço: falhas são logadas e nunca propagadas para a
// requisição que originou o evento.
type Producer struct {
	log      logger.Logger
	producer sarama.AsyncProducer
	topic    string
}

func NewSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Errors = true

	return cfg, nil
}

func NewProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	p := &Producer{
		log:      kafkaLog,
		producer: producer,
		topic:    cfg.Topic,
	}

	go p.drainErrors()

	return p, nil
}

func (p *Producer) PublishStatusChanged(_ context.Context, pedidoID int64, status string) {
	event := StatusChangedEvent{
		PedidoID:   pedidoID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal status event",
			logger.NewField("error", err),
			logger.NewField("pedido_id", pedidoID),
		)
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", pedidoID)),
		Value: sarama.ByteEncoder(payload),
	}
}

func (p *Producer) drainErrors() {
	for err := range p.producer.Errors() {
		p.log.Error("publish status event",
			logger.NewField("error", err.Err),
		)
	}
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// NopPublisher é usado quando o Kafka não está configurado.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, int64, string) {}
