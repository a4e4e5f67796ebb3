package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"busline/internal/logger"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeStatusChanged    = "booking.status_changed"
)

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	Reference  string    `json:"reference"`
	RouteID    int64     `json:"routeId"`
	UserID     int64     `json:"userId"`
	Seats      []int     `json:"seats,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Producer publishes booking events to Kafka. With no brokers configured
// it runs in mock mode and only logs, so the service works without a
// broker in development.
type Producer struct {
	producer sarama.SyncProducer
	mockMode bool
	log      *logger.Logger
}

func NewProducer(brokers []string, log *logger.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		log.Info("events", "no brokers configured, booking events run in mock mode")
		return &Producer{mockMode: true, log: log}, nil
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create producer: %w", err)
	}

	log.Infof("events", "connected to Kafka brokers: %v", brokers)
	return &Producer{producer: producer, log: log}, nil
}

// Topic routes each event type to its own topic.
func Topic(eventType string) string {
	switch eventType {
	case TypeBookingCancelled:
		return "bookings.cancelled"
	case TypeStatusChanged:
		return "bookings.status"
	default:
		return "bookings.created"
	}
}

func (p *Producer) Publish(event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	topic := Topic(event.Type)

	if p.mockMode {
		p.log.Infof("events", "mock publish topic=%s type=%s booking=%s", topic, event.Type, event.Reference)
		return nil
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.Reference),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Errorf("events", "publish to %s failed: %v", topic, err)
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
