package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OTPEvent is the payload published for every issued code.
type OTPEvent struct {
	Email    string    `json:"email"`
	OTP      string    `json:"otp"`
	IssuedAt time.Time `json:"issued_at"`
}

// KafkaNotifier publishes an OTPEvent keyed by email, so events of one
// address stay ordered within a partition.
type KafkaNotifier struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w, now: time.Now}
}

func (n *KafkaNotifier) Notify(ctx context.Context, email, code string) error {
	now := n.now()
	value, err := json.Marshal(OTPEvent{Email: email, OTP: code, IssuedAt: now.UTC()})
	if err != nil {
		return err
	}

	msg := kafka.Message{Key: []byte(email), Value: value, Time: now}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
