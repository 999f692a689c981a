package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

const (
	PostCreated     = "post.created"
	FollowerCreated = "follower.created"
	FollowerDeleted = "follower.deleted"
)

type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// Producer publishes domain events to Kafka. A nil Producer is valid and
// drops everything, so the service runs without a broker.
type Producer struct {
	w *kgo.Writer
}

func NewProducer(brokerURL, topic string) *Producer {
	addr := strings.TrimSpace(brokerURL)
	if addr == "" {
		return nil
	}

	acksStr := strings.ToLower(strings.TrimSpace(os.Getenv("KAFKA_REQUIRED_ACKS")))
	var requiredAcks kgo.RequiredAcks
	switch acksStr {
	case "none":
		requiredAcks = kgo.RequireNone
	case "all":
		requiredAcks = kgo.RequireAll
	default:
		requiredAcks = kgo.RequireOne
	}

	w := &kgo.Writer{
		Addr:         kgo.TCP(strings.Split(addr, ",")...),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: requiredAcks,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Producer{w: w}
}

// Publish is best-effort: failures are logged, never surfaced to the caller.
func (p *Producer) Publish(ctx context.Context, eventType string, data any) {
	if p == nil || p.w == nil {
		return
	}
	b, err := json.Marshal(Event{Type: eventType, At: time.Now(), Data: data})
	if err != nil {
		log.Printf("events: marshal %s: %v", eventType, err)
		return
	}
	msg := kgo.Message{Key: []byte(eventType), Value: b, Time: time.Now()}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		log.Printf("events: publish %s: %v", eventType, err)
	}
}

func (p *Producer) Close() error {
	if p == nil || p.w == nil {
		return nil
	}
	return p.w.Close()
}
