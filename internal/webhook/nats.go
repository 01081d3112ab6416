package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
)

// Conn - часть *nats.Conn, нужная для публикации
type Conn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher публикует события в NATS, тема: <prefix>.events.<type>
type NATSPublisher struct {
	conn   Conn
	prefix string
}

func NewNATSPublisher(conn Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// ConnectNATS подключается к серверу NATS
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("alert-dashboard"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// Subject возвращает тему NATS для типа события
func (p *NATSPublisher) Subject(eventType string) string {
	return fmt.Sprintf("%s.events.%s", p.prefix, strings.ReplaceAll(eventType, ".", "_"))
}

func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(event.Type), payload); err != nil {
		return fmt.Errorf("failed to publish dashboard event to NATS: %w", err)
	}
	return nil
}
