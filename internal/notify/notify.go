package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier publishes plain-text messages to a single RabbitMQ queue.
// Publishing is best-effort: callers log failures and move on.
type Notifier struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// Dial connects to RabbitMQ and declares the queue. Connection attempts are
// retried a few times to tolerate broker startup in containerized setups.
func Dial(url, queue string) (*Notifier, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Printf("rabbitmq connect attempt %d: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	return &Notifier{conn: conn, ch: ch, queue: queue}, nil
}

// Publish sends one text message to the queue.
func (n *Notifier) Publish(ctx context.Context, text string) error {
	return n.ch.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        []byte(text),
		},
	)
}

func (n *Notifier) Close() error {
	_ = n.ch.Close()
	return n.conn.Close()
}
