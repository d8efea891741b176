package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

const exchangeName = "loans.events"

// InitCircuitBreaker - брокер недоступен: не ждём каждый раз таймаута соединения
func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "rabbitmq-publisher",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.FromContext(context.Background()).Infof("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// AMQPPublisher - публикация событий в topic exchange, ключ маршрутизации = тип события
type AMQPPublisher struct {
	URL     string
	Breaker *gobreaker.CircuitBreaker

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{URL: url, Breaker: InitCircuitBreaker()}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}
	_, err = p.Breaker.Execute(func() (interface{}, error) {
		return nil, p.publish(ctx, event.Type, body)
	})
	return err
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}
	err = ch.PublishWithContext(ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		p.reset()
		return fmt.Errorf("publish failed: %w", err)
	}
	return nil
}

// ensureChannel - соединение поднимается лениво и пересоздаётся после обрыва
func (p *AMQPPublisher) ensureChannel() (*amqp.Channel, error) {
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel open failed: %w", err)
	}
	if err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}
	p.conn, p.channel = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// Emit - публикует событие, ошибка только логируется: событие не должно ломать операцию
func Emit(ctx context.Context, publisher Publisher, event Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warnw("Failed to publish event", "type", event.Type, "error", err)
	}
}
