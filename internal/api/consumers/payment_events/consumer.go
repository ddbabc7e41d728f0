package payment_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

const defaultPrefetch = 8

// Consumer слушает события оплаты и запускает обновление сеток
type Consumer struct {
	cfg       Config
	refresher Refresher
	logger    Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewConsumer создает новый экземпляр consumer. Подключение выполняет Connect.
func NewConsumer(cfg Config, refresher Refresher, logger Logger) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = defaultPrefetch
	}
	return &Consumer{
		cfg:       cfg,
		refresher: refresher,
		logger:    logger,
	}
}

// Connect объявляет topic exchange и очередь и привязывает routing keys
func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	for _, key := range c.cfg.RoutingKeys {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fail("bind "+key, err)
		}
	}
	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fail("set qos", err)
	}

	c.conn = conn
	c.ch = ch
	c.cfg.Queue = q.Name
	c.logger.Info("PaymentEvents: connected, exchange=%s queue=%s keys=%s",
		c.cfg.Exchange, q.Name, strings.Join(c.cfg.RoutingKeys, ","))
	return nil
}

// Run читает сообщения до отмены ctx или закрытия канала
func (c *Consumer) Run(ctx context.Context) error {
	if c.ch == nil {
		return ErrNotConnected
	}

	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, c.cfg.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				c.logger.Warn("PaymentEvents: delivery channel closed")
				return nil
			}
			if err := c.HandleMessage(d.RoutingKey, d.Body); err != nil {
				c.logger.Warn("PaymentEvents: dropping message key=%s: %v", d.RoutingKey, err)
			}
			// Некорректные сообщения тоже подтверждаем: повтор их не исправит
			_ = d.Ack(false)
		}
	}
}

// HandleMessage разбирает событие и сообщает об оплате.
// Возвращает ErrMalformedEvent для нечитаемых сообщений.
func (c *Consumer) HandleMessage(routingKey string, body []byte) error {
	var event PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if strings.TrimSpace(event.OrderID) == "" {
		return fmt.Errorf("%w: orderId is required", ErrMalformedEvent)
	}

	// Событие без статуса считается оплатой: его тип задает routing key
	if event.Status != "" && !strings.EqualFold(string(event.Status), string(domain.PaymentPaid)) {
		c.logger.Info("PaymentEvents: order=%s status=%s ignored", event.OrderID, event.Status)
		return nil
	}

	c.logger.Info("PaymentEvents: order=%s store=%s paid (key=%s)", event.OrderID, event.StoreID, routingKey)
	c.refresher.PaymentCompleted()
	return nil
}

// Close закрывает канал и соединение
func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
