package notify

import (
	"context"
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tablerow/FRB-ReservationService/pkg/metrics"
)

const (
	reservationConfirmedQueue = "reservation.confirmed"
	waitlistCalledQueue       = "waitlist.called"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher best-effort издатель событий в RabbitMQ.
// Ошибки публикации логируются и никогда не возвращаются вызывающей стороне:
// провал уведомления не должен откатывать успешно созданное бронирование.
type Publisher struct {
	url     string
	logger  Logger
	metrics *metrics.Metrics // может быть nil, если метрики выключены

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher создает издателя. Подключение устанавливается лениво
// при первой публикации и переустанавливается после ошибок.
func NewPublisher(url string, logger Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{url: url, logger: logger, metrics: m}
}

// ReservationConfirmed публикует событие подтвержденного бронирования
func (p *Publisher) ReservationConfirmed(ctx context.Context, event ReservationConfirmedEvent) {
	p.publish(ctx, reservationConfirmedQueue, event)
}

// WaitlistCalled публикует событие вызова из листа ожидания
func (p *Publisher) WaitlistCalled(ctx context.Context, event WaitlistCalledEvent) {
	p.publish(ctx, waitlistCalledQueue, event)
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Publisher) publish(ctx context.Context, queue string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("notify: failed to marshal %s event: %v", queue, err)
		p.observe(queue, "error")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		p.logger.Error("notify: broker unavailable, dropping %s event: %v", queue, err)
		p.observe(queue, "dropped")
		return
	}

	err = p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		// Сбрасываем соединение - следующая публикация попробует заново
		p.logger.Error("notify: failed to publish %s event: %v", queue, err)
		p.reset()
		p.observe(queue, "error")
		return
	}

	p.observe(queue, "ok")
}

func (p *Publisher) ensureChannel() error {
	if p.ch != nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	for _, queue := range []string{reservationConfirmedQueue, waitlistCalledQueue} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return err
		}
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) observe(event, result string) {
	if p.metrics != nil {
		p.metrics.NotificationsPublished.WithLabelValues(event, result).Inc()
	}
}

// Noop издатель-заглушка, используется когда брокер выключен в конфигурации
type Noop struct{}

// ReservationConfirmed ничего не делает
func (Noop) ReservationConfirmed(ctx context.Context, event ReservationConfirmedEvent) {}

// WaitlistCalled ничего не делает
func (Noop) WaitlistCalled(ctx context.Context, event WaitlistCalledEvent) {}
