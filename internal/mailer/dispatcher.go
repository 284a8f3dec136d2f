package mailer

import (
	"context"

	"go.uber.org/zap"

	"github.com/lemonscar/detailing-api/internal/metrics"
)

// Dispatcher delivers emails off the request path. Bookings and orders are
// never rolled back on a failed send; the outcome is only logged and counted.
type Dispatcher struct {
	sender  *Sender
	queue   chan Message
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewDispatcher(sender *Sender, logger *zap.Logger, m *metrics.Metrics) *Dispatcher {
	d := &Dispatcher{
		sender:  sender,
		queue:   make(chan Message, 100),
		logger:  logger.With(zap.String("component", "mail_dispatcher")),
		metrics: m,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		res := d.sender.Send(context.Background(), msg)

		outcome := "sent"
		if !res.Success {
			outcome = "failed"
			d.logger.Warn("email not delivered",
				zap.String("type", string(msg.Type)),
				zap.String("to", msg.To),
				zap.String("reason", res.Message),
			)
		}
		if d.metrics != nil {
			d.metrics.EmailsSent.WithLabelValues(string(msg.Type), outcome).Inc()
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// full queue must never block a booking
		d.logger.Warn("email queue full, dropping message",
			zap.String("type", string(msg.Type)),
		)
	}
}
