// Package consumers runs the NATS Streaming workers that handle side effects
// off the request path, currently confirmation emails and payment audit logs.
package consumers

import (
	"github.com/nats-io/stan.go"

	"ticketfoot/internal/config"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/mailer"
	"ticketfoot/internal/messaging"
	"ticketfoot/internal/models"
)

const queueGroup = "ticketfoot-workers"

type ConsumerService struct {
	natsClient    *messaging.NATSClient
	mailer        *mailer.Mailer
	subscriptions []stan.Subscription
}

func NewConsumerService(cfg *config.Config, natsClient *messaging.NATSClient) *ConsumerService {
	return &ConsumerService{
		natsClient: natsClient,
		mailer:     mailer.New(cfg.SMTP),
	}
}

// Start subscribes the queue workers. Durable queue subscriptions survive
// restarts, so events published while the worker was down are still handled.
func (s *ConsumerService) Start() error {
	sub, err := s.natsClient.SubscribeQueue(models.EventReservationCreated, queueGroup, s.HandleReservationCreated)
	if err != nil {
		return err
	}
	s.subscriptions = append(s.subscriptions, sub)

	sub, err = s.natsClient.SubscribeQueue(models.EventPaymentRecorded, queueGroup, s.HandlePaymentRecorded)
	if err != nil {
		return err
	}
	s.subscriptions = append(s.subscriptions, sub)

	return nil
}

// Stop unsubscribes the workers; durable state is kept server-side.
func (s *ConsumerService) Stop() {
	for _, sub := range s.subscriptions {
		if err := sub.Close(); err != nil {
			logger.Get().Error("Failed to close subscription", "error", err)
		}
	}
	s.subscriptions = nil
}
