package eventqueue

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	eventQueueServiceInstance contracts.SuggestionEventPublisher
	onceEventQueueService     sync.Once
)

// Service publishes suggestion lifecycle events to a durable RabbitMQ
// queue. Consumers (notifications, external audit) are out of scope here;
// the engine only guarantees the event leaves the process.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.SuggestionEventPublisher, error) {
	var initErr error
	onceEventQueueService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = err
			return
		}

		eventQueueServiceInstance = &Service{
			ch:        ch,
			log:       log,
			queueName: queueName,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return eventQueueServiceInstance, nil
}

func (s *Service) PublishSuggestionEvent(ctx context.Context, event contracts.SuggestionEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("eventQueueService.PublishSuggestionEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingSuggestionIDKey, event.SuggestionID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.log.Error("eventQueueService.PublishSuggestionEvent error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("eventQueueService.PublishSuggestionEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
