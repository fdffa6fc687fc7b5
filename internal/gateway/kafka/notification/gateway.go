package notification

import (
	"context"
	"encoding/json"
	"strconv"

	"freight/internal/entities"
	"freight/pkg/logger"
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

// NotificationGateway publishes shipment lifecycle notifications to Kafka.
// Publishing is best effort: a broker failure is logged and counted but
// never surfaces to the caller, the booking itself is already committed.
type NotificationGateway struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *NotificationGateway {
	return &NotificationGateway{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (g *NotificationGateway) ShipmentBooked(_ context.Context, n entities.BookedNotification) {
	payload, err := json.Marshal(fromDomain(n))
	if err != nil {
		NotificationsSentTotal.WithLabelValues(g.topic, resultFailed).Inc()
		g.log.Error("failed to marshal booked notification",
			logger.NewField("shipment_id", n.ShipmentID),
			logger.NewField("error", err),
		)
		return
	}

	key := strconv.FormatInt(n.ShipmentID, 10)
	partition, offset, err := g.producer.Send(g.topic, key, payload)
	if err != nil {
		NotificationsSentTotal.WithLabelValues(g.topic, resultFailed).Inc()
		g.log.Error("failed to publish booked notification",
			logger.NewField("shipment_id", n.ShipmentID),
			logger.NewField("error", err),
		)
		return
	}

	NotificationsSentTotal.WithLabelValues(g.topic, resultOK).Inc()
	g.log.Info("booked notification published",
		logger.NewField("shipment_id", n.ShipmentID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}
