package shipment_metrics

import (
	"context"
	"time"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Service interface {
	CountShipmentsByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error)
}

type ShipmentMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewShipmentMetrics(log logger.Logger, service Service, interval time.Duration) *ShipmentMetrics {
	return &ShipmentMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ShipmentMetrics) TTL() time.Duration {
	return s.interval
}

var trackedStatuses = []entities.ShipmentStatusType{
	entities.ShipmentPending,
	entities.ShipmentOptimized,
	entities.ShipmentBooked,
	entities.ShipmentInTransit,
	entities.ShipmentDelivered,
}

func (s *ShipmentMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.CountShipmentsByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// Statuses with no rows must read zero, not keep a stale value.
	for _, status := range trackedStatuses {
		ShipmentsByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (s *ShipmentMetrics) Info() string {
	return "shipment status metrics"
}
