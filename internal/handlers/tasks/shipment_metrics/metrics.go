package shipment_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shipments_by_status",
			Help: "Current number of shipments per lifecycle status",
		},
		[]string{"status"},
	)
)
