package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the liquidity module
type Metrics struct {
	// Pool metrics
	PoolsTotal    prometheus.Gauge
	PoolCreations prometheus.Counter
	PoolReserve   *prometheus.GaugeVec
	PoolShares    *prometheus.GaugeVec
	PoolPrice     *prometheus.GaugeVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	// Trade metrics
	TradesTotal *prometheus.CounterVec
	TradeVolume *prometheus.CounterVec

	// Guard metrics
	PriceAnomalies  *prometheus.CounterVec
	StaleRejections *prometheus.CounterVec
	LockContentions *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers module metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "pools_total",
					Help:      "Total number of liquidity pools",
				},
			),
			PoolCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
			PoolReserve: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "pool_reserve",
					Help:      "Current pool reserve in base units",
				},
				[]string{"pool_id", "denom"},
			),
			PoolShares: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "pool_shares",
					Help:      "Outstanding ownership shares per pool",
				},
				[]string{"pool_id"},
			),
			PoolPrice: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "pool_price",
					Help:      "Last recorded pool price",
				},
				[]string{"pool_id"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited into pools",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn from pools",
				},
				[]string{"pool_id", "denom"},
			),
			TradesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "trades_total",
					Help:      "Total number of trades executed",
				},
				[]string{"pool_id", "side", "status"},
			),
			TradeVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "trade_volume_total",
					Help:      "Total trade volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			PriceAnomalies: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "price_anomalies_total",
					Help:      "Submitted prices rejected for excessive deviation",
				},
				[]string{"pool_id"},
			),
			StaleRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "stale_price_rejections_total",
					Help:      "Operations rejected because the pool price went stale",
				},
				[]string{"pool_id"},
			),
			LockContentions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "prism",
					Subsystem: "liquidity",
					Name:      "lock_contentions_total",
					Help:      "Operations rejected because the pool lock was held",
				},
				[]string{"pool_id"},
			),
		}
	})
	return metrics
}
