package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ibadahku"

var (
	// Registry menampung collector milik aplikasi.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms - ~5s
	}, []string{"method", "route"})

	recordsUpserted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ibadah",
		Name:      "records_upserted_total",
		Help:      "Ibadah records written, by tracking type.",
	}, []string{"tracking_type"})

	muhasabahSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "muhasabah",
		Name:      "entries_saved_total",
		Help:      "Muhasabah entries created or updated.",
	})

	supportCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "support",
		Name:      "tickets_created_total",
		Help:      "Support tickets opened by users.",
	})

	reportsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "generated_total",
		Help:      "Reports generated, by format.",
	}, []string{"format"})
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		recordsUpserted,
		muhasabahSaved,
		supportCreated,
		reportsGenerated,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expose registry di /metrics.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Middleware catat in-flight, jumlah & durasi request per route template.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := routeLabel(c)
		method := strings.ToUpper(c.Method())
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// pakai path template (mis. /api/u/records/:id) supaya label tidak meledak
func routeLabel(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
		return r.Path
	}
	return "unmatched"
}

func RecordUpserted(trackingType string) {
	if trackingType == "" {
		trackingType = "unknown"
	}
	recordsUpserted.WithLabelValues(trackingType).Inc()
}

func MuhasabahSaved() { muhasabahSaved.Inc() }

func SupportTicketCreated() { supportCreated.Inc() }

func ReportGenerated(format string) { reportsGenerated.WithLabelValues(format).Inc() }
