package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "viewtube_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// ToggleRaces counts duplicate-key conflicts resolved on the create branch
// of a like/subscription toggle. Nonzero values are expected under
// concurrent double-submits and are not errors.
var ToggleRaces = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "viewtube_toggle_create_races_total",
	Help: "Duplicate-key races resolved as already-on during toggles",
}, []string{"relation"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
