package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/galaxysim/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that times every command and query
// and counts outcomes. Request names come from the Go type without package or pointer.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(extractCommandName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

// extractCommandName strips pointer and package from the request type name:
//   - "*commands.RunSimulationCommand" -> "RunSimulationCommand"
//   - "*queries.ListRunsQuery" -> "ListRunsQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
