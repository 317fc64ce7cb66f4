// Package reducers contains the reduction passes that turn the combined
// conversation collection into named metric values. Each reducer is a pure
// pass over the collection; they share no state and may run in any order.
//
// Metric names are the dashboard's public contract and are kept verbatim.
package reducers

import (
	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/sinks"
)

const metricActiveTickets = "helpscout active tickets"

// TotalActive reports the number of currently active tickets.
func TotalActive(sink sinks.Sink, convos []models.Conversation) {
	active := 0
	for i := range convos {
		if convos[i].IsActive() {
			active++
		}
	}
	sink.Set(metricActiveTickets, active)
}
