package federation

import (
	"github.com/meridian-im/meridian/metrics"
)

const (
	// subsystem shared by all metrics exposed by this package.
	subsystem = "federation"
)

var (
	queriesSent = metrics.NewCounter(
		"queries_sent",
		subsystem,
		"Total successful outbound user-devices queries",
		[]string{}).WithLabelValues()

	pokesSent = metrics.NewCounter(
		"pokes_sent",
		subsystem,
		"Total device pokes delivered",
		[]string{}).WithLabelValues()

	pokeFailures = metrics.NewCounter(
		"poke_failures",
		subsystem,
		"Total device pokes that could not be delivered",
		[]string{}).WithLabelValues()

	updatesReceived = metrics.NewCounter(
		"updates_received",
		subsystem,
		"Total inbound device-list update EDUs accepted",
		[]string{}).WithLabelValues()

	pokesReceived = metrics.NewCounter(
		"pokes_received",
		subsystem,
		"Total inbound device pokes",
		[]string{}).WithLabelValues()

	queriesServed = metrics.NewCounter(
		"queries_served",
		subsystem,
		"Total user-devices queries answered",
		[]string{}).WithLabelValues()
)
