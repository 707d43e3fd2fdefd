package devices

import (
	"github.com/meridian-im/meridian/metrics"
)

const (
	// subsystem shared by all metrics exposed by this package.
	subsystem = "devices"
)

var (
	changesNotified = metrics.NewCounter(
		"changes_notified",
		subsystem,
		"Total device-list changes recorded and fanned out",
		[]string{}).WithLabelValues()

	updatesApplied = metrics.NewCounter(
		"updates_applied",
		subsystem,
		"Total inbound device-list updates applied incrementally",
		[]string{}).WithLabelValues()

	updatesDropped = metrics.NewCounter(
		"updates_dropped",
		subsystem,
		"Total inbound device-list updates dropped as protocol violations",
		[]string{}).WithLabelValues()

	resyncs = metrics.NewCounter(
		"resyncs",
		subsystem,
		"Total full device-list resyncs completed",
		[]string{}).WithLabelValues()

	resyncFailures = metrics.NewCounter(
		"resync_failures",
		subsystem,
		"Total full device-list resync queries that failed",
		[]string{}).WithLabelValues()
)
