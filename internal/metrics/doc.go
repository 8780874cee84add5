// Package metrics collects runtime memory snapshots and the Prometheus
// metrics of one integration run.
package metrics
