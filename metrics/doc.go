// Package metrics exposes search statistics as Prometheus collectors and
// can export them in the node-exporter textfile format.
package metrics
