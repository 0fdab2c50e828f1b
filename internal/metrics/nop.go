// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/pdrpinto/vispath/types"

// NopMetrics implements a no-op metrics collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolve discards the solve metric.
func (n *NopMetrics) RecordSolve(_ /* seconds */ float64, _ /* found */ bool) {}

// RecordExpansions discards the expansion count.
func (n *NopMetrics) RecordExpansions(_ /* count */ int) {}

// RecordDiscoveries discards the discovery counts.
func (n *NopMetrics) RecordDiscoveries(_ /* accepted */, _ /* dropped */ int) {}

// SetPoolSize discards the pool size.
func (n *NopMetrics) SetPoolSize(_ /* workers */ int) {}
