package metrics

import "time"

// NoopProvider discards all metrics. Used in tests.
type NoopProvider struct{}

func NewNoopProvider() Provider { return &NoopProvider{} }

func (NoopProvider) IncrementHTTPRequests(method, path, status string) {}
func (NoopProvider) RecordHTTPRequestDuration(method, path, status string, d time.Duration) {}
func (NoopProvider) IncrementDatabaseQueries(queryType string, success bool) {}
func (NoopProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {}
func (NoopProvider) IncrementCacheHits() {}
func (NoopProvider) IncrementCacheMisses() {}
func (NoopProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {}
func (NoopProvider) IncrementPostOperations(operation string, success bool) {}
func (NoopProvider) IncrementAdminSignins(success bool) {}
func (NoopProvider) SetServiceHealth(healthy bool) {}
