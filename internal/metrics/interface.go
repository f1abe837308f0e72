package metrics

import "time"

// Provider abstracts the metrics backend so domain code never imports the
// prometheus client directly.
type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path, status string, duration time.Duration)
	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)
	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)
	IncrementPostOperations(operation string, success bool)
	IncrementAdminSignins(success bool)
	SetServiceHealth(healthy bool)
}
