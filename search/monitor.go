package search

import "log/slog"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps during search.
type SearchMonitor interface {
	Start(query string)
	CacheHit(query string)
	AfterQueryEmbedding(dimension int)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) CacheHit(_ string)         {}
func (n *noopMonitor) AfterQueryEmbedding(_ int) {}
func (n *noopMonitor) Finish(_ []*Result)        {}

// LogMonitor logs each search stage at debug level.
type LogMonitor struct {
	logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

// NewLogMonitor creates a monitor that writes stage logs to logger.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) Start(query string) {
	m.logger.Debug("search started", "query", query)
}

func (m *LogMonitor) CacheHit(query string) {
	m.logger.Debug("query embedding served from cache", "query", query)
}

func (m *LogMonitor) AfterQueryEmbedding(dimension int) {
	m.logger.Debug("query embedded", "dimension", dimension)
}

func (m *LogMonitor) Finish(results []*Result) {
	m.logger.Debug("search finished", "results", len(results))
}
