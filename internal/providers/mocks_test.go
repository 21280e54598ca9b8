package providers

import "time"

type recordingMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
}

func (m *recordingMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *recordingMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *recordingMetrics) IncCacheHits()                                    { m.hits++ }
func (m *recordingMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *recordingMetrics) ObserveAdapterDuration(_ string, _ time.Duration) {}
func (m *recordingMetrics) IncAdapterFailures(_ string)                      {}
func (m *recordingMetrics) SetContestsTotal(_ string, _ int)                 {}
func (m *recordingMetrics) IncVideoFetches(_ string)                         {}
func (m *recordingMetrics) IncMatches(_ string)                              {}
func (m *recordingMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}

type recordingLogger struct {
	cacheTestLogger
	lines []string
	types []TypeEnum
}

func (l *recordingLogger) Infof(t TypeEnum, format string, args ...interface{}) {
	l.types = append(l.types, t)
	l.lines = append(l.lines, format)
}
