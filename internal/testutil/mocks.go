package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Lines returns every entry rendered with its arguments.
func (m *MockLogger) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, 0, len(m.Logs))
	for _, e := range m.Logs {
		lines = append(lines, e.Level+": "+fmt.Sprintf(e.Format, e.Args...))
	}
	return lines
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu              sync.Mutex
	AdapterFailures map[string]int
	ContestsTotal   map[string]int
	VideoFetches    map[string]int
	Matches         map[string]int
	StoreOps        map[string]int
	CacheHits       int
	CacheMisses     int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		AdapterFailures: make(map[string]int),
		ContestsTotal:   make(map[string]int),
		VideoFetches:    make(map[string]int),
		Matches:         make(map[string]int),
		StoreOps:        make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObserveAdapterDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncAdapterFailures(platform string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AdapterFailures[platform]++
}
func (m *MockMetrics) SetContestsTotal(status string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContestsTotal[status] = count
}
func (m *MockMetrics) IncVideoFetches(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VideoFetches[outcome]++
}
func (m *MockMetrics) IncMatches(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Matches[kind]++
}
func (m *MockMetrics) ObserveStoreDuration(op string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreOps[op]++
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockStore implements storage/interfaces.KeyValueStore with injectable errors.
type MockStore struct {
	mu        sync.Mutex
	Buckets   map[string]map[string]string
	GetErr    error
	GetAllErr error
	SetErr    error
	RemoveErr error
	// FailKeys makes Set and Remove fail for the listed keys.
	FailKeys map[string]error
	Closed   bool
}

func NewMockStore() *MockStore {
	return &MockStore{Buckets: make(map[string]map[string]string)}
}

func (m *MockStore) Get(_ context.Context, bucket, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Buckets[bucket][key]
	return v, ok, nil
}

func (m *MockStore) GetAll(_ context.Context, bucket string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	out := make(map[string]string, len(m.Buckets[bucket]))
	for k, v := range m.Buckets[bucket] {
		out[k] = v
	}
	return out, nil
}

func (m *MockStore) Set(_ context.Context, bucket, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	if err := m.FailKeys[key]; err != nil {
		return err
	}
	if m.Buckets[bucket] == nil {
		m.Buckets[bucket] = make(map[string]string)
	}
	m.Buckets[bucket][key] = value
	return nil
}

func (m *MockStore) Remove(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	if err := m.FailKeys[key]; err != nil {
		return err
	}
	delete(m.Buckets[bucket], key)
	return nil
}

func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// MockAdapter implements platforms/interfaces.AdapterInterface.
type MockAdapter struct {
	mu       sync.Mutex
	Name     models.Platform
	Contests []models.Contest
	Err      error
	Delay    time.Duration
	Calls    int
}

func (m *MockAdapter) Platform() models.Platform { return m.Name }

func (m *MockAdapter) Fetch(ctx context.Context) ([]models.Contest, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Contest, len(m.Contests))
	copy(out, m.Contests)
	return out, nil
}

func (m *MockAdapter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockCompressor implements storage/interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
