package qsim

import (
	"sync"
	"time"
)

// Metrics tracks sampler throughput.
type Metrics struct {
	mu              sync.RWMutex
	WorkerCount     int
	ShotCount       int64
	FailedShots     int64
	TotalShotTime   time.Duration
	ShotSuccessRate float64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// recordShot updates counters after a single shot finishes.
func (m *Metrics) recordShot(startTime time.Time, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ShotCount++
	m.TotalShotTime += duration
	if !success {
		m.FailedShots++
	}
	m.ShotSuccessRate = float64(m.ShotCount-m.FailedShots) / float64(m.ShotCount)
}

func (m *Metrics) recordWorkerStart() {
	m.mu.Lock()
	m.WorkerCount++
	m.mu.Unlock()
}

// Shots returns the number of shots executed so far.
func (m *Metrics) Shots() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ShotCount
}

// AverageShotLatency returns mean wall time per shot.
func (m *Metrics) AverageShotLatency() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ShotCount == 0 {
		return 0
	}
	return m.TotalShotTime / time.Duration(m.ShotCount)
}

// Workers returns the number of workers started.
func (m *Metrics) Workers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.WorkerCount
}
