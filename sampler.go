package qsim

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// shotJob is a single measurement shot of a circuit.
type shotJob struct {
	ID      string
	circuit *Circuit
	out     chan<- shotResult
}

type shotResult struct {
	Outcome string
	Err     error
}

/*
Sampler executes measurement shots of circuits on a worker pool. Each shot
runs the circuit to its final density matrix and measures once, the way a
hardware backend would repeat a circuit per shot. Workers scale up from
minWorkers toward maxWorkers when the job queue backs up.
*/
type Sampler struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	jobs       chan shotJob
	metrics    *Metrics
	config     *Config
	maxWorkers int
	workerMu   sync.Mutex
	workers    int
}

// NewSampler creates a sampler with minWorkers running immediately.
func NewSampler(ctx context.Context, minWorkers, maxWorkers int, config *Config) *Sampler {
	if config == nil {
		config = NewConfig()
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Sampler{
		ctx:        ctx,
		cancel:     cancel,
		jobs:       make(chan shotJob, maxWorkers*10),
		metrics:    newMetrics(),
		config:     config,
		maxWorkers: maxWorkers,
	}

	for i := 0; i < minWorkers; i++ {
		s.startWorker()
	}

	// Start the manager goroutine
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.manage()
	}()

	return s
}

/*
Run executes the given number of shots and returns outcome counts keyed by
bit string (wire 0 leftmost). A non-positive shot count falls back to the
configured default.
*/
func (s *Sampler) Run(ctx context.Context, circuit *Circuit, shots int) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shots <= 0 {
		shots = s.config.DefaultShots
	}
	out := make(chan shotResult, shots)

	go func() {
		for i := 0; i < shots; i++ {
			job := shotJob{ID: uuid.NewString(), circuit: circuit, out: out}
			select {
			case s.jobs <- job:
			case <-ctx.Done():
				return
			case <-s.ctx.Done():
				return
			}
		}
	}()

	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		select {
		case res := <-out:
			if res.Err != nil {
				return nil, fmt.Errorf("shot failed: %w", res.Err)
			}
			counts[res.Outcome]++
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		case <-time.After(s.config.SchedulingTimeout):
			return nil, fmt.Errorf("sampling timed out after %v with %d/%d shots",
				s.config.SchedulingTimeout, i, shots)
		}
	}
	return counts, nil
}

// Metrics exposes the sampler's counters.
func (s *Sampler) Metrics() *Metrics {
	return s.metrics
}

// Close stops all workers and waits for them to exit.
func (s *Sampler) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Sampler) startWorker() {
	s.workerMu.Lock()
	if s.workers >= s.maxWorkers {
		s.workerMu.Unlock()
		return
	}
	s.workers++
	s.workerMu.Unlock()

	s.metrics.recordWorkerStart()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runWorker()
	}()
}

func (s *Sampler) runWorker() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case job := <-s.jobs:
			startTime := time.Now()
			outcome, err := s.executeShot(job)
			s.metrics.recordShot(startTime, err == nil)
			if err != nil {
				log.Printf("shot %s failed: %v", job.ID, err)
			}
			select {
			case job.out <- shotResult{Outcome: outcome, Err: err}:
			case <-s.ctx.Done():
				return
			}
		}
	}
}

func (s *Sampler) executeShot(job shotJob) (string, error) {
	dm, err := job.circuit.Execute(s.ctx)
	if err != nil {
		return "", fmt.Errorf("shot %s: %w", job.ID, err)
	}
	if drift := math.Abs(dm.Trace() - 1); drift > s.config.Tolerance {
		return "", fmt.Errorf("shot %s: %w by %g", job.ID, ErrInvalidState, drift)
	}
	return dm.BitString(dm.Measure()), nil
}

// manage watches queue depth and adds workers while it stays backed up.
func (s *Sampler) manage() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if len(s.jobs) > cap(s.jobs)/2 {
				s.startWorker()
			}
		}
	}
}
