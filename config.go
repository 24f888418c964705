package qsim

import "time"

type Config struct {
	Tolerance         float64
	DefaultShots      int
	SchedulingTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Tolerance:         1e-9,
		DefaultShots:      1024,
		SchedulingTimeout: 10 * time.Second,
	}
}
