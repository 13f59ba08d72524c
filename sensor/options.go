package sensor

import "time"

// PromptFunc receives operator guidance ("Place finger on reader") while a
// workflow waits on a physical finger placement. Implementations should
// return quickly.
type PromptFunc func(msg string)

// Config holds the Reader configuration.
type Config struct {
	// CommandTimeout bounds quick status queries
	CommandTimeout time.Duration

	// PlacementTimeout bounds commands that wait for a finger placement
	PlacementTimeout time.Duration

	// EnrollTimeout bounds enrollment sampling rounds
	EnrollTimeout time.Duration

	// RetryLimit bounds the placement/recovery retry loops; 0 means retry
	// forever, which matches the physical device usage (the operator just
	// has not put a finger down yet)
	RetryLimit int

	// Prompt is called with operator guidance (optional)
	Prompt PromptFunc
}

func defaultConfig() Config {
	return Config{
		CommandTimeout:   2 * time.Second,
		PlacementTimeout: 5 * time.Second,
		EnrollTimeout:    10 * time.Second,
	}
}

// Option is a functional option for configuring the Reader.
type Option func(*Config)

// WithCommandTimeout sets the timeout for quick status queries.
func WithCommandTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.CommandTimeout = timeout
	}
}

// WithPlacementTimeout sets the timeout for commands that block on a
// physical finger placement (verify, capture).
func WithPlacementTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.PlacementTimeout = timeout
	}
}

// WithEnrollTimeout sets the timeout for enrollment sampling rounds.
func WithEnrollTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.EnrollTimeout = timeout
	}
}

// WithRetryLimit bounds the otherwise unbounded placement and recovery
// loops. After limit failed attempts the workflow gives up with a
// RetryLimitError. 0 restores the default of retrying forever.
func WithRetryLimit(limit int) Option {
	return func(c *Config) {
		if limit >= 0 {
			c.RetryLimit = limit
		}
	}
}

// WithPromptFunc sets a callback surfacing "place finger" guidance to the
// operator.
func WithPromptFunc(prompt PromptFunc) Option {
	return func(c *Config) {
		c.Prompt = prompt
	}
}
