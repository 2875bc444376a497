package programmer

import (
	"time"

	"github.com/AndersBNielsen/firestarter-app/internal/serialport"
)

// Config holds the programmer client configuration.
type Config struct {
	// SettleDelay is the pause after opening a port before the first write,
	// covering the device's reset-on-connect boot sequence.
	SettleDelay time.Duration

	// ResponseWindow is the wait loop's inactivity deadline. It restarts
	// every time a recognized tagged line arrives.
	ResponseWindow time.Duration

	// Progress is called per transferred chunk during bulk operations (optional)
	Progress ProgressCallback

	// Open and Ports exist as seams for tests; the defaults talk to real
	// serial hardware.
	Open  func(port string) (*serialport.Connection, error)
	Ports func(remembered string) []string
}

func defaultConfig() Config {
	return Config{
		SettleDelay:    serialport.SettleDelay,
		ResponseWindow: 5 * time.Second,
		Open:           serialport.Open,
		Ports:          serialport.CandidatePorts,
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithProgressCallback sets a callback to track bulk-transfer progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.Progress = callback
	}
}

// WithSettleDelay overrides the post-open boot-settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}

// WithResponseWindow overrides the wait loop's inactivity deadline.
func WithResponseWindow(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ResponseWindow = d
		}
	}
}

// WithOpener replaces the transport opener. Used by tests to inject a
// scripted wire.
func WithOpener(open func(port string) (*serialport.Connection, error)) Option {
	return func(c *Config) {
		c.Open = open
	}
}

// WithPortLister replaces port discovery. Used by tests.
func WithPortLister(ports func(remembered string) []string) Option {
	return func(c *Config) {
		c.Ports = ports
	}
}
