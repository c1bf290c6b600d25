package messaging

import (
	"strings"
	"time"
)

// Config holds configuration for the event publisher.
type Config struct {
	// Brokers is a comma separated list of Kafka brokers. Empty disables publishing.
	Brokers string `mapstructure:"brokers" default:""`
	// Topic is the topic catalog events are written to.
	Topic string `mapstructure:"topic" default:"catalog.variations"`
	// TimeoutSeconds bounds a single publish, retries included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// MaxAttempts is how many times a write is tried before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
}

// Timeout returns the publish timeout, defaulting to 5 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Attempts returns the write attempt limit, defaulting to 3.
func (c Config) Attempts() int {
	if c.MaxAttempts <= 0 {
		return 3
	}
	return c.MaxAttempts
}

// BrokerList splits Brokers into trimmed, non-empty addresses.
func (c Config) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
