// Package internal holds process-level configuration.
package internal

import (
	"fmt"
	"time"
)

type Config struct {
	ServerURL       string        `env:"SERVER_URL,required=true"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,default=64"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=256"`
	CallTimeout     time.Duration `env:"CALL_TIMEOUT,default=10s"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitMessages   *int          `env:"LIMIT_MESSAGES"`
	SearchLimit     int           `env:"SEARCH_LIMIT,default=20"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
