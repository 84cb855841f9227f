package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is empty when order events are not forwarded to Kafka.
	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	DispatchSweepSpec     string
	CompletionSweepSpec   string
	CompletionGracePeriod time.Duration
	SweepLimit            int
	CommandTimeout        time.Duration
	EventBufferSize       int
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
