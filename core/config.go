package core

import (
	"time"
)

const (
	defaultTokenTTL  = 30 * 24 * time.Hour
	defaultQueueSize = 100
)

// ConfigInput is the rolegate section of the configuration file
type ConfigInput struct {
	JwtSecret     string `yaml:"jwtSecret" envconfig:"JWT_SECRET"`
	TokenTTL      string `yaml:"tokenTTL" envconfig:"TOKEN_TTL"`
	BypassSubject string `yaml:"bypassSubject" envconfig:"BYPASS_SUBJECT"`
	DatacenterID  int64  `yaml:"datacenterID" envconfig:"DATACENTER_ID"`
	WorkerID      int64  `yaml:"workerID" envconfig:"WORKER_ID"`
	QueueSize     int    `yaml:"queueSize" envconfig:"QUEUE_SIZE"`
}

// Config is the runtime configuration shared by services
type Config struct {
	JwtSecret     string
	TokenTTL      time.Duration
	BypassSubject string
	DatacenterID  int64
	WorkerID      int64
	QueueSize     int
}

func SetupConfig(base ConfigInput) Config {

	ttl := defaultTokenTTL
	if base.TokenTTL != "" {
		parsed, err := time.ParseDuration(base.TokenTTL)
		if err != nil {
			panic(err)
		}
		ttl = parsed
	}

	if base.JwtSecret == "" {
		panic("jwtSecret must be set")
	}

	queueSize := base.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return Config{
		JwtSecret:     base.JwtSecret,
		TokenTTL:      ttl,
		BypassSubject: base.BypassSubject,
		DatacenterID:  base.DatacenterID,
		WorkerID:      base.WorkerID,
		QueueSize:     queueSize,
	}
}
