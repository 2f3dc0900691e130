package main

import "time"

type Config struct {
	Host      string `env:"HOST,default=localhost"`
	Port      int    `env:"PORT,default=8080"`
	DebugPort int    `env:"DEBUG_PORT,default=8081"`
	LogLevel  string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	// Comma-separated websocket close codes treated as expected
	// terminations. Empty means the built-in defaults.
	NormalCloseCodes string        `env:"NORMAL_CLOSE_CODES"`
	GracePeriod      time.Duration `env:"GRACE_PERIOD,default=2s"`

	DeliveryWorkers    int           `env:"DELIVERY_WORKERS,default=4"`
	DeliveryBufferSize int           `env:"DELIVERY_BUFFER_SIZE,default=1024"`
	SendBufferSize     int           `env:"SEND_BUFFER_SIZE,default=256"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval  time.Duration `env:"HEARTBEAT_INTERVAL,default=5s"`

	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	APIKey            string        `env:"API_KEY"`

	MembershipCacheTTL        time.Duration `env:"MEMBERSHIP_CACHE_TTL,default=30s"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	LimitMessages             *int          `env:"LIMIT_MESSAGES"`

	// Optional relay so sibling nodes see local deliveries.
	NatsURL string `env:"NATS_URL"`
}
