package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyOAuthState     = "auth:oauth:state:"
	RedisChannelEventChat  = "events:chat:" // + event ID
)

// Pagination defaults
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Asynq task queues
const (
	QueueDefault = "default"
	QueueEmails  = "emails"
)

// Application review decisions
const (
	DecisionApproved = "approved"
	DecisionAdjusted = "adjusted"
	DecisionRejected = "rejected"
)
