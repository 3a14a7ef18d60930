package entity

// User maps a chat platform user to an internal key.
type User struct {
	ID         int64
	PlatformID string
	UTCOffset  int // minutes east of UTC
}

// Channel maps a chat platform channel to an internal key.
type Channel struct {
	ID         int64
	PlatformID string
}

// Guild maps a chat platform server (or workspace) to an internal key.
type Guild struct {
	ID                int64
	PlatformID        string
	FallbackChannelID *int64
}
