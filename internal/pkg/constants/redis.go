package constants

import "time"

// Redis key formats
const (
	// Ledger cache, one entry per user and scope
	KeyLedgerCache = "ledger:%s:%s" // Format: ledger:{user_id}:{scope}
)

// Cache lifetimes
const (
	// LedgerCacheTTL bounds staleness if an invalidation is ever missed
	LedgerCacheTTL = 5 * time.Minute
)
