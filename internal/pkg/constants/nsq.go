package constants

// NSQ topics
const (
	// Published after every successful ledger mutation so dependent views
	// re-read their scope
	TopicLedgerChanged = "portfolio.ledger.changed"
)
