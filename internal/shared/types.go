package shared

// Task type names shared between the API (enqueue side) and the worker
const (
	TypeScrapeAccount = "collection:scrape_account"
	TypeCollectAll    = "collection:collect_all"
)

// Queue names
const (
	QueueCollection = "collection"
	QueueDefault    = "default"
)
