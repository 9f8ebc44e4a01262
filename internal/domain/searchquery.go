package domain

import "time"

// MaxUserAgentLength caps the stored user agent string.
const MaxUserAgentLength = 500

// SearchQuery is one entry in the append-only search log. Entries are
// never updated after creation except for ClickedResult, which the UI
// may report later.
type SearchQuery struct {
	ID            int64
	Query         string
	ResultsCount  int
	IPAddress     string
	UserAgent     string
	SearchDate    time.Time
	ClickedResult *string
}

// PopularSearch is a frequency-count projection over the search log.
type PopularSearch struct {
	Query string
	Count int
}

// TruncateUserAgent trims a raw user agent header to the stored limit.
func TruncateUserAgent(ua string) string {
	if len(ua) > MaxUserAgentLength {
		return ua[:MaxUserAgentLength]
	}
	return ua
}
