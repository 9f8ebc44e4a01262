package domain

import "time"

// Visit is one recorded page view, collected best-effort by middleware
// for the stats dashboard.
type Visit struct {
	ID          int64
	IPAddress   string
	UserAgent   string
	PageVisited string
	Referrer    string
	VisitDate   time.Time
}
