package entities

// WeekBucket counts the events of one ISO week.
type WeekBucket struct {
	Year  int `json:"year"`
	Week  int `json:"week"`
	Count int `json:"count"`
}

// AnalyticsSummary is the per-creator aggregation shown on the dashboard.
// Computed entirely from already-fetched rows; nothing here is stored.
type AnalyticsSummary struct {
	TotalEvents    int            `json:"totalEvents"`
	UpcomingEvents int            `json:"upcomingEvents"`
	PastEvents     int            `json:"pastEvents"`
	TotalRSVPs     int64          `json:"totalRsvps"`
	RevenueCents   int64          `json:"revenueCents"`
	PerPlatform    map[string]int `json:"perPlatform"`
	PerWeek        []WeekBucket   `json:"perWeek"`
}
