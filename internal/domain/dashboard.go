package domain

import "time"

type DashboardStats struct {
	TotalMembers        int `json:"totalMembers"`
	TotalEvents         int `json:"totalEvents"`
	UpcomingEvents      int `json:"upcomingEvents"`
	TotalCarouselImages int `json:"totalCarouselImages"`
}

// Activity is one entry of the merged recent-activity feed, tagged with
// the record type it came from ("member" or "event").
type Activity struct {
	Type        string    `db:"type" json:"type"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
}
