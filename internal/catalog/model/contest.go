package model

// Contest statuses as surfaced to clients.
const (
	ContestUpcoming = "upcoming"
	ContestOngoing  = "ongoing"
	ContestEnded    = "ended"
)

// Contest is a normalized upcoming or running contest.
type Contest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
	URL      string `json:"url"`
}
