package bulletin

import "time"

type NewsPost struct {
	ID    string
	Title string
	Date  *time.Time
	Body  string
}

// Event.Time is free text such as "19:30" or "ba'da Isya" and is not parsed.
type Event struct {
	ID    string
	Name  string
	Date  *time.Time
	Time  string
	Place string
	Notes string
}

type PublishNewsInput struct {
	Title string
	Date  *time.Time
	Body  string
}

type ScheduleEventInput struct {
	Name  string
	Date  *time.Time
	Time  string
	Place string
	Notes string
}
