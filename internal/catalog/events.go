package catalog

import "time"

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusActive   EventStatus = "active"
	EventStatusEnded    EventStatus = "ended"
)

// Event is a scheduled in-game happening. Status is not stored; it is
// derived from the window at read time.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Series      int         `json:"series"`
	StartsAt    time.Time   `json:"startsAt"`
	EndsAt      time.Time   `json:"endsAt"`
	Status      EventStatus `json:"status"`
}

func (e *Event) statusAt(now time.Time) EventStatus {
	switch {
	case now.Before(e.StartsAt):
		return EventStatusUpcoming
	case now.After(e.EndsAt):
		return EventStatusEnded
	default:
		return EventStatusActive
	}
}

// withStatus returns a copy with Status resolved for the given time.
func (e *Event) withStatus(now time.Time) *Event {
	cp := *e
	cp.Status = e.statusAt(now)
	return &cp
}

// builtinEvents is chronological by start date.
var builtinEvents = []*Event{
	{
		ID:          "grill_season_2025",
		Name:        "Grill Season Kickoff",
		Description: "Standard packs carry double odds for BBQ_DICKTATOR pulls all summer.",
		Series:      1,
		StartsAt:    time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "season_2_launch",
		Name:        "Season 2 Launch Celebration",
		Description: "Series 2 cards enter the pool, premium packs guaranteed one Series 2 pull.",
		Series:      2,
		StartsAt:    time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "thanksgiving_standoff_2026",
		Name:        "Thanksgiving Standoff Weekend",
		Description: "Holiday dads get boosted holo chances while the turkey rests.",
		Series:      1,
		StartsAt:    time.Date(2026, time.November, 26, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fathers_day_2027",
		Name:        "Father's Day Frenzy",
		Description: "Every pack opened comes with a bonus random uncommon-or-better card.",
		Series:      2,
		StartsAt:    time.Date(2027, time.June, 18, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2027, time.June, 21, 0, 0, 0, 0, time.UTC),
	},
}

// EventSchedule serves the built-in event calendar.
type EventSchedule struct {
	events []*Event
}

func NewEventSchedule() *EventSchedule {
	return &EventSchedule{events: builtinEvents}
}

// List returns events in schedule order with statuses resolved for now,
// optionally filtered by status.
func (s *EventSchedule) List(status string, now time.Time) []*Event {
	out := make([]*Event, 0, len(s.events))
	for _, e := range s.events {
		resolved := e.withStatus(now)
		if status != "" && string(resolved.Status) != status {
			continue
		}
		out = append(out, resolved)
	}
	return out
}

// Get returns the event with the given id, status resolved for now.
func (s *EventSchedule) Get(id string, now time.Time) (*Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e.withStatus(now), true
		}
	}
	return nil, false
}
