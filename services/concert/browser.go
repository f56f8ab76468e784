package concert

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"chorus/models"
)

const dateLayout = "2006-01-02"

// TimeFilter selects which part of the concert timeline to show.
type TimeFilter string

const (
	FilterAll      TimeFilter = "all"
	FilterUpcoming TimeFilter = "upcoming"
	FilterPast     TimeFilter = "past"
)

// SearchField selects which field the search query matches against.
type SearchField string

const (
	SearchEverywhere   SearchField = "everywhere"
	SearchDescription  SearchField = "description"
	SearchAddress      SearchField = "address"
	SearchType         SearchField = "type"
	SearchParticipants SearchField = "participants"
)

// SortKey selects the ordering of the filtered list.
type SortKey string

const (
	SortDateAsc   SortKey = "date_asc"
	SortDateDesc  SortKey = "date_desc"
	SortTypeLabel SortKey = "type"
	SortStartTime SortKey = "start_time"
)

// BrowseOptions is the full option state of the concert browser.
type BrowseOptions struct {
	Filter TimeFilter
	Query  string
	Field  SearchField
	Sort   SortKey
}

// MonthGroup is one month bucket of the grouped browser output.
type MonthGroup struct {
	Label    string           `json:"label"`
	Concerts []models.Concert `json:"concerts"`
}

// monthLabels are the uppercase Russian month names the app renders.
var monthLabels = [...]string{
	"ЯНВАРЬ", "ФЕВРАЛЬ", "МАРТ", "АПРЕЛЬ", "МАЙ", "ИЮНЬ",
	"ИЮЛЬ", "АВГУСТ", "СЕНТЯБРЬ", "ОКТЯБРЬ", "НОЯБРЬ", "ДЕКАБРЬ",
}

// BrowsePipeline applies filter → search → sort → group over the concert
// list. Every stage is a pure function of its input; the source list is never
// mutated.
func BrowsePipeline(concerts []models.Concert, opts BrowseOptions) []MonthGroup {
	filtered := FilterByTime(concerts, opts.Filter, time.Now())
	searched := Search(filtered, opts.Query, opts.Field)
	sorted := Sort(searched, opts.Sort)
	return GroupByMonth(sorted)
}

// FilterByTime keeps concerts matching the time window relative to the start
// of "today" derived from now. Records without a parseable date are dropped.
func FilterByTime(concerts []models.Concert, filter TimeFilter, now time.Time) []models.Concert {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]models.Concert, 0, len(concerts))
	for _, c := range concerts {
		date, err := time.ParseInLocation(dateLayout, c.Date, now.Location())
		if err != nil {
			continue
		}
		switch filter {
		case FilterUpcoming:
			if date.Before(today) {
				continue
			}
		case FilterPast:
			if !date.Before(today) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Search keeps concerts whose selected field contains the query,
// case-insensitively. An empty query matches everything.
func Search(concerts []models.Concert, query string, field SearchField) []models.Concert {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return concerts
	}

	out := make([]models.Concert, 0, len(concerts))
	for _, c := range concerts {
		if matches(c, query, field) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c models.Concert, query string, field SearchField) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), query)
	}

	switch field {
	case SearchDescription:
		return contains(c.Description)
	case SearchAddress:
		return contains(c.Address)
	case SearchType:
		return contains(models.ConcertTypeLabel(c.ConcertType))
	case SearchParticipants:
		for _, p := range c.Participants {
			if contains(p) {
				return true
			}
		}
		return false
	default: // everywhere
		if contains(c.Description) || contains(c.Address) || contains(models.ConcertTypeLabel(c.ConcertType)) {
			return true
		}
		for _, p := range c.Participants {
			if contains(p) {
				return true
			}
		}
		return false
	}
}

// Sort orders the list by the selected key without mutating the input.
func Sort(concerts []models.Concert, key SortKey) []models.Concert {
	out := make([]models.Concert, len(concerts))
	copy(out, concerts)

	switch key {
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	case SortTypeLabel:
		sort.SliceStable(out, func(i, j int) bool {
			return models.ConcertTypeLabel(out[i].ConcertType) < models.ConcertTypeLabel(out[j].ConcertType)
		})
	case SortStartTime:
		sort.SliceStable(out, func(i, j int) bool { return startTimeOf(out[i]) < startTimeOf(out[j]) })
	default: // date ascending
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	}
	return out
}

// startTimeOf returns the "HH:MM" start time, with missing times sorting
// first as "00:00".
func startTimeOf(c models.Concert) string {
	if c.StartTime == "" {
		return "00:00"
	}
	return c.StartTime
}

// GroupByMonth buckets concerts by calendar month+year label, preserving the
// incoming order within each bucket. Buckets are ordered by descending
// chronological month, derived by parsing the label back rather than by
// insertion order.
func GroupByMonth(concerts []models.Concert) []MonthGroup {
	buckets := make(map[string][]models.Concert)
	var labels []string
	for _, c := range concerts {
		label := monthLabel(c.Date)
		if label == "" {
			continue
		}
		if _, seen := buckets[label]; !seen {
			labels = append(labels, label)
		}
		buckets[label] = append(buckets[label], c)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		yi, mi := parseMonthLabel(labels[i])
		yj, mj := parseMonthLabel(labels[j])
		if yi != yj {
			return yi > yj
		}
		return mi > mj
	})

	groups := make([]MonthGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, MonthGroup{Label: label, Concerts: buckets[label]})
	}
	return groups
}

// monthLabel renders a concert date as "ЯНВАРЬ 2025", or "" for an
// unparseable date.
func monthLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return monthLabels[int(t.Month())-1] + " " + strconv.Itoa(t.Year())
}

// parseMonthLabel recovers (year, month) from a month bucket label.
func parseMonthLabel(label string) (year, month int) {
	parts := strings.SplitN(label, " ", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	for i, name := range monthLabels {
		if name == parts[0] {
			month = i + 1
			break
		}
	}
	year, _ = strconv.Atoi(parts[1])
	return year, month
}
