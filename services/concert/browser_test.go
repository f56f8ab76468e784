package concert

import (
	"testing"
	"time"

	"chorus/models"

	"github.com/stretchr/testify/require"
)

func testConcerts() []models.Concert {
	return []models.Concert{
		{ID: "c1", Date: "2025-01-05", StartTime: "18:00", Description: "Новогодний концерт", Address: "ДК Октябрь", ConcertType: models.ConcertTypeBrigade1, Participants: []string{"Иванова", "Петров"}},
		{ID: "c2", Date: "2025-01-20", StartTime: "12:00", Description: "Выездной концерт", Address: "Школа №5", ConcertType: models.ConcertTypeBrigade2},
		{ID: "c3", Date: "2025-02-01", Description: "Гала-концерт", Address: "Филармония", ConcertType: models.ConcertTypeSoloistsOrchestra, Participants: []string{"Сидорова"}},
	}
}

func TestFilterByTimePartition(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	concerts := testConcerts()

	all := FilterByTime(concerts, FilterAll, now)
	upcoming := FilterByTime(concerts, FilterUpcoming, now)
	past := FilterByTime(concerts, FilterPast, now)

	// Upcoming and past partition the valid-date set with no overlap.
	require.Len(t, all, 3)
	require.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	require.Equal(t, "c1", past[0].ID)
}

func TestFilterByTimeDropsDatelessRecords(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	concerts := []models.Concert{
		{ID: "c1", Date: "2025-01-20"},
		{ID: "c2"},
		{ID: "c3", Date: "not-a-date"},
	}

	for _, filter := range []TimeFilter{FilterAll, FilterUpcoming, FilterPast} {
		out := FilterByTime(concerts, filter, now)
		for _, c := range out {
			require.NotEqual(t, "c2", c.ID)
			require.NotEqual(t, "c3", c.ID)
		}
	}
}

func TestFilterByTimeTodayIsUpcoming(t *testing.T) {
	// An event later today counts as upcoming, even if its midnight already
	// passed.
	now := time.Date(2025, 1, 20, 23, 0, 0, 0, time.UTC)
	out := FilterByTime([]models.Concert{{ID: "c1", Date: "2025-01-20"}}, FilterUpcoming, now)
	require.Len(t, out, 1)
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	concerts := testConcerts()
	for _, field := range []SearchField{SearchEverywhere, SearchDescription, SearchAddress, SearchType, SearchParticipants} {
		require.Len(t, Search(concerts, "", field), 3, "field %s", field)
		require.Len(t, Search(concerts, "   ", field), 3, "field %s", field)
	}
}

func TestSearchByField(t *testing.T) {
	concerts := testConcerts()

	require.Len(t, Search(concerts, "гала", SearchDescription), 1)
	require.Len(t, Search(concerts, "школа", SearchAddress), 1)
	require.Len(t, Search(concerts, "сидорова", SearchParticipants), 1)

	// Type search matches the resolved display label, not the raw code.
	byType := Search(concerts, "1 бригада", SearchType)
	require.Len(t, byType, 1)
	require.Equal(t, "c1", byType[0].ID)
}

func TestSearchEverywhere(t *testing.T) {
	concerts := testConcerts()

	require.Len(t, Search(concerts, "концерт", SearchEverywhere), 3)
	require.Len(t, Search(concerts, "петров", SearchEverywhere), 1)
	require.Empty(t, Search(concerts, "опера", SearchEverywhere))
}

func TestSortDateAscDescAreReversed(t *testing.T) {
	concerts := testConcerts()

	asc := Sort(concerts, SortDateAsc)
	desc := Sort(concerts, SortDateDesc)

	require.Len(t, asc, 3)
	for i := range asc {
		require.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	// The input order is untouched.
	require.Equal(t, "c1", concerts[0].ID)
}

func TestSortByStartTimeMissingSortsFirst(t *testing.T) {
	sorted := Sort(testConcerts(), SortStartTime)
	// c3 has no start time and sorts as "00:00".
	require.Equal(t, "c3", sorted[0].ID)
	require.Equal(t, "c2", sorted[1].ID)
	require.Equal(t, "c1", sorted[2].ID)
}

func TestSortByTypeLabel(t *testing.T) {
	sorted := Sort(testConcerts(), SortTypeLabel)
	require.Equal(t, "c1", sorted[0].ID) // "1 бригада"
	require.Equal(t, "c2", sorted[1].ID) // "2 бригада"
	require.Equal(t, "c3", sorted[2].ID) // "Солисты и оркестр"
}

func TestGroupByMonthDescendingBuckets(t *testing.T) {
	groups := GroupByMonth(Sort(testConcerts(), SortDateAsc))

	require.Len(t, groups, 2)
	require.Equal(t, "ФЕВРАЛЬ 2025", groups[0].Label)
	require.Len(t, groups[0].Concerts, 1)
	require.Equal(t, "ЯНВАРЬ 2025", groups[1].Label)
	require.Len(t, groups[1].Concerts, 2)
}

func TestGroupByMonthOrdersAcrossYears(t *testing.T) {
	concerts := []models.Concert{
		{ID: "c1", Date: "2024-12-31"},
		{ID: "c2", Date: "2025-01-01"},
	}
	groups := GroupByMonth(concerts)

	require.Len(t, groups, 2)
	require.Equal(t, "ЯНВАРЬ 2025", groups[0].Label)
	require.Equal(t, "ДЕКАБРЬ 2024", groups[1].Label)
}

func TestBrowsePipelineEndToEnd(t *testing.T) {
	groups := BrowsePipeline(testConcerts(), BrowseOptions{
		Filter: FilterAll,
		Query:  "концерт",
		Field:  SearchEverywhere,
		Sort:   SortDateAsc,
	})

	require.Len(t, groups, 2)
	require.Equal(t, "ФЕВРАЛЬ 2025", groups[0].Label)
	require.Equal(t, []string{"c1", "c2"}, []string{groups[1].Concerts[0].ID, groups[1].Concerts[1].ID})
}

func TestResolveConcertTypeUnknownFallback(t *testing.T) {
	require.Equal(t, models.ConcertTypeUnknown, models.ResolveConcertType("brigade-9"))
	require.Equal(t, "Неизвестный тип", models.ConcertTypeLabel("brigade-9"))
	require.Equal(t, "1 бригада", models.ConcertTypeLabel(models.ConcertTypeBrigade1))
}
