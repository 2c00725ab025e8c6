// Package analytics derives summary statistics from the published-item
// collection. Everything here is a pure computation over the items passed
// in; there is no hidden state.
package analytics

import (
	"math"
	"sort"
	"time"

	"LocalNewsDesk/internal/domain"
)

const (
	topLimit     = 5
	activityDays = 7
	weekWindow   = 7 * 24 * time.Hour
	monthWindow  = 30 * 24 * time.Hour
)

// TopicCount is one row of the top-categories ranking.
type TopicCount struct {
	Category   domain.Category `json:"category"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// CityCount is one row of the top-cities ranking.
type CityCount struct {
	City       string `json:"city"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DayActivity is the publication count of one calendar day.
type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary aggregates platform activity at a point in time.
type Summary struct {
	TotalPosts         int           `json:"totalPosts"`
	TopTopics          []TopicCount  `json:"topTopics"`
	TopCities          []CityCount   `json:"topCities"`
	PostsLastWeek      int           `json:"postsLastWeek"`
	PostsLastMonth     int           `json:"postsLastMonth"`
	AveragePostsPerDay float64       `json:"averagePostsPerDay"`
	RecentActivity     []DayActivity `json:"recentActivity"`
}

// RangeSummary aggregates activity inside an explicit time window.
type RangeSummary struct {
	TotalPosts int          `json:"totalPosts"`
	TopTopics  []TopicCount `json:"topTopics"`
	TopCities  []CityCount  `json:"topCities"`
}

// Summarize computes the full summary for the given items relative to now.
// An empty collection is a defined state: zero counts, empty rankings, and
// seven zero-count activity entries.
func Summarize(items []domain.PublishedItem, now time.Time) Summary {
	summary := Summary{
		TotalPosts:     len(items),
		TopTopics:      []TopicCount{},
		TopCities:      []CityCount{},
		RecentActivity: recentActivity(items, now),
	}
	if len(items) == 0 {
		return summary
	}

	summary.TopTopics = topTopics(items)
	summary.TopCities = topCities(items)
	summary.PostsLastWeek = countSince(items, now.Add(-weekWindow))
	summary.PostsLastMonth = countSince(items, now.Add(-monthWindow))
	summary.AveragePostsPerDay = averagePerDay(items)
	return summary
}

// SummarizeRange computes totals and rankings for items published between
// from and to, both inclusive.
func SummarizeRange(items []domain.PublishedItem, from, to time.Time) RangeSummary {
	var window []domain.PublishedItem
	for _, item := range items {
		if item.PublishedAt.Before(from) || item.PublishedAt.After(to) {
			continue
		}
		window = append(window, item)
	}

	summary := RangeSummary{TotalPosts: len(window), TopTopics: []TopicCount{}, TopCities: []CityCount{}}
	if len(window) == 0 {
		return summary
	}
	summary.TopTopics = topTopics(window)
	summary.TopCities = topCities(window)
	return summary
}

// topTopics ranks categories by count, descending, ties kept in
// first-encountered order, capped at the top five.
func topTopics(items []domain.PublishedItem) []TopicCount {
	keys, counts := groupCount(items, func(item domain.PublishedItem) string {
		return string(item.Category)
	})

	topics := make([]TopicCount, 0, len(keys))
	for _, key := range keys {
		topics = append(topics, TopicCount{
			Category:   domain.Category(key),
			Count:      counts[key],
			Percentage: percentage(counts[key], len(items)),
		})
	}
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Count > topics[j].Count })
	if len(topics) > topLimit {
		topics = topics[:topLimit]
	}
	return topics
}

func topCities(items []domain.PublishedItem) []CityCount {
	keys, counts := groupCount(items, func(item domain.PublishedItem) string {
		return item.City
	})

	cities := make([]CityCount, 0, len(keys))
	for _, key := range keys {
		cities = append(cities, CityCount{
			City:       key,
			Count:      counts[key],
			Percentage: percentage(counts[key], len(items)),
		})
	}
	sort.SliceStable(cities, func(i, j int) bool { return cities[i].Count > cities[j].Count })
	if len(cities) > topLimit {
		cities = cities[:topLimit]
	}
	return cities
}

// groupCount returns grouping keys in first-encountered order plus their
// occurrence counts.
func groupCount(items []domain.PublishedItem, keyOf func(domain.PublishedItem) string) ([]string, map[string]int) {
	var keys []string
	counts := make(map[string]int)
	for _, item := range items {
		key := keyOf(item)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}
	return keys, counts
}

func percentage(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

func countSince(items []domain.PublishedItem, cutoff time.Time) int {
	count := 0
	for _, item := range items {
		if !item.PublishedAt.Before(cutoff) {
			count++
		}
	}
	return count
}

// averagePerDay divides the item count by the span between the oldest and
// newest publication, in whole days rounded up and floored at one, then
// rounds to one decimal place.
func averagePerDay(items []domain.PublishedItem) float64 {
	oldest := items[0].PublishedAt
	newest := items[0].PublishedAt
	for _, item := range items[1:] {
		if item.PublishedAt.Before(oldest) {
			oldest = item.PublishedAt
		}
		if item.PublishedAt.After(newest) {
			newest = item.PublishedAt
		}
	}

	days := int(math.Ceil(newest.Sub(oldest).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return math.Round(float64(len(items))/float64(days)*10) / 10
}

// recentActivity returns one entry per calendar day for the last seven days,
// oldest first. Days are compared as UTC dates, not timestamp ranges.
func recentActivity(items []domain.PublishedItem, now time.Time) []DayActivity {
	activity := make([]DayActivity, 0, activityDays)
	for offset := activityDays - 1; offset >= 0; offset-- {
		day := now.UTC().AddDate(0, 0, -offset)
		date := day.Format("2006-01-02")

		count := 0
		for _, item := range items {
			if item.PublishedAt.UTC().Format("2006-01-02") == date {
				count++
			}
		}
		activity = append(activity, DayActivity{Date: day.Format("Jan 2"), Count: count})
	}
	return activity
}
