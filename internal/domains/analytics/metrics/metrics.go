// Package metrics holds the small numeric building blocks shared by
// the analytics composers. Everything here is pure: no store access,
// no clock, no logging.
package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	postModel "social-analytics-backend/internal/domains/post/model"
)

// EngagementRate returns (avgEngagement / followers) * 100. Returns 0
// when the account has no followers, never NaN or Inf.
func EngagementRate(avgEngagement float64, followers int) float64 {
	if followers <= 0 {
		return 0
	}
	return avgEngagement / float64(followers) * 100
}

// FormatRate renders a rate percentage with 3 decimals, the precision
// the engagement endpoints expose.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.3f", rate)
}

// FormatRate2 renders a rate with 2 decimals and a percent sign, used
// by the compact account views.
func FormatRate2(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// TotalEngagement sums likes+comments over the posts.
func TotalEngagement(posts []postModel.Post) int {
	total := 0
	for i := range posts {
		total += posts[i].Engagement()
	}
	return total
}

// Average divides and rounds half away from zero, matching the
// integer averages shown throughout the reports.
func Average(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// AverageFloor divides and truncates, used where the report shows the
// conservative integer average.
func AverageFloor(total, count int) int {
	if count == 0 {
		return 0
	}
	return total / count
}

// AvgEngagement is the rounded mean engagement across the posts.
func AvgEngagement(posts []postModel.Post) int {
	return Average(TotalEngagement(posts), len(posts))
}

// RoundTo rounds to the given number of decimal places using decimal
// arithmetic so .5 cases land predictably.
func RoundTo(value float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

// FrequencyMap counts occurrences of each key while remembering the
// order keys were first seen, so callers can rank deterministically.
type FrequencyMap struct {
	counts map[string]int
	order  []string
}

func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

func (f *FrequencyMap) Add(key string) {
	if _, seen := f.counts[key]; !seen {
		f.order = append(f.order, key)
	}
	f.counts[key]++
}

func (f *FrequencyMap) Count(key string) int {
	return f.counts[key]
}

func (f *FrequencyMap) Len() int {
	return len(f.counts)
}

// Counts returns a copy of the underlying counts.
func (f *FrequencyMap) Counts() map[string]int {
	out := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

// Keys returns the keys in first-seen order.
func (f *FrequencyMap) Keys() []string {
	return append([]string(nil), f.order...)
}

// TopN returns the n most frequent keys. Ties keep first-seen order,
// so repeated runs over the same input always rank identically.
func (f *FrequencyMap) TopN(n int) []string {
	keys := f.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return f.counts[keys[i]] > f.counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Truncate shortens a caption for preview display, appending an
// ellipsis when anything was cut. Counts runes, not bytes, so a
// multibyte caption is never split mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
