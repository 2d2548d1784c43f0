package services

import (
	"math"
	"sort"
	"time"

	"github.com/marcela981/Somos-Server/internal/models"
)

// Slope thresholds for classifying a least-squares fit. The numeric values
// are part of the product contract and must not drift.
const (
	trendSlopeIncreasing = 0.1
	trendSlopeDecreasing = -0.1
)

// ComputeTrend fits an ordinary least-squares line over the series (value
// against index 0..n-1 after sorting by timestamp) and classifies the slope.
// The input may arrive unsorted and may contain NaN/Inf values; both are
// handled here so callers never have to pre-clean.
func ComputeTrend(points []models.TrendPoint) models.TrendSummary {
	usable := make([]models.TrendPoint, 0, len(points))
	for _, point := range points {
		if math.IsNaN(point.Value) || math.IsInf(point.Value, 0) {
			continue
		}
		usable = append(usable, point)
	}

	if len(usable) < 2 {
		return models.TrendSummary{
			Direction:  models.TrendInsufficientData,
			Magnitude:  0,
			SampleSize: len(usable),
		}
	}

	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].Timestamp.Before(usable[j].Timestamp)
	})

	n := float64(len(usable))
	var sumX, sumY, sumXY, sumXX float64
	for i, point := range usable {
		x := float64(i)
		sumX += x
		sumY += point.Value
		sumXY += x * point.Value
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return models.TrendSummary{
			Direction:  models.TrendStable,
			Magnitude:  0,
			SampleSize: len(usable),
		}
	}

	slope := (n*sumXY - sumX*sumY) / denominator

	direction := models.TrendStable
	switch {
	case slope > trendSlopeIncreasing:
		direction = models.TrendIncreasing
	case slope < trendSlopeDecreasing:
		direction = models.TrendDecreasing
	}

	return models.TrendSummary{
		Direction:  direction,
		Magnitude:  slope,
		SampleSize: len(usable),
	}
}

// LongestDailyStreak returns the longest run of calendar-consecutive days in
// the input. Consecutive means exactly one calendar day apart; a 30-hour gap
// that crosses a single midnight still counts, a skipped day resets the run.
// Duplicate timestamps on the same day collapse to one.
func LongestDailyStreak(days []time.Time) int {
	unique := uniqueSortedDays(days)
	if len(unique) == 0 {
		return 0
	}

	longest, current := 1, 1
	for i := 1; i < len(unique); i++ {
		if unique[i-1].AddDate(0, 0, 1).Equal(unique[i]) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// CurrentDailyStreak returns the length of the consecutive-day run ending at
// the most recent logged day.
func CurrentDailyStreak(days []time.Time) int {
	unique := uniqueSortedDays(days)
	if len(unique) == 0 {
		return 0
	}

	streak := 1
	for i := len(unique) - 1; i > 0; i-- {
		if unique[i-1].AddDate(0, 0, 1).Equal(unique[i]) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// Average returns the mean of the usable values, skipping NaN/Inf. An empty
// or fully-filtered input averages to 0.
func Average(values []float64) float64 {
	var sum float64
	var count int
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func uniqueSortedDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(days))
	unique := make([]time.Time, 0, len(days))
	for _, day := range days {
		utc := day.UTC()
		truncated := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
		if _, ok := seen[truncated]; ok {
			continue
		}
		seen[truncated] = struct{}{}
		unique = append(unique, truncated)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })
	return unique
}
