// Package progress derives health scores and trends from scan history.
// Everything here is pure computation over already-loaded records.
package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/store"
)

// ErrInsufficientData is returned when fewer than two scans exist;
// callers render an empty state instead of a trend.
var ErrInsufficientData = errors.New("not enough scans to compute a trend")

// Trend labels, matching the sign of the score delta.
const (
	TrendImproved = "improved"
	TrendWorsened = "worsened"
	TrendSteady   = "steady"
)

// Score derives the 0-100 health score for one analysis. It is a
// heuristic over concern count and zone severity, not a calibrated
// medical score: start at 100, subtract 5 per skin concern, subtract
// 8/4/2 per High/Medium/Low face zone, then clamp once at the end.
func Score(result *ai.AnalysisResult) int {
	score := 100

	score -= len(result.SkinAnalysis.Concerns) * 5

	for _, zone := range result.FaceMap {
		switch zone.Severity {
		case ai.SeverityHigh:
			score -= 8
		case ai.SeverityMedium:
			score -= 4
		case ai.SeverityLow:
			score -= 2
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Trend summarizes the change between the first and last scan.
type Trend struct {
	ScoreDelta       int      `json:"score_delta"`
	Label            string   `json:"label"`
	ResolvedConcerns []string `json:"resolved_concerns"`
	NewConcerns      []string `json:"new_concerns"`
}

// ComputeTrend compares the first and last entry of a history sorted
// oldest first.
func ComputeTrend(history []store.StoredScan) (*Trend, error) {
	if len(history) < 2 {
		return nil, ErrInsufficientData
	}

	first := &history[0].Result
	last := &history[len(history)-1].Result

	delta := Score(last) - Score(first)
	label := TrendSteady
	switch {
	case delta > 0:
		label = TrendImproved
	case delta < 0:
		label = TrendWorsened
	}

	return &Trend{
		ScoreDelta:       delta,
		Label:            label,
		ResolvedConcerns: subtractConcerns(first.SkinAnalysis.Concerns, last.SkinAnalysis.Concerns),
		NewConcerns:      subtractConcerns(last.SkinAnalysis.Concerns, first.SkinAnalysis.Concerns),
	}, nil
}

// subtractConcerns returns the elements of from that are absent from
// remove, preserving from's original order. Matching is exact string
// equality.
func subtractConcerns(from, remove []string) []string {
	removed := make(map[string]struct{}, len(remove))
	for _, c := range remove {
		removed[c] = struct{}{}
	}

	out := make([]string, 0, len(from))
	for _, c := range from {
		if _, ok := removed[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// ChartPoint is one chart entry derived from a stored scan.
type ChartPoint struct {
	Date      string `json:"date"` // locale month/day label
	Timestamp int64  `json:"timestamp"`
	Score     int    `json:"score"`
	ID        string `json:"id"`
}

// ChartPoints maps scans, sorted oldest first, to chart points. One
// point per scan, no aggregation or smoothing.
func ChartPoints(history []store.StoredScan, lang ai.Language) []ChartPoint {
	points := make([]ChartPoint, len(history))
	for i, scan := range history {
		points[i] = ChartPoint{
			Date:      dateLabel(scan.Timestamp, lang),
			Timestamp: scan.Timestamp,
			Score:     Score(&scan.Result),
			ID:        scan.ID,
		}
	}
	return points
}

func dateLabel(epochMillis int64, lang ai.Language) string {
	t := time.UnixMilli(epochMillis)
	if lang == ai.LanguageChinese {
		return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
	}
	return t.Format("Jan 2")
}
