// Package report turns a finished k-medoids run into something a caller can
// display: the cost line, per-cluster statistics and a CSV of labels.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvcluster/kmedoids"
)

// DefaultPalette colours clusters 0, 1 and 2.
var DefaultPalette = []string{"red", "green", "blue"}

// ErrShape is returned when a result does not belong to the given dataset.
var ErrShape = errors.New("report: result does not match dataset")

// FormatCost renders a cost with two decimals.
func FormatCost(cost float64) string {
	return fmt.Sprintf("%.2f", cost)
}

// CostLine is the sentence shown next to the clustering button.
func CostLine(cost float64) string {
	return "The final cost is: " + FormatCost(cost)
}

// ClusterSummary describes one cluster of a result.
type ClusterSummary struct {
	Label  int
	Color  string
	Medoid int
	Size   int

	// Distances from members to the medoid (L1). Zero for empty clusters.
	Total  float64
	Mean   float64
	Median float64
	Max    float64
}

// Summarize computes a ClusterSummary per label. Colours come from palette;
// a nil palette leaves Color empty.
//
// Errors: ErrShape, kmedoids.ErrPaletteTooSmall, distance errors.
func Summarize(ds *kmedoids.Dataset, res kmedoids.Result, palette []string) ([]ClusterSummary, error) {
	if ds == nil || len(res.Assignment) != ds.Len() {
		return nil, ErrShape
	}
	if palette != nil && len(palette) < res.K() {
		return nil, kmedoids.ErrPaletteTooSmall
	}
	meds, err := ds.Points(res.Medoids)
	if err != nil {
		return nil, err
	}

	out := make([]ClusterSummary, res.K())
	for label, members := range res.Clusters() {
		s := ClusterSummary{Label: label, Medoid: res.Medoids[label], Size: len(members)}
		if palette != nil {
			s.Color = palette[label]
		}
		if len(members) > 0 {
			dist := make(stats.Float64Data, len(members))
			for k, idx := range members {
				if dist[k], err = kmedoids.Distance(ds.Point(idx), meds[label]); err != nil {
					return nil, err
				}
			}
			// stats only fails on empty input, ruled out above.
			s.Total, _ = stats.Sum(dist)
			s.Mean, _ = stats.Mean(dist)
			s.Median, _ = stats.Median(dist)
			s.Max, _ = stats.Max(dist)
		}
		out[label] = s
	}

	return out, nil
}

// labelRow is one line of the labels CSV.
type labelRow struct {
	Index   int    `csv:"index"`
	Cluster int    `csv:"cluster"`
	Color   string `csv:"color"`
	Medoid  bool   `csv:"medoid"`
}

// WriteLabels writes one CSV row per point: index, cluster, colour and
// whether the point is a medoid.
func WriteLabels(w io.Writer, res kmedoids.Result, palette []string) error {
	colors, err := res.Labels(palette)
	if err != nil {
		return err
	}
	isMedoid := make(map[int]bool, res.K())
	for _, idx := range res.Medoids {
		isMedoid[idx] = true
	}

	rows := make([]*labelRow, len(res.Assignment))
	for i, label := range res.Assignment {
		rows[i] = &labelRow{Index: i, Cluster: label, Color: colors[i], Medoid: isMedoid[i]}
	}

	return gocsv.Marshal(&rows, w)
}

// WriteSummaries writes summaries as CSV.
func WriteSummaries(w io.Writer, sums []ClusterSummary) error {
	rows := make([]*summaryRow, len(sums))
	for i, s := range sums {
		rows[i] = &summaryRow{
			Label: s.Label, Color: s.Color, Medoid: s.Medoid, Size: s.Size,
			Total: FormatCost(s.Total), Mean: FormatCost(s.Mean),
			Median: FormatCost(s.Median), Max: FormatCost(s.Max),
		}
	}
	return gocsv.Marshal(&rows, w)
}

// summaryRow is the CSV form of ClusterSummary with two-decimal figures.
type summaryRow struct {
	Label  int    `csv:"cluster"`
	Color  string `csv:"color"`
	Medoid int    `csv:"medoid"`
	Size   int    `csv:"size"`
	Total  string `csv:"total"`
	Mean   string `csv:"mean"`
	Median string `csv:"median"`
	Max    string `csv:"max"`
}
