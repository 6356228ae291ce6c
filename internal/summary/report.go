package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/textfmt"
)

// Column names the report reads.
const (
	AgeKey  = "Age"
	NameKey = "Name"
	CityKey = "City"
)

// Report is the summary of a set of records. JSON field names match the historical report format.
type Report struct {
	TotalRows   int         `json:"TotalRows"`
	AgeSummary  AgeSummary  `json:"AgeSummary"`
	NameSummary []NameCount `json:"NameSummary"`
	CitySummary []CityCount `json:"CitySummary"`
}

// AgeSummary buckets rows by age. Rows with a missing or non-integer age, or an age under 20, are in no bucket.
type AgeSummary struct {
	Range20to29 Bucket `json:"Range20to29"`
	Range30to39 Bucket `json:"Range30to39"`
	Range40to49 Bucket `json:"Range40to49"`
	Range50Plus Bucket `json:"Range50Plus"`
}

type Bucket struct {
	Count      int     `json:"Count"`
	Percentage float64 `json:"Percentage"`
}

type NameCount struct {
	Name       string  `json:"Name"`
	Count      int     `json:"Count"`
	Percentage float64 `json:"Percentage"`
}

type CityCount struct {
	City       string  `json:"City"`
	Count      int     `json:"Count"`
	Percentage float64 `json:"Percentage"`
}

// Group is the number of records sharing one value of a key.
type Group struct {
	Key        string
	Count      int
	Percentage float64 // Count as a percentage of all records, rounded to 2 decimals.
}

// Summarizer groups records by the value of a column.
type Summarizer interface {
	SummarizeByKey(key string, records []Record) []Group
}

// Order is the sort order of groups by count.
type Order int

const (
	Ascending Order = iota
	Descending
)

// CountSummarizer groups records by value and sorts groups by count. Groups with equal counts keep the order in which their value first appears. Records
// without the key are grouped under "".
type CountSummarizer struct {
	Order Order
}

func (s CountSummarizer) SummarizeByKey(key string, records []Record) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		value := r[key]
		i, ok := index[value]
		if !ok {
			i = len(groups)
			index[value] = i
			groups = append(groups, Group{Key: value})
		}
		groups[i].Count++
	}

	for i := range groups {
		groups[i].Percentage = percentage(groups[i].Count, len(records))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if s.Order == Descending {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Count < groups[j].Count
	})
	return groups
}

// Summarize builds the report. Names are sorted by ascending count and cities by descending count.
func Summarize(records []Record) Report {
	return SummarizeWith(records, CountSummarizer{Order: Ascending}, CountSummarizer{Order: Descending})
}

// SummarizeWith is Summarize with custom summarizers for the name and city sections.
func SummarizeWith(records []Record, names, cities Summarizer) Report {
	total := len(records)
	report := Report{
		TotalRows:   total,
		AgeSummary:  summarizeAges(records),
		NameSummary: []NameCount{},
		CitySummary: []CityCount{},
	}
	for _, g := range names.SummarizeByKey(NameKey, records) {
		report.NameSummary = append(report.NameSummary, NameCount{Name: g.Key, Count: g.Count, Percentage: g.Percentage})
	}
	for _, g := range cities.SummarizeByKey(CityKey, records) {
		report.CitySummary = append(report.CitySummary, CityCount{City: g.Key, Count: g.Count, Percentage: g.Percentage})
	}
	return report
}

func summarizeAges(records []Record) AgeSummary {
	var s AgeSummary
	for _, r := range records {
		raw, ok := r[AgeKey]
		if !ok {
			continue
		}
		age, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		switch {
		case age >= 20 && age <= 29:
			s.Range20to29.Count++
		case age >= 30 && age <= 39:
			s.Range30to39.Count++
		case age >= 40 && age <= 49:
			s.Range40to49.Count++
		case age >= 50:
			s.Range50Plus.Count++
		}
	}

	total := len(records)
	for _, b := range []*Bucket{&s.Range20to29, &s.Range30to39, &s.Range40to49, &s.Range50Plus} {
		b.Percentage = percentage(b.Count, total)
	}
	return s
}

// percentage returns count/total*100 rounded to 2 decimals, ties to even. It is 0 when total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.RoundToEven(float64(count)/float64(total)*100*100) / 100
}

// WriteJSON writes the report as indented JSON followed by a newline.
func (r Report) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteText writes the report as aligned plain-text tables.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total rows: %d\n\n", r.TotalRows)

	writeTable(&b, "Age", []row{
		{"20-29", r.AgeSummary.Range20to29.Count, r.AgeSummary.Range20to29.Percentage},
		{"30-39", r.AgeSummary.Range30to39.Count, r.AgeSummary.Range30to39.Percentage},
		{"40-49", r.AgeSummary.Range40to49.Count, r.AgeSummary.Range40to49.Percentage},
		{"50+", r.AgeSummary.Range50Plus.Count, r.AgeSummary.Range50Plus.Percentage},
	})

	names := make([]row, 0, len(r.NameSummary))
	for _, n := range r.NameSummary {
		names = append(names, row{textfmt.Sanitize(n.Name), n.Count, n.Percentage})
	}
	b.WriteByte('\n')
	writeTable(&b, NameKey, names)

	cities := make([]row, 0, len(r.CitySummary))
	for _, c := range r.CitySummary {
		cities = append(cities, row{textfmt.Sanitize(c.City), c.Count, c.Percentage})
	}
	b.WriteByte('\n')
	writeTable(&b, CityKey, cities)

	_, err := io.WriteString(w, b.String())
	return err
}

type row struct {
	label      string
	count      int
	percentage float64
}

func writeTable(b *strings.Builder, title string, rows []row) {
	const (
		countTitle   = "Count"
		percentTitle = "Percent"
	)

	labelWidth := textfmt.Width(title)
	countWidth := len(countTitle)
	percentWidth := len(percentTitle)
	for _, r := range rows {
		labelWidth = max(labelWidth, textfmt.Width(r.label))
		countWidth = max(countWidth, len(strconv.Itoa(r.count)))
		percentWidth = max(percentWidth, len(formatPercent(r.percentage)))
	}

	line := func(label, count, percent string) {
		b.WriteString(textfmt.PadRight(label, labelWidth))
		b.WriteString("  ")
		b.WriteString(textfmt.PadLeft(count, countWidth))
		b.WriteString("  ")
		b.WriteString(textfmt.PadLeft(percent, percentWidth))
		b.WriteByte('\n')
	}

	line(title, countTitle, percentTitle)
	for _, r := range rows {
		line(r.label, strconv.Itoa(r.count), formatPercent(r.percentage))
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}
