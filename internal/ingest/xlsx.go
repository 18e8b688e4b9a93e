package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/priya-raman/shopsense/internal/customer"
)

// Expected spreadsheet headers (case-insensitive). Interests and purchase
// history cells hold semicolon-separated lists.
var xlsxHeaders = []string{
	"name", "age", "gender", "interests", "purchase_history",
	"sentiment_score", "engagement_score", "social_media_activity",
}

// ReadXLSX decodes customer records from the first sheet of a spreadsheet.
// Row 1 must be a header row naming the canonical columns in any order.
func ReadXLSX(path string) ([]customer.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s contains no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	cols, err := headerColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]customer.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := rowToRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func headerColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range xlsxHeaders {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("missing column %q in header row", want)
		}
	}
	return cols, nil
}

func rowToRecord(row []string, cols map[string]int) (*customer.Record, error) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	age, err := strconv.Atoi(cell("age"))
	if err != nil {
		return nil, fmt.Errorf("invalid age %q", cell("age"))
	}
	sentiment, err := strconv.ParseFloat(cell("sentiment_score"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sentiment_score %q", cell("sentiment_score"))
	}
	engagement, err := strconv.ParseFloat(cell("engagement_score"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid engagement_score %q", cell("engagement_score"))
	}

	return &customer.Record{
		Name:            cell("name"),
		Age:             age,
		Gender:          customer.Gender(cell("gender")),
		Interests:       splitList(cell("interests")),
		PurchaseHistory: splitList(cell("purchase_history")),
		SentimentScore:  sentiment,
		EngagementScore: engagement,
		SocialActivity:  customer.SocialActivity(cell("social_media_activity")),
	}, nil
}

// splitList parses a semicolon-separated cell. An empty cell is an empty
// list, not a missing field; spreadsheets have no way to omit a column.
func splitList(cell string) []string {
	if cell == "" {
		return []string{}
	}
	parts := strings.Split(cell, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
