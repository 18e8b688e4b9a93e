// Package ingest decodes customer records from external files and
// normalizes them for storage. Validation happens here, at the boundary:
// a malformed record aborts the whole import so the snapshot never holds
// rows the scoring layer cannot index.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/priya-raman/shopsense/internal/customer"
)

// ReadJSON decodes an array of customer records from JSON
func ReadJSON(r io.Reader) ([]customer.Record, error) {
	var records []customer.Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode customer JSON: %w", err)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// ReadJSONFile decodes customer records from a JSON file
func ReadJSONFile(path string) ([]customer.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
