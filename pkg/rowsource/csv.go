package rowsource

import (
	"bytes"
	"fmt"

	"github.com/gocarina/gocsv"
)

// CSVSource decodes a header-prefixed CSV document into records.
type CSVSource struct {
	name string
	data []byte
}

func NewCSVSource(name string, data []byte) *CSVSource {
	return &CSVSource{name: name, data: data}
}

func (s *CSVSource) Name() string { return s.name }

func (s *CSVSource) Load() ([]Record, error) {
	rows, err := gocsv.CSVToMaps(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("decoding csv: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for header, value := range row {
			key := CanonicalKey(header)
			if key == "" {
				continue
			}
			rec[key] = value
		}
		records = append(records, rec)
	}
	return records, nil
}
