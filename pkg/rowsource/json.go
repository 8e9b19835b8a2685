package rowsource

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// JSONSource decodes a JSON document into records. The document is either a
// top-level array of flat objects or an object with a "rows" array; numeric
// and boolean values are stringified, nested values are skipped.
type JSONSource struct {
	name string
	data []byte
}

func NewJSONSource(name string, data []byte) *JSONSource {
	return &JSONSource{name: name, data: data}
}

func (s *JSONSource) Name() string { return s.name }

func (s *JSONSource) Load() ([]Record, error) {
	if !gjson.ValidBytes(s.data) {
		return nil, fmt.Errorf("invalid json document")
	}

	root := gjson.ParseBytes(s.data)
	if root.IsObject() {
		root = root.Get("rows")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("expected a json array of row objects")
	}

	var records []Record
	root.ForEach(func(_, row gjson.Result) bool {
		if !row.IsObject() {
			return true
		}
		rec := Record{}
		row.ForEach(func(key, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				return true
			}
			canonical := CanonicalKey(key.String())
			if canonical == "" {
				return true
			}
			if value.Type == gjson.Null {
				return true
			}
			rec[canonical] = value.String()
			return true
		})
		if len(rec) > 0 {
			records = append(records, rec)
		}
		return true
	})
	return records, nil
}
