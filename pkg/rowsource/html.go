package rowsource

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLSource decodes the first <table> of an HTML document into records,
// reading column names from the header row. Useful for listings published as
// plain web pages rather than exported files.
type HTMLSource struct {
	name string
	data []byte
}

func NewHTMLSource(name string, data []byte) *HTMLSource {
	return &HTMLSource{name: name, data: data}
}

func (s *HTMLSource) Name() string { return s.name }

func (s *HTMLSource) Load() ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in document")
	}

	var headers []string
	table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, CanonicalKey(cell.Text()))
	})
	if len(headers) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	var records []Record
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		rec := Record{}
		row.Find("td").Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) || headers[j] == "" {
				return
			}
			rec[headers[j]] = strings.TrimSpace(cell.Text())
		})
		if len(rec) > 0 {
			records = append(records, rec)
		}
	})
	return records, nil
}
