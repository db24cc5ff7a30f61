package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imgajeed76/tabview/internal/util"
)

// readCSV parses a CSV file whose first record is the header. Comma and
// semicolon separators are both accepted, since spreadsheet exports in
// pt-BR locales use semicolons.
func readCSV(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseCSV(data)
}

func parseCSV(data []byte) (*document, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffSeparator(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", util.ErrNoColumns)
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = util.CleanCell(h)
	}

	doc := &document{fields: header}
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		rec := newRecord()
		for i, h := range header {
			var v string
			if i < len(fields) {
				v = fields[i]
			}
			rec.set(h, util.CleanCell(v))
		}
		doc.records = append(doc.records, rec)
	}

	return doc, nil
}

// sniffSeparator picks ';' when the header line has more semicolons than
// commas.
func sniffSeparator(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
