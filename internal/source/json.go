package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imgajeed76/tabview/internal/util"
	"github.com/tailscale/hujson"
)

// recordListKeys are the object keys that may hold the record list when the
// document is not a bare array.
var recordListKeys = []string{"processes", "rows"}

func isRecordListKey(k string) bool {
	for _, rk := range recordListKeys {
		if k == rk {
			return true
		}
	}
	return false
}

// readJSON parses a JSON or JSONC file. The token stream is walked instead
// of unmarshalling into maps so columns keep the order of the file.
func readJSON(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*document, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	doc := &document{}
	switch tok {
	case json.Delim('['):
		doc.records, err = decodeRecordArray(dec)
		return doc, err
	case json.Delim('{'):
	default:
		return nil, fmt.Errorf("%w: expected an array or object", util.ErrNoTable)
	}

	found := false
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := key.(string)

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch {
		case name == "title":
			if s, ok := tok.(string); ok {
				doc.title = util.CleanCell(s)
				continue
			}
		case isRecordListKey(name) && tok == json.Delim('[') && !found:
			if doc.records, err = decodeRecordArray(dec); err != nil {
				return nil, err
			}
			found = true
			continue
		}
		if err := skipJSONValue(dec, tok); err != nil {
			return nil, err
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no %q or %q list", util.ErrNoTable, recordListKeys[0], recordListKeys[1])
	}
	return doc, nil
}

// decodeRecordArray reads objects until the closing bracket of an array
// whose opening bracket was already consumed. Non-object elements are
// skipped.
func decodeRecordArray(dec *json.Decoder) ([]record, error) {
	var records []record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if tok != json.Delim('{') {
			if err := skipJSONValue(dec, tok); err != nil {
				return nil, err
			}
			continue
		}
		r, err := decodeRecord(dec)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	_, err := dec.Token() // ]
	return records, err
}

// decodeRecord reads the scalar members of an object whose opening brace
// was already consumed. Nested arrays and objects (event logs) are skipped.
func decodeRecord(dec *json.Decoder) (record, error) {
	r := newRecord()
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return r, err
		}
		name, _ := key.(string)

		tok, err := dec.Token()
		if err != nil {
			return r, err
		}
		if _, nested := tok.(json.Delim); nested {
			if err := skipJSONValue(dec, tok); err != nil {
				return r, err
			}
			continue
		}
		r.set(name, util.FormatValue(jsonScalar(tok)))
	}
	_, err := dec.Token() // }
	return r, err
}

// jsonScalar converts integral numbers to int64 so they print without an
// exponent.
func jsonScalar(tok json.Token) any {
	if n, ok := tok.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		return n.String()
	}
	return tok
}

// skipJSONValue discards the rest of a value whose first token was tok.
func skipJSONValue(dec *json.Decoder, tok json.Token) error {
	if _, ok := tok.(json.Delim); !ok {
		return nil
	}
	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
