package source

import (
	"fmt"
	"strings"

	"github.com/imgajeed76/tabview/internal/util"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

// record is one source entry: scalar fields in source order.
type record struct {
	keys   []string
	values map[string]string
}

func newRecord() record {
	return record{values: make(map[string]string)}
}

// set stores a field, remembering its position on first sight.
func (r *record) set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// document is what each reader produces before field mapping.
type document struct {
	title   string
	fields  []string          // header order, for sources that declare one
	titles  map[string]string // column key -> display title, when the source has one
	records []record
}

// legacyCargoTypes are container types that older data stored in the type
// field. They are imports.
var legacyCargoTypes = map[string]bool{
	"FCL 1 X 40": true,
	"FCL 1 X 20": true,
	"LCL":        true,
}

// NormalizeType maps legacy cargo types to the default process type.
func NormalizeType(t string) string {
	if legacyCargoTypes[strings.ToUpper(strings.TrimSpace(t))] {
		return viewmodel.DefaultType
	}
	return t
}

// isArchived reads the "archived" flag as written by the JSON loader or a
// database boolean.
func isArchived(r record) bool {
	switch strings.ToLower(r.values["archived"]) {
	case "sim", "true", "1", "yes":
		return true
	}
	return false
}

// normalizeTypes rewrites legacy cargo types to imports, keeping the
// original value in container_type. It runs before columns are discovered,
// so container_type becomes a column.
func (d *document) normalizeTypes(opts Options) {
	for i := range d.records {
		r := &d.records[i]
		if !opts.IncludeArchived && isArchived(*r) {
			continue
		}
		typ := r.values[opts.TypeField]
		norm := NormalizeType(typ)
		if norm == typ {
			continue
		}
		if _, ok := r.values["container_type"]; !ok {
			r.set("container_type", typ)
		}
		r.values[opts.TypeField] = norm
	}
}

// columns returns the explicit column list, or the declared header followed
// by any other record keys in order of first appearance.
func (d *document) columns(opts Options) []string {
	if len(opts.Columns) > 0 {
		return opts.Columns
	}
	var keys []string
	seen := make(map[string]bool)
	for _, k := range d.fields {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, r := range d.records {
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// table applies the field mapping and builds the immutable row set.
func (d *document) table(opts Options) (*viewmodel.Table, error) {
	d.normalizeTypes(opts)

	keys := d.columns(opts)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no fields found", util.ErrNoColumns)
	}

	t := &viewmodel.Table{Title: d.title, Columns: make([]viewmodel.Column, len(keys))}
	if opts.Title != "" {
		t.Title = opts.Title
	}
	for i, k := range keys {
		title := d.titles[k]
		if title == "" {
			title = k
		}
		t.Columns[i] = viewmodel.Column{Key: k, Title: title}
	}

	t.Rows = make([]viewmodel.Row, 0, len(d.records))
	for pos, r := range d.records {
		if !opts.IncludeArchived && isArchived(r) {
			continue
		}

		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = r.values[k]
		}

		id := r.values[opts.IDField]
		if id == "" {
			id = util.RowULID(pos, cells)
		}

		t.Rows = append(t.Rows, viewmodel.Row{
			ID:     id,
			Cells:  cells,
			Type:   r.values[opts.TypeField],
			Status: r.values[opts.StatusField],
		})
	}

	return t, nil
}
