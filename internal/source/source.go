// Package source loads the row set of a report from files and databases.
//
// Open dispatches on the reference: postgres:// URLs, sqlite:<path> and
// *.db files are queried, JSON (with comments), YAML, CSV and previously
// exported HTML reports are parsed. Every source goes through the same field
// mapping, so rows come out identical no matter where they were stored.
package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/imgajeed76/tabview/internal/util"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

// Kind identifies the format of a row source.
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindJSON     Kind = "json"
	KindYAML     Kind = "yaml"
	KindCSV      Kind = "csv"
	KindHTML     Kind = "html"
)

// IsDatabase reports whether the source needs a query.
func (k Kind) IsDatabase() bool {
	return k == KindPostgres || k == KindSQLite
}

// Options maps source fields onto rows.
type Options struct {
	IDField     string   // field holding the row identifier; missing IDs are generated
	TypeField   string   // field holding the process type
	StatusField string   // field holding the status label
	Columns     []string // explicit column order; empty means every scalar field in order of appearance
	Query       string   // SQL for database sources
	Title       string   // overrides the title found in the source

	// IncludeArchived keeps records whose "archived" field is true.
	IncludeArchived bool
}

// DefaultOptions returns the field names of the process report.
func DefaultOptions() Options {
	return Options{
		IDField:     "id",
		TypeField:   "type",
		StatusField: "status",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.IDField == "" {
		o.IDField = d.IDField
	}
	if o.TypeField == "" {
		o.TypeField = d.TypeField
	}
	if o.StatusField == "" {
		o.StatusField = d.StatusField
	}
	return o
}

// Classify returns the kind of ref and the location to read: a path for
// files, a DSN for databases.
func Classify(ref string) (Kind, string, error) {
	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres, ref, nil
	case strings.HasPrefix(lower, "sqlite:"):
		return KindSQLite, strings.TrimPrefix(ref[len("sqlite:"):], "//"), nil
	}

	switch strings.ToLower(filepath.Ext(ref)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, ref, nil
	case ".json", ".jsonc":
		return KindJSON, ref, nil
	case ".yaml", ".yml":
		return KindYAML, ref, nil
	case ".csv":
		return KindCSV, ref, nil
	case ".html", ".htm":
		return KindHTML, ref, nil
	}

	return "", "", util.UnsupportedSourceError(ref)
}

// Open loads the table behind ref.
func Open(ctx context.Context, ref string, opts Options) (*viewmodel.Table, error) {
	opts = opts.withDefaults()

	kind, loc, err := Classify(ref)
	if err != nil {
		return nil, err
	}

	if kind != KindPostgres {
		if _, err := os.Stat(loc); errors.Is(err, os.ErrNotExist) {
			return nil, util.SourceNotFoundError(loc)
		} else if err != nil {
			return nil, util.SourceReadError(ref, err)
		}
	}

	var doc *document
	switch kind {
	case KindPostgres:
		doc, err = queryPostgres(ctx, loc, opts.Query)
	case KindSQLite:
		doc, err = querySQLite(ctx, loc, opts.Query)
	case KindJSON:
		doc, err = readJSON(loc)
	case KindYAML:
		doc, err = readYAML(loc)
	case KindCSV:
		doc, err = readCSV(loc)
	case KindHTML:
		doc, err = readHTML(loc, opts)
	}
	if err != nil {
		var te *util.TabviewError
		if errors.As(err, &te) {
			return nil, err
		}
		return nil, util.SourceReadError(ref, err)
	}

	if doc.title == "" && !kind.IsDatabase() {
		doc.title = strings.TrimSuffix(filepath.Base(loc), filepath.Ext(loc))
	}
	return doc.table(opts)
}
