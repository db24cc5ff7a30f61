package source

import (
	"context"
	"database/sql"
	"strings"

	"github.com/imgajeed76/tabview/internal/util"
	"github.com/jackc/pgx/v5"
	_ "modernc.org/sqlite"
)

// queryPostgres runs query over a single connection and collects every
// row. Values are formatted the same way as document scalars.
func queryPostgres(ctx context.Context, url, query string) (*document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, util.MissingQueryError(redactURL(url))
	}

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return nil, util.DatabaseConnectionError(redactURL(url), err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Get column descriptions
	fieldDescs := rows.FieldDescriptions()
	colNames := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		colNames[i] = fd.Name
	}

	doc := &document{fields: colNames}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		doc.records = append(doc.records, valuesRecord(colNames, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// querySQLite runs query against the database file at path.
func querySQLite(ctx context.Context, path, query string) (*document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, util.MissingQueryError("sqlite:" + path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	doc := &document{fields: colNames}
	values := make([]any, len(colNames))
	ptrs := make([]any, len(colNames))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		doc.records = append(doc.records, valuesRecord(colNames, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func valuesRecord(cols []string, values []any) record {
	r := newRecord()
	for i, c := range cols {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.set(c, util.FormatValue(v))
	}
	return r
}

// redactURL hides the password of a connection URL in messages.
func redactURL(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return url
	}
	if user, _, hasPass := strings.Cut(userinfo, ":"); hasPass {
		return scheme + "://" + user + ":***@" + host
	}
	return url
}
