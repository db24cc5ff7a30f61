package source

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/imgajeed76/tabview/internal/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// readHTML reads the rows of an exported report. Column keys come from the
// data-key attribute of each header cell, falling back to its text. Rows
// carry their identity in data-id, data-type and data-status; when any row
// of a table has data-id, rows without it (detail panels) are ignored. All
// tables sharing the first table's header are concatenated, so a report
// exported one table per page reads back as a single row set.
func readHTML(path string, opts Options) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseHTML(data, opts)
}

func parseHTML(data []byte, opts Options) (*document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	tables := findAll(root, atom.Table)
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no <table> element", util.ErrNoTable)
	}

	doc := &document{title: findTitle(root), titles: make(map[string]string)}

	var header []string
	for _, tbl := range tables {
		keys, titles := tableHeader(tbl)
		if len(keys) == 0 {
			continue
		}
		if header == nil {
			header = keys
			doc.fields = keys
			for i, k := range keys {
				doc.titles[k] = titles[i]
			}
		} else if !slices.Equal(header, keys) {
			continue
		}
		doc.records = append(doc.records, tableRecords(tbl, header, opts)...)
	}

	if header == nil {
		return nil, fmt.Errorf("%w: no table header", util.ErrNoColumns)
	}
	return doc, nil
}

// tableHeader returns the column keys and titles of the first header row.
func tableHeader(tbl *html.Node) (keys, titles []string) {
	for _, tr := range tableRows(tbl) {
		cells := childElements(tr, atom.Th)
		if len(cells) == 0 {
			continue
		}
		for _, th := range cells {
			title := util.CleanCell(textContent(th))
			key := attr(th, "data-key")
			if key == "" {
				key = title
			}
			keys = append(keys, key)
			titles = append(titles, title)
		}
		return keys, titles
	}
	return nil, nil
}

func tableRecords(tbl *html.Node, header []string, opts Options) []record {
	var rows []*html.Node
	identified := false
	for _, tr := range tableRows(tbl) {
		if len(childElements(tr, atom.Td)) == 0 {
			continue
		}
		if hasAttr(tr, "data-id") {
			identified = true
		}
		rows = append(rows, tr)
	}

	var records []record
	for _, tr := range rows {
		if identified && !hasAttr(tr, "data-id") {
			continue
		}
		r := newRecord()
		cells := childElements(tr, atom.Td)
		for i, key := range header {
			var v string
			if i < len(cells) {
				v = util.CleanCell(textContent(cells[i]))
			}
			r.set(key, v)
		}
		// Row attributes win over cell text: the type cell shows a label
		// ("Importação") while data-type holds the value.
		for attrName, field := range map[string]string{
			"data-id":     opts.IDField,
			"data-type":   opts.TypeField,
			"data-status": opts.StatusField,
		} {
			if v, ok := lookupAttr(tr, attrName); ok {
				r.values[field] = util.CleanCell(v)
			}
		}
		records = append(records, r)
	}
	return records
}

// tableRows returns the rows of tbl, looking through thead/tbody/tfoot but
// not into nested tables.
func tableRows(tbl *html.Node) []*html.Node {
	var rows []*html.Node
	for c := tbl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			rows = append(rows, childElements(c, atom.Tr)...)
		}
	}
	return rows
}

func childElements(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
			return // nested tables belong to their parent
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findTitle returns the <title> text, or the first <h1>.
func findTitle(root *html.Node) string {
	for _, a := range []atom.Atom{atom.Title, atom.H1} {
		if nodes := findAll(root, a); len(nodes) > 0 {
			if t := util.CleanCell(textContent(nodes[0])); t != "" {
				return t
			}
		}
	}
	return ""
}

// textContent concatenates the text below n, skipping scripts and buttons.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style || n.DataAtom == atom.Button):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}
