package source

import (
	"fmt"
	"os"
	"time"

	"github.com/imgajeed76/tabview/internal/util"
	"gopkg.in/yaml.v3"
)

// readYAML parses a YAML file with the same layouts as JSON: a top-level
// sequence of mappings, or a mapping holding it under "processes" or "rows".
func readYAML(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", util.ErrNoTable)
	}

	node := root.Content[0]
	doc := &document{}

	switch node.Kind {
	case yaml.SequenceNode:
		records, err := yamlRecords(node)
		doc.records = records
		return doc, err
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("%w: expected a sequence or mapping", util.ErrNoTable)
	}

	var list *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		switch {
		case key == "title" && val.Kind == yaml.ScalarNode:
			doc.title = util.CleanCell(val.Value)
		case isRecordListKey(key) && val.Kind == yaml.SequenceNode && list == nil:
			list = val
		}
	}
	if list == nil {
		return nil, fmt.Errorf("%w: no %q or %q list", util.ErrNoTable, recordListKeys[0], recordListKeys[1])
	}

	records, err := yamlRecords(list)
	doc.records = records
	return doc, err
}

func yamlRecords(seq *yaml.Node) ([]record, error) {
	var records []record
	for _, item := range seq.Content {
		if item.Kind == yaml.AliasNode {
			item = item.Alias
		}
		if item.Kind != yaml.MappingNode {
			continue
		}

		r := newRecord()
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i].Value, item.Content[i+1]
			if val.Kind == yaml.AliasNode {
				val = val.Alias
			}
			if val.Kind != yaml.ScalarNode {
				continue
			}
			s, err := yamlScalar(val)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", val.Line, err)
			}
			r.set(key, s)
		}
		records = append(records, r)
	}
	return records, nil
}

// yamlScalar formats a scalar by its resolved tag, so booleans, nulls and
// timestamps render like their JSON and database counterparts.
func yamlScalar(n *yaml.Node) (string, error) {
	switch n.ShortTag() {
	case "!!null":
		return "", nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", err
		}
		return util.FormatValue(b), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return "", err
		}
		return util.FormatValue(t), nil
	default:
		return util.CleanCell(n.Value), nil
	}
}
