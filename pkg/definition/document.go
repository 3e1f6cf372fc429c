package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// documentFile is the on-disk shape of a definition file. Options stay as
// nodes so they can be applied in the order they were written.
type documentFile struct {
	Groups []groupFile `json:"groups" yaml:"groups"`
}

type groupFile struct {
	Title    string      `json:"title" yaml:"title"`
	Key      string      `json:"key" yaml:"key"`
	Location yaml.Node   `json:"location" yaml:"location"`
	Options  yaml.Node   `json:"options" yaml:"options"`
	Fields   []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Type    string      `json:"type" yaml:"type"`
	Label   string      `json:"label" yaml:"label"`
	Name    string      `json:"name" yaml:"name"`
	Options yaml.Node   `json:"options" yaml:"options"`
	Fields  []fieldFile `json:"fields" yaml:"fields"`
	Layouts []fieldFile `json:"layouts" yaml:"layouts"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, fmt.Errorf("file %s is empty", source)
	}

	if isJSONFile(source) {
		root, err := jsonNode(data)
		if err != nil {
			return doc, fmt.Errorf("parse %s: %w", source, err)
		}
		if err := root.Decode(&doc); err != nil {
			return doc, fmt.Errorf("parse %s: %w", source, err)
		}
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", source, err)
	}
	return doc, nil
}

// jsonNode reads a JSON document into a YAML node tree, keeping object key
// order.
func jsonNode(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := readJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return root, nil
}

func readJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, scalar("!!str", key), value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		return scalar("!!str", v), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return scalar("!!float", v.String()), nil
		}
		return scalar("!!int", v.String()), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(v)), nil
	case nil:
		return scalar("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func isJSONFile(path string) bool {
	return strings.EqualFold(extension(path), ".json")
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(extension(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func extension(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 && !strings.Contains(path[idx:], "/") {
		return path[idx:]
	}
	return ""
}
