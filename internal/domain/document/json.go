package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the Document as JSON, keeping mapping key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, d.Root()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndentJSON is MarshalJSON with two-space indentation and a trailing newline.
func (d *Document) MarshalIndentJSON() ([]byte, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		v, err := NodeValue(n)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		buf.Write(raw)
	default:
		buf.WriteString("null")
	}
	return nil
}

var jsonLineComment = regexp.MustCompile(`(?m)^\s*(//|#).*$`)

// ParseJSON decodes JSON text into a Document. Whole-line "//" and "#"
// comments are accepted and dropped, matching commented .conf files.
func ParseJSON(data []byte) (*Document, error) {
	clean := jsonLineComment.ReplaceAll(data, nil)
	if !json.Valid(clean) {
		var probe any
		if err := json.Unmarshal(clean, &probe); err != nil {
			return nil, err
		}
	}
	// Raw tabs cannot occur inside valid JSON strings, and YAML rejects them
	// as indentation.
	d, err := Parse(bytes.ReplaceAll(clean, []byte("\t"), []byte(" ")))
	if err != nil {
		return nil, err
	}
	PlainStyle(d.Root())
	return d, nil
}
