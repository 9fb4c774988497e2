package encode

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML renders v as a block-style YAML document with two-space indentation.
func YAML(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if t == nil {
			return n, nil
		}
		for k, val := range t.All() {
			child, err := toNode(val)
			if err != nil {
				return nil, err
			}
			// Tagging keys as strings makes the emitter quote "200" or "true".
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			n.Content = append(n.Content, key, child)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range t {
			child, err := toNode(el)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	default:
		if err := checkScalar(v); err != nil {
			return nil, err
		}
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, &UnsupportedValueError{Value: v, Err: err}
		}
		return n, nil
	}
}
