package collection

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the Collection to YAML with entries in insertion order,
// using the same array/object shape rule as ToJSON. Failures share the
// CodecError taxonomy: depth-exceeded and invalid-UTF-8 are detected while
// building the node tree, anything the YAML encoder itself rejects is
// reported as unknown.
func (c *Collection) ToYAML() ([]byte, error) {
	node, err := yamlNode(c, 0, DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, newCodecError(CodeUnknown, err)
	}
	if err := enc.Close(); err != nil {
		return nil, newCodecError(CodeUnknown, err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML exposes the order-preserving node so a Collection embeds
// naturally in user documents handed to yaml.Marshal.
func (c *Collection) MarshalYAML() (any, error) {
	return yamlNode(c, 0, DefaultMaxDepth)
}

func yamlNode(v any, depth, maxDepth int) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Collection:
		if depth+1 > maxDepth {
			return nil, newCodecError(CodeDepthExceeded, nil)
		}
		if t.isSequential() {
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for p := t.om().Oldest(); p != nil; p = p.Next() {
				child, err := yamlNode(p.Value, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, child)
			}
			return node, nil
		}
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for p := t.om().Oldest(); p != nil; p = p.Next() {
			k := keyString(p.Key)
			if err := checkString(k); err != nil {
				return nil, err
			}
			kn := &yaml.Node{}
			if err := kn.Encode(k); err != nil {
				return nil, newCodecError(CodeUnknown, err)
			}
			vn, err := yamlNode(p.Value, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, kn, vn)
		}
		return node, nil
	case Structured:
		return yamlNode(mapToCollection(t.PlainMap()), depth, maxDepth)
	case map[string]any:
		return yamlNode(mapToCollection(t), depth, maxDepth)
	case map[any]any:
		return yamlNode(anyMapToCollection(t), depth, maxDepth)
	case []any:
		if depth+1 > maxDepth {
			return nil, newCodecError(CodeDepthExceeded, nil)
		}
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range t {
			child, err := yamlNode(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case string:
		if err := checkString(t); err != nil {
			return nil, err
		}
		n := &yaml.Node{}
		if err := n.Encode(t); err != nil {
			return nil, newCodecError(CodeUnknown, err)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, newCodecError(CodeUnknown, err)
		}
		return n, nil
	}
}
