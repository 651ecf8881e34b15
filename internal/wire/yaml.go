package wire

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a yaml.v3 node into a Value.
//
// Scalars dispatch on the resolved tag, so `"42"` is a String and `42`
// is a Number, matching what the document author wrote.
func FromYAML(node *yaml.Node) (Value, error) {
	if node == nil {
		return Null{}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return FromYAML(node.Content[0])

	case yaml.AliasNode:
		return FromYAML(node.Alias)

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str", "!!binary", "!!timestamp":
			return String(node.Value), nil
		case "!!int":
			return yamlInt(node)
		case "!!float":
			return yamlFloat(node), nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return Bool(b), nil
		case "!!null":
			return Null{}, nil
		default:
			return nil, fmt.Errorf("line %d: unsupported scalar tag %s", node.Line, node.ShortTag())
		}

	case yaml.SequenceNode:
		arr := make(Array, len(node.Content))
		for i, elem := range node.Content {
			v, err := FromYAML(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = v
		}
		return arr, nil

	case yaml.MappingNode:
		obj := make(Object, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			v, err := FromYAML(node.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", key, err)
			}
			obj[key] = v
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

// yamlInt rewrites a YAML integer in any notation yaml.v3 resolves
// (0x, 0o, 0b, legacy leading-zero octal, _ separators) as decimal text.
func yamlInt(node *yaml.Node) (Value, error) {
	plain := strings.ReplaceAll(node.Value, "_", "")
	n, ok := new(big.Int).SetString(plain, 0)
	if !ok {
		return nil, fmt.Errorf("line %d: invalid integer %q", node.Line, node.Value)
	}
	return Number(n.String()), nil
}

// yamlFloat maps the YAML non-finite spellings onto the text
// strconv.FormatFloat produces; every other float keeps its literal text.
func yamlFloat(node *yaml.Node) Value {
	switch strings.ToLower(strings.TrimPrefix(node.Value, "+")) {
	case ".inf":
		return Number("+Inf")
	case "-.inf":
		return Number("-Inf")
	case ".nan":
		return Number("NaN")
	}
	return Number(node.Value)
}

// YAMLValue returns what a MarshalYAML hook should hand back for v.
// Strings come back as *yaml.Node with an explicit !!str tag so that
// digit-only text is quoted and read back as a string.
func YAMLValue(v Value) (any, error) {
	switch val := v.(type) {
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(val)}, nil
	case Number:
		if val.IsInteger() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(val)}, nil
		}
		text := string(val)
		switch text {
		case "+Inf":
			text = ".inf"
		case "-Inf":
			text = "-.inf"
		case "NaN":
			text = ".nan"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: text}, nil
	default:
		return ToAny(v)
	}
}
