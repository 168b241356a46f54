package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fabrica/fabrica/internal/errors"
)

// ParseYAML compiles a schema from a YAML document shaped as a mapping of
// field name to spec:
//
//	age: [int, 18, 65]
//	full_name: name
//	dept: [choice, eng, sales, ops]
//
// Mapping order in the document becomes the schema's declaration order,
// which plain map decoding would lose.
func ParseYAML(data []byte, hasCustom CustomLookup) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.ErrCategorySchema, errors.CodeBadFieldSpec,
			fmt.Sprintf("schema document is not valid YAML: %v", err))
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New(errors.ErrCategorySchema, errors.CodeBadFieldSpec,
			"schema document is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCategorySchema, errors.CodeBadFieldSpec,
			"schema document must be a mapping of field name to spec")
	}

	raw := make([]RawField, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]

		var name string
		if err := key.Decode(&name); err != nil {
			return nil, errors.New(errors.ErrCategorySchema, errors.CodeBadFieldSpec,
				fmt.Sprintf("field name at line %d is not a string", key.Line))
		}

		spec, err := decodeSpecNode(name, val)
		if err != nil {
			return nil, err
		}
		raw = append(raw, RawField{Name: name, Spec: spec})
	}
	return Compile(raw, hasCustom)
}

func decodeSpecNode(field string, node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
				"spec must be a type name or a parameter list")
		}
		return s, nil
	case yaml.SequenceNode:
		tuple := make([]interface{}, len(node.Content))
		for i, item := range node.Content {
			var v interface{}
			if err := item.Decode(&v); err != nil {
				return nil, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
					fmt.Sprintf("cannot decode parameter %d: %v", i, err))
			}
			tuple[i] = v
		}
		return tuple, nil
	default:
		return nil, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"spec must be a type name or a parameter list")
	}
}
