package compiler

import (
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// ParseYAML decodes a YAML mapping keyed by group label:
//
//	states: [a, b]
//	alpha: [0]
//	init.st: [a]
//	fin.st: [b]
//	trans: [a>0>b]
//
// Keys that are present must appear in ingestion order, at most once. A
// missing key, an empty value or null is an empty group. A scalar is
// accepted where a one-element list is expected.
//
// Tokens are the scalars exactly as written: 010, true and 0.10 stay those
// strings and are never resolved to numbers or booleans.
func ParseYAML(data []byte) (domain.Declarations, error) {
	var decl domain.Declarations

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return decl, domain.MalformedInput()
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return decl, domain.MalformedInput()
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return decl, domain.MalformedInput()
	}

	labels := domain.Groups()
	last := -1
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		pos := slices.Index(labels, key.Value)
		if key.Kind != yaml.ScalarNode || pos <= last {
			// Unknown, repeated or out-of-order label.
			return decl, domain.MalformedInput()
		}
		last = pos

		tokens, err := nodeTokens(value)
		if err != nil {
			return decl, err
		}
		decl.SetGroup(key.Value, tokens)
	}
	return decl, nil
}

// nodeTokens returns the literal scalar values held by a group node.
func nodeTokens(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		if node.Value == "" {
			return nil, domain.MalformedInput()
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var tokens []string
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() == "!!null" || item.Value == "" {
				return nil, domain.MalformedInput()
			}
			tokens = append(tokens, item.Value)
		}
		return tokens, nil
	}
	// Mappings and aliases.
	return nil, domain.MalformedInput()
}

// DecodeGroups decodes a generic map keyed by group label, such as a JSON
// object, into decl. A missing or null key is an empty group. Unknown keys
// and any element that is not a string are malformed: values are never
// converted, so 10 and true cannot silently become "10" and "1".
func DecodeGroups(raw map[string]any, decl *domain.Declarations) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      decl,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.MalformedInput()
	}
	for _, label := range domain.Groups() {
		tokens, _ := decl.Group(label)
		if slices.Contains(tokens, "") {
			return domain.MalformedInput()
		}
	}
	return nil
}
