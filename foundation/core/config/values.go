// File: values.go
// Title: Ordered Key-Value Documents
// Description: Loads flat key-value documents from TOML or YAML while keeping
//              the order in which keys appear in the file. Nested tables are
//              flattened into dotted keys.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package config

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/mapx"
)

// LoadValues reads a TOML or YAML document into an ordered map. Keys keep
// their document order; nested tables become dotted keys such as "db.host".
func LoadValues(filePath string) (*mapx.Ordered[string, any], error) {
	content, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	values, err := ParseValues(content, DetectFormat(filePath))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse values file").
			WithDetail("path", filePath)
	}
	return values, nil
}

// ParseValues parses content in the given format into an ordered map
func ParseValues(content []byte, format Format) (*mapx.Ordered[string, any], error) {
	switch format {
	case FormatTOML, FormatAuto:
		return parseTOMLValues(content)
	case FormatYAML:
		return parseYAMLValues(content)
	default:
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "parse_values", "format", format.String(),
			"unsupported configuration format")
	}
}

func parseTOMLValues(content []byte) (*mapx.Ordered[string, any], error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(content), &raw)
	if err != nil {
		return nil, parseError(FormatTOML, err)
	}

	values := mapx.NewOrdered[string, any]()
	for _, key := range md.Keys() {
		value, ok := lookup(raw, key)
		if !ok {
			continue
		}
		if _, isTable := value.(map[string]interface{}); isTable {
			continue
		}
		values.Set(strings.Join(key, "."), value)
	}
	return values, nil
}

// lookup walks raw along key. Keys below arrays of tables are not addressable.
func lookup(raw map[string]interface{}, key toml.Key) (interface{}, bool) {
	current := raw
	for i, part := range key {
		value, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(key)-1 {
			return value, true
		}
		if current, ok = value.(map[string]interface{}); !ok {
			return nil, false
		}
	}
	return nil, false
}

func parseYAMLValues(content []byte) (*mapx.Ordered[string, any], error) {
	values := mapx.NewOrdered[string, any]()
	if len(bytes.TrimSpace(content)) == 0 {
		return values, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, parseError(FormatYAML, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return values, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse_values").
			Message("values document must be a mapping").
			Code(mdwerror.CodeInvalidConfig).
			Detail("line", root.Line).
			Build()
	}

	if err := flattenYAML("", root, values); err != nil {
		return nil, parseError(FormatYAML, err)
	}
	return values, nil
}

func flattenYAML(prefix string, node *yaml.Node, values *mapx.Ordered[string, any]) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if prefix != "" {
			key = prefix + "." + key
		}

		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}
		if valueNode.Kind == yaml.MappingNode {
			if err := flattenYAML(key, valueNode, values); err != nil {
				return err
			}
			continue
		}

		var value interface{}
		if err := valueNode.Decode(&value); err != nil {
			return err
		}
		values.Set(key, value)
	}
	return nil
}
