// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared members.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with members marked required only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation member coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// typeAttributeRequired marks members kept by ExampleModeRequired.
const typeAttributeRequired = "required"

// examplePlaceholders provides fallback values for elements without literal content.
var examplePlaceholders = map[Kind]any{
	KindString:  "<string>",
	KindNumber:  json.Number("0"),
	KindBoolean: false,
	KindNull:    nil,
}

// exampleField is one ordered key of generated object payload.
type exampleField struct {
	Key     string
	Value   any
	Comment string
}

// exampleObject keeps member order of the element tree in generated payload.
type exampleObject []exampleField

// MarshalJSON encodes object keys in member order.
func (object exampleObject) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for index, field := range object {
		if index > 0 {
			out.WriteByte(',')
		}

		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// exampleBuilder converts element tree into example values.
type exampleBuilder struct {
	mode ExampleMode
}

// GenerateExampleJSON returns generated example payload encoded as pretty JSON.
func GenerateExampleJSON(root *Element, mode ExampleMode) ([]byte, error) {
	value, err := generateExampleValue(root, mode)
	if err != nil {
		return nil, err
	}

	data, err := marshalExampleJSON(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return data, nil
}

// GenerateExampleYAML returns generated example payload encoded as YAML.
// Member descriptions become head comments of their keys.
func GenerateExampleYAML(root *Element, mode ExampleMode) ([]byte, error) {
	value, err := generateExampleValue(root, mode)
	if err != nil {
		return nil, err
	}

	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	data, err := marshalExampleYAMLNode(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// GenerateExample returns generated example payload encoded in selected format.
func GenerateExample(root *Element, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatYAML:
		return GenerateExampleYAML(root, mode)
	default:
		return GenerateExampleJSON(root, mode)
	}
}

// generateExampleValue validates input and builds example value for selected mode.
func generateExampleValue(root *Element, mode ExampleMode) (any, error) {
	if root == nil {
		return nil, ErrNilElement
	}

	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{mode: mode}
	return builder.buildValue(root), nil
}

// normalizeExampleMode validates caller mode value, all when empty.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	case "":
		return ExampleModeAll, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	case "":
		return ExampleFormatJSON, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildValue recursively builds example value for one element.
func (b exampleBuilder) buildValue(element *Element) any {
	if element == nil {
		return nil
	}

	if value, ok := explicitExampleValue(element); ok {
		return value
	}

	body, _ := structureBody(element)
	if body != element {
		return b.buildValue(body)
	}

	if text, ok := element.ScalarText(); ok {
		return typedExampleScalar(element.Kind(), text)
	}

	children := element.Children()
	switch {
	case element.Kind() == KindObject || hasMemberChild(children):
		return b.buildObject(children)
	case element.Kind() == KindEnum:
		items := exampleItems(children)
		if len(items) == 0 {
			return nil
		}

		return b.buildValue(items[0])
	case element.Kind() == KindArray || len(children) > 0:
		items := make([]any, 0, len(children))
		for _, child := range exampleItems(children) {
			items = append(items, b.buildValue(child))
		}

		return items
	}

	if value, ok := examplePlaceholders[element.Kind()]; ok {
		return value
	}

	return nil
}

// buildObject materializes object payload from member children in order.
func (b exampleBuilder) buildObject(children []*Element) exampleObject {
	out := make(exampleObject, 0, len(children))
	for _, child := range children {
		if child.Kind() != KindMember {
			continue
		}

		pair, _ := child.Content.(Pair)
		key, ok := pair.Key.ScalarText()
		if !ok || key == "" {
			continue
		}

		if b.mode == ExampleModeRequired && !isRequiredMember(child, pair.Value) {
			continue
		}

		value, ok := explicitExampleValue(child)
		if !ok {
			value = b.buildValue(pair.Value)
		}

		out = append(out, exampleField{
			Key:     key,
			Value:   value,
			Comment: strings.TrimSpace(child.Description()),
		})
	}

	return out
}

// isRequiredMember reports whether member or its value declares required type attribute.
func isRequiredMember(member, value *Element) bool {
	for _, element := range []*Element{member, value} {
		if element == nil {
			continue
		}

		if slices.Contains(element.Attributes.Strings(attributeTypeAttributes), typeAttributeRequired) {
			return true
		}
	}

	return false
}

// exampleItems filters children usable as positional payload items.
func exampleItems(children []*Element) []*Element {
	out := make([]*Element, 0, len(children))
	for _, child := range children {
		switch child.Kind() {
		case KindMember, KindRef, KindSelect, KindOption:
			continue
		}

		if child != nil {
			out = append(out, child)
		}
	}

	return out
}

// hasMemberChild reports whether any child is an object member.
func hasMemberChild(children []*Element) bool {
	for _, child := range children {
		if child.Kind() == KindMember {
			return true
		}
	}

	return false
}

// explicitExampleValue returns sample or default attribute value of element.
func explicitExampleValue(element *Element) (any, bool) {
	valueKind := element.Kind()
	if pair, ok := element.Content.(Pair); ok && pair.Value != nil {
		valueKind = pair.Value.Kind()
	}

	for _, name := range []string{attributeSample, attributeDefault} {
		if text, ok := element.Attributes.Scalar(name); ok {
			return typedExampleScalar(valueKind, text), true
		}
	}

	return nil, false
}

// typedExampleScalar converts literal text to JSON value according to element kind.
func typedExampleScalar(kind Kind, text string) any {
	switch kind {
	case KindNumber:
		if _, err := strconv.ParseFloat(text, 64); err == nil && json.Valid([]byte(text)) {
			return json.Number(text)
		}
	case KindBoolean:
		if value, err := strconv.ParseBool(text); err == nil {
			return value
		}
	case KindNull:
		return nil
	}

	return text
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExampleYAMLNode serializes example payload node as YAML document.
func marshalExampleYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds deterministic yaml.Node tree from example value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}
		float64Value, err := typed.Float64()
		if err != nil {
			return nil, err
		}
		return yamlScalarNode("!!float", strconv.FormatFloat(float64Value, 'g', -1, 64)), nil

	case exampleObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, field := range typed {
			valueNode, err := yamlNodeForValue(field.Value)
			if err != nil {
				return nil, err
			}

			keyNode := yamlScalarNode("!!str", field.Key)
			keyNode.HeadComment = field.Comment
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, valueNode)
		}
		return node, nil

	default:
		return yamlScalarNode("!!str", formatScalar(typed)), nil
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
