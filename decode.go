// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

const (
	// FormatAuto detects JSON or YAML from input content or file extension.
	FormatAuto Format = ""
	// FormatJSON decodes serialized Refract JSON.
	FormatJSON Format = "json"
	// FormatYAML decodes serialized Refract YAML.
	FormatYAML Format = "yaml"
)

// Format selects serialized element tree encoding.
type Format string

// ParseFile reads serialized element tree from file.
// Files ending with .gz or .zst are decompressed before decoding.
func ParseFile(path string, format Format) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadElementFile, err)
	}

	name := strings.ToLower(path)
	switch filepath.Ext(name) {
	case ".gz":
		data, err = decompressGzip(data)
		name = strings.TrimSuffix(name, ".gz")
	case ".zst":
		data, err = decompressZstd(data)
		name = strings.TrimSuffix(name, ".zst")
	}

	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadElementFile, path, err)
	}

	if format == FormatAuto {
		format = formatFromExtension(filepath.Ext(name))
	}

	return Parse(data, format)
}

// Parse decodes serialized element tree in selected format.
func Parse(data []byte, format Format) (*Element, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}

	if format == FormatAuto {
		format = detectFormat(data)
	}

	if format == FormatYAML {
		return ParseYAML(data)
	}

	return ParseJSON(data)
}

// ParseJSON decodes serialized Refract JSON element tree.
func ParseJSON(data []byte) (*Element, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeElement, err)
	}

	return decodeElement(raw, "")
}

// ParseYAML decodes serialized Refract YAML element tree.
func ParseYAML(data []byte) (*Element, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeElement, err)
	}

	return decodeElement(raw, "")
}

// normalizeFormat validates caller format value.
func normalizeFormat(format Format) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case FormatAuto, FormatJSON, FormatYAML:
		return normalized, nil
	case "auto":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// detectFormat treats documents starting with an object brace as JSON.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}

	return FormatYAML
}

// formatFromExtension maps file extension to format, auto when unknown.
func formatFromExtension(ext string) Format {
	switch strings.ToLower(ext) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	return io.ReadAll(reader)
}

func decompressZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return decoder.DecodeAll(data, nil)
}

// decodeElement converts generic decoded document value into Element tree.
func decodeElement(raw any, path string) (*Element, error) {
	object, ok := asObject(raw)
	if !ok {
		return nil, elementErrorf(pathOrRoot(path), ErrDecodeElement, "element must be an object, got %s", describeValue(raw))
	}

	elementType, ok := object["element"].(string)
	if !ok || strings.TrimSpace(elementType) == "" {
		return nil, elementErrorf(pathOrRoot(path), ErrDecodeElement, "missing element type")
	}

	element := &Element{Type: elementType}

	if rawMeta, exists := object["meta"]; exists && rawMeta != nil {
		meta, err := decodeMeta(rawMeta, appendPath(path, "meta"))
		if err != nil {
			return nil, err
		}

		element.Meta = meta
	}

	if rawAttributes, exists := object["attributes"]; exists && rawAttributes != nil {
		attributes, err := decodeAttributes(rawAttributes, appendPath(path, "attributes"))
		if err != nil {
			return nil, err
		}

		element.Attributes = attributes
	}

	rawContent, exists := object["content"]
	if !exists || rawContent == nil {
		return element, nil
	}

	content, err := decodeContent(KindOf(elementType), rawContent, appendPath(path, "content"))
	if err != nil {
		return nil, err
	}

	element.Content = content
	return element, nil
}

// decodeMeta resolves title, id and description to plain strings.
func decodeMeta(raw any, path string) (Meta, error) {
	object, ok := asObject(raw)
	if !ok {
		return Meta{}, elementErrorf(path, ErrDecodeElement, "meta must be an object")
	}

	var meta Meta
	for key, target := range map[string]*string{
		"id":          &meta.ID,
		"title":       &meta.Title,
		"description": &meta.Description,
	} {
		value, exists := object[key]
		if !exists || value == nil {
			continue
		}

		text, err := decodeMetaValue(value, appendPath(path, key))
		if err != nil {
			return Meta{}, err
		}

		*target = text
	}

	return meta, nil
}

// decodeMetaValue accepts plain scalar or Refract string element.
func decodeMetaValue(raw any, path string) (string, error) {
	if _, ok := asObject(raw); ok {
		element, err := decodeElement(raw, path)
		if err != nil {
			return "", err
		}

		text, _ := element.ScalarText()
		return text, nil
	}

	text, ok := scalarText(normalizeScalar(raw))
	if !ok {
		return "", elementErrorf(path, ErrDecodeElement, "meta value must be scalar, got %s", describeValue(raw))
	}

	return text, nil
}

// decodeAttributes converts attribute values, nested elements are decoded recursively.
func decodeAttributes(raw any, path string) (Attributes, error) {
	object, ok := asObject(raw)
	if !ok {
		return nil, elementErrorf(path, ErrDecodeElement, "attributes must be an object")
	}

	attributes := make(Attributes, len(object))
	for _, key := range sortedKeys(object) {
		value, err := decodeAttributeValue(object[key], appendPath(path, key))
		if err != nil {
			return nil, err
		}

		attributes[key] = value
	}

	return attributes, nil
}

// decodeAttributeValue converts one attribute value.
func decodeAttributeValue(raw any, path string) (any, error) {
	if object, ok := asObject(raw); ok {
		if _, isElement := object["element"]; isElement {
			return decodeElement(object, path)
		}

		return object, nil
	}

	if items, ok := raw.([]any); ok {
		out := make([]any, 0, len(items))
		for index, item := range items {
			value, err := decodeAttributeValue(item, indexPath(path, index))
			if err != nil {
				return nil, err
			}

			out = append(out, value)
		}

		return out, nil
	}

	return normalizeScalar(raw), nil
}

// decodeContent converts raw content according to element kind.
func decodeContent(kind Kind, raw any, path string) (Content, error) {
	switch kind {
	case KindMember:
		return decodePair(raw, path)
	case KindRef:
		return decodeRef(raw, path)
	}

	if items, ok := raw.([]any); ok {
		children := make(Elements, 0, len(items))
		for index, item := range items {
			child, err := decodeElement(item, indexPath(path, index))
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		}

		return children, nil
	}

	if object, ok := asObject(raw); ok {
		if _, isElement := object["element"]; !isElement {
			return nil, elementErrorf(path, ErrDecodeElement, "object content must be an element")
		}

		child, err := decodeElement(object, path)
		if err != nil {
			return nil, err
		}

		return Wrapped{Element: child}, nil
	}

	return Scalar{Value: normalizeScalar(raw)}, nil
}

// decodePair decodes member key/value content; both sides may be absent.
func decodePair(raw any, path string) (Content, error) {
	object, ok := asObject(raw)
	if !ok {
		return nil, elementErrorf(path, ErrDecodeElement, "member content must be an object with key and value")
	}

	var pair Pair
	if rawKey, exists := object["key"]; exists && rawKey != nil {
		key, err := decodeElement(rawKey, appendPath(path, "key"))
		if err != nil {
			return nil, err
		}

		pair.Key = key
	}

	if rawValue, exists := object["value"]; exists && rawValue != nil {
		value, err := decodeElement(rawValue, appendPath(path, "value"))
		if err != nil {
			return nil, err
		}

		pair.Value = value
	}

	return pair, nil
}

// decodeRef accepts plain href string or {"href": ...} object.
func decodeRef(raw any, path string) (Content, error) {
	if href, ok := raw.(string); ok {
		return Ref{Href: href}, nil
	}

	object, ok := asObject(raw)
	if !ok {
		return nil, elementErrorf(path, ErrDecodeElement, "ref content must be href string or object")
	}

	href, ok := object["href"].(string)
	if !ok {
		return nil, elementErrorf(appendPath(path, "href"), ErrDecodeElement, "missing href")
	}

	return Ref{Href: href}, nil
}

// asObject returns string-keyed map from JSON or YAML decoded value.
func asObject(raw any) (map[string]any, bool) {
	switch typed := raw.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = value
		}

		return out, true
	default:
		return nil, false
	}
}

// normalizeScalar keeps YAML and JSON literals printable with the same text.
func normalizeScalar(raw any) any {
	switch typed := raw.(type) {
	case int:
		return json.Number(strconv.Itoa(typed))
	case int64:
		return json.Number(strconv.FormatInt(typed, 10))
	case uint64:
		return json.Number(strconv.FormatUint(typed, 10))
	case float64:
		return json.Number(strconv.FormatFloat(typed, 'g', -1, 64))
	default:
		return raw
	}
}

// describeValue names decoded value kind for error messages.
func describeValue(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	default:
		return "number"
	}
}

// sortedKeys returns deterministic sorted keys of decoded object.
func sortedKeys(object map[string]any) []string {
	out := make([]string, 0, len(object))
	for key := range object {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}

// appendPath joins path segments with a dot while preserving empty root prefix.
func appendPath(base, segment string) string {
	if base == "" {
		return segment
	}

	if segment == "" {
		return base
	}

	return base + "." + segment
}

// indexPath appends sequence index to path.
func indexPath(base string, index int) string {
	return base + "[" + strconv.Itoa(index) + "]"
}

// pathOrRoot names empty path as root for error messages.
func pathOrRoot(path string) string {
	if path == "" {
		return "(root)"
	}

	return path
}
