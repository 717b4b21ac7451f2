// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Well-known element type tags.
const (
	TypeString        = "string"
	TypeNumber        = "number"
	TypeBoolean       = "boolean"
	TypeNull          = "null"
	TypeObject        = "object"
	TypeArray         = "array"
	TypeEnum          = "enum"
	TypeMember        = "member"
	TypeRef           = "ref"
	TypeSelect        = "select"
	TypeOption        = "option"
	TypeDataStructure = "dataStructure"
)

// Kind identifies the rendering variant of an element type tag.
type Kind int

const (
	// KindOther covers named types and any unrecognized tag.
	KindOther Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindArray
	KindEnum
	KindMember
	KindRef
	KindSelect
	KindOption
	KindDataStructure
)

var kindByType = map[string]Kind{
	TypeString:        KindString,
	TypeNumber:        KindNumber,
	TypeBoolean:       KindBoolean,
	TypeNull:          KindNull,
	TypeObject:        KindObject,
	TypeArray:         KindArray,
	TypeEnum:          KindEnum,
	TypeMember:        KindMember,
	TypeRef:           KindRef,
	TypeSelect:        KindSelect,
	TypeOption:        KindOption,
	TypeDataStructure: KindDataStructure,
}

// KindOf maps element type tag to its Kind.
func KindOf(elementType string) Kind {
	if kind, ok := kindByType[elementType]; ok {
		return kind
	}

	return KindOther
}

// String returns the canonical type tag of the kind, or "other".
func (k Kind) String() string {
	for tag, kind := range kindByType {
		if kind == k {
			return tag
		}
	}

	return "other"
}

// Element is one node of a Refract element tree.
type Element struct {
	// Type is the raw type tag, for example "object" or a named type such as "User".
	Type       string
	Meta       Meta
	Attributes Attributes
	// Content is nil when the element declares no content.
	Content Content
}

// Meta holds element metadata values already resolved to plain strings.
type Meta struct {
	ID          string
	Title       string
	Description string
}

// Kind returns the rendering variant of element type.
func (e *Element) Kind() Kind {
	if e == nil {
		return KindOther
	}

	return KindOf(e.Type)
}

// Title returns meta title or empty string.
func (e *Element) Title() string {
	if e == nil {
		return ""
	}

	return e.Meta.Title
}

// Description returns meta description or empty string.
func (e *Element) Description() string {
	if e == nil {
		return ""
	}

	return e.Meta.Description
}

// IsScalar reports whether element content is a literal value.
func (e *Element) IsScalar() bool {
	if e == nil {
		return false
	}

	_, ok := e.Content.(Scalar)
	return ok
}

// ScalarText returns literal content as display text.
func (e *Element) ScalarText() (string, bool) {
	if e == nil {
		return "", false
	}

	scalar, ok := e.Content.(Scalar)
	if !ok {
		return "", false
	}

	return formatScalar(scalar.Value), true
}

// Children returns nested elements of sequence content.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}

	switch content := e.Content.(type) {
	case Elements:
		return content
	case Wrapped:
		if content.Element == nil {
			return nil
		}

		return []*Element{content.Element}
	default:
		return nil
	}
}

// Content is the closed set of element content variants.
type Content interface {
	isContent()
}

// Scalar is literal example content such as a string, number or boolean.
type Scalar struct {
	Value any
}

// Elements is an ordered sequence of child elements.
type Elements []*Element

// Pair is member content modeling one object field.
type Pair struct {
	Key   *Element
	Value *Element
}

// Ref is inclusion content pointing at another named structure.
type Ref struct {
	Href string
}

// Wrapped is a single nested element, as used by data structure wrappers.
type Wrapped struct {
	Element *Element
}

func (Scalar) isContent()   {}
func (Elements) isContent() {}
func (Pair) isContent()     {}
func (Ref) isContent()      {}
func (Wrapped) isContent()  {}

// Attributes maps attribute names to scalars, *Element or []any values.
type Attributes map[string]any

// Lookup returns raw attribute value.
func (a Attributes) Lookup(name string) (any, bool) {
	if a == nil {
		return nil, false
	}

	value, ok := a[name]
	return value, ok
}

// Scalar returns attribute value as display text when it is a literal or literal element.
func (a Attributes) Scalar(name string) (string, bool) {
	value, ok := a.Lookup(name)
	if !ok {
		return "", false
	}

	return scalarText(value)
}

// Strings returns attribute value as string list; Refract array elements are flattened.
func (a Attributes) Strings(name string) []string {
	value, ok := a.Lookup(name)
	if !ok {
		return nil
	}

	var items []any
	switch typed := value.(type) {
	case []any:
		items = typed
	case []string:
		out := make([]string, 0, len(typed))
		return append(out, typed...)
	case *Element:
		for _, child := range typed.Children() {
			items = append(items, child)
		}

		if len(items) == 0 {
			items = []any{typed}
		}
	default:
		items = []any{typed}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := scalarText(item)
		if !ok || text == "" {
			continue
		}

		out = append(out, text)
	}

	return out
}

// scalarText renders literal value or literal element as text.
func scalarText(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case *Element:
		return typed.ScalarText()
	case []any, map[string]any:
		return "", false
	default:
		return formatScalar(typed), true
	}
}

// formatScalar renders literal content value without quoting.
func formatScalar(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case float32:
		return strconv.FormatFloat(float64(typed), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(typed))
	}
}
