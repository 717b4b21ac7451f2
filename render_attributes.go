// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import "strings"

const (
	attributeTypeAttributes = "typeAttributes"
	attributeDefault        = "default"
	attributeSample         = "sample"
)

// typeAttributes returns labels rendered in parentheses after element name.
// String and data structure types are implicit and omitted.
func typeAttributes(element *Element, attributes Attributes) []string {
	out := make([]string, 0, 4)
	if element != nil && element.Type != "" {
		switch element.Kind() {
		case KindString, KindDataStructure:
		default:
			out = append(out, element.Type)
		}
	}

	if attributes == nil {
		return out
	}

	return append(out, attributes.Strings(attributeTypeAttributes)...)
}

// formatTypeAttributes renders attribute labels as " (a, b)" suffix.
func formatTypeAttributes(labels []string) string {
	if len(labels) == 0 {
		return ""
	}

	return " (" + strings.Join(labels, ", ") + ")"
}

// lookupScalarAttribute reads literal attribute from the first element declaring it.
func lookupScalarAttribute(name string, elements ...*Element) (string, bool) {
	for _, element := range elements {
		if element == nil {
			continue
		}

		if value, ok := element.Attributes.Scalar(name); ok {
			return value, true
		}
	}

	return "", false
}
