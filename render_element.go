// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import "strings"

// handleOptions are per-call parameters of handle.
type handleOptions struct {
	// parent is the element whose content holds the rendered element.
	parent *Element
	// initialMarker starts the first line, renderer marker when empty.
	initialMarker string
	// initialIndent indents the whole block including its first line.
	initialIndent bool
	// attributes supplies type attributes, default/sample and description; element itself when nil.
	attributes *Element
	// path locates the element in the tree for diagnostics.
	path string
}

// handle renders one element as a newline-terminated MSON block.
func (r *renderer) handle(name string, element *Element, opt handleOptions) (string, error) {
	attributesElement := opt.attributes
	if attributesElement == nil {
		attributesElement = element
	}

	if attributesElement == nil {
		attributesElement = &Element{}
	}

	marker := opt.initialMarker
	if marker == "" {
		marker = r.marker
	}

	var line strings.Builder
	line.WriteString(marker)

	name = inlineText(name)
	if name != "" {
		line.WriteString(" ")
		line.WriteString(name)
	}

	if value, _ := element.ScalarText(); inlineText(value) != "" {
		if name != "" && !isArrayLike(opt.parent) {
			line.WriteString(":")
		}

		line.WriteString(" ")
		line.WriteString(inlineText(value))
	}

	line.WriteString(formatTypeAttributes(typeAttributes(element, attributesElement.Attributes)))

	description, err := r.handleDescription(
		strings.TrimSpace(normalizeLineEndings(attributesElement.Description())),
		element,
		attributesElement,
		opt.path,
	)
	if err != nil {
		return "", err
	}

	line.WriteString(description)

	out := line.String()
	if opt.initialIndent {
		out = indent(out, r.spaces, true)
	}

	return ensureTrailingNewline(out), nil
}

// isArrayLike reports whether parent lists positional items that need no colon.
func isArrayLike(parent *Element) bool {
	switch parent.Kind() {
	case KindArray, KindEnum:
		return true
	default:
		return false
	}
}
