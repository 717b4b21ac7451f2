// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"strings"

	"github.com/woozymasta/msondoc/internal/logging"
)

// shape classifies container content as named fields or positional items.
type shape int

const (
	// shapeUnknown means no member or item child was rendered.
	shapeUnknown shape = iota
	// shapeObject means at least one member child was rendered.
	shapeObject
	// shapeArray means only non-member children were rendered.
	shapeArray
)

// handleContent renders child content of container and classifies it.
// Member children make the container object-like for good, ref children keep
// the classification unchanged and select/option children are reported and skipped.
func (r *renderer) handleContent(container *Element, path string) (string, shape, error) {
	children := container.Children()
	if len(children) == 0 {
		return "", shapeUnknown, nil
	}

	contentPath := appendPath(path, "content")
	classification := shapeUnknown

	var out strings.Builder
	for index, child := range children {
		if child == nil {
			continue
		}

		childPath := indexPath(contentPath, index)
		if _, wrapped := container.Content.(Wrapped); wrapped {
			childPath = contentPath
		}

		switch child.Kind() {
		case KindMember:
			classification = shapeObject
			rendered, err := r.handleMember(container, child, childPath)
			if err != nil {
				return "", shapeUnknown, err
			}

			out.WriteString(rendered)
		case KindRef:
			rendered, err := r.handleRef(child, childPath)
			if err != nil {
				return "", shapeUnknown, err
			}

			out.WriteString(rendered)
		case KindSelect, KindOption:
			r.logger.Warn("unsupported element skipped",
				logging.FieldElement, child.Type,
				logging.FieldPath, pathOrRoot(childPath),
			)
		default:
			if classification != shapeObject {
				classification = shapeArray
			}

			rendered, err := r.handle(child.Title(), child, handleOptions{
				parent:        container,
				initialIndent: true,
				path:          childPath,
			})
			if err != nil {
				return "", shapeUnknown, err
			}

			out.WriteString(rendered)
		}
	}

	return out.String(), classification, nil
}

// handleMember renders member using key text as name and value as described element.
// Attributes and description are read from the member wrapper.
func (r *renderer) handleMember(parent, member *Element, path string) (string, error) {
	pair, _ := member.Content.(Pair)
	if pair.Key == nil {
		return "", elementErrorf(appendPath(path, "content.key"), ErrMalformedElement, "member has no key")
	}

	name, ok := pair.Key.ScalarText()
	if !ok || strings.TrimSpace(name) == "" {
		return "", elementErrorf(appendPath(path, "content.key"), ErrMalformedElement, "member key has no literal content")
	}

	return r.handle(name, pair.Value, handleOptions{
		parent:        parent,
		initialIndent: true,
		attributes:    member,
		path:          appendPath(path, "content.value"),
	})
}

// handleRef renders inclusion line at sibling indent level.
func (r *renderer) handleRef(ref *Element, path string) (string, error) {
	var href string
	switch content := ref.Content.(type) {
	case Ref:
		href = content.Href
	case Scalar:
		href = formatScalar(content.Value)
	}

	href = strings.TrimSpace(href)
	if href == "" {
		return "", elementErrorf(appendPath(path, "content"), ErrMalformedElement, "ref has no href")
	}

	return indent(r.marker+" Include "+href, r.spaces, true) + "\n", nil
}

// structureBody returns the element whose children describe the structure.
// Data structure wrappers holding one type element are unwrapped to that element.
func structureBody(element *Element) (*Element, string) {
	if element.Kind() != KindDataStructure {
		return element, ""
	}

	children := element.Children()
	if len(children) != 1 || children[0] == nil {
		return element, ""
	}

	switch children[0].Kind() {
	case KindMember, KindRef, KindSelect, KindOption:
		return element, ""
	}

	if _, wrapped := element.Content.(Wrapped); wrapped {
		return children[0], "content"
	}

	return children[0], "content[0]"
}
