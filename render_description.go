// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import "strings"

// Section headers of long-form content blocks.
const (
	sectionProperties = "Properties"
	sectionMembers    = "Members"
	sectionItems      = "Items"
)

// handleDescription renders the block following element name, type and attributes.
//
// Short form appends description inline after " - " and nested content on the next lines.
// Long form, used when default or sample is declared or description spans several lines,
// renders description as indented paragraph followed by Default, Sample and a section
// header over the nested content.
func (r *renderer) handleDescription(description string, element, attributesElement *Element, path string) (string, error) {
	defaultValue, hasDefault := lookupScalarAttribute(attributeDefault, attributesElement, element)
	sampleValue, hasSample := lookupScalarAttribute(attributeSample, attributesElement, element)
	long := hasDefault || hasSample || strings.Contains(description, "\n")

	body, bodyPath := structureBody(element)
	content, classification, err := r.handleContent(body, appendPath(path, bodyPath))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if description != "" {
		if long {
			out.WriteString("\n\n")
			out.WriteString(indent(description, r.spaces, true))
		} else {
			out.WriteString(" - ")
			out.WriteString(description)
		}
	}

	separator := "\n"
	if long && description != "" {
		separator = "\n\n"
	}

	if element.Kind() == KindDataStructure {
		separator += "\n"
	}

	if !long {
		if content != "" {
			out.WriteString(separator)
			out.WriteString(strings.TrimRight(content, "\n"))
		}

		return out.String(), nil
	}

	lines := make([]string, 0, 4)
	if hasDefault {
		lines = append(lines, r.marker+" Default: "+defaultValue)
	}

	if hasSample {
		lines = append(lines, r.marker+" Sample: "+sampleValue)
	}

	if content != "" {
		lines = append(lines, r.marker+" "+sectionHeader(classification, body))
		lines = append(lines, strings.TrimRight(content, "\n"))
	}

	if len(lines) == 0 {
		return out.String(), nil
	}

	out.WriteString(separator)
	out.WriteString(indent(strings.Join(lines, "\n"), r.spaces, true))
	return out.String(), nil
}

// sectionHeader names long-form content section.
func sectionHeader(classification shape, body *Element) string {
	if classification == shapeObject {
		return sectionProperties
	}

	if body.Kind() == KindEnum {
		return sectionMembers
	}

	return sectionItems
}
