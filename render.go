// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/woozymasta/msondoc/internal/logging"
)

const (
	// defaultSpaces is indent width of one nesting level.
	defaultSpaces = 4
	// defaultMarker is MSON list marker.
	defaultMarker = "+"
	// defaultHeadingMarker prefixes titled data structure blocks.
	defaultHeadingMarker = "###"
	// defaultAttributesName names untitled root blocks.
	defaultAttributesName = "Attributes"
)

// NoSpaces requests zero indent width, since zero Spaces selects the default.
const NoSpaces = -1

// Options configures MSON rendering.
type Options struct {
	// Spaces is indent width per nesting level, 4 when zero; NoSpaces or any negative value disables indentation.
	Spaces int
	// Marker is list marker character, "+" when empty.
	Marker string
	// HeadingMarker prefixes titled roots, "###" when empty.
	HeadingMarker string
	// AttributesName names untitled roots, "Attributes" when empty.
	AttributesName string
	// NoIndent disables outer indentation of untitled roots.
	NoIndent bool
	// Format selects decoding for RenderBytes and RenderFile.
	Format Format
	// Logger receives diagnostics for unsupported constructs; logging.Default() when nil.
	Logger *log.Logger
}

// renderer carries normalized options through the recursive rendering steps.
type renderer struct {
	spaces int
	marker string
	logger *log.Logger
}

// RenderFile decodes element tree file and renders it as MSON.
func RenderFile(path string, opt Options) (string, error) {
	root, err := ParseFile(path, opt.Format)
	if err != nil {
		return "", err
	}

	return Render(root, opt)
}

// RenderBytes decodes serialized element tree and renders it as MSON.
func RenderBytes(data []byte, opt Options) (string, error) {
	root, err := Parse(data, opt.Format)
	if err != nil {
		return "", err
	}

	return Render(root, opt)
}

// Render converts element tree into newline-terminated MSON text.
//
// Titled roots render as a heading block suited for a "Data Structures" section.
// Untitled roots render as one bulleted attributes block for inlining under a
// resource or payload section.
func Render(root *Element, opt Options) (string, error) {
	if root == nil {
		return "", ErrNilElement
	}

	r := newRenderer(opt)

	var (
		out string
		err error
	)

	if title := rootTitle(root); title != "" {
		out, err = r.handle(title, root, handleOptions{
			initialMarker: normalizeHeadingMarker(opt.HeadingMarker),
			initialIndent: false,
		})
	} else {
		out, err = r.handle(normalizeAttributesName(opt.AttributesName), root, handleOptions{
			initialMarker: r.marker,
			initialIndent: !opt.NoIndent,
		})
	}

	if err != nil {
		return "", fmt.Errorf("render mson: %w", err)
	}

	return ensureTrailingNewline(out), nil
}

// newRenderer normalizes caller options.
func newRenderer(opt Options) *renderer {
	logger := opt.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &renderer{
		spaces: normalizeSpaces(opt.Spaces),
		marker: normalizeMarker(opt.Marker),
		logger: logger,
	}
}

// rootTitle resolves root display title from meta title, id or wrapped structure.
func rootTitle(root *Element) string {
	for _, candidate := range []string{root.Meta.Title, root.Meta.ID} {
		if title := strings.TrimSpace(candidate); title != "" {
			return title
		}
	}

	if root.Kind() != KindDataStructure {
		return ""
	}

	wrapped := root.Children()
	if len(wrapped) != 1 || wrapped[0] == nil {
		return ""
	}

	for _, candidate := range []string{wrapped[0].Meta.Title, wrapped[0].Meta.ID} {
		if title := strings.TrimSpace(candidate); title != "" {
			return title
		}
	}

	return ""
}

// normalizeSpaces validates indent width and falls back to default.
func normalizeSpaces(value int) int {
	if value < 0 {
		return 0
	}

	if value == 0 {
		return defaultSpaces
	}

	return value
}

// normalizeMarker validates list marker and falls back to default.
func normalizeMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "+":
		return "+"
	case "-":
		return "-"
	case "*":
		return "*"
	default:
		return defaultMarker
	}
}

// normalizeHeadingMarker accepts one to six hashes, default otherwise.
func normalizeHeadingMarker(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 6 || strings.Trim(value, "#") != "" {
		return defaultHeadingMarker
	}

	return value
}

// normalizeAttributesName falls back to default block name.
func normalizeAttributesName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultAttributesName
	}

	return value
}
