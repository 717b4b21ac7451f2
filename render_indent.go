// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import "strings"

// indent pads every non-blank line by width spaces.
// The first line is padded only when first is set. Blank lines stay empty, leading blank
// lines and trailing whitespace are trimmed from the result.
func indent(text string, width int, first bool) string {
	if width < 0 {
		width = 0
	}

	pad := strings.Repeat(" ", width)
	lines := strings.Split(normalizeLineEndings(text), "\n")
	for index, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[index] = ""
			continue
		}

		if index == 0 && !first {
			continue
		}

		lines[index] = pad + line
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimLeft(out, "\n")
	return strings.TrimRight(out, " \t\n")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// inlineText folds multi-line text into one line so it stays on the marker line.
// Single-line text is returned unchanged.
func inlineText(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}

	return strings.Join(strings.Fields(text), " ")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, " \t\n")
	return value + "\n"
}
