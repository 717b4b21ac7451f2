// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

package msondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/woozymasta/msondoc/internal/logging"
)

var updateGolden = flag.Bool("update", false, "update golden files")

func TestHandleScalarLeaf(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil)
	got, err := r.handle("age", numberElement("42"), handleOptions{initialIndent: true})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	assertEqual(t, got, "    + age: 42 (number)\n")
}

func TestHandleArrayItemHasNoColon(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil)
	got, err := r.handle("", numberElement("7"), handleOptions{
		parent:        &Element{Type: TypeArray},
		initialIndent: true,
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	assertEqual(t, got, "    + 7 (number)\n")
}

func TestHandleWithoutInitialIndent(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil)
	got, err := r.handle("name", stringElement("Alice"), handleOptions{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	assertEqual(t, got, "+ name: Alice\n")
}

func TestRenderDataStructureWithMember(t *testing.T) {
	t.Parallel()

	root := &Element{
		Type: TypeDataStructure,
		Meta: Meta{Title: "User"},
		Content: Elements{
			objectElement(memberElement("name", stringElement("Alice"))),
		},
	}

	got, err := Render(root, Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "### User\n\n    + name: Alice\n")
}

func TestRenderUntitledRootAsAttributesBlock(t *testing.T) {
	t.Parallel()

	root := objectElement(memberElement("name", stringElement("Alice")))
	got, err := Render(root, Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "    + Attributes (object)\n        + name: Alice\n")
}

func TestRenderNoIndentAndCustomMarkers(t *testing.T) {
	t.Parallel()

	root := objectElement(memberElement("name", stringElement("Alice")))
	got, err := Render(root, Options{
		NoIndent:       true,
		Spaces:         2,
		Marker:         "-",
		AttributesName: "Body",
		Logger:         discardLogger(),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "- Body (object)\n  - name: Alice\n")
}

func TestRenderTitleFromMetaID(t *testing.T) {
	t.Parallel()

	root := &Element{
		Type: TypeDataStructure,
		Content: Wrapped{Element: &Element{
			Type:    TypeObject,
			Meta:    Meta{ID: "Pagination"},
			Content: Elements{memberElement("page", numberElement("1"))},
		}},
	}

	got, err := Render(root, Options{HeadingMarker: "##", Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "## Pagination\n\n    + page: 1 (number)\n")
}

func TestRenderDataStructureExtraBlankLineInEveryForm(t *testing.T) {
	t.Parallel()

	user := func(elementType, description string) *Element {
		body := objectElement(memberElement("name", stringElement("Alice")))
		if elementType == TypeObject {
			body.Meta = Meta{Title: "User", Description: description}
			return body
		}

		return &Element{
			Type:    TypeDataStructure,
			Meta:    Meta{Title: "User", Description: description},
			Content: Wrapped{Element: body},
		}
	}

	role := &Element{
		Type:       TypeDataStructure,
		Meta:       Meta{Title: "Role"},
		Attributes: Attributes{"default": "user"},
		Content: Wrapped{Element: &Element{
			Type:    TypeEnum,
			Content: Elements{stringElement("admin"), stringElement("user")},
		}},
	}

	cases := []struct {
		name string
		root *Element
		want string
	}{
		{
			name: "short form object",
			root: user(TypeObject, "short"),
			want: "### User (object) - short\n    + name: Alice\n",
		},
		{
			name: "short form data structure",
			root: user(TypeDataStructure, "short"),
			want: "### User - short\n\n    + name: Alice\n",
		},
		{
			name: "multiline description object",
			root: user(TypeObject, "a\nb"),
			want: "### User (object)\n\n    a\n    b\n\n    + Properties\n        + name: Alice\n",
		},
		{
			name: "multiline description data structure",
			root: user(TypeDataStructure, "a\nb"),
			want: "### User\n\n    a\n    b\n\n\n    + Properties\n        + name: Alice\n",
		},
		{
			name: "default without description data structure",
			root: role,
			want: "### Role\n\n    + Default: user\n    + Members\n        + admin\n        + user\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tc.root, Options{Logger: discardLogger()})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			assertEqual(t, got, tc.want)
		})
	}
}

func TestRenderDefaultForcesLongForm(t *testing.T) {
	t.Parallel()

	count := memberElement("count", numberElement("3"))
	count.Attributes = Attributes{"default": "5"}

	got, err := Render(objectElement(count), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "+ Attributes (object)\n    + count: 3 (number)\n        + Default: 5\n")
}

func TestRenderDefaultAndSampleOrder(t *testing.T) {
	t.Parallel()

	limit := memberElement("limit", numberElement("10"))
	limit.Attributes = Attributes{"sample": "25", "default": "10"}
	limit.Meta.Description = "Page size."

	got, err := Render(objectElement(limit), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+ Attributes (object)",
		"    + limit: 10 (number)",
		"",
		"        Page size.",
		"",
		"        + Default: 10",
		"        + Sample: 25",
		"",
	}, "\n")
	assertEqual(t, got, want)
}

func TestRenderMultilineDescriptionWithProperties(t *testing.T) {
	t.Parallel()

	address := memberElement("address", objectElement(memberElement("city", stringElement("Prague"))))
	address.Meta.Description = "Postal address.\nUsed for shipping."
	address.Attributes = Attributes{"typeAttributes": []any{"required"}}

	got, err := Render(objectElement(address), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+ Attributes (object)",
		"    + address (object, required)",
		"",
		"        Postal address.",
		"        Used for shipping.",
		"",
		"        + Properties",
		"            + city: Prague",
		"",
	}, "\n")
	assertEqual(t, got, want)
}

func TestRenderEnumMembersSection(t *testing.T) {
	t.Parallel()

	color := memberElement("color", &Element{
		Type:    TypeEnum,
		Content: Elements{stringElement("red"), stringElement("green")},
	})
	color.Attributes = Attributes{"default": "red"}

	got, err := Render(objectElement(color), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+ Attributes (object)",
		"    + color (enum)",
		"        + Default: red",
		"        + Members",
		"            + red",
		"            + green",
		"",
	}, "\n")
	assertEqual(t, got, want)
}

func TestRenderArrayItemsSection(t *testing.T) {
	t.Parallel()

	tags := memberElement("tags", &Element{
		Type:       TypeArray,
		Attributes: Attributes{"sample": "ops"},
		Content:    Elements{stringElement("staff")},
	})

	got, err := Render(objectElement(tags), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+ Attributes (object)",
		"    + tags (array)",
		"        + Sample: ops",
		"        + Items",
		"            + staff",
		"",
	}, "\n")
	assertEqual(t, got, want)
}

func TestRenderShortDescriptionWithNestedItems(t *testing.T) {
	t.Parallel()

	tags := memberElement("tags", &Element{
		Type:    TypeArray,
		Content: Elements{stringElement("a"), stringElement("b")},
	})
	tags.Meta.Description = "Labels."

	got, err := Render(objectElement(tags), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+ Attributes (object)",
		"    + tags (array) - Labels.",
		"        + a",
		"        + b",
		"",
	}, "\n")
	assertEqual(t, got, want)
}

func TestRenderMemberWithoutValue(t *testing.T) {
	t.Parallel()

	member := &Element{
		Type:       TypeMember,
		Attributes: Attributes{"typeAttributes": []any{"optional"}},
		Content:    Pair{Key: stringElement("nickname")},
	}

	got, err := Render(objectElement(member), Options{NoIndent: true, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "+ Attributes (object)\n    + nickname (optional)\n")
}

func TestRenderMemberWithoutKeyReportsPath(t *testing.T) {
	t.Parallel()

	member := &Element{Type: TypeMember, Content: Pair{Value: stringElement("x")}}
	_, err := Render(objectElement(member), Options{Logger: discardLogger()})
	if err == nil {
		t.Fatal("expected error for member without key")
	}

	if !errors.Is(err, ErrMalformedElement) {
		t.Fatalf("error %v does not wrap ErrMalformedElement", err)
	}

	var elementErr *ElementError
	if !errors.As(err, &elementErr) {
		t.Fatalf("error %v is not ElementError", err)
	}

	if elementErr.Path != "content[0].content.key" {
		t.Fatalf("error path = %q, want %q", elementErr.Path, "content[0].content.key")
	}
}

func TestRenderNilRoot(t *testing.T) {
	t.Parallel()

	if _, err := Render(nil, Options{}); !errors.Is(err, ErrNilElement) {
		t.Fatalf("Render(nil) error = %v, want ErrNilElement", err)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	root, err := ParseFile(filepath.Join("testdata", "user.refract.json"), FormatAuto)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	first, err := Render(root, Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i := 0; i < 3; i++ {
		again, err := Render(root, Options{Logger: discardLogger()})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		assertEqual(t, again, first)
	}
}

func TestRenderGoldenUser(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	got, err := RenderFile(filepath.Join("testdata", "user.refract.json"), Options{
		Logger: logging.NewWithWriter(&logs, "warn"),
	})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	goldenPath := filepath.Join("testdata", "user.mson.md")
	if *updateGolden {
		if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	assertEqual(t, got, string(want))
	assertContains(t, logs.String(), "element=select")
}

func TestRenderYAMLMatchesJSON(t *testing.T) {
	t.Parallel()

	fromJSON, err := RenderFile(filepath.Join("testdata", "user.refract.json"), Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("RenderFile json: %v", err)
	}

	fromYAML, err := RenderFile(filepath.Join("testdata", "user.refract.yaml"), Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("RenderFile yaml: %v", err)
	}

	assertEqual(t, fromYAML, fromJSON)
}

func TestRenderBytesUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := RenderBytes([]byte(`{"element":"string"}`), Options{Format: "toml"})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("RenderBytes error = %v, want ErrUnknownFormat", err)
	}
}

func TestNormalizeOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"marker default", normalizeMarker("x"), "+"},
		{"marker dash", normalizeMarker(" - "), "-"},
		{"heading default", normalizeHeadingMarker(""), "###"},
		{"heading invalid", normalizeHeadingMarker("#x"), "###"},
		{"heading too deep", normalizeHeadingMarker("#######"), "###"},
		{"heading h2", normalizeHeadingMarker("##"), "##"},
		{"attributes name default", normalizeAttributesName("  "), "Attributes"},
	}

	for _, tc := range cases {
		tc := tc
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}

	for value, want := range map[int]int{0: defaultSpaces, NoSpaces: 0, -7: 0, 2: 2} {
		if got := normalizeSpaces(value); got != want {
			t.Errorf("normalizeSpaces(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestRenderNoSpacesKeepsNestingFlat(t *testing.T) {
	t.Parallel()

	root := objectElement(memberElement("tags", &Element{Type: TypeArray, Content: Elements{stringElement("staff")}}))
	got, err := Render(root, Options{Spaces: NoSpaces, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "+ Attributes (object)\n+ tags (array)\n+ staff\n")
}

// newTestRenderer builds renderer logging into buf, discarding logs when buf is nil.
func newTestRenderer(t *testing.T, buf *bytes.Buffer) *renderer {
	t.Helper()

	logger := discardLogger()
	if buf != nil {
		logger = logging.NewWithWriter(buf, "debug")
	}

	return newRenderer(Options{Logger: logger})
}

func discardLogger() *log.Logger {
	return logging.NewWithWriter(&bytes.Buffer{}, "error")
}

func stringElement(value string) *Element {
	return &Element{Type: TypeString, Content: Scalar{Value: value}}
}

func numberElement(value string) *Element {
	return &Element{Type: TypeNumber, Content: Scalar{Value: json.Number(value)}}
}

func objectElement(children ...*Element) *Element {
	return &Element{Type: TypeObject, Content: Elements(children)}
}

func memberElement(key string, value *Element) *Element {
	return &Element{
		Type:    TypeMember,
		Content: Pair{Key: stringElement(key), Value: value},
	}
}

func assertEqual(t *testing.T, got, want string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q\n\n%s", needle, haystack)
	}
}

func TestHandleMultilineScalarStaysOnMarkerLine(t *testing.T) {
	t.Parallel()

	root := objectElement(memberElement("k", stringElement("a\nb")))
	got, err := Render(root, Options{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertEqual(t, got, "    + Attributes (object)\n        + k: a b\n")
}
