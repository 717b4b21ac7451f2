// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

/*
Package msondoc renders Refract element trees as MSON text.

MSON (Markdown Syntax for Object Notation) is the nested bullet list format used by
API Blueprint to describe data structures. The package walks an already-built element
tree depth-first and emits deterministic, newline-terminated MSON using 4-space
indentation and "+" markers by default. Rendering never mutates the tree.

Render from serialized Refract JSON:

	data, err := os.ReadFile("user.refract.json")
	if err != nil {
		return err
	}

	mson, err := msondoc.RenderBytes(data, msondoc.Options{})
	if err != nil {
		return err
	}

	fmt.Print(mson)

A root with a title (or id) renders as a heading block for a "Data Structures" section:

	### User

	    + name: Alice
	    + age: 42 (number, required)

A root without a title renders as one bulleted attributes block, indented to sit
under a request or response section:

	    + Attributes (object)
	        + name: Alice

Build trees directly:

	root := &msondoc.Element{
		Type: msondoc.TypeObject,
		Content: msondoc.Elements{
			{
				Type: msondoc.TypeMember,
				Content: msondoc.Pair{
					Key:   &msondoc.Element{Type: msondoc.TypeString, Content: msondoc.Scalar{Value: "name"}},
					Value: &msondoc.Element{Type: msondoc.TypeString, Content: msondoc.Scalar{Value: "Alice"}},
				},
			},
		},
	}

	mson, err := msondoc.Render(root, msondoc.Options{})

The "select"/"option" construct is not supported: such elements are skipped and a
warning is written to Options.Logger.

Generate a sample payload from the same tree; ExampleModeRequired keeps only members
whose type attributes include "required":

	jsonExample, err := msondoc.GenerateExample(root, msondoc.ExampleModeAll, msondoc.ExampleFormatJSON)
	if err != nil {
		return err
	}

	fmt.Println(string(jsonExample))
*/
package msondoc
