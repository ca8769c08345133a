package typescript

import (
	"fmt"
	"strings"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/errors"
)

// Header prepended to every generated file.
const Header = "/* eslint-disable */\n// Code generated by tsexport. DO NOT EDIT.\n"

// Generator implements tsexport.Generator for TypeScript.
type Generator struct{}

// NewGenerator creates a new TypeScript generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "typescript".
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns "ts".
func (g *Generator) FileExtension() string {
	return "ts"
}

// GenerateUnit renders one declaration: a deduplicated import block in
// first-seen order, a blank separator, and the declaration body with one
// line per member in declaration order.
//
// A malformed member type (a nullable wrapper that cannot be unwrapped)
// aborts this declaration with an error naming the declaration and member;
// other declarations are unaffected.
func (g *Generator) GenerateUnit(decl descriptor.DeclarationDescriptor) (*tsexport.OutputUnit, error) {
	if decl.Kind != descriptor.KindInterface && decl.Kind != descriptor.KindClass {
		// Unknown declaration kinds render to nothing and are omitted
		// from the write set rather than treated as errors.
		return nil, nil
	}

	owner := decl.Type()

	var imports []tsexport.ImportDirective
	seen := make(map[tsexport.ImportDirective]bool)
	add := func(dir tsexport.ImportDirective) {
		if !seen[dir] {
			seen[dir] = true
			imports = append(imports, dir)
		}
	}

	var body strings.Builder
	writeComment(&body, decl.Comment, "")
	fmt.Fprintf(&body, "export %s %s {\n", decl.Kind, decl.Name)

	for _, member := range decl.Members {
		CollectImports(member.Type, owner, add)

		tsType, err := MapType(member.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "declaration %q member %q", decl.QualifiedName(), member.Name)
		}

		writeComment(&body, member.Comment, "  ")
		fmt.Fprintf(&body, "  %s%s: %s;\n", member.EmitName(), marker(tsType, decl.Kind), tsType)
	}

	body.WriteString("}\n")

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, dir := range imports {
		fmt.Fprintf(&sb, "import { %s } from '%s';\n", dir.Symbol, dir.Path)
	}
	if len(imports) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(body.String())

	return &tsexport.OutputUnit{
		Name:      decl.Name,
		Namespace: decl.Namespace,
		Kind:      decl.Kind,
		Imports:   imports,
		Text:      sb.String(),
	}, nil
}

// marker returns the member suffix: optional when the rendered type ends
// with the nullable marker, otherwise the definite-assignment marker for
// classes. Interface members carry no marker; required is their default.
func marker(tsType string, kind descriptor.Kind) string {
	if strings.HasSuffix(tsType, "?") {
		return "?"
	}
	if kind == descriptor.KindClass {
		return "!"
	}
	return ""
}

// writeComment emits a JSDoc line for a doc comment, if any.
func writeComment(sb *strings.Builder, comment, indent string) {
	if comment == "" {
		return
	}
	fmt.Fprintf(sb, "%s/** %s */\n", indent, comment)
}
