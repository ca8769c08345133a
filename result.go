// Package tsexport turns descriptors of tagged Go declarations into
// TypeScript source files, one output unit per declaration, preserving the
// package layout as a directory tree and resolving cross-declaration
// references into relative imports.
package tsexport

import (
	"path"

	"github.com/TournyMasterBot/tsexport/descriptor"
)

// ImportDirective is one import line required by an output unit: the
// imported symbol and the relative module path it is imported from.
// Directives are value objects; units deduplicate them by equality of both
// fields.
type ImportDirective struct {
	// Symbol is the bare imported type name.
	Symbol string

	// Path is the relative module path, e.g. "./User" or "../orders/Order".
	Path string
}

// OutputUnit is the complete generated artifact for one declaration.
type OutputUnit struct {
	// Name is the declaration's bare name.
	Name string

	// Namespace is the declaration's namespace path.
	Namespace []string

	// Kind is the declaration kind the unit was rendered from.
	Kind descriptor.Kind

	// Imports holds the unit's import directives in first-seen order,
	// deduplicated, with no self-import.
	Imports []ImportDirective

	// Text is the rendered file content: import block, separator, body.
	Text string
}

// Path returns the unit's relative output path: namespace segments become
// directory segments, followed by the bare name and the target extension.
func (u *OutputUnit) Path(ext string) string {
	segs := append(append([]string{}, u.Namespace...), u.Name+"."+ext)
	return path.Join(segs...)
}

// Generator renders one declaration into an output unit for a target
// language. A nil unit with a nil error means the declaration rendered to
// nothing and is omitted from the write set.
type Generator interface {
	// Language returns the target language name, e.g. "typescript".
	Language() string

	// FileExtension returns the output file extension without the dot.
	FileExtension() string

	// GenerateUnit renders decl. Errors identify the declaration and
	// member at fault and abort only that declaration.
	GenerateUnit(decl descriptor.DeclarationDescriptor) (*OutputUnit, error)
}
