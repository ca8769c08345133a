// Package descriptor defines the structural metadata the exporter operates
// on: types, members, and declarations, independent of any runtime instance.
//
// Descriptors are produced by a discovery collaborator (see the discover
// package for the static-analysis provider) and consumed read-only by the
// mapping and emission passes. They carry no behavior beyond queries.
package descriptor

import "strings"

// CollectionsNamespace is the namespace assigned to the host runtime's
// builtin container types (slices, arrays, maps). It mirrors godoc's
// "builtin" pseudo-package.
const CollectionsNamespace = "builtin"

// BaseNamespace is the namespace prefix assigned to standard-library
// types, mirroring the stdlib's own module name. "std/time" for time,
// "std/database/sql" for database/sql. Keeping the prefix explicit makes
// base-library membership a plain prefix check that can never collide
// with a module-relative user namespace.
const BaseNamespace = "std"

// TypeDescriptor is an immutable handle to a declared type.
type TypeDescriptor struct {
	// Name is the bare type name, e.g. "User", "string", "slice".
	Name string

	// Namespace is the enclosing namespace path, split into segments.
	// For in-module types this is the package path relative to the module
	// root; for standard-library types it is the import path; empty for
	// unqualified primitives and for types the provider degraded.
	Namespace []string

	// Primitive marks builtin scalar types (string, bool, numeric widths).
	Primitive bool

	// Enum marks named constant-set types. Enums render inline and are
	// never imported.
	Enum bool

	// TypeArgs holds generic arguments in declaration order. Slices carry
	// one, maps carry two.
	TypeArgs []*TypeDescriptor

	// KeyValue marks dictionary semantics: exactly two TypeArgs, key then
	// value.
	KeyValue bool

	// Nullable marks a nullable wrapper (a pointer in Go sources).
	// Underlying holds the wrapped type; a nil Underlying with Nullable set
	// is a malformed descriptor and is rejected by the mapper.
	Nullable   bool
	Underlying *TypeDescriptor
}

// QualifiedName returns the namespace-qualified name, segments joined with
// "/" and the bare name attached with ".", e.g. "database/sql.NullInt64"
// or "models/orders.Order". Unqualified types return the bare name.
func (t TypeDescriptor) QualifiedName() string {
	if len(t.Namespace) == 0 {
		return t.Name
	}
	return strings.Join(t.Namespace, "/") + "." + t.Name
}

// InCollections reports whether the type lives in the builtin collection
// namespace.
func (t TypeDescriptor) InCollections() bool {
	return len(t.Namespace) > 0 && t.Namespace[0] == CollectionsNamespace
}

// InBaseLibrary reports whether the type's namespace is a subpath of the
// host base library: the std prefix for standard-library packages, or the
// builtin collection namespace.
func (t TypeDescriptor) InBaseLibrary() bool {
	return len(t.Namespace) > 0 &&
		(t.Namespace[0] == BaseNamespace || t.Namespace[0] == CollectionsNamespace)
}

// MemberDescriptor is one exportable field of a declaration.
type MemberDescriptor struct {
	// Name is the declared field name.
	Name string

	// Type is the member's declared type.
	Type *TypeDescriptor

	// OverrideName, when non-empty, replaces Name in the emitted output.
	// Populated from the serialization-naming annotation (json tag).
	OverrideName string

	// Comment is the member's doc comment, if any.
	Comment string
}

// EmitName returns the name the member is emitted under.
func (m MemberDescriptor) EmitName() string {
	if m.OverrideName != "" {
		return m.OverrideName
	}
	return m.Name
}

// Kind distinguishes class and interface declarations.
type Kind int

const (
	KindInterface Kind = iota
	KindClass
)

func (k Kind) String() string {
	if k == KindClass {
		return "class"
	}
	return "interface"
}

// DeclarationDescriptor is one export-eligible class or interface.
type DeclarationDescriptor struct {
	Name      string
	Namespace []string
	Kind      Kind

	// Members in declaration order. Emission preserves this order.
	Members []MemberDescriptor

	// Comment is the declaration's doc comment, if any.
	Comment string
}

// QualifiedName returns the namespace-qualified declaration name.
func (d DeclarationDescriptor) QualifiedName() string {
	if len(d.Namespace) == 0 {
		return d.Name
	}
	return strings.Join(d.Namespace, "/") + "." + d.Name
}

// Type returns the declaration's own type descriptor, used as the owning
// type during reference resolution.
func (d DeclarationDescriptor) Type() *TypeDescriptor {
	return &TypeDescriptor{Name: d.Name, Namespace: d.Namespace}
}
