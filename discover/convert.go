package discover

import (
	"go/types"
	"strings"

	"github.com/TournyMasterBot/tsexport/descriptor"
)

// converter turns go/types types into type descriptors.
type converter struct {
	modulePath string
}

// unknown is the descriptor for types with no structural mapping; the
// mapper renders it as the target's unknown type.
func unknown() *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{Name: "any", Primitive: true}
}

// convert builds the descriptor for a declared member type.
//
// Pointers become nullable wrappers, slices and maps become builtin
// collection descriptors, basics become primitives, and named types keep
// their namespace: stdlib paths verbatim, in-module paths trimmed to the
// module root, foreign-module types degraded to bare names.
func (c *converter) convert(t types.Type) *descriptor.TypeDescriptor {
	switch t := t.(type) {
	case *types.Alias:
		return c.convert(types.Unalias(t))

	case *types.Pointer:
		return &descriptor.TypeDescriptor{
			Name:       "pointer",
			Nullable:   true,
			Underlying: c.convert(t.Elem()),
		}

	case *types.Slice:
		return &descriptor.TypeDescriptor{
			Name:      "slice",
			Namespace: []string{descriptor.CollectionsNamespace},
			TypeArgs:  []*descriptor.TypeDescriptor{c.convert(t.Elem())},
		}

	case *types.Array:
		return &descriptor.TypeDescriptor{
			Name:      "array",
			Namespace: []string{descriptor.CollectionsNamespace},
			TypeArgs:  []*descriptor.TypeDescriptor{c.convert(t.Elem())},
		}

	case *types.Map:
		return &descriptor.TypeDescriptor{
			Name:      "map",
			Namespace: []string{descriptor.CollectionsNamespace},
			KeyValue:  true,
			TypeArgs: []*descriptor.TypeDescriptor{
				c.convert(t.Key()),
				c.convert(t.Elem()),
			},
		}

	case *types.Basic:
		return &descriptor.TypeDescriptor{Name: t.Name(), Primitive: true}

	case *types.Named:
		return c.convertNamed(t)

	case *types.Interface:
		// interface{} and friends carry no structure
		return unknown()

	default:
		// Channels, funcs, anonymous structs: nothing sensible to emit.
		return unknown()
	}
}

func (c *converter) convertNamed(t *types.Named) *descriptor.TypeDescriptor {
	obj := t.Obj()
	if obj.Pkg() == nil {
		// Universe-scope named types (error)
		return unknown()
	}

	pkgPath := obj.Pkg().Path()
	d := &descriptor.TypeDescriptor{
		Name:      obj.Name(),
		Namespace: c.namespaceFor(pkgPath),
	}

	// Enum detection is restricted to in-module types so that
	// base-library constant sets (time.Duration's units, for one) keep
	// their base-library mapping.
	if c.inModule(pkgPath) {
		d.Enum = isEnum(t)
	}

	if args := t.TypeArgs(); args != nil {
		for i := 0; i < args.Len(); i++ {
			d.TypeArgs = append(d.TypeArgs, c.convert(args.At(i)))
		}
	}

	return d
}

// namespaceFor maps a package import path to a namespace path. Types from
// modules other than the scanned one get no namespace: they render by bare
// name and are never imported.
func (c *converter) namespaceFor(pkgPath string) []string {
	switch {
	case pkgPath == c.modulePath:
		return nil
	case strings.HasPrefix(pkgPath, c.modulePath+"/"):
		return strings.Split(strings.TrimPrefix(pkgPath, c.modulePath+"/"), "/")
	case isStdlib(pkgPath):
		return append([]string{descriptor.BaseNamespace}, strings.Split(pkgPath, "/")...)
	default:
		return nil
	}
}

func (c *converter) inModule(pkgPath string) bool {
	return pkgPath == c.modulePath || strings.HasPrefix(pkgPath, c.modulePath+"/")
}

// isStdlib reports whether an import path belongs to the standard library:
// the first segment of a stdlib path never contains a dot.
func isStdlib(pkgPath string) bool {
	first := pkgPath
	if i := strings.Index(pkgPath, "/"); i >= 0 {
		first = pkgPath[:i]
	}
	return !strings.Contains(first, ".")
}

// isEnum reports whether a named type is a constant-set type: a basic
// string or integer underlying type with at least one package-level
// constant declared of it.
func isEnum(named *types.Named) bool {
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsString|types.IsInteger) == 0 {
		return false
	}

	scope := named.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), named) {
			return true
		}
	}
	return false
}
