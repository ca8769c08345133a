package typescript

import (
	"strings"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/descriptor"
)

// ResolveImport decides whether referencing ref from a declaration owned by
// owner requires an import, and if so which one.
//
// No directive is produced when the referenced type has no namespace, lives
// in the base library (those types render inline), is an enum (enums render
// as string literals), or is the owning declaration itself (a file never
// imports itself).
//
// The relative module path walks up from the owner's directory to the
// longest common namespace prefix, then down the referenced type's
// remaining segments, ending in the referenced type's bare name.
func ResolveImport(ref, owner *descriptor.TypeDescriptor) (tsexport.ImportDirective, bool) {
	if ref == nil || len(ref.Namespace) == 0 {
		return tsexport.ImportDirective{}, false
	}
	if ref.InBaseLibrary() || ref.Enum {
		return tsexport.ImportDirective{}, false
	}
	if owner != nil && ref.Name == owner.Name && equalPath(ref.Namespace, owner.Namespace) {
		return tsexport.ImportDirective{}, false
	}

	var ownerNS []string
	if owner != nil {
		ownerNS = owner.Namespace
	}

	common := 0
	for common < len(ownerNS) && common < len(ref.Namespace) &&
		ownerNS[common] == ref.Namespace[common] {
		common++
	}

	var segs []string
	for i := common; i < len(ownerNS); i++ {
		segs = append(segs, "..")
	}
	segs = append(segs, ref.Namespace[common:]...)
	if len(segs) == 0 {
		segs = []string{"."}
	}
	segs = append(segs, ref.Name)

	return tsexport.ImportDirective{
		Symbol: ref.Name,
		Path:   strings.Join(segs, "/"),
	}, true
}

// CollectImports gathers every directive needed to reference t from owner,
// descending through nullable wrappers and generic type arguments, so that
// a member typed as a container of a user type still imports that user
// type. Directives are reported in discovery order via add.
func CollectImports(t, owner *descriptor.TypeDescriptor, add func(tsexport.ImportDirective)) {
	if t == nil {
		return
	}
	if t.Nullable {
		CollectImports(t.Underlying, owner, add)
		return
	}
	if dir, ok := ResolveImport(t, owner); ok {
		add(dir)
	}
	for _, arg := range t.TypeArgs {
		CollectImports(arg, owner, add)
	}
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
