// Package typescript renders declaration descriptors as TypeScript source:
// type mapping, relative-import resolution, and per-declaration emission.
package typescript

import (
	"strings"

	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/errors"
)

// TypeMapping defines how primitive source types map to TypeScript types.
// Every integer and floating width collapses onto number.
var TypeMapping = map[string]string{
	"string":     "string",
	"int":        "number",
	"int8":       "number",
	"int16":      "number",
	"int32":      "number",
	"int64":      "number",
	"uint":       "number",
	"uint8":      "number",
	"uint16":     "number",
	"uint32":     "number",
	"uint64":     "number",
	"uintptr":    "number",
	"byte":       "number",
	"rune":       "number",
	"float32":    "number",
	"float64":    "number",
	"complex64":  "number",
	"complex128": "number",
	"bool":       "boolean",
	"any":        "unknown",
}

// BaseLibraryMapping defines how known base-library types map, keyed by
// qualified name. Anything in the base library but absent here degrades to
// string rather than failing.
var BaseLibraryMapping = map[string]string{
	// Text builders
	"strings.Builder": "string",
	"bytes.Buffer":    "string",

	// Date/time
	"time.Time":     "Date",
	"time.Duration": "number",

	// Numeric wrappers
	"database/sql.NullInt16":   "number",
	"database/sql.NullInt32":   "number",
	"database/sql.NullInt64":   "number",
	"database/sql.NullByte":    "number",
	"database/sql.NullFloat64": "number",
	"math/big.Int":             "number",
	"math/big.Float":           "number",
	"math/big.Rat":             "number",
}

// MapType renders a type descriptor as a TypeScript type expression.
//
// The mapping is total for any descriptor reachable from a well-formed
// declaration: unknown base-library and foreign reference types degrade to
// string, never to an error. The one fatal case is a nullable wrapper with
// no underlying type, which indicates a malformed descriptor.
func MapType(t *descriptor.TypeDescriptor) (string, error) {
	switch {
	case t == nil:
		return "", errors.New("cannot map nil type descriptor")

	case t.Nullable:
		// Unwrap and resolve the underlying type. The rendered type is
		// otherwise identical: no null union is added.
		if t.Underlying == nil {
			return "", errors.Newf("cannot unwrap nullable type %q", t.Name)
		}
		return MapType(t.Underlying)

	case t.Enum:
		// Enums render inline as their primitive string form.
		return "string", nil

	case t.InCollections():
		return mapCollection(t)

	case t.InBaseLibrary() && !t.Primitive:
		key := strings.TrimPrefix(t.QualifiedName(), descriptor.BaseNamespace+"/")
		if ts, ok := BaseLibraryMapping[key]; ok {
			return ts, nil
		}
		// Conservative fallback for the rest of the base library.
		return "string", nil

	default:
		if ts, ok := TypeMapping[t.Name]; ok {
			return ts, nil
		}
		// A user-declared type: pass through by bare name. Cross-file
		// linkage is the resolver's job.
		return t.Name, nil
	}
}

// mapCollection renders builtin container types.
func mapCollection(t *descriptor.TypeDescriptor) (string, error) {
	if t.KeyValue && len(t.TypeArgs) == 2 {
		key, err := MapType(t.TypeArgs[0])
		if err != nil {
			return "", err
		}
		val, err := MapType(t.TypeArgs[1])
		if err != nil {
			return "", err
		}
		return "{ [key: " + key + "]: " + val + " }", nil
	}

	if len(t.TypeArgs) > 0 {
		elem, err := MapType(t.TypeArgs[0])
		if err != nil {
			return "", err
		}
		return "[" + elem + "]", nil
	}

	return "[]", nil
}
