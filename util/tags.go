package util

import (
	"go/ast"
	"reflect"
	"strings"
)

// FieldTagInfo contains parsed struct tag information for export
type FieldTagInfo struct {
	JSONName string // Field name from json tag
	Skip     bool   // Skip this field (json:"-" or tsexport:"-")
}

// ParseFieldTags extracts json and tsexport tags from a struct field tag
//
// Supported tags:
//   - json:"name" - Standard JSON field naming (options such as
//     omitempty carry no meaning for the generated shape and are
//     ignored)
//   - tsexport:"-" - Skip field in generated output
func ParseFieldTags(tag *ast.BasicLit) FieldTagInfo {
	info := FieldTagInfo{}

	if tag == nil {
		return info
	}

	// Remove backticks
	tagValue := strings.Trim(tag.Value, "`")
	st := reflect.StructTag(tagValue)

	// Parse json tag
	jsonTag := st.Get("json")
	if jsonTag != "" {
		name, _, _ := strings.Cut(jsonTag, ",")
		info.JSONName = name
		if info.JSONName == "-" {
			info.Skip = true
			return info
		}
	}

	// Parse tsexport tag
	if st.Get("tsexport") == "-" {
		info.Skip = true
	}

	return info
}
