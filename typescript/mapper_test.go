package typescript

import (
	"strings"
	"testing"

	"github.com/TournyMasterBot/tsexport/descriptor"
)

func prim(name string) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{Name: name, Primitive: true}
}

func user(name string, ns ...string) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{Name: name, Namespace: ns}
}

func slice(elem *descriptor.TypeDescriptor) *descriptor.TypeDescriptor {
	d := &descriptor.TypeDescriptor{
		Name:      "slice",
		Namespace: []string{descriptor.CollectionsNamespace},
	}
	if elem != nil {
		d.TypeArgs = []*descriptor.TypeDescriptor{elem}
	}
	return d
}

func dict(key, val *descriptor.TypeDescriptor) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{
		Name:      "map",
		Namespace: []string{descriptor.CollectionsNamespace},
		KeyValue:  true,
		TypeArgs:  []*descriptor.TypeDescriptor{key, val},
	}
}

func nullable(underlying *descriptor.TypeDescriptor) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{Name: "pointer", Nullable: true, Underlying: underlying}
}

func stdlib(name string, ns ...string) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{
		Name:      name,
		Namespace: append([]string{descriptor.BaseNamespace}, ns...),
	}
}

func TestMapTypePrimitives(t *testing.T) {
	// Every integer and floating width collapses onto number.
	numeric := []string{
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"byte", "rune", "float32", "float64",
	}
	for _, name := range numeric {
		got, err := MapType(prim(name))
		if err != nil {
			t.Fatalf("MapType(%s) error: %v", name, err)
		}
		if got != "number" {
			t.Errorf("MapType(%s) = %q, want %q", name, got, "number")
		}
	}

	tests := []struct {
		name string
		want string
	}{
		{"string", "string"},
		{"bool", "boolean"},
		{"any", "unknown"},
	}
	for _, tt := range tests {
		got, err := MapType(prim(tt.name))
		if err != nil {
			t.Fatalf("MapType(%s) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("MapType(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMapTypeEnum(t *testing.T) {
	enum := &descriptor.TypeDescriptor{Name: "Status", Namespace: []string{"models"}, Enum: true}

	got, err := MapType(enum)
	if err != nil {
		t.Fatalf("MapType(enum) error: %v", err)
	}
	if got != "string" {
		t.Errorf("MapType(enum) = %q, want %q", got, "string")
	}
}

func TestMapTypeNullableEnumEqualsEnum(t *testing.T) {
	// Nullability does not alter the rendered type string.
	enum := &descriptor.TypeDescriptor{Name: "Status", Namespace: []string{"models"}, Enum: true}

	direct, err := MapType(enum)
	if err != nil {
		t.Fatalf("MapType(enum) error: %v", err)
	}
	wrapped, err := MapType(nullable(enum))
	if err != nil {
		t.Fatalf("MapType(nullable enum) error: %v", err)
	}
	if direct != wrapped {
		t.Errorf("nullable enum = %q, direct enum = %q; want equal", wrapped, direct)
	}
}

func TestMapTypeNullableUnwrapFailure(t *testing.T) {
	broken := &descriptor.TypeDescriptor{Name: "Mystery", Nullable: true}

	_, err := MapType(broken)
	if err == nil {
		t.Fatal("MapType(nullable without underlying) did not fail")
	}
	if !strings.Contains(err.Error(), "Mystery") {
		t.Errorf("error %q does not identify the offending type", err)
	}
}

func TestMapTypeCollections(t *testing.T) {
	tests := []struct {
		name string
		in   *descriptor.TypeDescriptor
		want string
	}{
		{
			name: "empty sequence",
			in:   slice(nil),
			want: "[]",
		},
		{
			name: "sequence of strings",
			in:   slice(prim("string")),
			want: "[string]",
		},
		{
			name: "sequence of user type",
			in:   slice(user("Order", "models", "orders")),
			want: "[Order]",
		},
		{
			name: "dictionary of string to user type",
			in:   dict(prim("string"), user("User", "models")),
			want: "{ [key: string]: User }",
		},
		{
			name: "dictionary of string to number",
			in:   dict(prim("string"), prim("int64")),
			want: "{ [key: string]: number }",
		},
		{
			name: "nested sequence",
			in:   slice(slice(prim("int"))),
			want: "[[number]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.in)
			if err != nil {
				t.Fatalf("MapType() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MapType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapTypeBaseLibrary(t *testing.T) {
	tests := []struct {
		name string
		in   *descriptor.TypeDescriptor
		want string
	}{
		{
			name: "text builder",
			in:   stdlib("Builder", "strings"),
			want: "string",
		},
		{
			name: "date",
			in:   stdlib("Time", "time"),
			want: "Date",
		},
		{
			name: "duration",
			in:   stdlib("Duration", "time"),
			want: "number",
		},
		{
			name: "numeric wrapper",
			in:   stdlib("NullInt64", "database", "sql"),
			want: "number",
		},
		{
			name: "big numeric",
			in:   stdlib("Int", "math", "big"),
			want: "number",
		},
		{
			name: "color value",
			in:   stdlib("RGBA", "image", "color"),
			want: "string",
		},
		{
			name: "unrecognized base-library type degrades to string",
			in:   stdlib("Regexp", "regexp"),
			want: "string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.in)
			if err != nil {
				t.Fatalf("MapType() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MapType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapTypeUserTypePassesThrough(t *testing.T) {
	got, err := MapType(user("Tournament", "models"))
	if err != nil {
		t.Fatalf("MapType() error: %v", err)
	}
	if got != "Tournament" {
		t.Errorf("MapType() = %q, want bare name %q", got, "Tournament")
	}

	// External types with no namespace also pass through by bare name.
	got, err = MapType(user("Decimal"))
	if err != nil {
		t.Fatalf("MapType() error: %v", err)
	}
	if got != "Decimal" {
		t.Errorf("MapType() = %q, want bare name %q", got, "Decimal")
	}
}
