package discover

import (
	"go/ast"
	"testing"

	"github.com/TournyMasterBot/tsexport/descriptor"
)

func commentGroup(lines ...string) *ast.CommentGroup {
	group := &ast.CommentGroup{}
	for _, line := range lines {
		group.List = append(group.List, &ast.Comment{Text: line})
	}
	return group
}

func TestExportKind(t *testing.T) {
	tests := []struct {
		name     string
		doc      *ast.CommentGroup
		wantKind descriptor.Kind
		wantOK   bool
	}{
		{
			name:     "no doc comment",
			doc:      nil,
			wantOK:   false,
			wantKind: descriptor.KindInterface,
		},
		{
			name:     "plain comment without directive",
			doc:      commentGroup("// Message is sent to clients."),
			wantOK:   false,
			wantKind: descriptor.KindInterface,
		},
		{
			name:     "interface directive",
			doc:      commentGroup("// Message is sent to clients.", "//tsexport:export"),
			wantOK:   true,
			wantKind: descriptor.KindInterface,
		},
		{
			name:     "class directive",
			doc:      commentGroup("//tsexport:export class"),
			wantOK:   true,
			wantKind: descriptor.KindClass,
		},
		{
			name:     "directive with trailing junk stays interface",
			doc:      commentGroup("//tsexport:export something"),
			wantOK:   true,
			wantKind: descriptor.KindInterface,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := exportKind(tt.doc)
			if ok != tt.wantOK {
				t.Fatalf("exportKind() ok = %v, want %v", ok, tt.wantOK)
			}
			if kind != tt.wantKind {
				t.Errorf("exportKind() kind = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestIsStdlib(t *testing.T) {
	tests := []struct {
		pkgPath string
		want    bool
	}{
		{"time", true},
		{"database/sql", true},
		{"strings", true},
		{"github.com/TournyMasterBot/app/models", false},
		{"gopkg.in/yaml.v3", false},
	}

	for _, tt := range tests {
		if got := isStdlib(tt.pkgPath); got != tt.want {
			t.Errorf("isStdlib(%q) = %v, want %v", tt.pkgPath, got, tt.want)
		}
	}
}
