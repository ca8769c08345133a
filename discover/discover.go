// Package discover is the declaration-discovery collaborator: it loads Go
// packages with golang.org/x/tools/go/packages, selects struct declarations
// carrying the tsexport:export directive, and converts their go/types
// metadata into the descriptors the core operates on.
//
// Directive forms:
//
//	//tsexport:export        exported as a TypeScript interface
//	//tsexport:export class  exported as a TypeScript class
package discover

import (
	"go/ast"
	"go/token"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/errors"
	"github.com/TournyMasterBot/tsexport/logger"
	"github.com/TournyMasterBot/tsexport/util"
)

const exportDirective = "//tsexport:export"

// Config controls which declaration sources are scanned.
type Config struct {
	// ModulePath is the module root import path. Package paths are
	// namespaced relative to it; types from other modules degrade to
	// bare names.
	ModulePath string

	// Packages is the allow-list of package patterns handed to the
	// loader, e.g. "./models/...".
	Packages []string

	// Dir is the directory the loader runs in. Empty means the current
	// directory.
	Dir string
}

// Load scans the allow-listed packages and returns one declaration
// descriptor per directive-tagged struct, ordered by qualified name.
func Load(cfg *Config) ([]descriptor.DeclarationDescriptor, error) {
	if len(cfg.Packages) == 0 {
		return nil, errors.New("no packages to scan")
	}

	loadCfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  cfg.Dir,
	}

	pkgs, err := packages.Load(loadCfg, cfg.Packages...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found for %v", cfg.Packages)
	}

	conv := &converter{modulePath: cfg.ModulePath}

	var decls []descriptor.DeclarationDescriptor
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Newf("package %s: %v", pkg.PkgPath, pkg.Errors)
		}

		namespace := conv.namespaceFor(pkg.PkgPath)
		for _, file := range pkg.Syntax {
			decls = append(decls, collectFile(pkg, file, namespace, conv)...)
		}
	}

	// Descriptor order is irrelevant to the core; sort for deterministic
	// CLI output.
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].QualifiedName() < decls[j].QualifiedName()
	})

	logger.Logger.Debugw("discovery complete",
		"packages", len(pkgs),
		"declarations", len(decls),
	)
	return decls, nil
}

// collectFile walks one file's type declarations for export directives.
func collectFile(pkg *packages.Package, file *ast.File, namespace []string, conv *converter) []descriptor.DeclarationDescriptor {
	var decls []descriptor.DeclarationDescriptor

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || !typeSpec.Name.IsExported() {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			kind, tagged := exportKind(doc)
			if !tagged {
				continue
			}

			if typeSpec.TypeParams != nil {
				logger.Logger.Warnw("generic declarations are not exportable, skipped",
					"declaration", pkg.PkgPath+"."+typeSpec.Name.Name,
				)
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				logger.Logger.Warnw("directive on non-struct type, skipped",
					"declaration", pkg.PkgPath+"."+typeSpec.Name.Name,
				)
				continue
			}

			decls = append(decls, descriptor.DeclarationDescriptor{
				Name:      typeSpec.Name.Name,
				Namespace: namespace,
				Kind:      kind,
				Members:   collectMembers(pkg, structType, conv),
				Comment:   util.ExtractDocComment(doc),
			})
		}
	}

	return decls
}

// collectMembers converts a struct's exportable fields, preserving
// declaration order.
func collectMembers(pkg *packages.Package, structType *ast.StructType, conv *converter) []descriptor.MemberDescriptor {
	var members []descriptor.MemberDescriptor

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			// Embedded field - skip
			continue
		}

		for _, fieldName := range field.Names {
			if !fieldName.IsExported() {
				continue
			}

			tagInfo := util.ParseFieldTags(field.Tag)
			if tagInfo.Skip {
				continue
			}

			members = append(members, descriptor.MemberDescriptor{
				Name:         fieldName.Name,
				Type:         conv.convert(pkg.TypesInfo.TypeOf(field.Type)),
				OverrideName: tagInfo.JSONName,
				Comment:      util.ExtractFieldComment(field),
			})
		}
	}

	return members
}

// exportKind reads the export directive from a doc comment.
func exportKind(doc *ast.CommentGroup) (descriptor.Kind, bool) {
	if doc == nil {
		return descriptor.KindInterface, false
	}
	for _, comment := range doc.List {
		if !strings.HasPrefix(comment.Text, exportDirective) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(comment.Text, exportDirective))
		if rest == "class" {
			return descriptor.KindClass, true
		}
		return descriptor.KindInterface, true
	}
	return descriptor.KindInterface, false
}
