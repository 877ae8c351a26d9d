package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the current one.
	Dir   string
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewTypeGraph()}
}

// LoadPackages loads the specified packages and adds their exported types to
// the graph. Patterns are standard Go package patterns (e.g., "./noun").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	directives, err := collectDirectives(pkg.Syntax)
	if err != nil {
		return err
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		a.graph.Types[id] = &TypeInfo{
			ID:        id,
			Kind:      kindOf(typeName.Type()),
			Directive: directives[name],
		}
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// collectDirectives maps type names to the directives in their doc comments.
// A lone spec in a type declaration takes the declaration's doc comment.
func collectDirectives(files []*ast.File) (map[string]*Directive, error) {
	directives := map[string]*Directive{}

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				text, found := findDirective(doc)
				if !found {
					continue
				}

				d, err := ParseDirective(text)
				if err != nil {
					return nil, fmt.Errorf("type %s: %w", ts.Name.Name, err)
				}

				directives[ts.Name.Name] = d
			}
		}
	}

	return directives, nil
}

func kindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Struct:
		return TypeKindStruct
	case *types.Basic:
		return TypeKindBasic
	case *types.Interface:
		return TypeKindInterface
	case *types.Slice, *types.Array, *types.Map:
		return TypeKindCollection
	case *types.Signature:
		return TypeKindFunc
	default:
		return TypeKindUnknown
	}
}
