package analyze

import (
	"cmp"
	"slices"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "conjugal/noun"
	Name    string // e.g., "Descriptor"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of the underlying type.
type TypeKind int

const (
	TypeKindUnknown    TypeKind = iota
	TypeKindStruct              // struct type
	TypeKindBasic               // named int, string, etc.; usually an enum
	TypeKindInterface           // interface type
	TypeKindCollection          // slice, array or map
	TypeKindFunc                // function type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindBasic:
		return "basic"
	case TypeKindInterface:
		return "interface"
	case TypeKindCollection:
		return "collection"
	case TypeKindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// TypeInfo describes an exported named type.
type TypeInfo struct {
	ID   TypeID
	Kind TypeKind
	// Directive is the parsed //conjugal:noun directive, nil when absent.
	Directive *Directive
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Sorted returns every type ordered by package path, then name.
func (g *TypeGraph) Sorted() []*TypeInfo {
	infos := make([]*TypeInfo, 0, len(g.Types))
	for _, info := range g.Types {
		infos = append(infos, info)
	}

	slices.SortFunc(infos, func(a, b *TypeInfo) int {
		return cmp.Or(cmp.Compare(a.ID.PkgPath, b.ID.PkgPath), cmp.Compare(a.ID.Name, b.ID.Name))
	})

	return infos
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported named types defined in this package
}
