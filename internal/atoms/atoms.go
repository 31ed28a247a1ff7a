// Package atoms holds the generated keyword sets used by the lexer to
// intern identifiers. Each set is a closed, build-time table; regenerate
// after editing a YAML list.
package atoms

//go:generate go run ../../cmd/atomgen -i css_atoms.yaml -o css_atoms_gen.go
//go:generate go run ../../cmd/atomgen -i query_atoms.yaml -o query_atoms_gen.go

// Sets available to the lexer.
var (
	CSS   CSSAtomSet
	Query QueryAtomSet
)
