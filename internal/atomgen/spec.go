// Package atomgen generates atom interning code from a YAML keyword list.
//
// The generated lookup buckets keywords by byte length. Short keywords are
// matched with byte-tuple comparisons against the lower-cased input; longer
// ones are packed into little-endian 64-bit words, case-folded with a SWAR
// mask and compared against precomputed constants.
package atomgen

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec describes one atom set.
type Spec struct {
	// Package is the Go package of the generated file.
	Package string `yaml:"package"`
	// Type is the name of the generated atom type, e.g. CSSAtom.
	Type string `yaml:"type"`
	// Doc is a sentence describing the set, used in the type comment.
	Doc string `yaml:"doc"`
	// Atoms lists the keywords in declaration order.
	Atoms []Atom `yaml:"atoms"`
}

// Atom is one keyword. In YAML an atom is either a bare keyword (`px`) or a
// mapping with an explicit constant name (`{name: Percent, atom: "%"}`).
type Atom struct {
	Name string `yaml:"name"`
	Text string `yaml:"atom"`
}

// UnmarshalYAML accepts both the scalar and the mapping forms.
func (a *Atom) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Text = value.Value
		return nil
	}
	type plain Atom
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = Atom(p)
	return nil
}

// Load reads and validates a spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from go:generate
	if err != nil {
		return nil, fmt.Errorf("reading atom spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing atom spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

var identRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Validate checks the spec and fills in derived constant names.
func (s *Spec) Validate() error {
	if s.Package == "" {
		return errors.New("atom spec: package is required")
	}
	if !identRe.MatchString(s.Type) {
		return fmt.Errorf("atom spec: type %q must be an exported identifier", s.Type)
	}
	if len(s.Atoms) == 0 {
		return errors.New("atom spec: no atoms")
	}
	names := make(map[string]bool, len(s.Atoms))
	texts := make(map[string]bool, len(s.Atoms))
	for i := range s.Atoms {
		a := &s.Atoms[i]
		if a.Text == "" {
			return fmt.Errorf("atom spec: atom %d has no text", i)
		}
		if folded := lowerASCII(a.Text); folded != a.Text {
			return fmt.Errorf("atom spec: atom %q must be lower case", a.Text)
		}
		if a.Name == "" {
			a.Name = ConstName(a.Text)
		}
		if !identRe.MatchString(a.Name) || a.Name == "None" {
			return fmt.Errorf("atom spec: atom %q needs an explicit name", a.Text)
		}
		if names[a.Name] {
			return fmt.Errorf("atom spec: duplicate name %q", a.Name)
		}
		if texts[a.Text] {
			return fmt.Errorf("atom spec: duplicate atom %q", a.Text)
		}
		names[a.Name] = true
		texts[a.Text] = true
	}
	return nil
}

// ConstName converts a kebab-case keyword to a Go constant suffix:
// "font-size" becomes "FontSize" and "-webkit-box" becomes "WebkitBox".
// Keywords that produce no letters return "".
func ConstName(text string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(text, "-") {
		if part == "" {
			continue
		}
		if !isAlnum(part) {
			return ""
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	name := b.String()
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return ""
	}
	return name
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
