package atomgen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"
)

// TupleMaxLen is the longest keyword matched byte by byte. Longer keywords
// are matched as packed words.
const TupleMaxLen = 5

type bucket struct {
	Len   int
	Atoms []bucketAtom
	Tuple bool
	Words int
}

type bucketAtom struct {
	Const string
	Bytes []string
	Words []string
}

type view struct {
	Source  string
	Package string
	Type    string
	Doc     string
	Lookup  string
	Names   string
	Set     string
	Atoms   []Atom
	Buckets []bucket
}

// Generate renders gofmt'ed Go source for spec. source names the YAML file
// in the generated header.
func Generate(spec *Spec, source string) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	lower := unexported(spec.Type)
	v := view{
		Source:  source,
		Package: spec.Package,
		Type:    spec.Type,
		Doc:     spec.Doc,
		Lookup:  lower + "Lookup",
		Names:   lower + "Names",
		Set:     spec.Type + "Set",
		Atoms:   spec.Atoms,
		Buckets: buckets(spec),
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("rendering atoms: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting atoms: %w", err)
	}
	return out, nil
}

// unexported lower-cases the leading initialism of name: CSSAtom becomes
// cssAtom and QueryAtom becomes queryAtom.
func unexported(name string) string {
	n := 0
	for n < len(name) && name[n] >= 'A' && name[n] <= 'Z' {
		n++
	}
	if n > 1 && n < len(name) {
		n--
	}
	return strings.ToLower(name[:n]) + name[n:]
}

func buckets(spec *Spec) []bucket {
	byLen := map[int]*bucket{}
	var lens []int
	for _, a := range spec.Atoms {
		n := len(a.Text)
		b, ok := byLen[n]
		if !ok {
			b = &bucket{Len: n, Tuple: n <= TupleMaxLen, Words: (n + 7) / 8}
			byLen[n] = b
			lens = append(lens, n)
		}
		ba := bucketAtom{Const: spec.Type + a.Name}
		if b.Tuple {
			for i := 0; i < n; i++ {
				ba.Bytes = append(ba.Bytes, byteLiteral(a.Text[i]))
			}
		} else {
			for _, w := range Words(a.Text) {
				ba.Words = append(ba.Words, fmt.Sprintf("0x%016x", w))
			}
		}
		b.Atoms = append(b.Atoms, ba)
	}
	slices.Sort(lens)
	out := make([]bucket, 0, len(lens))
	for _, n := range lens {
		out = append(out, *byLen[n])
	}
	return out
}

func byteLiteral(c byte) string {
	switch c {
	case '\'', '\\':
		return `'\` + string(c) + `'`
	}
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf("0x%02x", c)
	}
	return "'" + string(c) + "'"
}

func wordLen(n, word int) int {
	return min(8, n-8*word)
}

var fileTemplate = template.Must(template.New("atoms").Funcs(template.FuncMap{
	"wordLen": wordLen,
	"mul8":    func(i int) int { return i * 8 },
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
}).Parse(`// Code generated by atomgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// {{.Type}} is an interned keyword{{if .Doc}}: {{.Doc}}{{else}}.{{end}}
type {{.Type}} uint32

const (
	{{.Type}}None {{.Type}} = iota
{{- range .Atoms}}
	{{$.Type}}{{.Name}}
{{- end}}
)

var {{.Names}} = [...]string{
	"",
{{- range .Atoms}}
	{{printf "%q" .Text}},
{{- end}}
}

// String returns the canonical spelling of the atom.
func (a {{.Type}}) String() string {
	if int(a) >= len({{.Names}}) {
		return ""
	}
	return {{.Names}}[a]
}

// Len returns the length in bytes of the atom's spelling.
func (a {{.Type}}) Len() int {
	return len(a.String())
}

// {{.Type}}FromString classifies s, folding ASCII letters to lower case.
func {{.Type}}FromString(s string) {{.Type}} {
	return {{.Lookup}}(s)
}

// {{.Type}}FromBytes classifies b, folding ASCII letters to lower case.
func {{.Type}}FromBytes(b []byte) {{.Type}} {
	return {{.Lookup}}(b)
}

// {{.Set}} exposes {{.Type}} through the lexer's atom set interface.
type {{.Set}} struct{}

// Bits returns the atom for s.
func ({{.Set}}) Bits(s string) uint32 {
	return uint32({{.Lookup}}(s))
}

// BitsBytes returns the atom for b.
func ({{.Set}}) BitsBytes(b []byte) uint32 {
	return uint32({{.Lookup}}(b))
}

// Name returns the spelling of an atom.
func ({{.Set}}) Name(bits uint32) string {
	return {{.Type}}(bits).String()
}

func {{.Lookup}}[T string | []byte](s T) {{.Type}} {
	switch len(s) {
{{- range .Buckets}}
	case {{.Len}}:
{{- if .Tuple}}
{{- $n := .Len}}
		{{range $i := seq $n}}{{if $i}}, {{end}}b{{$i}}{{end}} := {{range $i := seq $n}}{{if $i}}, {{end}}lowerByte(s[{{$i}}]){{end}}
		switch {
{{- range .Atoms}}
		case {{range $i, $b := .Bytes}}{{if $i}} && {{end}}b{{$i}} == {{$b}}{{end}}:
			return {{.Const}}
{{- end}}
		}
{{- else}}
{{- $n := .Len}}
{{- range $i := seq .Words}}
		w{{$i}} := fold64(load64(s, {{mul8 $i}}, {{wordLen $n $i}}))
{{- end}}
		switch {
{{- range .Atoms}}
		case {{range $i, $w := .Words}}{{if $i}} && {{end}}w{{$i}} == {{$w}}{{end}}:
			return {{.Const}}
{{- end}}
		}
{{- end}}
{{- end}}
	}
	return {{.Type}}None
}
`))
