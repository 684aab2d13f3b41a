// Command generate renders the arity-expanded sources of package kura:
// get_generated.go (TupleN, JoinedN, JoinN) and world_generated.go
// (AddEntityN). Run it through go generate from the module root.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minJoin   = 2
	maxArity  = 10
	minEntity = 1
)

type arity struct {
	N  int
	Is []int
}

func arities(from, to int) []arity {
	out := make([]arity, 0, to-from+1)
	for n := from; n <= to; n++ {
		a := arity{N: n}
		for i := 1; i <= n; i++ {
			a.Is = append(a.Is, i)
		}
		out = append(out, a)
	}
	return out
}

// list expands format once per index (every %d is replaced by the index)
// and joins the results with sep.
func list(format, sep string, n int) string {
	parts := make([]string, n)
	for i := range n {
		parts[i] = strings.ReplaceAll(format, "%d", fmt.Sprint(i+1))
	}
	return strings.Join(parts, sep)
}

var funcs = template.FuncMap{"list": list}

const header = `// Code generated by cmd/generate. DO NOT EDIT.

package kura
`

const getTmpl = header + `
{{range .}}
// Tuple{{.N}} holds the outputs of a Join{{.N}}.
type Tuple{{.N}}[{{list "T%d" ", " .N}} any] struct {
{{- range .Is}}
	V{{.}} T{{.}}
{{- end}}
}

// Unpack returns the fields of the tuple in order.
func (t Tuple{{.N}}[{{list "T%d" ", " .N}}]) Unpack() ({{list "T%d" ", " .N}}) {
	return {{list "t.V%d" ", " .N}}
}

// Joined{{.N}} combines {{.N}} getters. Get and FastGet succeed only if every
// member succeeds and fail with the first missing component, left to right.
type Joined{{.N}}[{{list "O%d, F%d" ", " .N}} any] struct {
{{- range .Is}}
	g{{.}} Getter[O{{.}}, F{{.}}]
{{- end}}
}

// Join{{.N}} composes {{.N}} getters into one.
func Join{{.N}}[{{list "O%d, F%d" ", " .N}} any]({{list "g%d Getter[O%d, F%d]" ", " .N}}) *Joined{{.N}}[{{list "O%d, F%d" ", " .N}}] {
	return &Joined{{.N}}[{{list "O%d, F%d" ", " .N}}]{ {{- list "g%d: g%d" ", " .N -}} }
}

// Get retrieves the tracked output of every member.
func (j *Joined{{.N}}[{{list "O%d, F%d" ", " .N}}]) Get(id EntityID) (out Tuple{{.N}}[{{list "O%d" ", " .N}}], err error) {
{{- range .Is}}
	if out.V{{.}}, err = j.g{{.}}.Get(id); err != nil {
		return out, err
	}
{{- end}}
	return out, nil
}

// FastGet retrieves the untracked output of every member.
func (j *Joined{{.N}}[{{list "O%d, F%d" ", " .N}}]) FastGet(id EntityID) (out Tuple{{.N}}[{{list "F%d" ", " .N}}], err error) {
{{- range .Is}}
	if out.V{{.}}, err = j.g{{.}}.FastGet(id); err != nil {
		return out, err
	}
{{- end}}
	return out, nil
}

// EntityIDs returns the shortest candidate list among the members.
func (j *Joined{{.N}}[{{list "O%d, F%d" ", " .N}}]) EntityIDs() []EntityID {
	return shortest({{list "j.g%d.EntityIDs()" ", " .N}})
}
{{end}}`

const worldTmpl = header + `
{{range .}}
// AddEntity{{.N}} creates an entity holding {{.N}} component{{if gt .N 1}}s{{end}}. Every
// touched storage is borrowed exclusively for the duration of the call.
func AddEntity{{.N}}[{{list "T%d" ", " .N}} any](w *World, {{list "c%d T%d" ", " .N}}) (EntityID, error) {
{{- range .Is}}
	s{{.}}, err := storageOf[T{{.}}](w)
	if err != nil {
		return DeadEntity, err
	}
{{- end}}
	return w.spawn([]Storage{ {{- list "s%d" ", " .N -}} }, func(id EntityID) {
{{- range .Is}}
		s{{.}}.Insert(id, c{{.}})
{{- end}}
	})
}
{{end}}`

func render(name, text string, data []arity) {
	t := template.Must(template.New(name).Funcs(funcs).Parse(text))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Fatalf("generate %s: %v", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format %s: %v", name, err)
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", name, err)
	}
}

func main() {
	render("get_generated.go", getTmpl, arities(minJoin, maxArity))
	render("world_generated.go", worldTmpl, arities(minEntity, maxArity))
}
