//go:build ignore

// Mkfixed writes the methods of a signed fixed-point type.  The type name
// encodes the format: Int4_12 has 4 integer and 12 fractional bits.
//
//	go run mkfixed.go Int4_12 int16
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"
)

var tmpl = template.Must(template.New("fixed").Parse(`// Code generated by mkfixed.go; DO NOT EDIT.

package fixed

import "fmt"

func {{ .Name }}U(i int) {{ .Name }}     { return {{ .Name }}(i<<{{ .Frac }}) }
func {{ .Name }}F(f float32) {{ .Name }} { return {{ .Name }}(f*(1<<{{ .Frac }})) }

func (x {{ .Name }}) Float() float32 { return float32(x) / (1 << {{ .Frac }}) }
func (x {{ .Name }}) Floor() int     { return int(x >> {{ .Frac }}) }
func (x {{ .Name }}) Ceil() int      { return int(({{ .Wide }}(x) + (1<<{{ .Frac }} - 1)) >> {{ .Frac }}) }
func (x {{ .Name }}) Mul(y {{ .Name }}) {{ .Name }} { return {{ .Name }}(({{ .Wide }}(x)*{{ .Wide }}(y))>>{{ .Frac }}) }
func (x {{ .Name }}) Div(y {{ .Name }}) {{ .Name }} { return {{ .Name }}({{ .Wide }}(x)<<{{ .Frac }}/{{ .Wide }}(y)) }

func (x {{ .Name }}) String() string {
	const shift, mask = {{ .Frac }}, 1<<{{ .Frac }} - 1
	return fmt.Sprintf("%d:%0{{ .Digits }}d", {{ .Wide }}(x>>shift), {{ .Wide }}(x&mask))
}
`))

// Products are computed in the next wider type.
var wider = map[string]string{
	"int16": "int32",
	"int32": "int64",
}

var nameRE = regexp.MustCompile(`^Int([0-9]+)_([0-9]+)$`)

type decl struct {
	Name   string
	Wide   string
	Frac   int
	Digits int
}

func parse(name, base string) (decl, error) {
	d := decl{Name: name}
	m := nameRE.FindStringSubmatch(name)
	if m == nil {
		return d, fmt.Errorf("%s: name must look like Int4_12", name)
	}
	var ok bool
	if d.Wide, ok = wider[base]; !ok {
		return d, fmt.Errorf("%s: unsupported base type %s", name, base)
	}
	intBits, _ := strconv.Atoi(m[1])
	d.Frac, _ = strconv.Atoi(m[2])
	if width, _ := strconv.Atoi(strings.TrimPrefix(base, "int")); intBits+d.Frac != width {
		return d, fmt.Errorf("%s: %d+%d bits don't fill %s", name, intBits, d.Frac, base)
	}
	// Enough decimal digits to print the largest fraction.
	d.Digits = len(strconv.Itoa(1<<d.Frac - 1))
	return d, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mkfixed: ")
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <type> <base type>\n", os.Args[0])
		os.Exit(2)
	}

	d, err := parse(os.Args[1], os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(strings.ToLower(d.Name)+"_fixed.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
