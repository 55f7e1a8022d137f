// Package wsdlgo renders a parsed WSDL document (see the wsdl package)
// into Go source: value types, message wrappers, fault unions, and a
// service client, all calling into the soap package's runtime surface.
package wsdlgo

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"sort"

	"github.com/soapgen/wsdl2go/wsdl"
)

// Encoder generates Go source code from a wsdl.Document.
type Encoder interface {
	Encode(d *wsdl.Document) ([]byte, error)
}

type goEncoder struct {
	pkg string

	// dependency caches, mirroring which stdlib/external packages the
	// body actually used - filled in during emission, consumed once at
	// the end to write a minimal, non-broken import block.
	needsStdPkg map[string]bool
	needsExtPkg map[string]bool
}

// NewEncoder creates an Encoder that renders into Go package pkg (its
// WSDL service name, mangled into a valid package identifier).
func NewEncoder(pkg string) Encoder {
	return &goEncoder{
		pkg:         pkg,
		needsStdPkg: make(map[string]bool),
		needsExtPkg: make(map[string]bool),
	}
}

// Encode renders d into a single, gofmt'd Go source file (spec §4.7:
// one textual artifact with a types section, a messages section, the
// service, and the fault unions appended last).
func (ge *goEncoder) Encode(d *wsdl.Document) ([]byte, error) {
	if d == nil {
		return nil, nil
	}

	var body bytes.Buffer
	fmt.Fprintf(&body, "// Namespace is the target namespace declared by the source WSDL.\n")
	fmt.Fprintf(&body, "const Namespace = %q\n\n", d.TargetNamespace)

	fmt.Fprintf(&body, "// ---- types ----\n\n")
	typeSet := make(map[string]bool, len(d.Types))
	for _, name := range d.Types {
		typeSet[name] = true
	}
	for _, name := range d.Types {
		ty, ok := d.Type(name)
		if !ok {
			continue
		}
		ge.emitType(&body, name, ty)
	}

	fmt.Fprintf(&body, "// ---- messages ----\n\n")
	for _, name := range d.Messages {
		if typeSet[name] {
			continue
		}
		msg, ok := d.Message(name)
		if !ok {
			continue
		}
		ge.emitMessage(&body, name, msg)
	}

	var faults bytes.Buffer
	for _, name := range d.Operations {
		op, ok := d.Operation(name)
		if !ok || !op.HasFaults() {
			continue
		}
		ge.emitFault(&faults, op)
	}

	fmt.Fprintf(&body, "// ---- service ----\n\n")
	ge.emitService(&body, d)

	if faults.Len() > 0 {
		fmt.Fprintf(&body, "// ---- faults ----\n\n")
		body.Write(faults.Bytes())
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by wsdl2go. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", packageName(ge.pkg))
	ge.writeImports(&out)
	out.Write(body.Bytes())

	return ge.format(out.Bytes())
}

func (ge *goEncoder) writeImports(w *bytes.Buffer) {
	var std, ext []string
	for pkg := range ge.needsStdPkg {
		std = append(std, pkg)
	}
	for pkg := range ge.needsExtPkg {
		ext = append(ext, pkg)
	}
	if len(std) == 0 && len(ext) == 0 {
		return
	}
	sort.Strings(std)
	sort.Strings(ext)
	fmt.Fprintf(w, "import (\n")
	for _, pkg := range std {
		fmt.Fprintf(w, "\t%q\n", pkg)
	}
	if len(std) > 0 && len(ext) > 0 {
		fmt.Fprintf(w, "\n")
	}
	for _, pkg := range ext {
		fmt.Fprintf(w, "\t%q\n", pkg)
	}
	fmt.Fprintf(w, ")\n\n")
}

// format validates src by parsing it, then runs it through go/format -
// an in-process stand-in for the teacher's shell-out to the external
// gofmt binary (see DESIGN.md).
func (ge *goEncoder) format(src []byte) ([]byte, error) {
	if _, err := parser.ParseFile(token.NewFileSet(), "", src, parser.AllErrors); err != nil {
		return nil, fmt.Errorf("wsdlgo: generated invalid Go source: %w", err)
	}
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("wsdlgo: gofmt: %w", err)
	}
	return out, nil
}
