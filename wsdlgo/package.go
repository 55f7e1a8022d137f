package wsdlgo

import (
	"strings"

	"github.com/soapgen/wsdl2go/wsdl"
)

// DocumentPackageName formats a Go package name from a parsed WSDL
// document's service name, falling back when the name mangles away to
// nothing.
type DocumentPackageName struct {
	Doc *wsdl.Document
}

func (p DocumentPackageName) String() string {
	name := packageName(p.Doc.Name)
	if strings.Trim(sanitize(p.Doc.Name), "_") == "" {
		name = "internal"
	}
	return name
}
