package wsdlgo

import (
	"testing"

	"github.com/soapgen/wsdl2go/wsdl"
)

func TestDocumentPackageName_String(t *testing.T) {
	tests := []struct {
		expected string
		doc      wsdl.Document
	}{
		{"foo", wsdl.Document{Name: "foo"}},
		{"dataendpointsoap11", wsdl.Document{Name: "DataEndpointSoap11"}},
		{"somedottedbindingname", wsdl.Document{Name: "Some.Dotted.Binding.Name"}},
		{"internal", wsdl.Document{Name: ""}},
	}

	for _, test := range tests {
		doc := test.doc
		namer := DocumentPackageName{Doc: &doc}
		name := namer.String()
		if test.expected != name {
			t.Errorf("expected `%s`, actual `%s`", test.expected, name)
		}
	}
}
