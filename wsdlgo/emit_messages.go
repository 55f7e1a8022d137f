package wsdlgo

import (
	"bytes"
	"fmt"

	"github.com/soapgen/wsdl2go/wsdl"
)

// emitMessage writes a thin wrapper object for a message whose name
// does not collide with a type-table entry (spec §4.4). Messages that
// do collide are suppressed entirely by the caller, since the type
// emitter already produced bindings for that name.
func (ge *goEncoder) emitMessage(b *bytes.Buffer, name string, msg *wsdl.Message) {
	goName := exportedName(name)
	inner := exportedName(msg.PartElement)

	fmt.Fprintf(b, "// %s wraps the %q message's single part.\n", goName, name)
	fmt.Fprintf(b, "type %s struct {\n\tValue %s\n}\n\n", goName, inner)
	fmt.Fprintf(b, "// ToElements implements soap.ToElements.\n")
	fmt.Fprintf(b, "func (m *%s) ToElements() []*soap.Element {\n\treturn m.Value.ToElements()\n}\n\n", goName)
	fmt.Fprintf(b, "// FromElement implements soap.FromElement.\n")
	fmt.Fprintf(b, "func (m *%s) FromElement(e *soap.Element) error {\n\treturn m.Value.FromElement(e)\n}\n\n", goName)
}
