package wsdlgo

import (
	"bytes"
	"fmt"

	"github.com/soapgen/wsdl2go/wsdl"
)

// emitFault writes the tagged-union fault type for op (spec §4.5). Go
// has no native sum type, so the union is rendered as a sealed
// interface with one unexported marker method per variant - the
// standard idiom for this shape in the ecosystem.
func (ge *goEncoder) emitFault(b *bytes.Buffer, op *wsdl.Operation) {
	unionName := exportedName(op.Name) + "Error"
	markerName := "is" + unionName

	fmt.Fprintf(b, "// %s is the fault union for the %s operation.\n", unionName, op.Name)
	fmt.Fprintf(b, "type %s interface {\n\t%s()\n}\n\n", unionName, markerName)

	for _, fault := range op.Faults {
		var payloadType, label string
		if fault == wsdl.LiteralFaultName {
			payloadType, label = "soap.LiteralResponse", "Literal"
		} else {
			payloadType = exportedName(fault)
			label = payloadType
		}
		variant := exportedName(op.Name) + label + "Fault"
		fmt.Fprintf(b, "// %s is the %q fault variant of %s.\n", variant, fault, unionName)
		fmt.Fprintf(b, "type %s struct {\n\tValue %s\n}\n\n", variant, payloadType)
		fmt.Fprintf(b, "func (%s) %s() {}\n\n", variant, markerName)
	}
}
