package wsdlgo

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/soapgen/wsdl2go/wsdl"
)

// fieldPlan is the emitter's resolved view of a wsdl.Field: its Go
// field name, Go type, and which of the four serialization shapes
// (bare scalar, bare complex, optional, list) it falls into.
type fieldPlan struct {
	field      wsdl.Field
	goName     string
	goType     string
	isList     bool
	isOptional bool
	isComplex  bool
}

func planField(f wsdl.Field) fieldPlan {
	isList := f.Attrs.MinOccurs != nil && f.Attrs.MaxOccurs != nil
	isComplex := f.Kind == wsdl.Complex
	base := baseGoType(f)
	goType := base
	switch {
	case isList:
		goType = "[]" + base
	case f.Attrs.Nillable:
		goType = "*" + base
	}
	return fieldPlan{
		field:      f,
		goName:     fieldName(f.Name),
		goType:     goType,
		isList:     isList,
		isOptional: f.Attrs.Nillable && !isList,
		isComplex:  isComplex,
	}
}

func baseGoType(f wsdl.Field) string {
	switch f.Kind {
	case wsdl.Boolean:
		return "bool"
	case wsdl.String:
		return "string"
	case wsdl.Float:
		return "float64"
	case wsdl.Int:
		return "int64"
	case wsdl.DateTime:
		return "time.Time"
	default:
		return exportedName(f.Ref)
	}
}

// emitType writes the value-object struct declaration for name plus its
// ToElements/FromElement bindings (spec §4.3). A zero-field complex
// type still gets trivial, always-empty bindings.
func (ge *goEncoder) emitType(b *bytes.Buffer, name string, ty *wsdl.SchemaType) {
	goName := exportedName(name)
	fields := make([]fieldPlan, 0, len(ty.Complex.Fields))
	for _, f := range ty.Complex.Fields {
		fields = append(fields, planField(f))
		ge.noteFieldDeps(f)
	}

	fmt.Fprintf(b, "// %s was generated from the %q schema type.\n", goName, name)
	fmt.Fprintf(b, "type %s struct {\n", goName)
	for _, fp := range fields {
		fmt.Fprintf(b, "\t%s %s\n", fp.goName, fp.goType)
	}
	fmt.Fprintf(b, "}\n\n")

	ge.emitToElements(b, goName, fields)
	ge.emitFromElement(b, goName, fields)
}

func (ge *goEncoder) noteFieldDeps(f wsdl.Field) {
	switch f.Kind {
	case wsdl.Float, wsdl.Boolean, wsdl.Int:
		ge.needsStdPkg["strconv"] = true
	case wsdl.DateTime:
		ge.needsStdPkg["time"] = true
	}
}

func (ge *goEncoder) emitToElements(b *bytes.Buffer, goName string, fields []fieldPlan) {
	fmt.Fprintf(b, "// ToElements implements soap.ToElements.\n")
	fmt.Fprintf(b, "func (v *%s) ToElements() []*soap.Element {\n", goName)
	fmt.Fprintf(b, "\tvar out []*soap.Element\n")
	for _, fp := range fields {
		ge.emitFieldSerializer(b, fp)
	}
	fmt.Fprintf(b, "\treturn out\n")
	fmt.Fprintf(b, "}\n\n")
}

func (ge *goEncoder) emitFieldSerializer(b *bytes.Buffer, fp fieldPlan) {
	tag := fp.field.Name
	goName := fp.goName
	switch {
	case fp.isList && fp.isComplex:
		fmt.Fprintf(b, "\tfor _, item := range v.%s {\n", goName)
		fmt.Fprintf(b, "\t\titem := item\n")
		fmt.Fprintf(b, "\t\tout = append(out, soap.Node(%q).WithChildren(item.ToElements()))\n", tag)
		fmt.Fprintf(b, "\t}\n")
	case fp.isList:
		fmt.Fprintf(b, "\tfor _, item := range v.%s {\n", goName)
		fmt.Fprintf(b, "\t\tout = append(out, soap.Node(%q).WithText(%s))\n", tag, scalarToString(fp.field.Kind, "item"))
		fmt.Fprintf(b, "\t}\n")
	case fp.isOptional && fp.isComplex:
		fmt.Fprintf(b, "\tif v.%s != nil {\n", goName)
		fmt.Fprintf(b, "\t\tout = append(out, soap.Node(%q).WithChildren(v.%s.ToElements()))\n", tag, goName)
		fmt.Fprintf(b, "\t}\n")
	case fp.isOptional:
		fmt.Fprintf(b, "\tif v.%s != nil {\n", goName)
		fmt.Fprintf(b, "\t\tout = append(out, soap.Node(%q).WithText(%s))\n", tag, scalarToString(fp.field.Kind, "(*v."+goName+")"))
		fmt.Fprintf(b, "\t}\n")
	case fp.isComplex:
		fmt.Fprintf(b, "\tout = append(out, soap.Node(%q).WithChildren(v.%s.ToElements()))\n", tag, goName)
	default:
		fmt.Fprintf(b, "\tout = append(out, soap.Node(%q).WithText(%s))\n", tag, scalarToString(fp.field.Kind, "v."+goName))
	}
}

func scalarToString(kind wsdl.SimpleKind, expr string) string {
	switch kind {
	case wsdl.Boolean:
		return fmt.Sprintf("strconv.FormatBool(%s)", expr)
	case wsdl.Int:
		return fmt.Sprintf("strconv.FormatInt(%s, 10)", expr)
	case wsdl.Float:
		return fmt.Sprintf("strconv.FormatFloat(%s, 'f', -1, 64)", expr)
	case wsdl.DateTime:
		return fmt.Sprintf("%s.Format(time.RFC3339)", expr)
	default:
		return expr
	}
}

func (ge *goEncoder) emitFromElement(b *bytes.Buffer, goName string, fields []fieldPlan) {
	fmt.Fprintf(b, "// FromElement implements soap.FromElement.\n")
	fmt.Fprintf(b, "func (v *%s) FromElement(e *soap.Element) error {\n", goName)
	for _, fp := range fields {
		ge.emitFieldDeserializer(b, fp)
	}
	fmt.Fprintf(b, "\treturn nil\n")
	fmt.Fprintf(b, "}\n\n")
}

// emitScalarRead writes a short statement sequence that reads childVar
// (a *soap.Element) into a freshly declared variable named resultVar,
// leaving a local err in scope for the caller to check.
func emitScalarRead(b *bytes.Buffer, indent string, kind wsdl.SimpleKind, childVar, resultVar string) {
	switch kind {
	case wsdl.Boolean:
		fmt.Fprintf(b, "%s%s, err := %s.AsBoolean()\n", indent, resultVar, childVar)
	case wsdl.Int:
		fmt.Fprintf(b, "%s%s, err := %s.AsLong()\n", indent, resultVar, childVar)
	case wsdl.String:
		fmt.Fprintf(b, "%s%s, err := %s.GetText()\n", indent, resultVar, childVar)
	case wsdl.Float:
		fmt.Fprintf(b, "%stext, err := %s.GetText()\n", indent, childVar)
		fmt.Fprintf(b, "%svar %s float64\n", indent, resultVar)
		fmt.Fprintf(b, "%sif err == nil {\n", indent)
		fmt.Fprintf(b, "%s\t%s, err = strconv.ParseFloat(text, 64)\n", indent, resultVar)
		fmt.Fprintf(b, "%s}\n", indent)
	case wsdl.DateTime:
		fmt.Fprintf(b, "%stext, err := %s.GetText()\n", indent, childVar)
		fmt.Fprintf(b, "%svar %s time.Time\n", indent, resultVar)
		fmt.Fprintf(b, "%sif err == nil {\n", indent)
		fmt.Fprintf(b, "%s\t%s, err = time.Parse(time.RFC3339, text)\n", indent, resultVar)
		fmt.Fprintf(b, "%s}\n", indent)
	}
}

// emitFieldDeserializer reproduces spec §4.3's fromElement rules,
// including the repeated-complex "no name filter" behavior documented
// as a known gap rather than a bug to silently fix (see §9): a list
// field iterates every child of the parent element, not just children
// named after the field.
func (ge *goEncoder) emitFieldDeserializer(b *bytes.Buffer, fp fieldPlan) {
	tag := fp.field.Name
	goName := fp.goName
	nillable := fp.field.Attrs.Nillable

	fmt.Fprintf(b, "\t{\n")
	switch {
	case fp.isList && fp.isComplex:
		itemType := strings.TrimPrefix(fp.goType, "[]")
		fmt.Fprintf(b, "\t\tfor _, child := range e.Children() {\n")
		fmt.Fprintf(b, "\t\t\tvar item %s\n", itemType)
		fmt.Fprintf(b, "\t\t\tif err := item.FromElement(child); err != nil {\n")
		if nillable {
			fmt.Fprintf(b, "\t\t\t\tcontinue\n")
		} else {
			fmt.Fprintf(b, "\t\t\t\treturn err\n")
		}
		fmt.Fprintf(b, "\t\t\t}\n")
		fmt.Fprintf(b, "\t\t\tv.%s = append(v.%s, item)\n", goName, goName)
		fmt.Fprintf(b, "\t\t}\n")
	case fp.isList:
		fmt.Fprintf(b, "\t\tfor _, child := range e.Children() {\n")
		emitScalarRead(b, "\t\t\t", fp.field.Kind, "child", "item")
		fmt.Fprintf(b, "\t\t\tif err != nil {\n")
		if nillable {
			fmt.Fprintf(b, "\t\t\t\tcontinue\n")
		} else {
			fmt.Fprintf(b, "\t\t\t\treturn err\n")
		}
		fmt.Fprintf(b, "\t\t\t}\n")
		fmt.Fprintf(b, "\t\t\tv.%s = append(v.%s, item)\n", goName, goName)
		fmt.Fprintf(b, "\t\t}\n")
	case fp.isOptional && fp.isComplex:
		itemType := strings.TrimPrefix(fp.goType, "*")
		fmt.Fprintf(b, "\t\tif child, err := e.GetAtPath(%q); err == nil {\n", tag)
		fmt.Fprintf(b, "\t\t\tvar item %s\n", itemType)
		fmt.Fprintf(b, "\t\t\tif err := item.FromElement(child); err == nil {\n")
		fmt.Fprintf(b, "\t\t\t\tv.%s = &item\n", goName)
		fmt.Fprintf(b, "\t\t\t}\n")
		fmt.Fprintf(b, "\t\t}\n")
	case fp.isOptional:
		fmt.Fprintf(b, "\t\tif child, err := e.GetAtPath(%q); err == nil {\n", tag)
		emitScalarRead(b, "\t\t\t", fp.field.Kind, "child", "item")
		fmt.Fprintf(b, "\t\t\tif err == nil {\n")
		fmt.Fprintf(b, "\t\t\t\tv.%s = &item\n", goName)
		fmt.Fprintf(b, "\t\t\t}\n")
		fmt.Fprintf(b, "\t\t}\n")
	case fp.isComplex:
		fmt.Fprintf(b, "\t\tchild, err := e.GetAtPath(%q)\n", tag)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tif err := v.%s.FromElement(child); err != nil {\n\t\t\treturn err\n\t\t}\n", goName)
	default:
		fmt.Fprintf(b, "\t\tchild, err := e.GetAtPath(%q)\n", tag)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		emitScalarRead(b, "\t\t", fp.field.Kind, "child", "val")
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tv.%s = val\n", goName)
	}
	fmt.Fprintf(b, "\t}\n")
}
