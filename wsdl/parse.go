package wsdl

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/soapgen/wsdl2go/soap"
)

// splitNamespace drops a leading "prefix:" from s. WSDL documents
// freely mix namespace prefixes into attribute values (type="tns:Foo")
// and sometimes into tag names depending on how the document declares
// its default namespace; this package resolves neither prefix to a
// URI and instead keys everything on the bare local name, same as the
// reference generator it implements. Two schemas with identical local
// names in different namespaces will collide — see DESIGN.md.
func splitNamespace(s string) string {
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

func localTag(e *etree.Element) string {
	return splitNamespace(e.Tag)
}

func childrenNamed(parent *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, c := range parent.ChildElements() {
		if localTag(c) == name {
			out = append(out, c)
		}
	}
	return out
}

func childNamed(parent *etree.Element, name string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if localTag(c) == name {
			return c
		}
	}
	return nil
}

func attrValue(e *etree.Element, name string) (string, bool) {
	a := e.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func hasChildren(e *etree.Element) bool {
	if len(e.ChildElements()) > 0 {
		return true
	}
	return strings.TrimSpace(e.Text()) != ""
}

// Parse reads a WSDL 1.1 document and builds its intermediate model.
// Parsing fails fast on the first structural problem; no partial
// Document is ever returned.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, soap.Wrap(soap.Parse, "wsdl", err)
	}
	root := tree.Root()
	if root == nil {
		return nil, soap.Errorf(soap.Parse, "empty document")
	}

	targetNamespace, err := parseTargetNamespace(root)
	if err != nil {
		return nil, err
	}
	serviceName, err := parseServiceName(root)
	if err != nil {
		return nil, err
	}
	types, typeOrder, err := parseTypes(root)
	if err != nil {
		return nil, err
	}
	messages, messageOrder, err := parseMessages(root)
	if err != nil {
		return nil, err
	}
	operations, operationOrder, err := parseOperations(root)
	if err != nil {
		return nil, err
	}

	return &Document{
		Name:            serviceName,
		TargetNamespace: targetNamespace,
		Types:           typeOrder,
		typesByKey:      types,
		Messages:        messageOrder,
		messagesByKey:   messages,
		Operations:      operationOrder,
		operationsByKey: operations,
	}, nil
}

func parseTargetNamespace(root *etree.Element) (string, error) {
	if imp := childNamed(root, "import"); imp != nil {
		if ns, ok := attrValue(imp, "namespace"); ok {
			return ns, nil
		}
		return "", soap.Errorf(soap.AttributeNotFound, "namespace")
	}
	if ns, ok := attrValue(root, "targetNamespace"); ok {
		return ns, nil
	}
	return "", soap.Errorf(soap.AttributeNotFound, "targetNamespace")
}

func parseServiceName(root *etree.Element) (string, error) {
	svc := childNamed(root, "service")
	if svc == nil {
		return "", soap.Errorf(soap.ElementNotFound, "service")
	}
	name, ok := attrValue(svc, "name")
	if !ok {
		return "", soap.Errorf(soap.AttributeNotFound, "name")
	}
	return name, nil
}

func parseTypes(root *etree.Element) (map[string]*SchemaType, []string, error) {
	types := map[string]*SchemaType{}
	var order []string

	typesEl := childNamed(root, "types")
	if typesEl == nil {
		return types, order, nil
	}
	schemaChildren := typesEl.ChildElements()
	if len(schemaChildren) == 0 {
		return types, order, nil
	}
	schemaEl := schemaChildren[0]

	for _, elem := range schemaEl.ChildElements() {
		name, ok := attrValue(elem, "name")
		if !ok {
			return nil, nil, soap.Errorf(soap.AttributeNotFound, "name")
		}

		var child *etree.Element
		if localTag(elem) == "complexType" {
			child = elem
		} else {
			kids := elem.ChildElements()
			if len(kids) == 0 {
				return nil, nil, soap.Errorf(soap.Empty, name)
			}
			child = kids[0]
		}
		if localTag(child) != "complexType" {
			return nil, nil, soap.Errorf(soap.NotAnElement, name)
		}

		if abstract, _ := attrValue(child, "abstract"); abstract == "true" {
			types[name] = &SchemaType{Shape: ShapeComplex}
			order = append(order, name)
			continue
		}

		var fieldContainer *etree.Element
		for _, c := range child.ChildElements() {
			if localTag(c) != "annotation" {
				fieldContainer = c
				break
			}
		}
		if fieldContainer == nil {
			return nil, nil, soap.Errorf(soap.Empty, name)
		}
		if localTag(fieldContainer) == "complexContent" {
			types[name] = &SchemaType{Shape: ShapeComplex}
			order = append(order, name)
			continue
		}

		fields, err := parseFields(fieldContainer)
		if err != nil {
			return nil, nil, err
		}
		types[name] = &SchemaType{Shape: ShapeComplex, Complex: ComplexType{Fields: fields}}
		order = append(order, name)
	}

	return types, order, nil
}

func parseFields(container *etree.Element) ([]Field, error) {
	var fields []Field
	for _, f := range container.ChildElements() {
		fieldName, ok := attrValue(f, "name")
		if !ok {
			return nil, soap.Errorf(soap.AttributeNotFound, "name")
		}
		fieldType, ok := attrValue(f, "type")
		if !ok {
			return nil, soap.Errorf(soap.AttributeNotFound, "type")
		}

		nillable := false
		if v, ok := attrValue(f, "nillable"); ok {
			nillable = v == "true"
		}

		minOccurs, err := parseOccurrence(f, "minOccurs")
		if err != nil {
			return nil, err
		}
		maxOccurs, err := parseOccurrence(f, "maxOccurs")
		if err != nil {
			return nil, err
		}
		nillable, minOccurs, maxOccurs = normalizeOccurs(nillable, minOccurs, maxOccurs)

		kind, ref := mapSimpleKind(splitNamespace(fieldType))
		fields = append(fields, Field{
			Name: fieldName,
			Attrs: FieldAttrs{
				Nillable:  nillable,
				MinOccurs: minOccurs,
				MaxOccurs: maxOccurs,
			},
			Kind: kind,
			Ref:  ref,
		})
	}
	return fields, nil
}

func parseOccurrence(e *etree.Element, name string) (*Occurrence, error) {
	v, ok := attrValue(e, name)
	if !ok {
		return nil, nil
	}
	if v == "unbounded" {
		return &Occurrence{Unbounded: true}, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, soap.Wrap(soap.ConversionFailed, name, err)
	}
	return &Occurrence{Num: n}, nil
}

// normalizeOccurs applies the cardinality collapse rules from the data
// model: (0,1) becomes a plain nillable scalar, (1,1) becomes a plain
// required scalar; everything else passes through untouched.
func normalizeOccurs(nillable bool, min, max *Occurrence) (bool, *Occurrence, *Occurrence) {
	isNum := func(o *Occurrence, n uint64) bool {
		return o != nil && !o.Unbounded && o.Num == n
	}
	switch {
	case isNum(min, 0) && isNum(max, 1):
		return true, nil, nil
	case isNum(min, 1) && isNum(max, 1):
		return false, nil, nil
	default:
		return nillable, min, max
	}
}

func mapSimpleKind(token string) (SimpleKind, string) {
	switch token {
	case "boolean":
		return Boolean, ""
	case "string":
		return String, ""
	case "int":
		return Int, ""
	case "float":
		return Float, ""
	case "dateTime":
		return DateTime, ""
	default:
		return Complex, token
	}
}

func parseMessages(root *etree.Element) (map[string]*Message, []string, error) {
	messages := map[string]*Message{}
	var order []string
	for _, m := range childrenNamed(root, "message") {
		name, ok := attrValue(m, "name")
		if !ok {
			return nil, nil, soap.Errorf(soap.AttributeNotFound, "name")
		}
		kids := m.ChildElements()
		if len(kids) == 0 {
			return nil, nil, soap.Errorf(soap.Empty, name)
		}
		part := kids[0]
		partName, ok := attrValue(part, "name")
		if !ok {
			return nil, nil, soap.Errorf(soap.AttributeNotFound, "name")
		}
		partElement, ok := attrValue(part, "element")
		if !ok {
			return nil, nil, soap.Errorf(soap.AttributeNotFound, "element")
		}
		messages[name] = &Message{
			Name:        name,
			PartName:    partName,
			PartElement: splitNamespace(partElement),
		}
		order = append(order, name)
	}
	return messages, order, nil
}

// Sentinel message names used for the document-literal binding path,
// where the parser has no schema type to resolve an operation's
// input/output against (see parseBindingOperation).
const (
	LiteralRequestName  = "LiteralRequest"
	LiteralResponseName = "LiteralResponse"
	// LiteralFaultName is the sentinel fault message name used on the
	// binding-fallback path, exported so the emitter can recognize it.
	LiteralFaultName = "literal"
)

func parseOperations(root *etree.Element) (map[string]*Operation, []string, error) {
	operations := map[string]*Operation{}
	var order []string

	if portType := childNamed(root, "portType"); portType != nil {
		for _, opEl := range childrenNamed(portType, "operation") {
			op, err := parsePortTypeOperation(opEl)
			if err != nil {
				return nil, nil, err
			}
			operations[op.Name] = op
			order = append(order, op.Name)
		}
		return operations, order, nil
	}

	binding := childNamed(root, "binding")
	if binding == nil {
		return nil, nil, soap.Errorf(soap.ElementNotFound, "binding")
	}
	for _, opEl := range childrenNamed(binding, "operation") {
		op, err := parseBindingOperation(opEl)
		if err != nil {
			return nil, nil, err
		}
		operations[op.Name] = op
		order = append(order, op.Name)
	}
	return operations, order, nil
}

func parsePortTypeOperation(opEl *etree.Element) (*Operation, error) {
	name, ok := attrValue(opEl, "name")
	if !ok {
		return nil, soap.Errorf(soap.AttributeNotFound, "name")
	}
	op := &Operation{Name: name}
	for _, child := range opEl.ChildElements() {
		msg, ok := attrValue(child, "message")
		if !ok {
			continue
		}
		msg = splitNamespace(msg)
		switch localTag(child) {
		case "input":
			op.Input = msg
		case "output":
			op.Output = msg
		case "fault":
			op.Faults = append(op.Faults, msg)
		default:
			return nil, soap.Errorf(soap.ElementNotFound, "operation member")
		}
	}
	return op, nil
}

func parseBindingOperation(opEl *etree.Element) (*Operation, error) {
	name, ok := attrValue(opEl, "name")
	if !ok {
		return nil, soap.Errorf(soap.AttributeNotFound, "name")
	}
	op := &Operation{Name: name}
	for _, child := range opEl.ChildElements() {
		if !hasChildren(child) {
			continue
		}
		switch localTag(child) {
		case "input":
			op.Input = LiteralRequestName
		case "output":
			op.Output = LiteralResponseName
		case "fault":
			op.Faults = append(op.Faults, LiteralFaultName)
		default:
			return nil, soap.Errorf(soap.ElementNotFound, "operation member")
		}
	}
	return op, nil
}
