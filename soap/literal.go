package soap

// LiteralRequest and LiteralResponse stand in for the real request/
// response element when a WSDL declares a document-literal binding
// without a portType: the parser has no schema type name to resolve
// the operation's input/output to, so it resolves them to these
// sentinels instead (see the wsdl package's binding-fallback path).
//
// Both are an identity passthrough over the raw body element: whatever
// XML arrived becomes Raw, and serializing an outbound request just
// re-emits Raw's children.

// LiteralRequest is the document-literal sentinel input message.
type LiteralRequest struct {
	Raw *Element
}

// ToElements implements ToElements.
func (r *LiteralRequest) ToElements() []*Element {
	if r == nil || r.Raw == nil {
		return nil
	}
	return r.Raw.Children()
}

// FromElement implements FromElement.
func (r *LiteralRequest) FromElement(e *Element) error {
	r.Raw = e
	return nil
}

// LiteralResponse is the document-literal sentinel output message.
type LiteralResponse struct {
	Raw *Element
}

// ToElements implements ToElements.
func (r *LiteralResponse) ToElements() []*Element {
	if r == nil || r.Raw == nil {
		return nil
	}
	return r.Raw.Children()
}

// FromElement implements FromElement.
func (r *LiteralResponse) FromElement(e *Element) error {
	r.Raw = e
	return nil
}
