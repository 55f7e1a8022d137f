package soap

import "fmt"

// Kind identifies the category of a soap.Error. The same taxonomy
// applies whether the error surfaces while parsing a WSDL document or
// while a generated client serializes/deserializes a SOAP message at
// runtime.
type Kind int

const (
	// Parse means the XML tree itself could not be built.
	Parse Kind = iota
	// ElementNotFound means a required structural element is missing.
	ElementNotFound
	// AttributeNotFound means a required attribute is missing on an
	// otherwise located element.
	AttributeNotFound
	// NotAnElement means an element child was expected but text or a
	// comment node was found instead.
	NotAnElement
	// Empty means non-empty text content was expected but the element
	// had none.
	Empty
	// ConversionFailed means a scalar value (int, float, dateTime)
	// failed to parse.
	ConversionFailed
	// Transport means the HTTP round-trip itself failed.
	Transport
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse"
	case ElementNotFound:
		return "element not found"
	case AttributeNotFound:
		return "attribute not found"
	case NotAnElement:
		return "not an element"
	case Empty:
		return "empty"
	case ConversionFailed:
		return "conversion failed"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the error type shared by the WSDL parser and the generated
// client's runtime bindings. Subject carries the name of the thing that
// was missing or malformed (a tag, an attribute, a scalar kind); Cause
// carries the underlying error, if any.
type Error struct {
	Kind    Kind
	Subject string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Subject != "" && e.Cause != nil:
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Subject, e.Cause)
	case e.Subject != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Subject)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Errorf builds an *Error of the given kind naming subject, with no
// wrapped cause.
func Errorf(kind Kind, subject string) *Error {
	return &Error{Kind: kind, Subject: subject}
}

// Wrap builds an *Error of the given kind naming subject, wrapping
// cause.
func Wrap(kind Kind, subject string, cause error) *Error {
	return &Error{Kind: kind, Subject: subject, Cause: cause}
}
