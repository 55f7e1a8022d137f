package wsdlgo

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// goKeywords can't be used as identifiers; mangled names that collide
// with one get an underscore appended.
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true,
	"select": true, "case": true, "defer": true, "go": true, "map": true,
	"struct": true, "chan": true, "else": true, "goto": true, "package": true,
	"switch": true, "const": true, "fallthrough": true, "if": true, "range": true,
	"type": true, "continue": true, "for": true, "import": true, "return": true,
	"var": true,
}

// exportedName mangles a WSDL local name into an exported Go
// identifier: strcase.ToCamel for the casing, then a numeric-prefix
// guard. No keyword guard is needed here - an exported identifier is
// always capitalized, so it can never collide with one of Go's
// lowercase reserved words.
func exportedName(s string) string {
	name := strcase.ToCamel(sanitize(s))
	if name == "" {
		name = "Field"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// fieldName mangles a WSDL field name into an exported Go struct field
// name. It currently applies exactly the same rules as exportedName.
func fieldName(s string) string {
	return exportedName(s)
}

// packageName mangles a WSDL service name into a lowercase, import-
// safe package identifier.
func packageName(s string) string {
	name := strcase.ToSnake(sanitize(s))
	name = strings.ReplaceAll(name, "_", "")
	if name == "" {
		return "service"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	if goKeywords[name] {
		name += "_"
	}
	return name
}

// paramName mangles a WSDL local name into an unexported, keyword-safe
// Go parameter identifier.
func paramName(s string) string {
	name := strcase.ToLowerCamel(sanitize(s))
	if name == "" {
		name = "v"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	if goKeywords[name] {
		name += "_"
	}
	return name
}

// sanitize replaces every character that is not a letter or digit
// (dots, stray slashes, and the like; colons are already stripped
// upstream by splitNamespace) with '_', which strcase treats as a word
// boundary.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		default:
			return '_'
		}
	}, s)
}
