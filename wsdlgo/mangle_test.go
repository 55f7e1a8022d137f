package wsdlgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportedName(t *testing.T) {
	cases := map[string]string{
		"GetCountryRequest": "GetCountryRequest",
		"get_country":       "GetCountry",
		"type":              "Type",
		"2fast":             "_2Fast",
		"some.dotted.name":  "SomeDottedName",
	}
	for in, want := range cases {
		assert.Equal(t, want, exportedName(in), in)
	}
}

func TestExportedNameIdempotent(t *testing.T) {
	for _, in := range []string{"GetCountryRequest", "get_country", "Already_Mangled"} {
		once := exportedName(in)
		twice := exportedName(once)
		assert.Equal(t, once, twice, in)
	}
}

func TestPackageName(t *testing.T) {
	cases := map[string]string{
		"GeoService":          "geoservice",
		"Some.Dotted.Binding": "somedottedbinding",
		"":                    "service",
		"DataEndpointSoap11":  "dataendpointsoap11",
		"type":                "type_",
	}
	for in, want := range cases {
		assert.Equal(t, want, packageName(in), in)
	}
}
