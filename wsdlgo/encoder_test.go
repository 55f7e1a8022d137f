package wsdlgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soapgen/wsdl2go/wsdl"
)

const s1Doc = `<?xml version="1.0"?>
<definitions name="GeoService" targetNamespace="urn:geo"
             xmlns="http://schemas.xmlsoap.org/wsdl/"
             xmlns:xsd="http://www.w3.org/2001/XMLSchema"
             xmlns:tns="urn:geo">
  <types>
    <xsd:schema>
      <xsd:element name="GetCountriesRequest">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="region" type="xsd:string" minOccurs="1" maxOccurs="1"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="GetCountriesResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="name" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </types>
  <message name="GetCountriesIn">
    <part name="parameters" element="tns:GetCountriesRequest"/>
  </message>
  <message name="GetCountriesOut">
    <part name="parameters" element="tns:GetCountriesResponse"/>
  </message>
  <portType name="GeoPort">
    <operation name="GetCountries">
      <input message="tns:GetCountriesIn"/>
      <output message="tns:GetCountriesOut"/>
    </operation>
  </portType>
  <service name="GeoService"/>
</definitions>`

func TestEncodeSingleOperation(t *testing.T) {
	d, err := wsdl.Parse([]byte(s1Doc))
	require.NoError(t, err)

	src, err := NewEncoder("GeoService").Encode(d)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "package geoservice")
	assert.Contains(t, out, `const Namespace = "urn:geo"`)
	assert.Contains(t, out, "type GetCountriesRequest struct {")
	assert.Contains(t, out, "type GetCountriesResponse struct {")
	assert.Contains(t, out, "Name []string")
	assert.Contains(t, out, "type GeoService struct {")
	assert.Contains(t, out, "func NewGeoService(baseURL string) *GeoService {")
	assert.Contains(t, out, "func (s *GeoService) GetCountries(ctx context.Context, getCountriesIn GetCountriesIn) (GetCountriesOut, error) {")
	assert.Contains(t, out, `soap.RequestResponse(ctx, s.client, s.baseURL, Namespace, "GetCountries", &getCountriesIn, &out)`)
	// GetCountriesIn/GetCountriesOut message names don't collide with any
	// type name, so wrapper structs must be emitted.
	assert.Contains(t, out, "type GetCountriesIn struct {")
	assert.Contains(t, out, "type GetCountriesOut struct {")
}

const oneWayDoc = `<?xml version="1.0"?>
<definitions name="NotifyService" targetNamespace="urn:notify"
             xmlns="http://schemas.xmlsoap.org/wsdl/">
  <message name="PingIn">
    <part name="parameters" element="tns:Ping"/>
  </message>
  <portType name="NotifyPort">
    <operation name="Ping">
      <input message="tns:PingIn"/>
    </operation>
  </portType>
  <service name="NotifyService"/>
</definitions>`

func TestEncodeOneWayOperation(t *testing.T) {
	d, err := wsdl.Parse([]byte(oneWayDoc))
	require.NoError(t, err)

	src, err := NewEncoder("NotifyService").Encode(d)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "func (s *NotifyService) Ping(ctx context.Context, pingIn PingIn) error {")
	assert.Contains(t, out, `soap.OneWay(ctx, s.client, s.baseURL, Namespace, "Ping", &pingIn)`)
}

const faultDoc = `<?xml version="1.0"?>
<definitions name="GeoService" targetNamespace="urn:geo"
             xmlns="http://schemas.xmlsoap.org/wsdl/">
  <message name="GetCountryIn">
    <part name="parameters" element="tns:GetCountryRequest"/>
  </message>
  <message name="GetCountryOut">
    <part name="parameters" element="tns:GetCountryResponse"/>
  </message>
  <message name="InvalidCodeFault">
    <part name="parameters" element="tns:InvalidCode"/>
  </message>
  <portType name="GeoPort">
    <operation name="GetCountry">
      <input message="tns:GetCountryIn"/>
      <output message="tns:GetCountryOut"/>
      <fault message="tns:InvalidCodeFault"/>
    </operation>
  </portType>
  <service name="GeoService"/>
</definitions>`

func TestEncodeThreeWayStub(t *testing.T) {
	d, err := wsdl.Parse([]byte(faultDoc))
	require.NoError(t, err)

	src, err := NewEncoder("GeoService").Encode(d)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "type GetCountryError interface {")
	assert.Contains(t, out, "isGetCountryError()")
	assert.Contains(t, out, "type GetCountryInvalidCodeFaultFault struct {")
	assert.Contains(t, out, "func (s *GeoService) GetCountry(ctx context.Context, getCountryIn GetCountryIn) (GetCountryOut, GetCountryError, error) {")
	assert.Contains(t, out, "fault union decoding is not implemented")
}

const skipDoc = `<?xml version="1.0"?>
<definitions name="GeoService" targetNamespace="urn:geo"
             xmlns="http://schemas.xmlsoap.org/wsdl/">
  <message name="PingIn">
    <part name="parameters" element="tns:Ping"/>
  </message>
  <message name="PingFault">
    <part name="parameters" element="tns:PingFault"/>
  </message>
  <portType name="GeoPort">
    <operation name="Ping">
      <input message="tns:PingIn"/>
      <fault message="tns:PingFault"/>
    </operation>
  </portType>
  <service name="GeoService"/>
</definitions>`

func TestEncodeSkipsInputFaultsOnly(t *testing.T) {
	d, err := wsdl.Parse([]byte(skipDoc))
	require.NoError(t, err)

	src, err := NewEncoder("GeoService").Encode(d)
	require.NoError(t, err)
	out := string(src)

	assert.False(t, strings.Contains(out, "func (s *GeoService) Ping("),
		"(input, no output, faults) must be skipped entirely")
}

const bindingFallbackDoc = `<?xml version="1.0"?>
<definitions name="LegacyService" targetNamespace="urn:legacy"
             xmlns="http://schemas.xmlsoap.org/wsdl/"
             xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/">
  <binding name="LegacyBinding" type="tns:LegacyPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <operation name="DoThing">
      <soap:operation soapAction="urn:legacy#DoThing"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
  </binding>
  <service name="LegacyService"/>
</definitions>`

// S6: the document-literal binding-fallback path has no schema or
// message table to resolve input/output against, so the parser
// resolves them to the soap.LiteralRequest/LiteralResponse sentinels.
// The generated method must reference those by their qualified
// soap.* name - no wrapper type for them is ever emitted into the
// generated package.
func TestEncodeBindingFallbackOperation(t *testing.T) {
	d, err := wsdl.Parse([]byte(bindingFallbackDoc))
	require.NoError(t, err)

	src, err := NewEncoder("LegacyService").Encode(d)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "func (s *LegacyService) DoThing(ctx context.Context, literalRequest soap.LiteralRequest) (soap.LiteralResponse, error) {")
	assert.Contains(t, out, `soap.RequestResponse(ctx, s.client, s.baseURL, Namespace, "DoThing", &literalRequest, &out)`)
	assert.False(t, strings.Contains(out, "type LiteralRequest struct {"),
		"LiteralRequest/LiteralResponse live in package soap and must never be re-declared in the generated package")
	assert.False(t, strings.Contains(out, "type LiteralResponse struct {"))
}

func TestEncodeIsDeterministic(t *testing.T) {
	d, err := wsdl.Parse([]byte(s1Doc))
	require.NoError(t, err)

	first, err := NewEncoder("GeoService").Encode(d)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := NewEncoder("GeoService").Encode(d)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
