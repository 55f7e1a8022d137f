package soap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string
}

func (r *echoRequest) ToElements() []*Element {
	return []*Element{Node("name").WithText(r.Name)}
}

type echoResponse struct {
	Greeting string
}

func (r *echoResponse) FromElement(e *Element) error {
	el, err := e.GetAtPath("greeting")
	if err != nil {
		return err
	}
	text, err := el.GetText()
	if err != nil {
		return err
	}
	r.Greeting = text
	return nil
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		fmt.Fprintf(w, `<soap:Envelope xmlns:soap="%s"><soap:Body><EchoResponse><greeting>hello, %s</greeting></EchoResponse></soap:Body></soap:Envelope>`,
			envelopeNS, extractName(t, body))
	}))
}

func extractName(t *testing.T, body []byte) string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(body))
	name := doc.FindElement("//name")
	if name == nil {
		return ""
	}
	return name.Text()
}

func TestRequestResponse(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	var out echoResponse
	err := RequestResponse(context.Background(), srv.Client(), srv.URL, "urn:test", "Echo", &echoRequest{Name: "Ada"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hello, Ada", out.Greeting)
}

func TestOneWay(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	err := OneWay(context.Background(), srv.Client(), srv.URL, "urn:test", "Echo", &echoRequest{Name: "Ada"})
	require.NoError(t, err)
}

func TestRequestResponseTransportError(t *testing.T) {
	var out echoResponse
	err := RequestResponse(context.Background(), http.DefaultClient, "http://127.0.0.1:0", "urn:test", "Echo", &echoRequest{Name: "Ada"}, &out)
	require.Error(t, err)
	var soapErr *Error
	require.ErrorAs(t, err, &soapErr)
	assert.Equal(t, Transport, soapErr.Kind)
}
