package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/beevik/etree"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// buildEnvelope wraps in's serialized elements in a SOAP 1.1 envelope
// and returns the request body bytes.
func buildEnvelope(targetNS string, in ToElements) ([]byte, error) {
	doc := etree.NewDocument()
	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", envelopeNS)
	if targetNS != "" {
		env.CreateAttr("xmlns:tns", targetNS)
	}
	body := env.CreateElement("soap:Body")
	if in != nil {
		for _, el := range in.ToElements() {
			body.AddChild(el.Unwrap())
		}
	}
	doc.Indent(0)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, Wrap(Parse, "envelope", err)
	}
	return buf.Bytes(), nil
}

// do posts the SOAP envelope for opName. When decode is set it returns
// the parsed response body element (the first child of soap:Body);
// otherwise it returns nil once a 200 response has been read.
func do(ctx context.Context, cli *http.Client, baseURL, targetNS, opName string, in ToElements, decode bool) (*Element, error) {
	payload, err := buildEnvelope(targetNS, in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, Wrap(Transport, baseURL, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	if targetNS != "" {
		req.Header.Set("SOAPAction", fmt.Sprintf("%s/%s", targetNS, opName))
	}
	if cli == nil {
		cli = http.DefaultClient
	}
	resp, err := cli.Do(req)
	if err != nil {
		return nil, Wrap(Transport, opName, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Wrap(Transport, opName, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Wrap(Transport, opName, fmt.Errorf("%s: %s", resp.Status, raw))
	}
	if !decode {
		return nil, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, Wrap(Parse, opName, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, Errorf(Parse, "empty response")
	}
	body := root.SelectElement("Body")
	if body == nil {
		body = root.FindElement("//Body")
	}
	if body == nil {
		return nil, Errorf(ElementNotFound, "Body")
	}
	kids := body.ChildElements()
	if len(kids) == 0 {
		return nil, Errorf(ElementNotFound, "Body child")
	}
	return WrapElement(kids[0]), nil
}

// OneWay posts in as a SOAP request and returns once the HTTP round
// trip completes; the response body, if any, is discarded.
func OneWay(ctx context.Context, cli *http.Client, baseURL, targetNS, opName string, in ToElements) error {
	_, err := do(ctx, cli, baseURL, targetNS, opName, in, false)
	return err
}

// RequestResponse posts in as a SOAP request and decodes the response
// body into out.
func RequestResponse(ctx context.Context, cli *http.Client, baseURL, targetNS, opName string, in ToElements, out FromElement) error {
	el, err := do(ctx, cli, baseURL, targetNS, opName, in, true)
	if err != nil {
		return err
	}
	return out.FromElement(el)
}
