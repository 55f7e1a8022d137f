package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/soapgen/wsdl2go/internal/wsdllog"
	"github.com/soapgen/wsdl2go/wsdl"
	"github.com/soapgen/wsdl2go/wsdlgo"
)

var version = "tip"

func main() {
	opts := struct {
		Src      string
		Dst      string
		Pkg      string
		Insecure bool
		Version  bool
	}{}
	flag.StringVar(&opts.Src, "i", opts.Src, "input file, url, or '-' for stdin")
	flag.StringVar(&opts.Dst, "o", opts.Dst, "output file, or '-' for stdout")
	flag.StringVar(&opts.Pkg, "pkg", opts.Pkg, "generated package name (defaults to the WSDL service name)")
	flag.BoolVar(&opts.Insecure, "yolo", opts.Insecure, "accept invalid https certificates")
	flag.BoolVar(&opts.Version, "version", opts.Version, "show version and exit")
	flag.Parse()
	if opts.Version {
		fmt.Printf("wsdl2go %s\n", version)
		return
	}

	var w io.Writer
	switch opts.Dst {
	case "", "-":
		w = os.Stdout
	default:
		f, err := os.OpenFile(opts.Dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			wsdllog.Fatal("open output", err)
		}
		defer f.Close()
		w = f
	}

	cli := http.DefaultClient
	if opts.Insecure {
		cli.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	if err := generate(w, opts.Src, opts.Pkg, cli); err != nil {
		wsdllog.Fatal("generate", err)
	}
}

// generate reads src in full, parses it as a WSDL 1.1 document, and
// writes the generated Go source to w. The input is read and closed
// before parsing begins, matching the generator's documented resource
// discipline: no output is written on parse failure.
func generate(w io.Writer, src, pkg string, cli *http.Client) error {
	var f io.ReadCloser
	var err error
	switch src {
	case "", "-":
		f = os.Stdin
	default:
		f, err = open(src, cli)
		if err != nil {
			return err
		}
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return err
	}

	d, err := wsdl.Parse(data)
	if err != nil {
		return err
	}

	if pkg == "" {
		pkg = wsdlgo.DocumentPackageName{Doc: d}.String()
	}
	src2, err := wsdlgo.NewEncoder(pkg).Encode(d)
	if err != nil {
		return err
	}
	_, err = w.Write(src2)
	return err
}

func open(name string, cli *http.Client) (io.ReadCloser, error) {
	u, err := url.Parse(name)
	if err != nil || u.Scheme == "" {
		return os.Open(name)
	}
	resp, err := cli.Get(name)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
