package microdom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// WriteOption configures serialization.
type WriteOption func(*writeOptions) error

type writeOptions struct {
	indent   *int
	omitDecl bool
}

// Indent returns a WriteOption that sets the number of spaces used per
// nesting level. Indent(0) produces compact single-line output. The default
// is two spaces.
func Indent(spaces int) WriteOption {
	return func(o *writeOptions) error {
		if spaces < 0 {
			return fmt.Errorf("microdom: indent spaces cannot be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// OmitDeclaration returns a WriteOption that suppresses the XML declaration
// when writing a document. Non-document nodes never get a declaration.
func OmitDeclaration() WriteOption {
	return func(o *writeOptions) error {
		o.omitDecl = true
		return nil
	}
}

// Write serializes n as XML to w.
func Write(w io.Writer, n Node, opts ...WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}
	bw := bufio.NewWriter(w)
	s := newSerializer(bw, &o)
	if err := s.writeNode(n, ""); err != nil {
		return err
	}
	return bw.Flush()
}

// Bytes serializes n and returns the XML as a byte slice.
func Bytes(n Node, opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String serializes n and returns the XML as a string.
func String(n Node, opts ...WriteOption) (string, error) {
	b, err := Bytes(n, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteFile serializes n to the file at path. Paths ending in ".gz" are
// written gzip-compressed.
func WriteFile(path string, n Node, opts ...WriteOption) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "microdom: create %s", path)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if filepath.Ext(path) == ".gz" {
		gz = gzip.NewWriter(f)
		w = gz
	}

	werr := Write(w, n, opts...)
	if gz != nil {
		if cerr := gz.Close(); werr == nil {
			werr = cerr
		}
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return errors.Wrapf(werr, "microdom: write %s", path)
}
