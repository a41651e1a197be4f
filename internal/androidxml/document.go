package androidxml

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("xml document has no root element")

const (
	// Header is written at the top of every encoded document.
	Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

	declaration   = `version="1.0" encoding="UTF-8" standalone="yes"`
	indentSpaces  = 2
	byteOrderMark = '\ufeff'
)

// Document is a parsed XML file.
type Document struct {
	*etree.Document
}

// Parse reads a whole XML document. A leading UTF-8 byte order mark is
// skipped.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	if c, _, err := br.ReadRune(); err == nil && c != byteOrderMark {
		if err := br.UnreadRune(); err != nil {
			return nil, errors.Wrap(err, "parsing xml")
		}
	}

	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(br); err != nil {
		return nil, errors.Wrap(err, "parsing xml")
	}

	var root *etree.Element
	for _, tok := range tree.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, errors.Errorf("parsing xml: second root element <%s>", t.FullTag())
			}
			root = t
		case *etree.CharData:
			if s := strings.TrimSpace(t.Data); s != "" {
				return nil, errors.Errorf("parsing xml: text outside root element: %q", s)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Document: tree}, nil
}

// Marshal encodes d with Encode.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the whole document, one node per line, after replacing any
// existing XML declaration with Header and re-indenting the tree. Elements
// without children self-close; elements holding only text keep it inline.
func (d *Document) Encode(w io.Writer) error {
	if d == nil || d.Document == nil || d.Root() == nil {
		return ErrNoRoot
	}
	d.normalize()
	_, err := d.WriteTo(w)
	return errors.Wrap(err, "writing xml")
}

func (d *Document) normalize() {
	for _, tok := range d.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			d.RemoveChild(pi)
			break
		}
	}
	d.InsertChildAt(0, etree.NewProcInst("xml", declaration))

	d.WriteSettings.CanonicalText = true
	indent := etree.NewIndentSettings()
	indent.Spaces = indentSpaces
	indent.SuppressTrailingWhitespace = true
	d.IndentWithSettings(indent)
}
