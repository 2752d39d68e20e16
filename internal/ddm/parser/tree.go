package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/goliatone/go-ddmform/pkg/ddm"
)

// element is the minimal DOM the parser works on. Namespaces are dropped:
// DDM definitions do not use them.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     strings.Builder
}

const byteOrderMark = "\ufeff"

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

func isOption(el *element) bool {
	return strings.EqualFold(strings.TrimSpace(el.attrs["type"]), ddm.OptionElementType)
}

func (e *element) attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *element) childrenNamed(name string) []*element {
	var out []*element
	for _, child := range e.children {
		if child.name == name {
			out = append(out, child)
		}
	}
	return out
}

// decodeTree reads exactly one root element. Character data outside the root,
// a second root, or any decoder error make the document malformed. A leading
// byte order mark is skipped and declared encodings resolve through the IANA
// index.
func decodeTree(input string) (*element, error) {
	decoder := xml.NewDecoder(strings.NewReader(strings.TrimPrefix(input, byteOrderMark)))
	decoder.Strict = true
	decoder.CharsetReader = charsetReader

	var (
		root  *element
		stack []*element
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ddm.ErrMalformedDefinition, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected element <%s> after root", ddm.ErrMalformedDefinition, tok.Name.Local)
			}
			el := &element{name: tok.Name.Local, attrs: make(map[string]string, len(tok.Attr))}
			for _, attr := range tok.Attr {
				el.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected closing tag </%s>", ddm.ErrMalformedDefinition, tok.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(tok)) != "" {
					return nil, fmt.Errorf("%w: text outside of the root element", ddm.ErrMalformedDefinition)
				}
				continue
			}
			stack[len(stack)-1].text.Write(tok)
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ddm.ErrMalformedDefinition)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ddm.ErrMalformedDefinition, stack[len(stack)-1].name)
	}
	return root, nil
}
