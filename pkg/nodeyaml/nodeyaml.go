// Package nodeyaml reads and writes demangle trees as YAML documents.
//
// Every node is a mapping with a required kind, at most one value field and
// an optional list of children:
//
//	kind: BoundGenericStructure
//	children:
//	  - kind: Type
//	    children:
//	      - kind: Structure
//	        children:
//	          - {kind: Module, text: Swift}
//	          - {kind: Identifier, text: Array}
//	  - kind: TypeList
package nodeyaml

import (
	"bytes"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

var (
	// ErrUnknownKind is returned for a kind name outside the taxonomy.
	ErrUnknownKind = errors.Base("nodeyaml: unknown node kind")
	// ErrInvalidDocument is returned for documents that do not describe a
	// well-formed node.
	ErrInvalidDocument = errors.Base("nodeyaml: invalid document")
)

// Document is the YAML shape of one node.
type Document struct {
	Kind                string      `yaml:"kind"`
	Text                *string     `yaml:"text,omitempty"`
	Index               *uint64     `yaml:"index,omitempty"`
	Witness             string      `yaml:"witness,omitempty"`
	Directness          string      `yaml:"directness,omitempty"`
	Differentiability   string      `yaml:"differentiability,omitempty"`
	SpecializationParam *uint       `yaml:"specializationParam,omitempty"`
	Children            []*Document `yaml:"children,omitempty"`
}

var directnesses = []demangle.Directness{
	demangle.DirectnessUnknown,
	demangle.DirectnessDirect,
	demangle.DirectnessIndirect,
}

var differentiabilities = []demangle.Differentiability{
	demangle.NonDifferentiable,
	demangle.DifferentiableForward,
	demangle.DifferentiableReverse,
	demangle.DifferentiableNormal,
	demangle.DifferentiableLinear,
}

// FromNode converts a tree into its document form.
func FromNode(n *demangle.Node) *Document {
	if n == nil {
		return nil
	}
	doc := &Document{Kind: n.Kind().String()}
	p := n.Payload()
	if s, ok := p.Text(); ok {
		doc.Text = &s
	} else if i, ok := p.Index(); ok {
		doc.Index = &i
	} else if w, ok := p.ValueWitness(); ok {
		doc.Witness = w.Code()
	} else if d, ok := p.Directness(); ok {
		doc.Directness = d.String()
	} else if d, ok := p.Differentiability(); ok {
		doc.Differentiability = d.String()
	} else if sp, ok := p.SpecializationParam(); ok {
		v := uint(sp)
		doc.SpecializationParam = &v
	}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, FromNode(c))
	}
	return doc
}

// Node builds the tree the document describes.
func (d *Document) Node() (*demangle.Node, error) {
	return d.node(d.Kind)
}

func (d *Document) node(path string) (*demangle.Node, error) {
	if d == nil {
		return nil, errors.WithDetails(
			errors.Errorf("%w: empty node", ErrInvalidDocument), "path", path)
	}
	kind, ok := demangle.KindFromString(d.Kind)
	if !ok {
		return nil, errors.WithDetails(ErrUnknownKind, "kind", d.Kind, "path", path)
	}
	payload, err := d.payload(path)
	if err != nil {
		return nil, err
	}

	n := demangle.NewWithPayload(kind, payload)
	for i, cd := range d.Children {
		child, err := cd.node(path + "/" + strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, errors.WithDetails(
				errors.Errorf("nodeyaml: %w", err), "path", path)
		}
	}
	return n, nil
}

func (d *Document) payload(path string) (demangle.Payload, error) {
	var out []demangle.Payload
	if d.Text != nil {
		out = append(out, demangle.TextPayload(*d.Text))
	}
	if d.Index != nil {
		out = append(out, demangle.IndexPayload(*d.Index))
	}
	if d.Witness != "" {
		w, ok := demangle.ValueWitnessFromCode(d.Witness)
		if !ok {
			return demangle.Payload{}, errors.WithDetails(
				errors.Errorf("%w: unknown value witness %q", ErrInvalidDocument, d.Witness), "path", path)
		}
		out = append(out, demangle.ValueWitnessPayload(w))
	}
	if d.Directness != "" {
		found := false
		for _, v := range directnesses {
			if v.String() == d.Directness {
				out = append(out, demangle.DirectnessPayload(v))
				found = true
				break
			}
		}
		if !found {
			return demangle.Payload{}, errors.WithDetails(
				errors.Errorf("%w: unknown directness %q", ErrInvalidDocument, d.Directness), "path", path)
		}
	}
	if d.Differentiability != "" {
		found := false
		for _, v := range differentiabilities {
			if v.String() == d.Differentiability {
				out = append(out, demangle.DifferentiabilityPayload(v))
				found = true
				break
			}
		}
		if !found {
			return demangle.Payload{}, errors.WithDetails(
				errors.Errorf("%w: unknown differentiability %q", ErrInvalidDocument, d.Differentiability), "path", path)
		}
	}
	if d.SpecializationParam != nil {
		out = append(out, demangle.SpecializationParamPayload(demangle.SpecializationParam(*d.SpecializationParam)))
	}

	switch len(out) {
	case 0:
		return demangle.Payload{}, nil
	case 1:
		return out[0], nil
	}
	return demangle.Payload{}, errors.WithDetails(
		errors.Errorf("%w: %d value fields on one node", ErrInvalidDocument, len(out)), "path", path)
}

// Marshal encodes n as a YAML document.
func Marshal(n *demangle.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes n to w as a YAML document.
func Encode(w io.Writer, n *demangle.Node) error {
	if n == nil {
		return errors.Errorf("%w: nil node", ErrInvalidDocument)
	}
	if err := yaml.NewEncoder(w).Encode(FromNode(n)); err != nil {
		return errors.Errorf("nodeyaml: encode %s: %w", n.Kind(), err)
	}
	return nil
}

// Unmarshal decodes a single YAML document into a tree.
func Unmarshal(data []byte) (*demangle.Node, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("nodeyaml: %w", err)
	}
	return doc.Node()
}

// Decode reads a single YAML document from r.
func Decode(r io.Reader) (*demangle.Node, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Errorf("nodeyaml: %w", err)
	}
	return doc.Node()
}
