// Package document provides dynamic, map-shaped sequence elements that can
// be filtered and keyed by JSONata expressions.
package document

import (
	"fmt"

	jsonata "github.com/blues/jsonata-go"
	"github.com/vmihailenco/msgpack"
)

// Document is an immutable map-shaped value held in msgpack binary form,
// decoded lazily on first evaluation.
type Document struct {
	bin   []byte
	cache map[string]any
}

func FromMap(fields map[string]any) (*Document, error) {
	bin, err := msgpack.Marshal(fields)
	if err != nil {
		return nil, err
	}

	return &Document{
		bin:   bin,
		cache: fields,
	}, nil
}

func FromBytes(bin []byte) *Document {
	return &Document{bin: bin}
}

func (d *Document) Bytes() []byte {
	return d.bin
}

func (d *Document) fields() (map[string]any, error) {
	if d.cache == nil {
		err := msgpack.Unmarshal(d.bin, &d.cache)
		if err != nil {
			return nil, err
		}
	}
	return d.cache, nil
}

// Eval evaluates the JSONata expression against the document.
func (d *Document) Eval(expr string) (any, error) {
	fields, err := d.fields()
	if err != nil {
		return nil, err
	}

	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Eval(fields)
}

// Matcher compiles a JSONata expression into a predicate over documents,
// for use with sequence filtering. A document matches when the expression
// evaluates to boolean true; evaluation errors and non-boolean results
// count as non-matches.
func Matcher(expr string) (func(*Document) bool, error) {
	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("document matcher %q: %w", expr, err)
	}
	return func(d *Document) bool {
		if d == nil {
			return false
		}
		fields, err := d.fields()
		if err != nil {
			return false
		}
		res, err := e.Eval(fields)
		if err != nil {
			return false
		}
		b, ok := res.(bool)
		return ok && b
	}, nil
}

// TextKey compiles a JSONata expression into a string key extractor, for
// use with keyed deduplication and text sorts. Non-string results are
// rendered with fmt; errors yield the empty key.
func TextKey(expr string) (func(*Document) string, error) {
	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("document key %q: %w", expr, err)
	}
	return func(d *Document) string {
		if d == nil {
			return ""
		}
		fields, err := d.fields()
		if err != nil {
			return ""
		}
		res, err := e.Eval(fields)
		if err != nil {
			return ""
		}
		if s, ok := res.(string); ok {
			return s
		}
		return fmt.Sprint(res)
	}, nil
}

// NumberKey compiles a JSONata expression into a numeric key extractor,
// for use with numeric sorts and min/max. Non-numeric results and errors
// yield zero.
func NumberKey(expr string) (func(*Document) float64, error) {
	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("document key %q: %w", expr, err)
	}
	return func(d *Document) float64 {
		if d == nil {
			return 0
		}
		fields, err := d.fields()
		if err != nil {
			return 0
		}
		res, err := e.Eval(fields)
		if err != nil {
			return 0
		}
		switch n := res.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case int:
			return float64(n)
		case uint64:
			return float64(n)
		case float32:
			return float64(n)
		}
		return 0
	}, nil
}
