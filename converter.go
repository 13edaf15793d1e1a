package rson

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Converter is a bidirectional mapping between values of Type and their
// JSON form. Most converters are built with NewConverter; implementing
// the jsoniter encoder and decoder directly is possible for full control
// over the token stream.
type Converter interface {
	Type() reflect.Type
	jsoniter.ValEncoder
	jsoniter.ValDecoder
}

type surrogateConverter[T, S any] struct {
	typ    reflect.Type
	encode func(T) (S, error)
	decode func(S) (T, error)
}

// NewConverter returns a Converter for T that encodes a T as the JSON
// of the surrogate S returned by encode, and decodes by reading an S and
// handing it to decode. S must not be T.
func NewConverter[T, S any](encode func(T) (S, error), decode func(S) (T, error)) Converter {
	typ := reflect.TypeFor[T]()
	if typ == reflect.TypeFor[S]() {
		panic(fmt.Sprintf("rson: NewConverter: surrogate of %s must be a different type", typ))
	}
	return &surrogateConverter[T, S]{
		typ:    typ,
		encode: encode,
		decode: decode,
	}
}

func (c *surrogateConverter[T, S]) Type() reflect.Type { return c.typ }

func (c *surrogateConverter[T, S]) IsEmpty(ptr unsafe.Pointer) bool {
	v := reflect.NewAt(c.typ, ptr).Elem()
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func (c *surrogateConverter[T, S]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	s, err := c.encode(*(*T)(ptr))
	if err != nil {
		if stream.Attachment == nil {
			stream.Attachment = &UnsupportedTypeError{Type: c.typ, err: err}
		}
		if stream.Error == nil {
			stream.Error = err
		}
		return
	}
	stream.WriteVal(s)
}

// Decode leaves the value untouched on a JSON null, as encoding/json does.
func (c *surrogateConverter[T, S]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		return
	}
	var s S
	iter.ReadVal(&s)
	if iter.Error != nil {
		return
	}
	t, err := c.decode(s)
	if err != nil {
		if iter.Attachment == nil {
			iter.Attachment = &TypeMismatchError{Type: c.typ, err: err}
		}
		iter.ReportError("rson", err.Error())
		return
	}
	*(*T)(ptr) = t
}

const canonicalUUIDLen = 36

var errNonCanonicalUUID = fmt.Errorf("UUID must be in canonical 8-4-4-4-12 form")

// UUIDConverter maps uuid.UUID to its canonical lowercase dashed form.
// Braced, URN and undashed forms are rejected on decode; upper-case hex
// is accepted.
func UUIDConverter() Converter {
	return NewConverter(
		func(u uuid.UUID) (string, error) {
			return u.String(), nil
		},
		func(s string) (uuid.UUID, error) {
			if len(s) != canonicalUUIDLen {
				return uuid.Nil, fmt.Errorf("%w: %q", errNonCanonicalUUID, s)
			}
			return uuid.Parse(s)
		},
	)
}
