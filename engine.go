package rson

import (
	"encoding"
	"encoding/json"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/redstoneore/rson/internal/sync"
)

var (
	marshalerType     = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// engine is the frozen codec. Nothing in it changes after newEngine returns
// except the encodability cache.
type engine struct {
	api      jsoniter.API
	registry *Registry
	checked  sync.Map // reflect.Type -> error
}

func newEngine(registry *Registry) *engine {
	registry.freeze()
	api := jsoniter.Config{
		IndentionStep:          2,
		EscapeHTML:             true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&converterExtension{registry: registry})
	return &engine{
		api:      api,
		registry: registry,
	}
}

type converterExtension struct {
	jsoniter.DummyExtension
	registry *Registry
}

func (e *converterExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if c, ok := e.registry.Lookup(typ.Type1()); ok {
		return c
	}
	return nil
}

func (e *converterExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if c, ok := e.registry.Lookup(typ.Type1()); ok {
		return c
	}
	return nil
}

// encodable reports an *UnsupportedTypeError for the first type reachable
// from typ that neither a converter nor the engine can encode. Interface
// values are only checked by the engine at encode time.
func (e *engine) encodable(typ reflect.Type) error {
	if typ == nil {
		return nil
	}
	if cached, ok := e.checked.Load(typ); ok {
		err, _ := cached.(error)
		return err
	}
	err := e.walk(typ, mapset.NewThreadUnsafeSet[reflect.Type]())
	e.checked.Store(typ, err)
	return err
}

func (e *engine) walk(typ reflect.Type, seen mapset.Set[reflect.Type]) error {
	if !seen.Add(typ) {
		return nil
	}
	if _, ok := e.registry.Lookup(typ); ok {
		return nil
	}
	if implementsMarshaler(typ) {
		return nil
	}

	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return &UnsupportedTypeError{Type: typ, err: errUnsupportedKind}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return e.walk(typ.Elem(), seen)
	case reflect.Map:
		if !supportedMapKey(typ.Key()) {
			return &UnsupportedTypeError{Type: typ.Key(), err: errUnsupportedMapKey}
		}
		return e.walk(typ.Elem(), seen)
	case reflect.Struct:
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() && !field.Anonymous {
				continue
			}
			if field.Tag.Get("json") == "-" {
				continue
			}
			if err := e.walk(field.Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func implementsMarshaler(typ reflect.Type) bool {
	ptr := reflect.PointerTo(typ)
	return typ.Implements(marshalerType) || typ.Implements(textMarshalerType) ||
		ptr.Implements(marshalerType) || ptr.Implements(textMarshalerType)
}

func supportedMapKey(key reflect.Type) bool {
	switch key.Kind() {
	case reflect.String, reflect.Bool, reflect.Interface,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return key.Implements(textMarshalerType)
}
