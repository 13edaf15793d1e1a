package rson

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/samber/lo"

	"github.com/redstoneore/rson/internal/fastjson"
	"github.com/redstoneore/rson/internal/sync"
)

type Config struct {
	// Detector decides which platforms are present.
	// Default: LinkedDetector()
	Detector Detector

	// Platforms whose bundles are registered when present, in order.
	// Default: DefaultPlatforms()
	Platforms []Platform

	// Default: NewNoopDebugger()
	Debugger Debugger
}

// Tool encodes values to pretty-printed JSON and decodes them back. The
// converter set is assembled on first use and cannot change afterwards.
//
// A Tool is safe for concurrent use.
type Tool struct {
	detector  Detector
	platforms []Platform
	debug     Debugger

	mu       sync.Mutex
	pending  []Converter
	engine   *engine
	setupErr error

	setupOnce sync.Once
}

func New(config *Config) *Tool {
	if config == nil {
		config = new(Config)
	}
	t := &Tool{
		detector:  config.Detector,
		platforms: config.Platforms,
		debug:     config.Debugger,
	}
	if t.detector == nil {
		t.detector = LinkedDetector()
	}
	if t.platforms == nil {
		t.platforms = DefaultPlatforms()
	}
	if t.debug == nil {
		t.debug = NewNoopDebugger()
	}
	t.debug = t.debug.WithContext("rson")
	return t
}

// Setup builds the engine now instead of on the first Encode or Decode.
// Calling it more than once is harmless. If setup failed, every call
// returns the same error and the Tool stays unusable.
func (t *Tool) Setup() error {
	_, err := t.setup()
	return err
}

func (t *Tool) setup() (*engine, error) {
	t.setupOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		defer func() {
			if r := recover(); r != nil {
				t.setupErr = fmt.Errorf("%w: %v", errSetupFailed, r)
				t.debug.Log("engine setup failed", r)
			}
		}()

		r := newRegistry(t.debug)
		registerBuiltins(r)
		registerOptionals(r, t.platforms, t.detector, t.debug)
		// Converters registered on the Tool come last so they can replace
		// built-in and platform ones.
		for _, c := range t.pending {
			r.Register(c)
		}
		t.pending = nil

		t.engine = newEngine(r)
		t.debug.Log("engine finalized", r.Len(), fastjson.Type().Name())
	})
	return t.engine, t.setupErr
}

// RegisterConverter adds c, replacing any converter for the same type. It
// fails with *EngineFinalizedError once the Tool has been used.
func (t *Tool) RegisterConverter(c Converter) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.engine != nil || t.setupErr != nil {
		return &EngineFinalizedError{Type: c.Type()}
	}
	t.pending = append(t.pending, c)
	return nil
}

func (t *Tool) Encode(v any) (string, error) {
	e, err := t.setup()
	if err != nil {
		return "", err
	}

	typ := reflect.TypeOf(v)
	if err := e.encodable(typ); err != nil {
		return "", err
	}

	stream := e.api.BorrowStream(nil)
	defer e.api.ReturnStream(stream)
	stream.WriteVal(v)
	if stream.Error != nil {
		if err, ok := stream.Attachment.(error); ok {
			return "", err
		}
		return "", &UnsupportedTypeError{Type: typ, err: stream.Error}
	}
	return string(stream.Buffer()), nil
}

// Decode parses text into the value target points to. target is left
// untouched unless decoding succeeds.
func (t *Tool) Decode(text string, target any) error {
	e, err := t.setup()
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &TypeMismatchError{Type: reflect.TypeOf(target), err: errTargetNotPointer}
	}

	data := []byte(text)
	if !fastjson.Valid(data) {
		return &MalformedInputError{err: errInvalidJSON}
	}

	typ := rv.Type().Elem()
	fresh := reflect.New(typ)

	iter := e.api.BorrowIterator(data)
	defer e.api.ReturnIterator(iter)
	iter.ReadVal(fresh.Interface())
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		if err, ok := iter.Attachment.(error); ok {
			return err
		}
		return &TypeMismatchError{Type: typ, err: iter.Error}
	}

	rv.Elem().Set(fresh.Elem())
	return nil
}

// DecodeAs decodes text into a new T.
func DecodeAs[T any](t *Tool, text string) (T, error) {
	var v T
	err := t.Decode(text, &v)
	return v, err
}

// IsPlatformPresent reports whether the platform tagged tag is known to the
// Tool and present in the process. It never triggers setup.
func (t *Tool) IsPlatformPresent(tag PlatformTag) bool {
	p, ok := lo.Find(t.platforms, func(p Platform) bool {
		return p.Tag == tag
	})
	return ok && detect(t.detector, p.Sentinel)
}

// Platforms returns the tags of the present platforms, in registration order.
func (t *Tool) Platforms() []PlatformTag {
	present := lo.Filter(t.platforms, func(p Platform, _ int) bool {
		return detect(t.detector, p.Sentinel)
	})
	return lo.Map(present, func(p Platform, _ int) PlatformTag {
		return p.Tag
	})
}
