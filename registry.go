package rson

import (
	"reflect"

	"go.uber.org/atomic"
)

// Registry is the engine configuration a Tool builds during setup. Bundles
// receive it to add their converters; it refuses changes once frozen.
type Registry struct {
	converters map[reflect.Type]Converter
	frozen     atomic.Bool
	debug      Debugger
}

func newRegistry(debug Debugger) *Registry {
	return &Registry{
		converters: make(map[reflect.Type]Converter),
		debug:      debug,
	}
}

// Register adds c, replacing any converter already registered for the
// same type. Once the registry is frozen it refuses c, and logs that it did.
func (r *Registry) Register(c Converter) error {
	if r.frozen.Load() {
		r.debug.Log("converter rejected", c.Type())
		return &EngineFinalizedError{Type: c.Type()}
	}
	typ := c.Type()
	if _, ok := r.converters[typ]; ok {
		r.debug.Log("converter replaced", typ)
	} else {
		r.debug.Log("converter registered", typ)
	}
	r.converters[typ] = c
	return nil
}

// Lookup returns the converter registered for typ.
func (r *Registry) Lookup(typ reflect.Type) (Converter, bool) {
	c, ok := r.converters[typ]
	return c, ok
}

func (r *Registry) Len() int { return len(r.converters) }

func (r *Registry) freeze() { r.frozen.Store(true) }

func registerBuiltins(r *Registry) {
	r.Register(UUIDConverter())
}

func registerOptionals(r *Registry, platforms []Platform, detector Detector, debug Debugger) {
	for _, p := range platforms {
		if !detect(detector, p.Sentinel) {
			debug.Log("platform absent", p.Tag)
			continue
		}
		bundle := p.Bundle
		if bundle == nil {
			var ok bool
			bundle, ok = linkedBundle(p.Sentinel)
			if !ok {
				debug.Log("platform detected without a bundle", p.Tag)
				continue
			}
		}
		debug.Log("platform detected", p.Tag)
		bundle.AddConvertersTo(r)
	}
}
