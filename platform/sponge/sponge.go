// Package sponge registers converters for Sponge API types. Linking it
// makes the Sponge platform present to rson.
package sponge

import (
	"fmt"
	"strings"

	"github.com/redstoneore/rson"
)

const DefaultNamespace = "minecraft"

// ResourceKey identifies a game resource as namespace:value.
type ResourceKey struct {
	Namespace string
	Value     string
}

func (k ResourceKey) String() string {
	return k.Namespace + ":" + k.Value
}

// ParseResourceKey parses "namespace:value". A key without a namespace
// resolves to DefaultNamespace.
func ParseResourceKey(s string) (ResourceKey, error) {
	namespace, value, found := strings.Cut(s, ":")
	if !found {
		namespace, value = DefaultNamespace, s
	}
	if !validKeyPart(namespace, false) || !validKeyPart(value, true) {
		return ResourceKey{}, fmt.Errorf("sponge: invalid resource key %q", s)
	}
	return ResourceKey{Namespace: namespace, Value: value}, nil
}

func validKeyPart(s string, allowSlash bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}

type Vector3d struct {
	X, Y, Z float64
}

func init() {
	rson.Provide(rson.SentinelSponge, rson.BundleFunc(addConverters))
}

func addConverters(r *rson.Registry) {
	r.Register(rson.NewConverter(
		func(k ResourceKey) (string, error) { return k.String(), nil },
		ParseResourceKey,
	))
	r.Register(rson.NewConverter(
		func(v Vector3d) ([]float64, error) {
			return []float64{v.X, v.Y, v.Z}, nil
		},
		func(xyz []float64) (Vector3d, error) {
			if len(xyz) != 3 {
				return Vector3d{}, fmt.Errorf("sponge: vector needs 3 components, got %d", len(xyz))
			}
			return Vector3d{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
		},
	))
}
