// Package bukkit registers converters for Bukkit API types. Linking it,
// even with a blank import, makes the Bukkit platform present to rson.
package bukkit

import (
	"fmt"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"

	"github.com/redstoneore/rson"
)

// AliasKey is the map key under which Bukkit stores the class alias of a
// serialized object.
const AliasKey = "=="

const (
	AliasLocation  = "org.bukkit.Location"
	AliasItemStack = "org.bukkit.inventory.ItemStack"
)

type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

type ItemStack struct {
	Type   string            `json:"type"`
	Amount int               `json:"amount"`
	Meta   map[string]string `json:"meta,omitempty"`
}

func init() {
	rson.Provide(rson.SentinelBukkit, rson.BundleFunc(addConverters))
}

func addConverters(r *rson.Registry) {
	r.Register(Serializable[Location](AliasLocation))
	r.Register(Serializable[ItemStack](AliasItemStack))
}

// Serializable returns a converter that writes the struct type T the way
// Bukkit's ConfigurationSerializable does: a map of its fields, keyed by
// their json names, plus alias under AliasKey. Decoding requires the same
// alias and rejects unknown keys.
func Serializable[T any](alias string) rson.Converter {
	return rson.NewConverter(
		func(v T) (map[string]any, error) {
			s := structs.New(v)
			s.TagName = "json"
			m := s.Map()
			m[AliasKey] = alias
			return m, nil
		},
		func(m map[string]any) (T, error) {
			var v T
			if got, _ := m[AliasKey].(string); got != alias {
				return v, fmt.Errorf("bukkit: expected %s %q, got %v", AliasKey, alias, m[AliasKey])
			}

			fields := make(map[string]any, len(m))
			for k, val := range m {
				if k != AliasKey {
					fields[k] = val
				}
			}

			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				TagName:     "json",
				ErrorUnused: true,
				Result:      &v,
			})
			if err != nil {
				return v, err
			}
			if err := decoder.Decode(fields); err != nil {
				return v, fmt.Errorf("bukkit: %s: %w", alias, err)
			}
			return v, nil
		},
	)
}
