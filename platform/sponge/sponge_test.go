package sponge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redstoneore/rson"
)

func TestOnlySpongeIsPresent(t *testing.T) {
	tool := rson.New(nil)
	assert.Equal(t, []rson.PlatformTag{rson.PlatformSponge}, tool.Platforms())
}

type entity struct {
	Kind     ResourceKey `json:"kind"`
	Position Vector3d    `json:"position"`
}

func TestRoundTrip(t *testing.T) {
	tool := rson.New(nil)

	in := entity{
		Kind:     ResourceKey{Namespace: "minecraft", Value: "armor_stand"},
		Position: Vector3d{X: 0.5, Y: 64, Z: -1.5},
	}
	text, err := tool.Encode(in)
	require.NoError(t, err)
	assert.Contains(t, text, `"kind": "minecraft:armor_stand"`)

	out, err := rson.DecodeAs[entity](tool, text)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseResourceKey(t *testing.T) {
	k, err := ParseResourceKey("stone")
	require.NoError(t, err)
	assert.Equal(t, ResourceKey{Namespace: DefaultNamespace, Value: "stone"}, k)

	k, err = ParseResourceKey("myplugin:textures/block.png")
	require.NoError(t, err)
	assert.Equal(t, "myplugin", k.Namespace)

	for _, bad := range []string{"", ":stone", "minecraft:", "Mine:stone", "my/plugin:stone"} {
		_, err := ParseResourceKey(bad)
		assert.Error(t, err, "key: %q", bad)
	}
}

func TestVectorNeedsThreeComponents(t *testing.T) {
	tool := rson.New(nil)

	for _, input := range []string{`[1, 2]`, `[1, 2, 3, 4]`, `{"x": 1}`} {
		_, err := rson.DecodeAs[Vector3d](tool, input)
		var mismatch *rson.TypeMismatchError
		assert.ErrorAs(t, err, &mismatch, "input: %s", input)
	}
}
