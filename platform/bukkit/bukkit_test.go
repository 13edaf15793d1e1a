package bukkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redstoneore/rson"
)

type home struct {
	Spawn Location  `json:"spawn"`
	Hand  ItemStack `json:"hand"`
}

func TestOnlyBukkitIsPresent(t *testing.T) {
	tool := rson.New(nil)
	assert.True(t, tool.IsPlatformPresent(rson.PlatformBukkit))
	assert.False(t, tool.IsPlatformPresent(rson.PlatformSpigot))
	assert.False(t, tool.IsPlatformPresent(rson.PlatformSponge))
	assert.Equal(t, []rson.PlatformTag{rson.PlatformBukkit}, tool.Platforms())
}

func TestSerializableRoundTrip(t *testing.T) {
	tool := rson.New(nil)

	in := home{
		Spawn: Location{World: "world", X: 10.5, Y: 64, Z: -3.25, Yaw: 90.5, Pitch: -12},
		Hand:  ItemStack{Type: "DIAMOND_SWORD", Amount: 1, Meta: map[string]string{"name": "Excalibur"}},
	}
	text, err := tool.Encode(in)
	require.NoError(t, err)
	assert.Contains(t, text, `"==": "org.bukkit.Location"`)
	assert.Contains(t, text, `"==": "org.bukkit.inventory.ItemStack"`)
	assert.Contains(t, text, `"world": "world"`)

	out, err := rson.DecodeAs[home](tool, text)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSerializableOmitsEmptyMeta(t *testing.T) {
	tool := rson.New(nil)

	text, err := tool.Encode(ItemStack{Type: "STONE", Amount: 64})
	require.NoError(t, err)
	assert.NotContains(t, text, "meta")

	out, err := rson.DecodeAs[ItemStack](tool, text)
	require.NoError(t, err)
	assert.Equal(t, ItemStack{Type: "STONE", Amount: 64}, out)
}

func TestSerializableRejectsBadInput(t *testing.T) {
	tool := rson.New(nil)

	inputs := []string{
		`{"world": "world", "x": 1, "y": 2, "z": 3, "yaw": 0, "pitch": 0}`,
		`{"==": "org.bukkit.inventory.ItemStack", "world": "world"}`,
		`{"==": "org.bukkit.Location", "world": "world", "colour": "red"}`,
		`{"==": "org.bukkit.Location", "world": 7}`,
	}
	for _, input := range inputs {
		_, err := rson.DecodeAs[Location](tool, input)
		var mismatch *rson.TypeMismatchError
		assert.ErrorAs(t, err, &mismatch, "input: %s", input)
	}
}
