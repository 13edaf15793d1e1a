// Package rson turns Go values into indented JSON text and back.
//
// Encoding is done by a json-iterator engine extended with converters:
// one for uuid.UUID is always present, and each supported game-server
// platform (Bukkit, Spigot, Sponge) adds its own when its package is
// linked into the binary. A Tool assembles its converters once, on first
// use, and rejects registrations from then on.
//
//	tool := rson.New(nil)
//	text, err := tool.Encode(profile)
//	...
//	err = tool.Decode(text, &profile)
package rson
