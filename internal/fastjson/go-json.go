//go:build !(amd64 || arm64) || !(linux || windows || darwin)

package fastjson

import "github.com/goccy/go-json"

// Valid reports whether data is exactly one well-formed JSON value,
// surrounded by nothing but whitespace.
func Valid(data []byte) bool {
	return json.Valid(data)
}

func Type() EngineType {
	return EngineTypeGoJSON
}
