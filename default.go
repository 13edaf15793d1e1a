package rson

import "github.com/redstoneore/rson/internal/sync"

var (
	defaultTool     *Tool
	defaultToolOnce sync.Once
)

// Default returns the process-wide Tool, created with the zero Config on
// first call. Link the platform packages before using it, for example with
//
//	import _ "github.com/redstoneore/rson/platform/bukkit"
func Default() *Tool {
	defaultToolOnce.Do(func() {
		defaultTool = New(nil)
	})
	return defaultTool
}

func Encode(v any) (string, error) {
	return Default().Encode(v)
}

func Decode(text string, target any) error {
	return Default().Decode(text, target)
}

func RegisterConverter(c Converter) error {
	return Default().RegisterConverter(c)
}

func IsPlatformPresent(tag PlatformTag) bool {
	return Default().IsPlatformPresent(tag)
}
