// Package fastjson checks JSON well-formedness with the fastest engine
// available for the target platform: sonic where its JIT is supported,
// go-json everywhere else.
package fastjson

type EngineType int

const (
	EngineTypeSonic EngineType = iota
	EngineTypeGoJSON
)

func (t EngineType) Name() string {
	switch t {
	case EngineTypeSonic:
		return "sonic"
	case EngineTypeGoJSON:
		return "go-json"
	}
	return "<invalid>"
}
