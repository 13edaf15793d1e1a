package rson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrintDebugger(t *testing.T) {
	var buf bytes.Buffer
	d := (&printDebugger{out: &buf}).WithContext("rson")

	d.Log("platform detected", PlatformSponge, 2)
	d.Log("")
	assert.Equal(t, "rson: platform detected: sponge: 2\nrson\n", buf.String())
}

func TestZapDebuggerTracesSetup(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tool := New(&Config{
		Detector: DetectorFunc(func(sentinel string) bool { return sentinel == "test/zap" }),
		Platforms: []Platform{
			{Tag: PlatformBukkit, Sentinel: SentinelBukkit},
			{Tag: "zap", Sentinel: "test/zap", Bundle: BundleFunc(func(r *Registry) {
				r.Register(prefixConverter("z-"))
				r.Register(prefixConverter("zz-"))
			})},
		},
		Debugger: NewZapDebugger(zap.New(core)),
	})
	tool.Setup()

	assert.Equal(t, 2, logs.FilterMessage("converter registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("converter replaced").Len())
	assert.Equal(t, 1, logs.FilterMessage("platform absent").Len())
	assert.Equal(t, 1, logs.FilterMessage("platform detected").Len())

	finalized := logs.FilterMessage("engine finalized").All()
	if assert.Len(t, finalized, 1) {
		assert.Equal(t, "rson", finalized[0].LoggerName)
	}
}

func TestFrozenRegistryLogsRejectedConverter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var kept *Registry
	tool := New(&Config{
		Detector: DetectorFunc(func(string) bool { return true }),
		Platforms: []Platform{{
			Tag:      "keeper",
			Sentinel: "test/keeper",
			Bundle:   BundleFunc(func(r *Registry) { kept = r }),
		}},
		Debugger: NewZapDebugger(zap.New(core)),
	})
	require.NoError(t, tool.Setup())
	require.NotNil(t, kept)

	var finalized *EngineFinalizedError
	assert.ErrorAs(t, kept.Register(prefixConverter("late-")), &finalized)
	assert.Equal(t, 1, logs.FilterMessage("converter rejected").Len())
}

func TestZapDebuggerTracesFailedSetup(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tool := New(&Config{
		Detector: DetectorFunc(func(string) bool { return true }),
		Platforms: []Platform{{
			Tag:      "broken",
			Sentinel: "test/broken",
			Bundle:   BundleFunc(func(*Registry) { panic("boom") }),
		}},
		Debugger: NewZapDebugger(zap.New(core)),
	})
	require.Error(t, tool.Setup())

	assert.Equal(t, 1, logs.FilterMessage("engine setup failed").Len())
	assert.Zero(t, logs.FilterMessage("engine finalized").Len())
}
