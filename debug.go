package rson

import (
	"fmt"
	"io"
	"os"

	"github.com/redstoneore/rson/internal/sync"
	"github.com/xiegeo/coloredgoroutine"
	"go.uber.org/zap"
)

type (
	// Debugger receives the setup trace of a Tool: registered and replaced
	// converters, detected and absent platforms, finalization.
	Debugger interface {
		Log(main string, v ...any)
		WithContext(context string) Debugger
	}

	noopDebugger struct{}

	printDebugger struct {
		out     io.Writer
		context string
	}

	zapDebugger struct {
		logger *zap.Logger
	}
)

func NewNoopDebugger() Debugger {
	return noopDebugger{}
}

func (d noopDebugger) Log(main string, _v ...any) {}

func (d noopDebugger) WithContext(context string) Debugger { return d }

// NewPrintDebugger writes to stdout, one color per goroutine.
func NewPrintDebugger() Debugger {
	return &printDebugger{out: coloredgoroutine.Colors(os.Stdout)}
}

var printMu sync.Mutex

// Log each field, adding colon if there's a subsequent field.
func (d *printDebugger) Log(main string, _v ...any) {
	printMu.Lock()
	defer printMu.Unlock()

	if len(d.context) != 0 {
		fmt.Fprint(d.out, d.context)
		if len(main) != 0 || len(_v) != 0 {
			fmt.Fprint(d.out, ": ")
		}
	}
	if len(main) != 0 {
		fmt.Fprint(d.out, main)
		if len(_v) != 0 {
			fmt.Fprint(d.out, ": ")
		}
	}
	for i, v := range _v {
		if i != 0 {
			fmt.Fprint(d.out, ": ")
		}
		fmt.Fprint(d.out, v)
	}
	fmt.Fprint(d.out, "\n")
}

func (d printDebugger) WithContext(context string) Debugger {
	d.context = context
	return &d
}

// NewZapDebugger logs at debug level through logger. The context becomes
// the logger name.
func NewZapDebugger(logger *zap.Logger) Debugger {
	return &zapDebugger{logger: logger}
}

func (d *zapDebugger) Log(main string, v ...any) {
	if len(v) == 0 {
		d.logger.Debug(main)
		return
	}
	d.logger.Debug(main, zap.Any("details", v))
}

func (d *zapDebugger) WithContext(context string) Debugger {
	return &zapDebugger{logger: d.logger.Named(context)}
}
