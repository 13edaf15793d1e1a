package rson

import (
	"fmt"

	"github.com/redstoneore/rson/internal/sync"
)

// PlatformTag names an optional host server environment.
type PlatformTag string

const (
	PlatformBukkit PlatformTag = "bukkit"
	PlatformSpigot PlatformTag = "spigot"
	PlatformSponge PlatformTag = "sponge"
)

// Sentinels of the recognized platforms. A platform is present when the
// package with this import path is linked into the binary.
const (
	SentinelBukkit = "github.com/redstoneore/rson/platform/bukkit"
	SentinelSpigot = "github.com/redstoneore/rson/platform/spigot"
	SentinelSponge = "github.com/redstoneore/rson/platform/sponge"
)

// Platform ties a tag to the sentinel that reveals it. Bundle may be left
// nil, in which case the bundle provided for Sentinel is used.
type Platform struct {
	Tag      PlatformTag
	Sentinel string
	Bundle   Bundle
}

// DefaultPlatforms returns the recognized platforms in registration order.
func DefaultPlatforms() []Platform {
	return []Platform{
		{Tag: PlatformBukkit, Sentinel: SentinelBukkit},
		{Tag: PlatformSpigot, Sentinel: SentinelSpigot},
		{Tag: PlatformSponge, Sentinel: SentinelSponge},
	}
}

// Bundle adds a platform's converters to the registry during setup.
type Bundle interface {
	AddConvertersTo(r *Registry)
}

type BundleFunc func(r *Registry)

func (f BundleFunc) AddConvertersTo(r *Registry) { f(r) }

type Detector interface {
	Detect(sentinel string) bool
}

type DetectorFunc func(sentinel string) bool

func (f DetectorFunc) Detect(sentinel string) bool { return f(sentinel) }

var (
	linkedMu sync.RWMutex
	linked   = make(map[string]Bundle)
)

// Provide makes bundle available under sentinel. Platform packages call it
// from init; providing the same sentinel twice panics.
func Provide(sentinel string, bundle Bundle) {
	if bundle == nil {
		panic("rson: Provide bundle is nil")
	}
	linkedMu.Lock()
	defer linkedMu.Unlock()
	if _, dup := linked[sentinel]; dup {
		panic(fmt.Sprintf("rson: Provide called twice for %s", sentinel))
	}
	linked[sentinel] = bundle
}

func linkedBundle(sentinel string) (Bundle, bool) {
	linkedMu.RLock()
	defer linkedMu.RUnlock()
	b, ok := linked[sentinel]
	return b, ok
}

// LinkedDetector reports a sentinel as present when a linked package has
// provided a bundle for it.
func LinkedDetector() Detector {
	return DetectorFunc(func(sentinel string) bool {
		_, ok := linkedBundle(sentinel)
		return ok
	})
}

// detect never panics; a failing detector means the platform is absent.
func detect(d Detector, sentinel string) (present bool) {
	defer func() {
		if recover() != nil {
			present = false
		}
	}()
	return d.Detect(sentinel)
}
