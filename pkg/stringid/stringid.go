// Package stringid derives stable numeric identifiers and namespace labels
// for pipeline assets. Identifiers are pure functions of an asset's name, so
// the converter and the packer agree on them without ever persisting ids.
package stringid

import (
	"hash/fnv"
	"sync"
)

// MaxFrames is the engine-side cap on frames per animation definition.
// Callers may override it through configuration, but never above what a
// 16-bit frame index can address.
const MaxFrames uint16 = 64

var (
	namespacesOnce sync.Once

	spriteSheetNamespace  string
	animationDefNamespace string
	animationNamespace    string
)

// loadNamespaces resolves the three namespace labels once per process.
// The labels partition both the intermediate asset folders and the
// identifier space, and they are immutable after first use.
func loadNamespaces() {
	namespacesOnce.Do(func() {
		spriteSheetNamespace = "spritesheets"
		animationDefNamespace = "animation_defs"
		animationNamespace = "animations"
	})
}

// ID returns the 32-bit FNV-1a hash of name. Collisions are accepted; the
// consuming engine treats the value as opaque.
func ID(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

// SpriteSheetNamespace returns the folder label for sprite-sheet assets.
func SpriteSheetNamespace() string {
	loadNamespaces()
	return spriteSheetNamespace
}

// AnimationDefNamespace returns the folder label for animation-definition assets.
func AnimationDefNamespace() string {
	loadNamespaces()
	return animationDefNamespace
}

// AnimationNamespace returns the folder label for animation assets.
func AnimationNamespace() string {
	loadNamespaces()
	return animationNamespace
}

// MaxAnimationFrameCount returns the default frame cap for animation definitions.
func MaxAnimationFrameCount() uint16 {
	return MaxFrames
}

// Service adapts the package-level functions to the ports.Identifier
// interface so services can be wired against an abstraction in tests.
type Service struct{}

func (Service) ID(name string) uint32          { return ID(name) }
func (Service) SpriteSheetNamespace() string   { return SpriteSheetNamespace() }
func (Service) AnimationDefNamespace() string  { return AnimationDefNamespace() }
func (Service) AnimationNamespace() string     { return AnimationNamespace() }
func (Service) MaxAnimationFrameCount() uint16 { return MaxAnimationFrameCount() }
