package ports

import (
	"context"

	"github.com/sheetpack/sheetpack/internal/core/domain"
)

// Identifier defines the port to the engine's identifier service: stable
// 32-bit ids from asset names, the three namespace labels, and the
// animation frame cap.
type Identifier interface {
	// ID returns the numeric identifier for an asset name. Deterministic;
	// collisions are accepted.
	ID(name string) uint32

	SpriteSheetNamespace() string
	AnimationDefNamespace() string
	AnimationNamespace() string

	// MaxAnimationFrameCount returns the engine's frame cap per
	// animation definition.
	MaxAnimationFrameCount() uint16
}

// AssetRepository defines the port for intermediate asset persistence:
// one structured file per asset under {dir}/{namespace}/{name}.json.
type AssetRepository interface {
	// SaveSpriteSheet writes the asset and copies its referenced image
	// into the namespace folder.
	SaveSpriteSheet(ctx context.Context, dir string, sheet *domain.SpriteSheet) error

	SaveAnimationDef(ctx context.Context, dir string, def *domain.AnimationDef) error
	SaveAnimation(ctx context.Context, dir string, anim *domain.Animation) error

	LoadSpriteSheet(ctx context.Context, path string) (*domain.SpriteSheet, error)
	LoadAnimationDef(ctx context.Context, path string) (*domain.AnimationDef, error)
	LoadAnimation(ctx context.Context, path string) (*domain.Animation, error)
}

// ResourceWriter defines the port for serializing assets into the engine's
// fixed binary resource layouts, one file per asset named by its decimal
// identifier.
type ResourceWriter interface {
	// WriteSpriteSheet packs the sheet and its pixel data. assetPath is
	// the intermediate file the sheet was loaded from; the image is
	// resolved relative to its containing folder.
	WriteSpriteSheet(assetPath string, sheet *domain.SpriteSheet, outDir string) error

	WriteAnimationDef(def *domain.AnimationDef, outDir string) error
	WriteAnimation(anim *domain.Animation, outDir string) error
}
