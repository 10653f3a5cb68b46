package domain

// SpriteSheet is the asset derived from one valid sheet description. The
// JSON field names are a fixed cross-language schema shared with the engine;
// renaming them breaks the intermediate format.
type SpriteSheet struct {
	// Name is the file stem of the resolved sheet image, e.g. "hero" for
	// hero.png. Identifiers are derived from it at pack time.
	Name string `json:"name"`

	// ImagePath is the sheet image's file name, relative to the namespace
	// folder the image is copied into alongside this asset.
	ImagePath string `json:"imagePath"`

	// SourceImagePath is the resolved absolute location of the image on
	// the converter's machine. Never serialized.
	SourceImagePath string `json:"-"`

	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Format string `json:"format"`
}
