package domain

// FramePos is a frame's top-left corner on the sheet image.
type FramePos struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
}

// FrameDims is a frame's pixel size.
type FrameDims struct {
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

// AnimationFrame is one geometric/timing record of an animation definition.
// All values are 16-bit by engine contract; the deriver rejects anything
// that does not fit rather than truncating.
type AnimationFrame struct {
	Pos      FramePos  `json:"pos"`
	Dims     FrameDims `json:"dims"`
	Duration uint16    `json:"duration"`
}

// AnimationDef is the ordered frame sequence derived from a sheet. Its name
// matches the owning sprite-sheet's name; SheetName carries the
// cross-reference resolved to an identifier at pack time.
type AnimationDef struct {
	FrameCount uint16           `json:"frameCount"`
	Frames     []AnimationFrame `json:"frames"`
	Name       string           `json:"name"`
	SheetName  string           `json:"sheetName"`
}

// Animation is a contiguous frame-index range [Offset, Offset+Length) into
// its definition's frame sequence. Several animations may share one
// definition.
type Animation struct {
	Offset  uint16 `json:"offset"`
	Length  uint16 `json:"length"`
	Name    string `json:"name"`
	DefName string `json:"defName"`
}
