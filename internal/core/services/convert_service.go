package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetpack/sheetpack/internal/core/ports"
	"github.com/sheetpack/sheetpack/pkg/aseprite"
	"github.com/sheetpack/sheetpack/pkg/logging"
)

// ConvertService runs stage one of the pipeline: every sheet description in
// the input folder becomes a sprite-sheet asset, an animation-definition
// asset and zero or more grouped animation assets under namespaced folders
// of the output directory.
type ConvertService struct {
	repo      ports.AssetRepository
	maxFrames uint16
}

// NewConvertService creates a new convert service. maxFrames caps the
// frames per animation definition; zero selects the engine default from ids.
func NewConvertService(repo ports.AssetRepository, ids ports.Identifier, maxFrames uint16) *ConvertService {
	if maxFrames == 0 {
		maxFrames = ids.MaxAnimationFrameCount()
	}
	return &ConvertService{
		repo:      repo,
		maxFrames: maxFrames,
	}
}

// ConvertRequest represents a request to convert a folder of sheet
// descriptions.
type ConvertRequest struct {
	InputDir  string
	OutputDir string
}

// ConvertResponse represents the outcome of one conversion run.
type ConvertResponse struct {
	SheetsConverted   int
	AnimationsWritten int
	SheetsSkipped     int
}

// Execute converts every .json sheet directly inside the input folder.
// Failures scoped to one sheet are logged and skipped; a failed directory
// read is fatal.
func (s *ConvertService) Execute(ctx context.Context, req ConvertRequest) (*ConvertResponse, error) {
	entries, err := os.ReadDir(req.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets directory %s: %w", req.InputDir, err)
	}

	resp := &ConvertResponse{}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		sheetPath := filepath.Join(req.InputDir, entry.Name())
		written, err := s.convertSheet(ctx, sheetPath, req.OutputDir)
		if err != nil {
			logging.Error("skipping sheet %s: %v", sheetPath, err)
			resp.SheetsSkipped++
			continue
		}

		resp.SheetsConverted++
		resp.AnimationsWritten += written
	}

	return resp, nil
}

// convertSheet runs Sheet Parser → Asset Deriver → Intermediate Writer for
// one sheet description and returns the number of animation assets written.
func (s *ConvertService) convertSheet(ctx context.Context, sheetPath, outDir string) (int, error) {
	sheet, err := aseprite.ParseFile(sheetPath)
	if err != nil {
		return 0, err
	}

	spriteSheet, err := deriveSpriteSheet(sheetPath, sheet)
	if err != nil {
		return 0, err
	}
	if err := s.repo.SaveSpriteSheet(ctx, outDir, spriteSheet); err != nil {
		return 0, err
	}

	def, err := deriveAnimationDef(sheet.Frames, spriteSheet, s.maxFrames)
	if err != nil {
		return 0, err
	}
	if err := s.repo.SaveAnimationDef(ctx, outDir, def); err != nil {
		return 0, err
	}

	if len(sheet.Frames) == 0 {
		logging.Info("no animation provided by sheet %s", sheetPath)
		return 0, nil
	}

	anims, err := groupAnimations(sheet.Frames, def)
	if err != nil {
		return 0, err
	}

	written := 0
	for i := range anims {
		if err := s.repo.SaveAnimation(ctx, outDir, &anims[i]); err != nil {
			return written, err
		}
		written++
	}

	logging.Debug("converted sheet %s: %d frames, %d animations",
		sheetPath, len(sheet.Frames), written)
	return written, nil
}
