package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetpack/sheetpack/internal/core/ports"
	"github.com/sheetpack/sheetpack/pkg/logging"
)

// PackService runs stage two of the pipeline: intermediate assets under the
// known namespace folders become fixed-layout binary resources named by
// their numeric identifier.
type PackService struct {
	repo   ports.AssetRepository
	ids    ports.Identifier
	writer ports.ResourceWriter
}

func NewPackService(repo ports.AssetRepository, ids ports.Identifier, writer ports.ResourceWriter) *PackService {
	return &PackService{
		repo:   repo,
		ids:    ids,
		writer: writer,
	}
}

// PackRequest represents a request to pack a folder of intermediate assets.
type PackRequest struct {
	InputDir  string
	OutputDir string
}

// PackResponse represents the outcome of one packing run. Per-file failures
// are collected in Errors; the run continues past them.
type PackResponse struct {
	ResourcesPacked int
	FilesSkipped    int
	Errors          []error
}

// Execute packs every compatible file inside the three known namespace
// subfolders of the input directory. Unknown entries are skipped with a
// warning. A failed directory read is fatal; anything scoped to one file
// skips that file and continues.
func (s *PackService) Execute(ctx context.Context, req PackRequest) (*PackResponse, error) {
	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create resources directory %s: %w", req.OutputDir, err)
	}

	entries, err := os.ReadDir(req.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets directory %s: %w", req.InputDir, err)
	}

	resp := &PackResponse{}

	for _, entry := range entries {
		if !entry.IsDir() {
			logging.Warn("ignoring entry %s (a folder is expected)", entry.Name())
			continue
		}

		nsDir := filepath.Join(req.InputDir, entry.Name())

		switch entry.Name() {
		case s.ids.SpriteSheetNamespace():
			s.packNamespace(ctx, nsDir, req.OutputDir, resp, s.packSpriteSheet)
		case s.ids.AnimationDefNamespace():
			s.packNamespace(ctx, nsDir, req.OutputDir, resp, s.packAnimationDef)
		case s.ids.AnimationNamespace():
			s.packNamespace(ctx, nsDir, req.OutputDir, resp, s.packAnimation)
		default:
			logging.Warn("ignoring entry %s (unknown or unsupported namespace)", nsDir)
		}
	}

	return resp, nil
}

// packNamespace packs every .json file in one namespace folder, aggregating
// per-file failures instead of aborting the run.
func (s *PackService) packNamespace(ctx context.Context, nsDir, outDir string, resp *PackResponse, pack func(context.Context, string, string) error) {
	entries, err := os.ReadDir(nsDir)
	if err != nil {
		resp.Errors = append(resp.Errors, fmt.Errorf("failed to read namespace folder %s: %w", nsDir, err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		assetPath := filepath.Join(nsDir, entry.Name())
		if err := pack(ctx, assetPath, outDir); err != nil {
			logging.Error("skipping asset %s: %v", assetPath, err)
			resp.FilesSkipped++
			resp.Errors = append(resp.Errors, err)
			continue
		}
		resp.ResourcesPacked++
	}
}

func (s *PackService) packSpriteSheet(ctx context.Context, assetPath, outDir string) error {
	sheet, err := s.repo.LoadSpriteSheet(ctx, assetPath)
	if err != nil {
		return err
	}
	if err := s.writer.WriteSpriteSheet(assetPath, sheet, outDir); err != nil {
		return err
	}
	logging.Debug("packed sprite sheet %q as %d", sheet.Name, s.ids.ID(sheet.Name))
	return nil
}

func (s *PackService) packAnimationDef(ctx context.Context, assetPath, outDir string) error {
	def, err := s.repo.LoadAnimationDef(ctx, assetPath)
	if err != nil {
		return err
	}
	if err := s.writer.WriteAnimationDef(def, outDir); err != nil {
		return err
	}
	logging.Debug("packed animation def %q as %d", def.Name, s.ids.ID(def.Name))
	return nil
}

func (s *PackService) packAnimation(ctx context.Context, assetPath, outDir string) error {
	anim, err := s.repo.LoadAnimation(ctx, assetPath)
	if err != nil {
		return err
	}
	if err := s.writer.WriteAnimation(anim, outDir); err != nil {
		return err
	}
	logging.Debug("packed animation %q as %d", anim.Name, s.ids.ID(anim.Name))
	return nil
}
