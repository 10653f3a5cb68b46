package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sheetpack/sheetpack/internal/core/domain"
	"github.com/sheetpack/sheetpack/internal/core/ports"
)

// FileAssetRepository persists intermediate assets as pretty-printed JSON
// files under namespaced folders, and reads them back for the packing stage.
type FileAssetRepository struct {
	ids ports.Identifier
}

func NewFileAssetRepository(ids ports.Identifier) *FileAssetRepository {
	return &FileAssetRepository{ids: ids}
}

// SaveSpriteSheet writes {dir}/{ns}/{name}.json and copies the referenced
// image into the namespace folder so the packer can resolve it relative to
// the asset file.
func (r *FileAssetRepository) SaveSpriteSheet(ctx context.Context, dir string, sheet *domain.SpriteSheet) error {
	nsDir := filepath.Join(dir, r.ids.SpriteSheetNamespace())
	if err := os.MkdirAll(nsDir, 0755); err != nil {
		return fmt.Errorf("failed to create namespace folder %s: %w", nsDir, err)
	}

	dst := filepath.Join(nsDir, sheet.ImagePath)
	if err := copyFile(sheet.SourceImagePath, dst); err != nil {
		return fmt.Errorf("failed to copy sheet image: %w", err)
	}

	return writeAsset(nsDir, sheet.Name, sheet)
}

func (r *FileAssetRepository) SaveAnimationDef(ctx context.Context, dir string, def *domain.AnimationDef) error {
	nsDir := filepath.Join(dir, r.ids.AnimationDefNamespace())
	if err := os.MkdirAll(nsDir, 0755); err != nil {
		return fmt.Errorf("failed to create namespace folder %s: %w", nsDir, err)
	}
	return writeAsset(nsDir, def.Name, def)
}

func (r *FileAssetRepository) SaveAnimation(ctx context.Context, dir string, anim *domain.Animation) error {
	nsDir := filepath.Join(dir, r.ids.AnimationNamespace())
	if err := os.MkdirAll(nsDir, 0755); err != nil {
		return fmt.Errorf("failed to create namespace folder %s: %w", nsDir, err)
	}
	return writeAsset(nsDir, anim.Name, anim)
}

func (r *FileAssetRepository) LoadSpriteSheet(ctx context.Context, path string) (*domain.SpriteSheet, error) {
	var sheet domain.SpriteSheet
	if err := readAsset(path, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *FileAssetRepository) LoadAnimationDef(ctx context.Context, path string) (*domain.AnimationDef, error) {
	var def domain.AnimationDef
	if err := readAsset(path, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (r *FileAssetRepository) LoadAnimation(ctx context.Context, path string) (*domain.Animation, error) {
	var anim domain.Animation
	if err := readAsset(path, &anim); err != nil {
		return nil, err
	}
	return &anim, nil
}

func writeAsset(nsDir, name string, asset interface{}) error {
	data, err := json.MarshalIndent(asset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal asset %s: %w", name, err)
	}

	path := filepath.Join(nsDir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write asset %s: %w", path, err)
	}
	return nil
}

func readAsset(path string, asset interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read asset %s: %w", path, err)
	}
	if err := json.Unmarshal(data, asset); err != nil {
		return fmt.Errorf("failed to unmarshal asset %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
