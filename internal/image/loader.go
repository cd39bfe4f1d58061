// Package image is the collaborator edge of the pipeline: it loads and
// decodes cover images from the local filesystem and attaches optional
// track labels, producing the records the mosaic builder consumes.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/huemosaic/huemosaic/internal/mosaic"
)

// labelsFileName is the optional per-directory manifest mapping cover
// file names to track metadata.
const labelsFileName = "labels.yaml"

// Label carries optional display metadata for one cover file.
type Label struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// SupportedImageExtensions returns the supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// LoadDirectory decodes every supported image in dir into records, in
// sorted file name order - the stable input order the placement sort's
// final tie-break relies on. Files that fail to decode are skipped and
// logged at warn level; they never abort the batch. Returns an error
// only if the directory is unreadable or holds no decodable images.
func LoadDirectory(log hclog.Logger, dir string) ([]mosaic.Record, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	labels, err := loadLabels(dir)
	if err != nil {
		return nil, err
	}

	var records []mosaic.Record
	for _, entry := range entries {
		name := entry.Name()
		if !isImageFile(name) {
			continue
		}
		fullPath := filepath.Join(dir, name)

		// For symlinks, stat the target to determine if it's a file.
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}

		img, err := decodeFile(fullPath)
		if err != nil {
			log.Warn("skipping undecodable image", "path", fullPath, "error", err)
			continue
		}

		rec := mosaic.Record{ID: fullPath, Image: img}
		if l, ok := labels[name]; ok {
			rec.Title = l.Title
			rec.Artist = l.Artist
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no decodable images found in directory: %s", dir)
	}
	return records, nil
}

// decodeFile loads and decodes a single image file.
// Supported formats: JPEG, PNG, GIF, WebP.
func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path) // #nosec G304 - user-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// loadLabels reads the optional labels manifest from dir, keyed by cover
// file name. A missing manifest is not an error.
func loadLabels(dir string) (map[string]Label, error) {
	data, err := os.ReadFile(filepath.Join(dir, labelsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", labelsFileName, err)
	}

	labels := make(map[string]Label)
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", labelsFileName, err)
	}
	return labels, nil
}
