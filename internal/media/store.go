// Package media persists uploaded product images under the public
// images directory and enforces the image-only upload policy.
package media

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrUnsupportedType is returned for anything that is not an allowed
// image upload.
var ErrUnsupportedType = errors.New("only image files are allowed")

// Allowed extensions and MIME types. Both the declared content type and
// the file extension must pass.
var (
	allowedExts = map[string]struct{}{
		".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {}, ".webp": {},
	}
	allowedMIMEs = map[string]struct{}{
		"image/jpeg": {}, "image/jpg": {}, "image/png": {}, "image/gif": {}, "image/webp": {},
	}
)

// customNameRe strips anything but safe name characters from a
// caller-supplied file name.
var customNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Store writes images to a base directory and hands back the relative
// URL the catalog references them by.
type Store struct {
	basePath string
	logger   zerolog.Logger
	// now and randInt are swappable for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

// NewStore creates an image store rooted at basePath, creating the
// directory if needed.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory %s: %w", basePath, err)
	}
	return &Store{
		basePath: basePath,
		logger:   log.With().Str("component", "media_store").Logger(),
		now:      time.Now,
		randInt:  rand.Intn,
	}, nil
}

// Save validates and persists one uploaded image. customName, when
// provided, is sanitized and used as the base name; otherwise a
// timestamp-random name is generated. Returns the relative URL,
// e.g. "/images/capcut.png".
func (s *Store) Save(originalName, customName, contentType string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExts[ext]; !ok {
		recordUpload("rejected", 0)
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}
	if _, ok := allowedMIMEs[strings.ToLower(contentType)]; !ok {
		recordUpload("rejected", 0)
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedType, contentType)
	}

	filename := s.fileName(customName, ext)
	fullPath := filepath.Join(s.basePath, filename)
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		recordUpload("error", 0)
		return "", fmt.Errorf("failed to write image %s: %w", filename, err)
	}

	recordUpload("stored", len(content))
	s.logger.Info().Str("file", filename).Int("bytes", len(content)).Msg("Image uploaded")
	return "/images/" + filename, nil
}

// fileName picks the stored name: sanitized custom name when given,
// otherwise timestamp-random.
func (s *Store) fileName(customName, ext string) string {
	custom := strings.TrimSpace(customName)
	if custom != "" {
		custom = customNameRe.ReplaceAllString(custom, "")
		custom = strings.Trim(custom, ".")
		if custom != "" {
			return custom + ext
		}
	}
	return fmt.Sprintf("%d-%d%s", s.now().UnixMilli(), s.randInt(1e9), ext)
}
