package profile

import (
	"fmt"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
)

// MaxImageBytes is the upload size ceiling for profile images.
const MaxImageBytes = 5 << 20

// ImageKind distinguishes the two profile image slots.
type ImageKind string

const (
	ImageKindAvatar ImageKind = "avatar"
	ImageKindCover  ImageKind = "cover"
)

// IsValid reports whether the kind names a known image slot.
func (k ImageKind) IsValid() bool {
	return k == ImageKindAvatar || k == ImageKindCover
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidateImage checks the upload constraints in order: size first, then
// content type. Both checks happen before any storage call so an oversized
// or foreign file never leaves the handler.
func ValidateImage(sizeBytes int64, contentType string) error {
	if sizeBytes > MaxImageBytes {
		return apperrors.WithMetadata(
			apperrors.CodeProfileImageTooLarge,
			fmt.Sprintf("image is %d bytes, limit is %d", sizeBytes, MaxImageBytes),
			map[string]string{"limit_mb": "5"},
		)
	}
	if _, ok := imageExtensions[contentType]; !ok {
		return apperrors.WithMetadata(
			apperrors.CodeProfileImageBadType,
			fmt.Sprintf("unsupported image type %q", contentType),
			map[string]string{"type": contentType},
		)
	}
	return nil
}

// ImageExtension returns the canonical file extension for an accepted
// content type.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := imageExtensions[contentType]
	return ext, ok
}
