package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage prefixes for persisted image files. The actual file store is a
// collaborator; this package only allocates collision-free paths under the
// type-specific prefixes.
const (
	RealtorPhotoPrefix    = "photos/realtors"
	PropertyMainPrefix    = "photos/properties/main"
	PropertyGalleryPrefix = "photos/properties/gallery"
)

// RealtorPhotoPath allocates a stored path for a realtor photo upload.
func RealtorPhotoPath(filename string) string {
	return allocate(RealtorPhotoPrefix, filename)
}

// PropertyMainImagePath allocates a stored path for a listing's main image.
func PropertyMainImagePath(filename string) string {
	return allocate(PropertyMainPrefix, filename)
}

// PropertyGalleryImagePath allocates a stored path for an auxiliary listing
// image.
func PropertyGalleryImagePath(filename string) string {
	return allocate(PropertyGalleryPrefix, filename)
}

func allocate(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(prefix, uuid.New().String()+ext)
}
