package validation

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"path/filepath"

	_ "golang.org/x/image/webp"

	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateProfileImage checks size, MIME type and pixel dimensions of an
// uploaded profile image and returns its content type. The file is left
// seeked to the start for the subsequent upload.
func ValidateProfileImage(fileHeader *multipart.FileHeader, maxBytes int64, maxDimension int) (string, error) {
	if fileHeader.Size > maxBytes {
		return "", internal_errors.New(internal_errors.Invalid, "Image is too large")
	}

	mimeType := DetectMimeType(fileHeader)
	if !allowedImageMimes[mimeType] {
		return "", internal_errors.Newf(internal_errors.Invalid, "Unsupported image type: %s", mimeType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", internal_errors.New(internal_errors.Invalid, "Can't open uploaded file")
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return "", internal_errors.New(internal_errors.Invalid, "File is not a decodable image")
	}
	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return "", internal_errors.Newf(internal_errors.Invalid, "Image dimensions exceed %dpx", maxDimension)
	}

	file.Seek(0, 0)
	return mimeType, nil
}

func DetectMimeType(fileHeader *multipart.FileHeader) string {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		if detected := mime.TypeByExtension(filepath.Ext(fileHeader.Filename)); detected != "" {
			mimeType = detected
		}
	}
	return mimeType
}
