package usecases

import (
	"bytes"

	"github.com/gabriel-vasile/mimetype"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

// allowedImageTypes maps accepted MIME types to the stored file extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// leadingSignatures lists the byte prefixes accepted for each declared type.
var leadingSignatures = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47}},
	"image/gif":  {[]byte("GIF87"), []byte("GIF89")},
	"image/webp": {[]byte("RIFF")},
}

var webpMarker = []byte("WEBP")

// UploadFile is one file of a multipart batch.
type UploadFile struct {
	Filename string
	MimeType string
	Data     []byte
}

// CheckFile validates the declared type, the size, and then that the content
// starts with a signature of the declared type. It returns the extension the
// file is stored under. Avatars go through the same check.
func CheckFile(f UploadFile) (string, error) {
	ext, ok := allowedImageTypes[f.MimeType]
	if !ok {
		return "", errors.NewValidationError(ticket.MsgInvalidFileType)
	}
	if len(f.Data) > constants.MaxAttachmentBytes {
		return "", errors.NewValidationError(ticket.MsgFileTooLarge)
	}
	if !hasSignature(f.Data, f.MimeType) {
		return "", errors.NewIntegrityError(ticket.MsgFileContentMismatch, "detected "+mimetype.Detect(f.Data).String())
	}
	return ext, nil
}

// hasSignature reports whether data opens with a signature of mimeType. RIFF
// also frames WAV and AVI, so WebP additionally needs its marker at offset 8.
func hasSignature(data []byte, mimeType string) bool {
	matched := false
	for _, sig := range leadingSignatures[mimeType] {
		if bytes.HasPrefix(data, sig) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if mimeType == "image/webp" {
		return len(data) >= 12 && bytes.Equal(data[8:12], webpMarker)
	}
	return true
}
