package dto

import "io"

type UploadResultDTO struct {
	Count int `json:"count"`
}

// FileDTO carries an attachment's bytes to the file proxy. The caller closes Body.
type FileDTO struct {
	Filename string
	MimeType string
	Size     int64
	Body     io.ReadCloser
}
