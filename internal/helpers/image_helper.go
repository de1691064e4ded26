package helpers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/disintegration/imaging"
)

// MaxUploadBytes caps QR-code and payment-proof uploads.
const MaxUploadBytes = 5 * 1024 * 1024

const dataURIPrefix = "data:image/png;base64,"

// ImageToDataURI decodes arbitrary image bytes and re-encodes them as a
// canonical PNG wrapped in a data URI, the form stored and served to clients.
func ImageToDataURI(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}

	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PNGToDataURI wraps already-encoded PNG bytes without re-decoding.
func PNGToDataURI(png []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

func ReadUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > MaxUploadBytes {
		return nil, fmt.Errorf("file size exceeds maximum limit of %d MB", MaxUploadBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
