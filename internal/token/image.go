package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageSizeHint is the upload size communicated to the user. It is not enforced.
const ImageSizeHint = 1 << 20

// ErrNotImage is returned for files whose detected type is not image/*.
var ErrNotImage = errors.New("file is not an image")

// Image is an accepted token image: the original bytes plus a data URI
// suitable for previewing.
type Image struct {
	Name    string
	MIME    string
	Data    []byte
	DataURI string
}

// Size returns the image size in bytes.
func (img *Image) Size() int {
	if img == nil {
		return 0
	}
	return len(img.Data)
}

// OverSizeHint reports whether the image exceeds ImageSizeHint.
func (img *Image) OverSizeHint() bool {
	return img.Size() > ImageSizeHint
}

// OpenImage reads the file at path and returns it as an Image. Paths pasted
// into a terminal may arrive quoted or with escaped spaces; both are
// unwrapped first.
func OpenImage(path string) (*Image, error) {
	path = cleanDroppedPath(path)
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return NewImage(filepath.Base(path), data)
}

// NewImage classifies data by content and encodes its preview. Anything not
// detected as image/* yields ErrNotImage.
func NewImage(name string, data []byte) (*Image, error) {
	mime := mimetype.Detect(data)
	kind := mime.String()
	if !strings.HasPrefix(kind, "image/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotImage, name, kind)
	}

	return &Image{
		Name:    name,
		MIME:    kind,
		Data:    data,
		DataURI: "data:" + kind + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func cleanDroppedPath(path string) string {
	path = strings.TrimSpace(path)
	if len(path) >= 2 {
		first, last := path[0], path[len(path)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			path = path[1 : len(path)-1]
		}
	}
	path = strings.TrimPrefix(path, "file://")
	return strings.ReplaceAll(path, `\ `, " ")
}
