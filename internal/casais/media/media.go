// Package media forwards uploaded images to an external media host and
// removes them again. The host owns storage and transcoding; callers only
// keep the returned Ref.
package media

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"
)

// DefaultFolder is the key prefix every upload lands under.
const DefaultFolder = "casais_app"

var (
	// ErrDisabled is returned by Upload when no media host is configured.
	ErrDisabled = errors.New("media: uploads are not configured")

	// ErrUnsupportedType reports an image that is not jpg/jpeg/png.
	ErrUnsupportedType = errors.New("media: unsupported image type")
)

// Ref is what the media host hands back for a stored object.
type Ref struct {
	URL    string
	Handle string
}

// Bridge uploads and deletes objects on the media host.
type Bridge interface {
	Upload(ctx context.Context, filename string, data []byte) (Ref, error)
	Destroy(ctx context.Context, handle string) error
}

var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ContentType validates an upload by extension and sniffed content and
// returns the canonical extension and MIME type.
func ContentType(filename string, data []byte) (ext, mime string, err error) {
	ext = strings.ToLower(path.Ext(filename))
	mime, ok := allowedTypes[ext]
	if !ok {
		return "", "", ErrUnsupportedType
	}
	if http.DetectContentType(data) != mime {
		return "", "", ErrUnsupportedType
	}
	return ext, mime, nil
}

// Disabled is a Bridge for deployments without a media host.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, []byte) (Ref, error) { return Ref{}, ErrDisabled }
func (Disabled) Destroy(context.Context, string) error               { return nil }
