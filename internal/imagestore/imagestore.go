package imagestore

import (
	"context"
	"io"
)

// PathPrefix is the public URL prefix under which stored images are served.
const PathPrefix = "/uploads/"

// Store persists uploaded item images and serves them back by their public
// path. Save returns a path of the form /uploads/<generatedName>; that path
// is what gets recorded on the clothing item and handed back to Open and
// Delete.
type Store interface {
	Save(ctx context.Context, originalFilename string, r io.Reader) (imagePath string, err error)
	Open(ctx context.Context, imagePath string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, imagePath string) error
}
