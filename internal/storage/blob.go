package storage

import "io"

// AssetStore serves the dashboard's local assets: logo and percentile
// legend images, plus the copy text files. Read-only.
type AssetStore interface {
	Open(key string) (io.ReadCloser, error)
	ReadText(name string) (string, error)
}
