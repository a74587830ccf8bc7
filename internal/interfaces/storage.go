package interfaces

import "context"

// StoredObject identifies a stored blob. Path is set by the local backend,
// URL/PublicID by the remote one.
type StoredObject struct {
	Path     string
	URL      string
	PublicID string
}

type FileStorage interface {
	Save(ctx context.Context, folder string, filename string, b []byte) (StoredObject, error)
	Remove(ctx context.Context, obj StoredObject) error
}
