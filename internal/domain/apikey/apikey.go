package apikey

type APIKey struct {
	ID     int64
	Key    string
	UserID int64
	Active bool
}

type CreateAPIKeyInput struct {
	Key    string
	UserID int64
	Active bool
}

// IsActive returns true if the key currently grants access.
func (k *APIKey) IsActive() bool {
	return k.Active
}
