package repository

import (
	domainerrors "storefront/internal/domain/errors"
)

// Backend names the store that served a call.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

// Outcome describes how a synced call was served. Fallback is set when the
// remote backend failed and the local backend took over.
type Outcome struct {
	ID       string
	Backend  Backend
	Fallback *domainerrors.PersistenceError
}

// FellBack reports whether the remote backend failed during the call.
func (o Outcome) FellBack() bool {
	return o.Fallback != nil
}
