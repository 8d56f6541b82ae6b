// Package tokens persists the session credential pair in the client's local
// sqlite database. It is the single source of truth for "is a session
// active": no separate session id exists.
package tokens

import "context"

// Slot names. These match the keys the browser build of TechKatta uses in
// localStorage, which keeps server-side tooling symmetrical.
const (
	SlotAccess  = "access_token"
	SlotRefresh = "refresh_token"
)

// Repository is a small key/value store over the credential slots.
//
// Contract:
//   - Get returns "" (and no error) when the slot is absent.
//   - SetPair writes both slots in one transaction so a reader can never
//     observe a half-updated pair.
//   - Clear removes everything and is safe to call on an empty store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	SetPair(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
