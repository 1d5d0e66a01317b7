package tui

import "github.com/papapumpkin/mainseq/internal/catalog"

// Resolution happens inline in Update because the scaling relations are pure
// math. Messages exist for the two async paths: journal writes and catalog
// file watching.

// MsgSaved is sent after a resolution is appended to the journal.
type MsgSaved struct {
	ID string
}

// MsgSaveError is sent when a journal append fails.
type MsgSaveError struct {
	Err error
}

// MsgCatalogReloaded is sent by WatchCatalog after the catalog file changes
// and reloads cleanly. It carries the merged builtin+user catalog.
type MsgCatalogReloaded struct {
	Catalog catalog.Catalog
}

// MsgCatalogReloadError is sent when a changed catalog file fails to load.
// The previous catalog stays active.
type MsgCatalogReloadError struct {
	Err error
}
