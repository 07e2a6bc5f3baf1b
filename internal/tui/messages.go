package tui

import "github.com/folaolaitan/bondctl/internal/model"

// bondsLoadedMsg carries a completed fetch plus its generation token; stale
// generations are dropped by the session.
type bondsLoadedMsg struct {
	err     error
	records []model.Bond
	gen     uint64
}

// mutationDoneMsg reports the outcome of a create, update, or delete.
type mutationDoneMsg struct {
	err    error
	status string
}
