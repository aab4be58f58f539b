package mcp

import (
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/store"
)

// DataSource abstracts the session collection for MCP tools so handlers can
// be tested against a fake.
type DataSource interface {
	All() []models.Session
	Get(id string) (models.Session, bool)
}

// Compile-time check: *store.Store satisfies DataSource.
var _ DataSource = (*store.Store)(nil)
