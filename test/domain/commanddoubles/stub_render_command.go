//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// StubRenderCommand is a stub implementation of commands.Render.
type StubRenderCommand struct {
	ExecuteCallCount int
	Document         string
	ExecuteErr       error
	LastRecord       *entities.ProjectRecord
}

var _ commands.Render = (*StubRenderCommand)(nil)

func (s *StubRenderCommand) Execute(record *entities.ProjectRecord) (string, error) {
	s.ExecuteCallCount++
	s.LastRecord = record
	return s.Document, s.ExecuteErr
}
