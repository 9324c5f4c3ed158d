package commands

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/document"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// Render is the interface for the render command.
type Render interface {
	Execute(record *entities.ProjectRecord) (string, error)
}

// RenderCommand turns a project record into a README document.
type RenderCommand struct{}

// NewRenderCommand creates a new RenderCommand.
func NewRenderCommand() *RenderCommand {
	return &RenderCommand{}
}

// Execute validates the record and assembles its document.
func (it *RenderCommand) Execute(record *entities.ProjectRecord) (string, error) {
	if err := validateRecord(record); err != nil {
		return "", err
	}
	return document.Assemble(*record), nil
}

// validateRecord requires the two fields every document opens with.
func validateRecord(record *entities.ProjectRecord) error {
	if record == nil {
		return fmt.Errorf("%w: no project record", entities.ErrMissingInformation)
	}
	if strings.TrimSpace(record.Title) == "" || strings.TrimSpace(record.Description) == "" {
		return fmt.Errorf(
			"%w: please fill in at least the project title and description",
			entities.ErrMissingInformation,
		)
	}
	return nil
}
