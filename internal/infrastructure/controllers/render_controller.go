package controllers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// RenderController handles the "render" subcommand.
type RenderController struct {
	command commands.Render
	codec   *entities.RecordCodec
}

// NewRenderController creates a new RenderController.
func NewRenderController(command commands.Render, codec *entities.RecordCodec) *RenderController {
	return &RenderController{command: command, codec: codec}
}

// GetBind returns the Cobra command metadata for the render controller.
func (it *RenderController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "render <record.yaml>",
		Short: "Render a README from a project record file",
		Long: `Render a README from a YAML project record.

The record can be written by hand or produced by "readmegen analyze --format yaml"
and edited before rendering. Use "-" to read the record from stdin.`,
	}
}

// AddFlags adds the render-specific flags to the given Cobra command.
func (it *RenderController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the README to this file instead of stdout")
}

// Execute reads the record file and prints its README.
func (it *RenderController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one project record file")
	}

	output, _ := cmd.Flags().GetString("output")

	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	record, err := it.codec.Decode(data)
	if err != nil {
		return err
	}

	readme, err := it.command.Execute(record)
	if err != nil {
		return err
	}

	return writeOutput(cmd, output, []byte(readme))
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read project record from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project record %q: %w", path, err)
	}
	return data, nil
}
