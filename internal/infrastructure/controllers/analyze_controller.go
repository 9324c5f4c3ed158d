package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

const (
	formatMarkdown = "markdown"
	formatYAML     = "yaml"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command commands.Analyze
	render  commands.Render
	codec   *entities.RecordCodec
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(
	command commands.Analyze,
	render commands.Render,
	codec *entities.RecordCodec,
) *AnalyzeController {
	return &AnalyzeController{command: command, render: render, codec: codec}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze <github-url>",
		Short: "Generate a README from a public GitHub repository",
		Long: `Analyze a public GitHub repository and generate a README.

Reads the repository metadata and its root listing, infers the project type,
features, install command, usage example and technology stack, and prints the
resulting README. Use --format yaml to print the project record instead, edit
it, and turn it into a README with "readmegen render".`,
	}
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().String("format", formatMarkdown,
		fmt.Sprintf("Output format (%s, %s)", formatMarkdown, formatYAML),
	)
}

// Execute runs the analysis and prints the README or the project record.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one GitHub repository URL")
	}

	configPath, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	if format != formatMarkdown && format != formatYAML {
		return fmt.Errorf("unsupported format %q", format)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	record, err := it.command.Execute(cmd.Context(), settings, commands.AnalyzeOptions{URL: args[0]})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidReference):
			logger.Error("Please enter a valid GitHub repository URL (e.g., https://github.com/owner/repo).")
		case errors.Is(err, entities.ErrNotFound):
			logger.Error("Please check the URL and that the repository is public.")
		}
		return err
	}

	var content []byte
	if format == formatYAML {
		content, err = it.codec.Encode(record)
		if err != nil {
			return err
		}
	} else {
		readme, renderErr := it.render.Execute(record)
		if renderErr != nil {
			return renderErr
		}
		content = []byte(readme)
	}

	return writeOutput(cmd, output, content)
}
