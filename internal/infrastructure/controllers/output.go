package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const outputFileMode = 0o644

// writeOutput prints content to stdout, or to path when one is given.
func writeOutput(cmd *cobra.Command, path string, content []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := os.WriteFile(path, content, outputFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	logger.Infof("Wrote %s", path)
	return nil
}
