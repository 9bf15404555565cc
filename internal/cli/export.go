package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/hublist/internal/app"
	"github.com/tacogips/hublist/internal/hub"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [owner/name]",
	Short: "Export a repository's file listing with download URLs",
	Long: `Export the file manifest of a Hub repository to a plain-text report.

Each repository file produces one record: its name, its constructed
download URL, and a separator line. When no repository is given on the
command line, hublist prompts for one interactively.

Examples:
  hublist export acme/widgets
  hublist export acme/widgets -o widgets.txt
  hublist export acme/widgets --revision v1.0
  hublist export acme/corpus --type datasets
  hublist export acme/private-model --token hf_...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// Export command flags
var (
	exportOutput   string
	exportRevision string
	exportType     string
	exportToken    string
	exportEndpoint string
)

func init() {
	// Flags for export
	exportCmd.Flags().StringVarP(&exportOutput, FlagOutput, "o", "", DescOutput)
	exportCmd.Flags().StringVarP(&exportRevision, FlagRevision, "r", "", DescRevision)
	exportCmd.Flags().StringVar(&exportType, FlagType, "", DescType)
	exportCmd.Flags().StringVar(&exportToken, FlagToken, "", DescToken)
	exportCmd.Flags().StringVar(&exportEndpoint, FlagEndpoint, "", DescEndpoint)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var repoID string
	if len(args) > 0 {
		repoID = args[0]
	} else {
		repoID, err = PromptForRepoID()
		if err != nil {
			return err
		}
	}
	if err := ValidateRepoID(repoID); err != nil {
		return err
	}

	outputPath := exportOutput
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}
	endpoint := exportEndpoint
	if endpoint == "" {
		endpoint = cfg.Hub.Endpoint
	}

	if _, statErr := os.Stat(outputPath); statErr == nil {
		printWarning(fmt.Sprintf("Overwriting existing report: %s", outputPath))
	}

	printProgress(fmt.Sprintf("Fetching file manifest for %s...", repoID))

	result, err := app.Export(cmd.Context(), app.ExportOptions{
		Repo:       repoID,
		Revision:   exportRevision,
		RepoType:   hub.RepoType(exportType),
		OutputPath: outputPath,
		Token:      getHubToken(exportToken, cfg),
		Endpoint:   endpoint,
		Timeout:    cfg.Hub.Timeout,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Export failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Written file metadata and download URLs to %s", result.OutputPath))
	printInfo(fmt.Sprintf("  Files:    %d", result.FilesWritten))
	printInfo(fmt.Sprintf("  Revision: %s", result.Revision))

	return nil
}
