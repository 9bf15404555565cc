package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/hublist/internal/app"
	"github.com/tacogips/hublist/internal/hub"
	"gopkg.in/yaml.v3"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <owner/name>",
	Short: "Show repository metadata and file manifest",
	Long: `Display metadata for a Hub repository: commit SHA, file count,
total size, and the per-file manifest with download URLs.

Examples:
  hublist info acme/widgets
  hublist info acme/widgets --json
  hublist info acme/widgets --yaml
  hublist info acme/corpus --type datasets`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

// Info command flags
var (
	infoRevision string
	infoType     string
	infoToken    string
	infoEndpoint string
	infoJSON     bool
	infoYAML     bool
)

func init() {
	// Flags for info
	infoCmd.Flags().StringVarP(&infoRevision, FlagRevision, "r", "", DescRevision)
	infoCmd.Flags().StringVar(&infoType, FlagType, "", DescType)
	infoCmd.Flags().StringVar(&infoToken, FlagToken, "", DescToken)
	infoCmd.Flags().StringVar(&infoEndpoint, FlagEndpoint, "", DescEndpoint)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	infoCmd.Flags().BoolVar(&infoYAML, "yaml", false, "Output as YAML")
}

func runInfo(cmd *cobra.Command, args []string) error {
	repoID := args[0]
	if err := ValidateRepoID(repoID); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	endpoint := infoEndpoint
	if endpoint == "" {
		endpoint = cfg.Hub.Endpoint
	}

	result, err := app.Info(cmd.Context(), app.InfoOptions{
		Repo:     repoID,
		Revision: infoRevision,
		RepoType: hub.RepoType(infoType),
		Token:    getHubToken(infoToken, cfg),
		Endpoint: endpoint,
		Timeout:  cfg.Hub.Timeout,
	})
	if err != nil {
		return err
	}

	if infoJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal repository info: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if infoYAML {
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal repository info: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	// Normal output
	printHeader(result.ID)
	printInfo(fmt.Sprintf("Revision:   %s", result.Revision))
	printInfo(fmt.Sprintf("Commit:     %s", result.SHA))
	printInfo(fmt.Sprintf("Private:    %t", result.Private))
	printInfo(fmt.Sprintf("Files:      %d", result.FileCount))
	printInfo(fmt.Sprintf("Total size: %s", formatBytes(result.TotalSize)))
	printSeparator()
	for _, f := range result.Files {
		marker := ""
		if f.LFS {
			marker = " [lfs]"
		}
		printInfo(fmt.Sprintf("%-50s %10s%s", f.Path, formatBytes(f.Size), marker))
	}

	return nil
}
