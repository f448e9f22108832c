package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/siteforge-dev/siteforge/internal/client"
	"github.com/siteforge-dev/siteforge/internal/version"
)

type VersionOutput struct {
	CLIVersion           string `json:"cli_version"`
	GitCommit            string `json:"git_commit"`
	BuildDate            string `json:"build_date"`
	ServerVersion        string `json:"server_version,omitempty"`
	ServerGitCommit      string `json:"server_git_commit,omitempty"`
	ServerBuildDate      string `json:"server_build_date,omitempty"`
	UpdateRecommendation string `json:"update_recommendation,omitempty"`
}

var jsonOutput bool

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Displays the version of the CLI and, when a server is reachable, the server version.`,
	Run: func(cmd *cobra.Command, args []string) {
		output := VersionOutput{
			CLIVersion: version.Version,
			GitCommit:  version.GitCommit,
			BuildDate:  version.BuildDate,
		}

		var serverVersion *client.VersionInfo
		if apiClient, err := client.NewClientFromEnv(); err == nil {
			serverVersion, err = apiClient.GetVersion()
			if err == nil {
				output.ServerVersion = serverVersion.Version
				output.ServerGitCommit = serverVersion.GitCommit
				output.ServerBuildDate = serverVersion.BuildDate

				if semver.IsValid(version.EnsureVPrefix(serverVersion.Version)) && semver.IsValid(version.EnsureVPrefix(version.Version)) {
					switch semver.Compare(version.EnsureVPrefix(version.Version), version.EnsureVPrefix(serverVersion.Version)) {
					case 1:
						output.UpdateRecommendation = "CLI version is newer than server version. Consider updating the server."
					case -1:
						output.UpdateRecommendation = "Server version is newer than CLI version. Consider updating the CLI."
					}
				}
			}
		}

		if jsonOutput {
			jsonBytes, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling JSON: %v\n", err)
				return
			}
			fmt.Println(string(jsonBytes))
			return
		}

		fmt.Printf("siteforge version %s\n", output.CLIVersion)
		fmt.Printf("Git commit: %s\n", output.GitCommit)
		fmt.Printf("Build date: %s\n", output.BuildDate)

		if output.ServerVersion != "" {
			fmt.Printf("Server version: %s\n", output.ServerVersion)
			fmt.Printf("Server git commit: %s\n", output.ServerGitCommit)
			fmt.Printf("Server build date: %s\n", output.ServerBuildDate)
		}
		if output.UpdateRecommendation != "" {
			fmt.Printf("\n%s\n", output.UpdateRecommendation)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}
