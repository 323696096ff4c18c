package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repo/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize repo configuration",
	Long:  "Create a default configuration file for the repo CLI",
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("⚠️  Configuration file already exists at: %s\n", configPath)
		if !confirm("Do you want to overwrite it?") {
			fmt.Println("Configuration initialization cancelled.")
			return nil
		}
	}

	defaultConfig := &config.Config{
		GitHub: config.GitHubConfig{
			Username: "your-github-username",
		},
		Defaults: config.DefaultsConfig{
			Private:   false,
			Gitignore: "Go",
			License:   "mit",
		},
	}

	if err := defaultConfig.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("✅ Configuration file created at: %s\n", configPath)
	fmt.Println("📝 Edit the file to customize your defaults, then run 'repo setup'.")

	return nil
}
