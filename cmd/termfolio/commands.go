package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/termfolio/internal/config"
	"github.com/muurk/termfolio/internal/logging"
	"github.com/muurk/termfolio/internal/resume"
	"github.com/muurk/termfolio/internal/theme"
	"github.com/muurk/termfolio/internal/tui"
	"github.com/muurk/termfolio/internal/ui"
	"github.com/muurk/termfolio/internal/urls"
)

// Command flags
var (
	configPath string
	themeFlag  string
	resumeDir  string
	resumeName string
	resumeB64  string
	forceInit  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir/termfolio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Start with the dark or light theme")

	resumeCmd.PersistentFlags().StringVar(&resumeB64, "b64", "", "File holding the base64 CV (overrides config)")
	resumeSaveCmd.Flags().StringVar(&resumeDir, "dir", "", "Directory to save into (default: config or current directory)")
	resumeSaveCmd.Flags().StringVar(&resumeName, "name", "", "File name (default: config resume.file_name)")
	resumeCmd.AddCommand(resumeSaveCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config without asking")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads and validates the config named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (see %s)", err, urls.ConfigReference)
	}
	return cfg, nil
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the portfolio needs an interactive terminal; try 'termfolio resume save' or 'termfolio config show'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if themeFlag != "" {
		cfg.Theme = string(theme.Parse(themeFlag))
	}

	logging.Info("Config loaded",
		zap.String("path", configPath),
		zap.String("theme", cfg.Theme),
		zap.Int("projects", len(cfg.Projects)))

	return tui.Run(tui.Options{Config: cfg})
}

// resumeCmd groups the CV commands
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Work with the embedded CV",
}

// resumeSaveCmd writes the CV to disk without opening the page
var resumeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the CV as a Word document",
	Long: `Decode the base64 CV and save it as a Word document.

The CV is embedded at build time or read from the file named by
resume.b64_path in the config (or --b64).`,
	Example: `  # Save into the current directory
  termfolio resume save

  # Save into ~/Downloads
  termfolio resume save --dir ~/Downloads`,
	RunE: runResumeSave,
}

func runResumeSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d := resume.Downloader{
		Source:   resume.Source{Encoded: resume.Encoded, Path: cfg.Resume.B64Path},
		Dir:      cfg.Resume.DownloadDir,
		FileName: cfg.Resume.FileName,
	}
	if resumeB64 != "" {
		d.Source = resume.Source{Path: resumeB64}
	}
	if resumeDir != "" {
		d.Dir = resumeDir
	}
	if resumeName != "" {
		d.FileName = resumeName
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.NewHeader("Save CV", "termfolio resume save").Render())

	path, err := d.Download()
	if err != nil {
		var hints []string
		if errors.Is(err, resume.ErrUnavailable) {
			hints = append(hints, "Set resume.b64_path in the config or pass --b64", "See "+urls.ResumeGuide)
		}
		fmt.Fprintln(out, ui.NewFailureResult("Could not save CV", err, hints...).Render())
		return err
	}

	logging.Info("CV saved", zap.String("path", path))
	fmt.Fprintln(out, ui.NewSuccessResult("CV saved").
		AddDetail("Path", path).
		AddDetail("Type", resume.MIMEType).
		Render())
	return nil
}

// configCmd groups the config commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the portfolio config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in portfolio to the config file for editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite config",
				[]string{path + " already exists", "Your edits will be replaced by the defaults"}) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.NewWarningResult("Config left unchanged").
					AddDetail("Path", path).
					Render())
				return nil
			}
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Config written").
			AddDetail("Path", path).
			AddDetail("Reference", urls.ConfigReference).
			Render())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config, defaults included",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
