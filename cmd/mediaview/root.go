package main

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/mediaview/internal/config"
	"github.com/olivierh59500/mediaview/internal/gui"
	"github.com/olivierh59500/mediaview/internal/logging"
	"github.com/olivierh59500/mediaview/pkg/media"
)

// launchFunc opens the window for an already classified file.
type launchFunc func(path string, kind media.Kind, cfg config.Config) error

func newRootCommand(launch launchFunc) *cobra.Command {
	return &cobra.Command{
		Use:           "mediaview [--] <file>",
		Short:         "Open an image viewer or an audio player for a file",
		Long:          "mediaview opens " + describeFormats() + "\nPut -- before a file name that starts with a dash.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return media.ErrNoPath
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			kind, err := media.Classify(path)
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return launch(path, kind, cfg)
		},
	}
}

func launchGUI(path string, kind media.Kind, cfg config.Config) error {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}
	return gui.Launch(path, kind, gui.Options{Config: cfg, Logger: logger})
}

func describeFormats() string {
	text := "an audio player for"
	for _, ext := range media.AudioExtensions() {
		text += " ." + ext
	}
	text += " files and an image viewer for"
	for _, ext := range media.ImageExtensions() {
		text += " ." + ext
	}
	return text + " files."
}
