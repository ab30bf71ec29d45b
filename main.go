package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"galeria/app"
	"galeria/config"
	"galeria/gallery"
	"galeria/log"
	"galeria/source"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.3.1"

	layoutFlag    string
	sizeFlag      string
	columnsFlag   int
	labelFlag     string
	multiFlag     bool
	noSelectFlag  bool
	noLightbox    bool
	captionsFlag  bool
	recursiveFlag bool
	pageSizeFlag  int

	rootCmd = &cobra.Command{
		Use:   "galeria [path]",
		Short: "Galeria - browse image directories and album manifests in the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("galeria needs an interactive terminal")
			}

			cfg := config.LoadConfig()

			// Flags override config
			if layoutFlag != "" {
				if !gallery.ValidLayout(layoutFlag) {
					return fmt.Errorf("invalid layout: %s (must be grid, masonry, list or carousel)", layoutFlag)
				}
				cfg.Layout = layoutFlag
			}
			if sizeFlag != "" {
				cfg.Size = sizeFlag
			}
			if cmd.Flags().Changed("columns") {
				cfg.Columns = columnsFlag
			}
			if multiFlag {
				cfg.MultiSelect = true
			}
			if noSelectFlag {
				cfg.Selectable = false
			}
			if noLightbox {
				cfg.Lightbox = false
			}
			if captionsFlag {
				cfg.ShowCaptions = true
			}
			if pageSizeFlag > 0 {
				cfg.PageSize = pageSizeFlag
			}

			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", path, err)
			}

			var src source.Source
			if strings.EqualFold(filepath.Ext(absPath), ".json") {
				src = &source.ManifestSource{Path: absPath}
			} else {
				src = &source.DirSource{Path: absPath, Recursive: recursiveFlag}
			}

			state := config.LoadState()
			state.AddRecentPath(absPath)
			if err := config.SaveState(state); err != nil {
				log.WarningLog.Printf("failed to save state: %v", err)
			}

			opts := gallery.Options{
				Layout:         gallery.Layout(cfg.Layout),
				Size:           gallery.Size(cfg.Size),
				Columns:        cfg.Columns,
				Selectable:     cfg.Selectable,
				MultiSelect:    cfg.MultiSelect,
				Lightbox:       cfg.Lightbox,
				ShowCaptions:   cfg.ShowCaptions,
				InfiniteScroll: cfg.InfiniteScroll,
				Label:          labelFlag,
			}
			return app.Run(ctx, src, cfg, opts)
		},
	}

	recentCmd = &cobra.Command{
		Use:   "recent",
		Short: "List recently opened galleries",
		Run: func(cmd *cobra.Command, args []string) {
			log.Initialize()
			defer log.Close()

			state := config.LoadState()
			if len(state.RecentPaths) == 0 {
				fmt.Println("No recently opened galleries")
				return
			}
			for _, p := range state.RecentPaths {
				fmt.Println(p)
			}
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset stored application state",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.SaveState(config.DefaultState()); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of galeria",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("galeria version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&layoutFlag, "layout", "L", "",
		"Layout to use: grid, masonry, list or carousel")
	rootCmd.Flags().StringVarP(&sizeFlag, "size", "s", "",
		"Cell size: xs, sm, md, lg or xl")
	rootCmd.Flags().IntVarP(&columnsFlag, "columns", "c", 0,
		"Fixed column count (0 picks one from the terminal width)")
	rootCmd.Flags().StringVar(&labelFlag, "label", "",
		"Gallery label shown in the title (defaults to the album title)")
	rootCmd.Flags().BoolVarP(&multiFlag, "multi", "m", false,
		"Allow selecting multiple images at once")
	rootCmd.Flags().BoolVar(&noSelectFlag, "no-select", false,
		"Disable image selection")
	rootCmd.Flags().BoolVar(&noLightbox, "no-lightbox", false,
		"Do not open images in the lightbox on activation")
	rootCmd.Flags().BoolVar(&captionsFlag, "captions", false,
		"Show image captions under the cells")
	rootCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false,
		"Scan image directories recursively")
	rootCmd.Flags().IntVar(&pageSizeFlag, "page-size", 0,
		"Images per infinite-scroll page")

	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
