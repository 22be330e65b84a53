package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/wallgrid/internal/catalog"
	"github.com/ytget/wallgrid/internal/config"
	"github.com/ytget/wallgrid/internal/download"
	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/platform"
)

// loadCatalog fetches the remote directory into a fresh store
func loadCatalog(cmd *cobra.Command) (*catalog.Client, *catalog.Store, error) {
	env := config.LoadEnv()
	client := catalog.NewClient(env.BaseURL, nil)
	store := catalog.NewStore()

	logging.NewLogger("cli").WithField("base_url", client.BaseURL()).Debug("Fetching catalog")
	if _, err := store.Load(cmd.Context(), client); err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// NewListCmd lists the catalog, optionally restricted to one category
func NewListCmd() *cobra.Command {
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the wallpapers in the remote directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			records := catalog.FilterRecords(store.Snapshot().All, category)
			out := cmd.OutOrStdout()

			if jsonOutput {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal records to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			width := titleColumnWidth(records)
			for _, rec := range records {
				fmt.Fprintln(out, renderRecord(rec, width))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list wallpapers of this category")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

// NewCategoriesCmd prints the distinct categories in catalog order
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in the remote directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			for _, category := range store.Snapshot().Categories {
				fmt.Fprintln(cmd.OutOrStdout(), categoryStyle.Render(category))
			}
			return nil
		},
	}
}

// NewDownloadCmd saves one wallpaper by id
func NewDownloadCmd() *cobra.Command {
	var dir string
	var open bool

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a wallpaper into the downloads directory",
		Long: `Download a wallpaper into the downloads directory.

The file is named after the wallpaper title with a .jpg extension. An existing
file of the same name is replaced. The directory defaults to WALLGRID_DOWNLOAD_DIR
or the platform downloads directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			rec, ok := store.Find(args[0])
			if !ok {
				return fmt.Errorf("no wallpaper with id %q", args[0])
			}

			if dir == "" {
				dir, err = defaultDownloadDir()
				if err != nil {
					return err
				}
			}

			svc := download.NewService(dir, nil)
			task, err := svc.Download(cmd.Context(), client.ImageURL(rec), rec.DownloadFilename())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓"), fmt.Sprintf("Image downloaded to %s", task.OutputPath))

			if open {
				if err := platform.OpenFileWithDefaultApp(task.OutputPath); err != nil {
					return fmt.Errorf("failed to open %s: %w", task.OutputPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to save into")
	cmd.Flags().BoolVar(&open, "open", false, "Open the image with the default application afterwards")
	return cmd
}

func defaultDownloadDir() (string, error) {
	if env := config.LoadEnv(); env.DownloadDir != "" {
		return env.DownloadDir, nil
	}
	return platform.GetHomeDownloadsDir()
}
