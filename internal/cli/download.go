package cli

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewDownloadCmd создаёт команду скачивания файлов workspace.
func NewDownloadCmd(cfg *Config) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "download FILE...",
		Short: "Download workspace files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.Client()
			if err != nil {
				return err
			}
			workflow, err := cfg.WorkflowRef()
			if err != nil {
				return err
			}
			out := cfg.Output(false)

			for _, file := range args {
				if err := downloadFile(client, out, workflow, file, outputDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-directory", "o", ".", "Directory to save downloaded files")

	return cmd
}

// downloadFile скачивает один файл workspace в каталог dir.
// Имя на диске берётся из Content-Disposition, иначе из последнего
// сегмента запрошенного пути.
func downloadFile(client *Client, out *Output, workflow, file, dir string) error {
	content, filename, err := client.Download(workflow, file)
	if err != nil {
		return err
	}
	defer content.Close()

	if filename == "" {
		filename = path.Base(file)
	}

	dest := filepath.Join(dir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	out.Success(fmt.Sprintf("File %s downloaded to %s.", file, dest))
	return nil
}
