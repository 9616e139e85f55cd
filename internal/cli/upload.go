package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/manifest"
)

// NewUploadCmd создаёт команду загрузки файлов в workspace.
// Без аргументов загружаются входы, объявленные в манифесте проекта.
func NewUploadCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [FILE]...",
		Short: "Upload files or directories to the workspace",
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

			paths := args
			if len(paths) == 0 {
				paths, err = manifestInputs()
				if err != nil {
					return err
				}
			}

			for _, p := range paths {
				if err := uploadPath(client, out, workflow, p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}

// manifestInputs возвращает входные пути из automata.yaml.
func manifestInputs() ([]string, error) {
	m, err := manifest.Load(manifest.DefaultFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("nothing to upload: provide file arguments or an automata.yaml manifest with inputs")
		}
		return nil, err
	}

	paths := m.InputPaths()
	if len(paths) == 0 {
		return nil, fmt.Errorf("nothing to upload: %s declares no inputs", manifest.DefaultFile)
	}
	return paths, nil
}

// uploadPath загружает файл либо рекурсивно содержимое каталога.
func uploadPath(client *Client, out *Output, workflow, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return uploadFile(client, out, workflow, p)
	}

	return filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return uploadFile(client, out, workflow, path)
	})
}

// uploadFile загружает один локальный файл. Именем в workspace служит
// нормализованный относительный путь со слэшами "/".
func uploadFile(client *Client, out *Output, workflow, p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	name := filepath.ToSlash(filepath.Clean(p))
	if err := client.Upload(workflow, name, f); err != nil {
		return err
	}

	out.Success(fmt.Sprintf("File %s was successfully uploaded.", name))
	return nil
}
