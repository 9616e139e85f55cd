package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// NewRmCmd создаёт команду удаления файлов workspace.
func NewRmCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete workspace files",
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

			// Частичный отказ не прерывает обработку и не меняет код
			// завершения: сообщения по каждому файлу уже выведены.
			var freed int64
			for _, p := range args {
				result, err := client.Delete(workflow, p)
				if err != nil {
					return err
				}

				deleted := make([]string, 0, len(result.Deleted))
				for name := range result.Deleted {
					deleted = append(deleted, name)
				}
				sort.Strings(deleted)
				for _, name := range deleted {
					out.Success(fmt.Sprintf("%s was successfully deleted.", name))
				}

				failed := make([]string, 0, len(result.Failed))
				for name := range result.Failed {
					failed = append(failed, name)
				}
				sort.Strings(failed)
				for _, name := range failed {
					out.Error(result.Failed[name].Error)
				}

				if result.Empty() {
					out.Error(fmt.Sprintf("%s did not match any existing file.", p))
				}

				freed += result.FreedSize()
			}

			if freed > 0 {
				out.Success(fmt.Sprintf("%s of disk space freed.", domain.HumanSize(freed)))
			}
			return nil
		},
	}

	return cmd
}
