package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// NewMvCmd создаёт команду перемещения файлов внутри workspace.
func NewMvCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv SOURCE TARGET",
		Short: "Move files inside the workspace",
		Args:  cobra.ExactArgs(2),
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

			source, target := args[0], args[1]

			// Во время выполнения run workspace принадлежит исполнителю,
			// перемещение допустимо только после завершения.
			report, err := client.Status(workflow)
			if err != nil {
				return err
			}
			if report.Status == domain.WorkflowStatusRunning {
				out.Error("File(s) could not be moved for running workflow")
				return &ExitError{Code: 1}
			}

			if err := client.Move(workflow, source, target); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("%s was successfully moved to %s.", source, target))
			return nil
		},
	}

	return cmd
}
