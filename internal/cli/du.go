package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/filter"
)

// Колонки отчёта disk usage.
var duColumns = []string{filter.KeyName, filter.KeySize}

// NewDuCmd создаёт команду отчёта об использовании диска workspace.
func NewDuCmd(cfg *Config) *cobra.Command {
	var (
		filters       []string
		jsonOutput    bool
		humanReadable bool
		summarize     bool
	)

	cmd := &cobra.Command{
		Use:   "du",
		Short: "Show workspace disk usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cfg.Client()
			if err != nil {
				return err
			}
			workflow, err := cfg.WorkflowRef()
			if err != nil {
				return err
			}
			out := cfg.Output(jsonOutput)

			spec, err := filter.Parse(filter.ModeDiskUsage, filters)
			if err != nil {
				return err
			}

			report, err := client.DiskUsage(workflow, summarize)
			if err != nil {
				return err
			}

			matched := filter.FilterDiskUsage(report.DiskUsageInfo, nil, spec)
			if len(matched) == 0 {
				out.Error("No files matching filter criteria.")
				return &ExitError{Code: 1}
			}

			rows := make([][]string, len(matched))
			for i, rec := range matched {
				rows[i] = []string{rec.Name, rec.Size.Display(humanReadable)}
			}

			out.Print(upperColumns(duColumns), rows, matched)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter by name or size as key=value (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&humanReadable, "human-readable", false, "Show sizes in human-readable format")
	cmd.Flags().BoolVarP(&summarize, "summarize", "s", false, "Display only the total workspace size")

	return cmd
}
