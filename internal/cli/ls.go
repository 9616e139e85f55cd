package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/domain"
	"github.com/shaiso/automata-workspace/internal/filter"
)

// Колонки листинга файлов в порядке вывода по умолчанию.
// Совпадают с ключами фильтра режима.
var lsColumns = []string{filter.KeyName, filter.KeySize, filter.KeyLastModified}

// NewLsCmd создаёт команду листинга файлов workspace.
func NewLsCmd(cfg *Config) *cobra.Command {
	var (
		filters       []string
		jsonOutput    bool
		urlOutput     bool
		humanReadable bool
		format        []string
		page          int
		pageSize      int
	)

	cmd := &cobra.Command{
		Use:   "ls [PATTERN]",
		Short: "List workspace files",
		Args:  cobra.MaximumNArgs(1),
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

			var pattern *filter.Pattern
			if len(args) == 1 {
				pattern, err = filter.NewPattern(args[0])
				if err != nil {
					return err
				}
			}

			spec, err := filter.Parse(filter.ModeFiles, filters)
			if err != nil {
				return err
			}

			columns, err := selectColumns(lsColumns, format)
			if err != nil {
				return err
			}

			files, err := client.ListFiles(workflow, ListFilesOpts{Page: page, Size: pageSize})
			if err != nil {
				return err
			}

			matched := filter.FilterFiles(files, pattern, spec)

			if urlOutput {
				lines := make([]string, len(matched))
				for i, f := range matched {
					lines[i] = client.FileURL(workflow, f.Name)
				}
				out.Lines(lines)
				return nil
			}

			rows := make([][]string, len(matched))
			for i, f := range matched {
				rows[i] = fileRow(f, columns, humanReadable)
			}

			out.Print(upperColumns(columns), rows, matched)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter by name, size or last-modified as key=value (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&urlOutput, "url", false, "Output download URLs instead of the file table")
	cmd.Flags().BoolVar(&humanReadable, "human-readable", false, "Show sizes in human-readable format")
	cmd.Flags().StringSliceVar(&format, "format", nil, "Comma-separated list of columns to display")
	cmd.Flags().IntVar(&page, "page", 0, "Results page number")
	cmd.Flags().IntVar(&pageSize, "size", 0, "Number of results per page")

	return cmd
}

// fileRow строит строку таблицы листинга для выбранных колонок.
func fileRow(rec domain.FileRecord, columns []string, humanReadable bool) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case filter.KeyName:
			row[i] = rec.Name
		case filter.KeySize:
			row[i] = rec.Size.Display(humanReadable)
		case filter.KeyLastModified:
			row[i] = rec.LastModified
		}
	}
	return row
}

// selectColumns возвращает колонки вывода: весь набор режима либо
// подмножество из --format в порядке, заданном пользователем.
func selectColumns(available, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return available, nil
	}

	columns := make([]string, 0, len(requested))
	for _, r := range requested {
		name := strings.ToLower(strings.TrimSpace(r))
		if !containsColumn(available, name) {
			return nil, fmt.Errorf("unknown format column %q, available columns: %s",
				r, strings.Join(available, ", "))
		}
		columns = append(columns, name)
	}
	return columns, nil
}

func containsColumn(columns []string, name string) bool {
	for _, col := range columns {
		if col == name {
			return true
		}
	}
	return false
}

// upperColumns переводит ключи колонок в заголовки таблицы.
func upperColumns(columns []string) []string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(col)
	}
	return headers
}
