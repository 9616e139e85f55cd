// Automata workspace CLI — инструмент командной строки для работы
// с файлами workspace workflow runs через HTTP API.
//
// Использование:
//
//	automata-ws [--server-url URL] [-t TOKEN] [-w WORKFLOW] <command> [flags]
//
// Команды:
//
//	ls        Листинг файлов workspace
//	du        Использование диска workspace
//	download  Скачивание файлов
//	upload    Загрузка файлов и каталогов
//	rm        Удаление файлов
//	mv        Перемещение файлов
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/automata-workspace/internal/cli"
	"github.com/shaiso/automata-workspace/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	telemetry.SetupLogger()

	cfg := cli.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "automata-ws",
		Short:         "Automata workspace CLI — workflow workspace files tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		cli.NewLsCmd(cfg),
		cli.NewDuCmd(cfg),
		cli.NewDownloadCmd(cfg),
		cli.NewUploadCmd(cfg),
		cli.NewRmCmd(cfg),
		cli.NewMvCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
