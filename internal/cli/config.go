package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// Переменные окружения с фолбэком для флагов подключения.
const (
	EnvServerURL = "AUTOMATA_SERVER_URL"
	EnvToken     = "AUTOMATA_ACCESS_TOKEN"
	EnvWorkflow  = "AUTOMATA_WORKFLOW"
)

// Ошибки разрешения конфигурации. Тексты показываются пользователю как есть.
var (
	ErrNoServerURL = errors.New("automata-ws is not connected to any Automata cluster. Please set the AUTOMATA_SERVER_URL environment variable.")
	ErrNoToken     = errors.New("Please provide your access token by using the -t/--token flag or by setting the AUTOMATA_ACCESS_TOKEN environment variable.")
	ErrNoWorkflow  = errors.New("Workflow name must be provided either with the -w/--workflow flag or with the AUTOMATA_WORKFLOW environment variable.")

	ErrInvalidWorkflow = errors.New("invalid workflow name or run reference")
)

// Config — параметры подключения CLI и потоки вывода.
// Флаги имеют приоритет над переменными окружения; разрешение
// откладывается до момента, когда команда идёт в сеть, чтобы
// локальные операции и --help работали без настроенного окружения.
// Недостающие настройки сообщаются по одной, в порядке
// сервер → токен → workflow: команды разрешают Client раньше
// WorkflowRef.
type Config struct {
	ServerURL string
	Token     string
	Workflow  string

	Stdout io.Writer
	Stderr io.Writer
}

// NewConfig возвращает конфигурацию со стандартными потоками процесса.
func NewConfig() *Config {
	return &Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// RegisterFlags привязывает флаги подключения к набору flags.
// Значения по умолчанию пустые: окружение читается лениво и не
// попадает в вывод --help.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ServerURL, "server-url", "", "Automata server URL (env "+EnvServerURL+")")
	flags.StringVarP(&c.Token, "token", "t", "", "Access token of the current user (env "+EnvToken+")")
	flags.StringVarP(&c.Workflow, "workflow", "w", "", "Name or UUID of the workflow run (env "+EnvWorkflow+")")
}

// Client строит API-клиент из разрешённой конфигурации.
func (c *Config) Client() (*Client, error) {
	serverURL := c.ServerURL
	if serverURL == "" {
		serverURL = os.Getenv(EnvServerURL)
	}
	if serverURL == "" {
		return nil, ErrNoServerURL
	}

	token := c.Token
	if token == "" {
		token = os.Getenv(EnvToken)
	}
	if token == "" {
		return nil, ErrNoToken
	}

	return NewClient(serverURL, token), nil
}

// WorkflowRef возвращает валидированную ссылку на workflow run:
// имя, имя.номер или UUID.
func (c *Config) WorkflowRef() (string, error) {
	ref := c.Workflow
	if ref == "" {
		ref = os.Getenv(EnvWorkflow)
	}
	if ref == "" {
		return "", ErrNoWorkflow
	}
	if !domain.ValidWorkflowRef(ref) {
		return "", fmt.Errorf("%w: %s", ErrInvalidWorkflow, ref)
	}
	return ref, nil
}

// Output строит форматтер вывода с потоками конфигурации.
func (c *Config) Output(jsonMode bool) *Output {
	return NewOutput(jsonMode, c.Stdout, c.Stderr)
}
