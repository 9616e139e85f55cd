package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile — имя файла манифеста в корне проекта.
const DefaultFile = "automata.yaml"

// Manifest — разобранный automata.yaml.
type Manifest struct {
	// Inputs — входные файлы и параметры run.
	Inputs Inputs `yaml:"inputs"`

	// Workflow — описание самого workflow.
	Workflow Workflow `yaml:"workflow"`

	// Outputs — ожидаемые результаты run.
	Outputs Outputs `yaml:"outputs"`
}

// Inputs — секция inputs манифеста.
type Inputs struct {
	// Files — отдельные файлы для загрузки в workspace.
	Files []string `yaml:"files"`

	// Directories — каталоги, загружаемые рекурсивно.
	Directories []string `yaml:"directories"`

	// Parameters — параметры запуска. Клиент workspace их не трогает.
	Parameters map[string]any `yaml:"parameters"`
}

// Workflow — секция workflow манифеста.
type Workflow struct {
	// File — путь к описанию workflow внутри проекта.
	File string `yaml:"file"`
}

// Outputs — секция outputs манифеста.
type Outputs struct {
	// Files — пути результатов, которые run должен произвести.
	Files []string `yaml:"files"`
}

// Load читает и разбирает манифест из файла.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// InputPaths возвращает все пути секции inputs: сначала файлы,
// затем каталоги, в порядке манифеста.
func (m *Manifest) InputPaths() []string {
	paths := make([]string, 0, len(m.Inputs.Files)+len(m.Inputs.Directories))
	paths = append(paths, m.Inputs.Files...)
	paths = append(paths, m.Inputs.Directories...)
	return paths
}
