package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// ErrNotConnected — сервер недоступен на транспортном уровне.
var ErrNotConnected = errors.New("automata-ws is not connected to any Automata cluster")

// --- Wire types ---

type listingResponse struct {
	Items []domain.FileRecord `json:"items"`
}

type moveRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListFilesOpts — параметры пагинации листинга workspace.
// Нулевые значения означают параметры по умолчанию сервера.
type ListFilesOpts struct {
	Page int
	Size int
}

// --- Client ---

// Client — HTTP-клиент workspace API платформы Automata.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создаёт клиент для сервера Automata с токеном доступа.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Workspace ---

// ListFiles возвращает файлы workspace заданного workflow run.
func (c *Client) ListFiles(workflow string, opts ListFilesOpts) ([]domain.FileRecord, error) {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Size > 0 {
		params.Set("size", strconv.Itoa(opts.Size))
	}

	var lr listingResponse
	if err := c.getJSON(workspacePath(workflow), params, &lr); err != nil {
		return nil, err
	}
	return lr.Items, nil
}

// DiskUsage возвращает отчёт об использовании диска workspace.
// При summarize сервер присылает одну суммарную запись вместо пофайловых.
func (c *Client) DiskUsage(workflow string, summarize bool) (*domain.DiskUsageReport, error) {
	params := url.Values{}
	if summarize {
		params.Set("summarize", "true")
	}

	var report domain.DiskUsageReport
	if err := c.getJSON(workflowPath(workflow)+"/disk_usage", params, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Status возвращает текущий статус workflow run.
func (c *Client) Status(workflow string) (*domain.StatusReport, error) {
	var report domain.StatusReport
	if err := c.getJSON(workflowPath(workflow)+"/status", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Download открывает поток содержимого файла workspace. Вторым значением
// возвращается имя файла из Content-Disposition (пустая строка, если
// сервер его не прислал). Закрыть поток должен вызывающий.
func (c *Client) Download(workflow, fileName string) (io.ReadCloser, string, error) {
	resp, err := c.do(http.MethodGet, workspacePath(workflow)+"/"+escapePath(fileName), nil, "")
	if err != nil {
		return nil, "", err
	}

	if err := c.checkError(resp); err != nil {
		resp.Body.Close()
		return nil, "", err
	}

	return resp.Body, dispositionFilename(resp.Header.Get("Content-Disposition")), nil
}

// Upload загружает содержимое content в workspace под именем fileName.
func (c *Client) Upload(workflow, fileName string, content io.Reader) error {
	params := url.Values{}
	params.Set("file_name", fileName)

	resp, err := c.do(http.MethodPost, workspacePath(workflow)+"?"+params.Encode(), content, "application/octet-stream")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkError(resp)
}

// Delete удаляет файлы workspace по пути или glob-шаблону.
// Сервер возвращает разбивку на удалённые и неудалённые файлы.
func (c *Client) Delete(workflow, path string) (*domain.DeleteResult, error) {
	var result domain.DeleteResult
	if err := c.deleteJSON(workspacePath(workflow)+"/"+escapePath(path), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Move перемещает source в target внутри workspace.
func (c *Client) Move(workflow, source, target string) error {
	return c.putJSON(workspacePath(workflow), moveRequest{Source: source, Target: target}, nil)
}

// FileURL возвращает прямую ссылку на скачивание файла workspace.
func (c *Client) FileURL(workflow, fileName string) string {
	return c.baseURL + workspacePath(workflow) + "/" + escapePath(fileName)
}

// --- HTTP helpers ---

func (c *Client) getJSON(path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	resp, err := c.do(http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) putJSON(path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(http.MethodPut, path, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) deleteJSON(path string, result any) error {
	resp, err := c.do(http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	slog.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	slog.Debug("api response", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error.Message == "" {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}
	if er.Error.Code != "" {
		return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
	}
	return errors.New(er.Error.Message)
}

// --- Path helpers ---

// workflowPath — базовый путь API заданного workflow run.
func workflowPath(workflow string) string {
	return "/api/v1/workflows/" + url.PathEscape(workflow)
}

// workspacePath — путь workspace заданного workflow run.
func workspacePath(workflow string) string {
	return workflowPath(workflow) + "/workspace"
}

// escapePath экранирует путь файла посегментно, сохраняя разделители.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// dispositionFilename извлекает имя файла из заголовка Content-Disposition.
// Составные пути урезаются до базового имени: заголовок задаёт имя
// файла, каталог назначения выбирает клиент.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := path.Base(strings.ReplaceAll(params["filename"], `\`, "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
