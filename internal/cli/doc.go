// Package cli реализует automata-ws — клиент workspace платформы Automata.
//
// # Обзор
//
// CLI — клиентская утилита для работы с файлами workspace одного
// workflow run. Работает через HTTP с токеном доступа; серверная
// часть платформы остаётся непрозрачным собеседником.
//
// # Ключевые компоненты
//
// ## Config
//
// Параметры подключения: флаги --server-url, -t/--token, -w/--workflow
// с фолбэком на переменные окружения AUTOMATA_SERVER_URL,
// AUTOMATA_ACCESS_TOKEN и AUTOMATA_WORKFLOW. Проверяются лениво,
// когда команда действительно идёт в сеть.
//
// ## Client
//
// HTTP-клиент workspace API. Инкапсулирует построение запросов,
// Bearer-авторизацию, разбор ответов и обработку ошибок.
//
//	client := cli.NewClient(serverURL, token)
//	files, err := client.ListFiles("mytest.1", cli.ListFilesOpts{})
//
// ## Output
//
// Форматирование вывода. Поддерживает три режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (--json) — отфильтрованные записи как есть
//   - URL (--url) — по одной ссылке скачивания на файл
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: automata-ws ls --json | jq .
//
// ## Commands
//
// Команды работы с workspace:
//   - ls — листинг файлов с glob-шаблоном и фильтрами
//   - du — использование диска
//   - download, upload — обмен файлами с workspace
//   - rm, mv — удаление и перемещение
//
// Каждая команда создаётся фабричной функцией (NewLsCmd и т.д.),
// принимающей *Config; Client и Output создаются внутри RunE после
// разбора PersistentFlags.
package cli
