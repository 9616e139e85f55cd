// Package manifest читает automata.yaml — файл проекта, общий для
// инструментов платформы. Клиент workspace использует из него только
// секцию inputs: списки файлов и каталогов для загрузки по умолчанию.
// Остальные секции разбираются, но не интерпретируются.
package manifest
