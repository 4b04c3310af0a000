package config

import "errors"

var (
	// ErrRead возвращается, если файл конфигурации не удалось прочитать
	ErrRead = errors.New("config: failed to read file")

	// ErrParse возвращается при ошибке разбора TOML или переменной окружения
	ErrParse = errors.New("config: failed to parse")

	// ErrValidation возвращается при некорректных значениях
	ErrValidation = errors.New("config: validation failed")
)
