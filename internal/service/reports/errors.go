package reports

import "errors"

var (
	// ErrSpreadsheet возвращается при ошибке формирования xlsx
	ErrSpreadsheet = errors.New("reports: spreadsheet error")
)
