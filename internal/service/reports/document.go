package reports

// Типы содержимого выгружаемых файлов
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Document сформированный файл для выгрузки
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// TextDocument оборачивает текст в документ
func TextDocument(filename, text string) *Document {
	return &Document{
		Filename:    filename,
		ContentType: ContentTypeText,
		Content:     []byte(text),
	}
}
