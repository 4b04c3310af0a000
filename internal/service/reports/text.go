package reports

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

const generatedAtFormat = "2006-01-02 15:04:05"

var (
	receiptTmpl     = template.Must(template.New("receipt").Parse(receiptTemplate))
	invoiceTmpl     = template.Must(template.New("invoice").Parse(invoiceTemplate))
	dailyReportTmpl = template.Must(template.New("daily").Parse(dailyReportTemplate))
)

type invoiceView struct {
	Booking    domain.Booking
	IssuedAt   string
	TaxPercent int
	Tax        string
	Total      string
}

type dailyReportView struct {
	Date        string
	Total       int
	Stats       domain.AggregateStats
	Bookings    []domain.Booking
	GeneratedAt string
}

// RenderReceipt текст квитанции клиента
// Пустые поля выводятся пустыми строками
func RenderReceipt(b domain.Booking) string {
	return execute(receiptTmpl, b)
}

// RenderInvoice текст счета с налогом 10%
// Налог и итог считаются в целых центах
func RenderInvoice(b domain.Booking, issuedAt time.Time) string {
	tax, total := InvoiceAmounts(b.Price)

	return execute(invoiceTmpl, invoiceView{
		Booking:    b,
		IssuedAt:   issuedAt.Format(domain.DateFormat),
		TaxPercent: domain.TaxRatePercent,
		Tax:        formatCents(tax),
		Total:      formatCents(total),
	})
}

// RenderDailyReport сводный отчет по набору бронирований
func RenderDailyReport(bookings []domain.Booking, stats domain.AggregateStats, generatedAt time.Time) string {
	return execute(dailyReportTmpl, dailyReportView{
		Date:        generatedAt.Format(domain.DateFormat),
		Total:       len(bookings),
		Stats:       stats,
		Bookings:    bookings,
		GeneratedAt: generatedAt.Format(generatedAtFormat),
	})
}

// InvoiceAmounts возвращает налог и итог в центах
func InvoiceAmounts(price int) (taxCents, totalCents int) {
	priceCents := price * 100
	taxCents = priceCents * domain.TaxRatePercent / 100
	return taxCents, priceCents + taxCents
}

// ReceiptFilename имя файла квитанции
func ReceiptFilename(bookingID string) string {
	return fmt.Sprintf("CarWash-Receipt-%s.txt", bookingID)
}

// InvoiceFilename имя файла счета
func InvoiceFilename(bookingID string) string {
	return fmt.Sprintf("Invoice-%s.txt", bookingID)
}

// DailyReportFilename имя файла отчета, ext без точки ("txt", "xlsx")
func DailyReportFilename(date time.Time, ext string) string {
	return fmt.Sprintf("Daily-Report-%s.%s", date.Format(domain.DateFormat), ext)
}

func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// execute не возвращает ошибку: шаблоны проверены при инициализации,
// а данные состоят только из строк и чисел
func execute(tmpl *template.Template, data interface{}) string {
	var sb strings.Builder
	_ = tmpl.Execute(&sb, data)
	return sb.String()
}
