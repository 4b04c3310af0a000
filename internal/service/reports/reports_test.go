package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

func sampleBooking() domain.Booking {
	return domain.Booking{
		ID:           "CW001",
		CustomerName: "John Smith",
		Phone:        "+1 (555) 123-4567",
		Email:        "john@email.com",
		ServiceType:  "Premium Wash",
		Date:         "2024-01-15",
		Time:         "10:00",
		Location:     "123 Main St",
		Price:        25,
		Status:       domain.StatusCompleted,
	}
}

func TestRenderReceipt(t *testing.T) {
	text := RenderReceipt(sampleBooking())

	assert.True(t, strings.HasPrefix(text, "CARWASH PRO - RECEIPT\n"))
	assert.Contains(t, text, "Booking ID: CW001\n")
	assert.Contains(t, text, "Service: Premium Wash\n")
	assert.Contains(t, text, "Time: 10:00\n")
	assert.Contains(t, text, "Amount: $25\n")
	assert.Contains(t, text, "Status: COMPLETED\n")

	// рендеринг детерминирован
	assert.Equal(t, text, RenderReceipt(sampleBooking()))
}

func TestRenderReceipt_MissingFieldsAreEmpty(t *testing.T) {
	text := RenderReceipt(domain.Booking{ID: "CW009"})

	assert.Contains(t, text, "Location: \n")
	assert.Contains(t, text, "Phone: \n")
	assert.NotContains(t, text, "<no value>")
}

func TestRenderInvoice(t *testing.T) {
	issued := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	text := RenderInvoice(sampleBooking(), issued)

	assert.Contains(t, text, "Invoice #: INV-CW001\n")
	assert.Contains(t, text, "Date: 2024-01-16\n")
	assert.Contains(t, text, "BILL TO:\nJohn Smith\n+1 (555) 123-4567\njohn@email.com\n")
	assert.Contains(t, text, "Service Charge: $25\n")
	assert.Contains(t, text, "Tax (10%): $2.50\n")
	assert.Contains(t, text, "Total: $27.50\n")
}

func TestInvoiceAmounts(t *testing.T) {
	tests := []struct {
		price     int
		wantTax   string
		wantTotal string
	}{
		{price: 15, wantTax: "1.50", wantTotal: "16.50"},
		{price: 25, wantTax: "2.50", wantTotal: "27.50"},
		{price: 45, wantTax: "4.50", wantTotal: "49.50"},
		{price: 0, wantTax: "0.00", wantTotal: "0.00"},
		{price: 3, wantTax: "0.30", wantTotal: "3.30"},
	}

	for _, tt := range tests {
		tax, total := InvoiceAmounts(tt.price)
		assert.Equal(t, tt.wantTax, formatCents(tax), "price %d", tt.price)
		assert.Equal(t, tt.wantTotal, formatCents(total), "price %d", tt.price)
	}
}

func TestRenderDailyReport(t *testing.T) {
	bookings := []domain.Booking{
		sampleBooking(),
		{ID: "CW002", CustomerName: "Sarah Johnson", ServiceType: "Full Detail", Price: 45, Status: domain.StatusActive},
	}
	stats := domain.ComputeStats(bookings)
	generated := time.Date(2024, 1, 16, 18, 30, 5, 0, time.UTC)

	text := RenderDailyReport(bookings, stats, generated)

	assert.Contains(t, text, "Date: 2024-01-16\n")
	assert.Contains(t, text, "- Total Bookings: 2\n")
	assert.Contains(t, text, "- Active: 1\n")
	assert.Contains(t, text, "- Completed: 1\n")
	assert.Contains(t, text, "- Total Revenue: $25\n")
	assert.Contains(t, text, "CW001 - John Smith - Premium Wash - $25 - COMPLETED\nCW002 - Sarah Johnson - Full Detail - $45 - ACTIVE\n")
	assert.Contains(t, text, "Generated on: 2024-01-16 18:30:05\n")
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "CarWash-Receipt-CW001.txt", ReceiptFilename("CW001"))
	assert.Equal(t, "Invoice-CW001.txt", InvoiceFilename("CW001"))

	day := time.Date(2024, 1, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Daily-Report-2024-01-16.txt", DailyReportFilename(day, "txt"))
	assert.Equal(t, "Daily-Report-2024-01-16.xlsx", DailyReportFilename(day, "xlsx"))
}

func TestRenderDailyReportXLSX(t *testing.T) {
	bookings := []domain.Booking{sampleBooking()}
	data, err := RenderDailyReportXLSX(bookings, domain.ComputeStats(bookings), time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(bookingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, bookingColumns, rows[0])
	assert.Equal(t, "CW001", rows[1][0])
	assert.Equal(t, "Premium Wash", rows[1][4])
	assert.Equal(t, "25", rows[1][8])
	assert.Equal(t, "COMPLETED", rows[1][9])

	revenue, err := f.GetCellValue(summarySheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "25", revenue)
}
