package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

const (
	summarySheet  = "Summary"
	bookingsSheet = "Bookings"
)

var bookingColumns = []string{"ID", "Customer", "Phone", "Email", "Service", "Date", "Time", "Location", "Price", "Status"}

// RenderDailyReportXLSX тот же отчет в формате xlsx: лист сводки и лист бронирований
func RenderDailyReportXLSX(bookings []domain.Booking, stats domain.AggregateStats, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - rename sheet: %v", ErrSpreadsheet, err)
	}
	if _, err := f.NewSheet(bookingsSheet); err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - create sheet: %v", ErrSpreadsheet, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - style: %v", ErrSpreadsheet, err)
	}

	summary := [][]interface{}{
		{"CARWASH PRO - DAILY REPORT"},
		{"Date", generatedAt.Format(domain.DateFormat)},
		{"Total Bookings", len(bookings)},
		{"Pending", stats.PendingBookings},
		{"Active", stats.CurrentBookings},
		{"Completed", stats.CompletedBookings},
		{"Cancelled", stats.CancelledBookings},
		{"Total Revenue", stats.TotalEarnings},
		{"Generated on", generatedAt.Format(generatedAtFormat)},
	}
	if err := writeRows(f, summarySheet, 1, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", bold); err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - style: %v", ErrSpreadsheet, err)
	}

	header := make([]interface{}, len(bookingColumns))
	for i, c := range bookingColumns {
		header[i] = c
	}
	rows := [][]interface{}{header}
	for _, b := range bookings {
		rows = append(rows, []interface{}{
			b.ID, b.CustomerName, b.Phone, b.Email, b.ServiceType,
			b.Date, b.Time.String(), b.Location, b.Price, string(b.Status),
		})
	}
	if err := writeRows(f, bookingsSheet, 1, rows); err != nil {
		return nil, err
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(bookingColumns), 1)
	if err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - header: %v", ErrSpreadsheet, err)
	}
	if err := f.SetCellStyle(bookingsSheet, "A1", lastHeader, bold); err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - style: %v", ErrSpreadsheet, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: RenderDailyReportXLSX - write: %v", ErrSpreadsheet, err)
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, startRow+r)
			if err != nil {
				return fmt.Errorf("%w: writeRows - cell: %v", ErrSpreadsheet, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("%w: writeRows - %s!%s: %v", ErrSpreadsheet, sheet, cell, err)
			}
		}
	}
	return nil
}
