package reports

const receiptTemplate = `CARWASH PRO - RECEIPT
=====================

Booking ID: {{.ID}}
Service: {{.ServiceType}}
Date: {{.Date}}
Time: {{.Time}}
Location: {{.Location}}
Phone: {{.Phone}}
Amount: ${{.Price}}
Status: {{.Status}}

Thank you for choosing CarWash Pro!

Contact: +1 (555) 123-4567
Email: info@carwashpro.com
`

const invoiceTemplate = `CARWASH PRO - INVOICE
=====================

Invoice #: INV-{{.Booking.ID}}
Date: {{.IssuedAt}}

BILL TO:
{{.Booking.CustomerName}}
{{.Booking.Phone}}
{{.Booking.Email}}

SERVICE DETAILS:
Service: {{.Booking.ServiceType}}
Date: {{.Booking.Date}}
Time: {{.Booking.Time}}
Location: {{.Booking.Location}}

AMOUNT:
Service Charge: ${{.Booking.Price}}
Tax ({{.TaxPercent}}%): ${{.Tax}}
Total: ${{.Total}}

PAYMENT STATUS: PAID

Thank you for choosing CarWash Pro!

Contact: +1 (555) 123-4567
Email: billing@carwashpro.com
Website: www.carwashpro.com
`

const dailyReportTemplate = `CARWASH PRO - DAILY REPORT
==========================

Date: {{.Date}}

SUMMARY:
- Total Bookings: {{.Total}}
- Pending: {{.Stats.PendingBookings}}
- Active: {{.Stats.CurrentBookings}}
- Completed: {{.Stats.CompletedBookings}}
- Cancelled: {{.Stats.CancelledBookings}}
- Total Revenue: ${{.Stats.TotalEarnings}}

BOOKINGS DETAIL:
{{range .Bookings}}{{.ID}} - {{.CustomerName}} - {{.ServiceType}} - ${{.Price}} - {{.Status}}
{{end}}
Generated on: {{.GeneratedAt}}
`
