package console

import (
	"fmt"
	"io"

	"diningres/internal/models"
)

const (
	tableFormat  = "%-5s %-15s %-10s %-20s %-8s %-10s\n"
	reportFormat = "%-5s %-15s %-10s %-20s %-8s %-10s %-10s\n"
	reportRule   = "=========================================================="
)

func writeReservationTable(w io.Writer, reservations []models.Reservation) {
	fmt.Fprintf(w, "\n"+tableFormat, "#", "Date", "Time", "Name", "Adults", "Children")
	for _, r := range reservations {
		fmt.Fprintf(w, tableFormat,
			r.Number(), r.Date(), r.Time(), r.GuestName,
			fmt.Sprint(r.Adults), fmt.Sprint(r.Children))
	}
	fmt.Fprintln(w)
}

func writeReport(w io.Writer, report models.Report) {
	fmt.Fprintln(w, "\n=================== RESERVATION REPORT ===================")
	fmt.Fprintf(w, reportFormat, "#", "Date", "Time", "Name", "Adults", "Children", "Subtotal")

	for _, row := range report.Rows {
		fmt.Fprintf(w, reportFormat,
			row.Number(), row.Date(), row.Time(), row.GuestName,
			fmt.Sprint(row.Adults), fmt.Sprint(row.Children), fmt.Sprint(row.Subtotal))
	}

	fmt.Fprintln(w, "----------------------------------------------------------")
	fmt.Fprintf(w, "Total Adults: %d\n", report.TotalAdults)
	fmt.Fprintf(w, "Total Children: %d\n", report.TotalChildren)
	fmt.Fprintf(w, "Grand Total: %s %d\n", report.Currency, report.GrandTotal)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w)
}
