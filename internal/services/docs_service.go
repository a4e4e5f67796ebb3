package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"busline/internal/domain"
	"busline/internal/utils"
)

// DocsService renders the e-ticket PDF for a booking.
type DocsService struct{}

func (DocsService) GenerateTicket(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are single-byte; passenger names and city names are
	// Ukrainian, so every rendered string goes through the cp1251
	// translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	routeLine := "-"
	dateLine := "-"
	if b.Route != nil {
		routeLine = fmt.Sprintf("%s -> %s", b.Route.Origin, b.Route.Destination)
		dateLine = fmt.Sprintf("%s %s", b.Route.TravelDate, b.Route.DepartureTime)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference   : %s", b.Reference),
		fmt.Sprintf("Passenger   : %s", safe(strings.TrimSpace(b.Passenger.FirstName+" "+b.Passenger.LastName))),
		fmt.Sprintf("Email       : %s", safe(b.Passenger.Email)),
		fmt.Sprintf("Phone       : %s", safe(b.Passenger.Phone)),
		fmt.Sprintf("Route       : %s", routeLine),
		fmt.Sprintf("Date/Time   : %s", dateLine),
		fmt.Sprintf("Seats       : %s", safe(utils.FormatSeatList(b.Seats))),
		fmt.Sprintf("Payment     : %s", safe(b.PaymentMethod)),
		fmt.Sprintf("Status      : %s", string(b.Status)),
		fmt.Sprintf("Total       : %s", utils.FormatUAH(b.TotalPrice)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this ticket and a valid ID when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render ticket", Err: err}
	}

	filename := fmt.Sprintf("TICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
