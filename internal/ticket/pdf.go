package ticket

import (
	"bytes"
	"fmt"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/phpdave11/gofpdf"
)

// Build renders a printable e-ticket for an active booking.
func Build(b *domain.Booking, e *domain.Event, u *domain.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 14, "TicketGate e-ticket")
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, e.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Booking: %s", b.ID),
		fmt.Sprintf("Holder: %s (%s)", u.Name, u.Email),
		fmt.Sprintf("When (UTC): %s", e.StartsAt.Format("02.01.2006 15:04")),
		fmt.Sprintf("Where: %s", e.Location),
		fmt.Sprintf("Tickets: %d", b.TicketCount),
		fmt.Sprintf("Total: %.2f", e.Price*float64(b.TicketCount)),
		fmt.Sprintf("Booked at: %s", b.CreatedAt.Format("02.01.2006 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Show this ticket at the entrance. Valid only while the booking is active.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}
