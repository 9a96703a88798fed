package ticket

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

//go:generate mockgen -source=ticket.go -destination=mocks/ticket_mock.go -package=mocks

// Ticket carries everything the rendered pass shows. The caller resolves
// event details (venue, date, pricing fallbacks) before handing it over, so
// the renderer stays a pure layout concern.
type Ticket struct {
	Name          string
	TicketID      string
	Amount        int
	Passes        int
	PassTypeLabel string
	EventDate     string
	EventTime     string
	Venue         string
	Complimentary string
}

type Renderer interface {
	Render(t Ticket) ([]byte, error)
}

type pdfRenderer struct{}

func NewRenderer() Renderer {
	return &pdfRenderer{}
}

// Render produces the A4 entry pass: event header, holder details with the
// amount highlighted, and a QR code of the ticket id for gate scanning.
func (*pdfRenderer) Render(t Ticket) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(255, 47, 146)
	pdf.CellFormat(0, 12, "SPECTRA HOLIPARTY 2026", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Entry Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetDrawColor(255, 47, 146)
	pdf.SetLineWidth(1)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Name: "+t.Name, "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(0, 8, "Ticket ID: "+t.TicketID, "", 1, "", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFillColor(255, 212, 0)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Amount Paid: Rs. %d", t.Amount), "", 1, "", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Passes: %d | Type: %s", t.Passes, t.PassTypeLabel), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s | Time: %s", t.EventDate, t.EventTime), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, "Venue: "+t.Venue, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, "Complimentary: "+t.Complimentary, "", 1, "", false, 0, "")
	pdf.Ln(5)

	// The QR is best-effort: a ticket without a scannable code is still a
	// valid ticket, the id is printed above it.
	if png, err := qrcode.Encode(t.TicketID, qrcode.Medium, 256); err == nil {
		options := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("ticket-qr", options, bytes.NewReader(png))

		y := pdf.GetY()
		pdf.ImageOptions("ticket-qr", 75, y, 60, 0, false, options, 0, "")
		pdf.SetY(y + 65)
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, "Show this ticket at the gate. Organized by Spectra Group - 2nd Year of HoliParty!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering ticket pdf")
	}

	return buf.Bytes(), nil
}

// PassTypeLabel maps the stored pass type to its customer-facing label.
func PassTypeLabel(passType string) string {
	switch passType {
	case "entry_starter":
		return "Entry + Starter"
	case "entry_starter_lunch":
		return "Entry + Starter + Lunch"
	default:
		return "Entry Only"
	}
}
