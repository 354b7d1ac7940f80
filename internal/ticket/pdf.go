package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type Details struct {
	BookingCode string
	Cinema      string
	MovieTitle  string
	HallName    string
	Date        time.Time
	StartTime   string
	Seats       []string
	TotalPrice  decimal.Decimal
	Status      string
	QRCodePNG   []byte
}

// RenderPDF lays out a single A5 ticket with the QR code on top.
func RenderPDF(d Details) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Ticket "+d.BookingCode, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(d.Cinema), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	if len(d.QRCodePNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		name := "qr_" + d.BookingCode
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(d.QRCodePNG))

		const qrSize = 70.0
		pageWidth, _ := pdf.GetPageSize()
		pdf.ImageOptions(name, (pageWidth-qrSize)/2, pdf.GetY(), qrSize, qrSize, false, opts, 0, "")
		pdf.Ln(qrSize + 4)
	}

	pdf.SetFont("Courier", "B", 14)
	pdf.CellFormat(0, 8, d.BookingCode, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 133, pdf.GetY())
	pdf.Ln(4)

	rows := [][2]string{
		{"Movie", d.MovieTitle},
		{"Hall", d.HallName},
		{"Date", d.Date.Format("Monday, January 2, 2006")},
		{"Time", d.StartTime},
		{"Seats", strings.Join(d.Seats, ", ")},
		{"Total", d.TotalPrice.StringFixed(2)},
		{"Status", d.Status},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(30, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 8, tr(row[1]), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write ticket: %w", err)
	}

	return buf.Bytes(), nil
}
