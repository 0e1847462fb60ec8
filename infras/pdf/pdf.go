package pdf

//go:generate go run go.uber.org/mock/mockgen -source=./pdf.go -destination=./mocks/pdf_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"syncguard/infras/otel"
	"syncguard/shared/constant"

	"github.com/jung-kurt/gofpdf"
)

// Line is one printable charge or payment row.
type Line struct {
	Description string
	Category    string
	Date        string
	Amount      float64
}

// Property is the letterhead block printed on every document.
type Property struct {
	Name      string
	Address   []string
	Phone     string
	Email     string
	GSTNumber string
}

type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	Property      Property
	GuestName     string
	GuestPhone    string
	RoomNumber    string
	CheckIn       string
	CheckOut      string
	Nights        int
	Items         []Line
	Subtotal      float64
	GSTRate       float64
	GSTAmount     float64
	Total         float64
	Payments      []Line
	BalanceDue    float64
}

type ReceiptData struct {
	ReceiptNumber string
	Date          string
	Property      Property
	GuestName     string
	RoomNumber    string
	Method        string
	Reference     string
	Amount        float64
}

type Generator interface {
	Invoice(ctx context.Context, data InvoiceData) ([]byte, error)
	Receipt(ctx context.Context, data ReceiptData) ([]byte, error)
}

type generatorImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Generator {
	return &generatorImpl{otel: otel}
}

const (
	fontFamily = "Helvetica"

	pageMargin  = 15.0
	lineHeight  = 6.0
	tableColHdr = 10.0
)

func (g *generatorImpl) Invoice(ctx context.Context, data InvoiceData) (out []byte, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelPDFScopeName, constant.OtelPDFScopeName+".Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	writeHeader(doc, data.Property, "TAX INVOICE")

	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(95, lineHeight, "Invoice No: "+data.InvoiceNumber, "", 0, "L", false, 0, "")
	doc.CellFormat(85, lineHeight, "Date: "+data.InvoiceDate, "", 1, "R", false, 0, "")
	doc.CellFormat(95, lineHeight, "Guest: "+data.GuestName, "", 0, "L", false, 0, "")
	doc.CellFormat(85, lineHeight, "Room: "+data.RoomNumber, "", 1, "R", false, 0, "")
	doc.CellFormat(95, lineHeight, fmt.Sprintf("Stay: %s to %s (%d nights)", data.CheckIn, data.CheckOut, data.Nights), "", 0, "L", false, 0, "")

	if data.GuestPhone != "" {
		doc.CellFormat(85, lineHeight, "Phone: "+data.GuestPhone, "", 1, "R", false, 0, "")
	} else {
		doc.Ln(lineHeight)
	}

	doc.Ln(4)

	writeItemTable(doc, data.Items)

	doc.Ln(2)
	writeTotal(doc, "Subtotal", data.Subtotal, false)
	writeTotal(doc, fmt.Sprintf("GST (%.1f%%)", data.GSTRate), data.GSTAmount, false)
	writeTotal(doc, "Total", data.Total, true)

	if len(data.Payments) > 0 {
		doc.Ln(4)
		doc.SetFont(fontFamily, "B", 10)
		doc.CellFormat(0, lineHeight, "Payments", "", 1, "L", false, 0, "")
		doc.SetFont(fontFamily, "", 9)

		for _, p := range data.Payments {
			doc.CellFormat(140, lineHeight, fmt.Sprintf("%s  %s", p.Date, p.Description), "", 0, "L", false, 0, "")
			doc.CellFormat(40, lineHeight, formatAmount(p.Amount), "", 1, "R", false, 0, "")
		}

		writeTotal(doc, "Balance Due", data.BalanceDue, true)
	}

	doc.Ln(8)
	doc.SetFont(fontFamily, "I", 8)
	doc.CellFormat(0, lineHeight, "This is a computer generated invoice.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err = doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *generatorImpl) Receipt(ctx context.Context, data ReceiptData) (out []byte, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelPDFScopeName, constant.OtelPDFScopeName+".Receipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc := gofpdf.New("P", "mm", "A5", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	writeHeader(doc, data.Property, "PAYMENT RECEIPT")

	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(0, lineHeight, "Receipt No: "+data.ReceiptNumber, "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, "Date: "+data.Date, "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, "Received from: "+data.GuestName, "", 1, "L", false, 0, "")

	if data.RoomNumber != "" {
		doc.CellFormat(0, lineHeight, "Room: "+data.RoomNumber, "", 1, "L", false, 0, "")
	}

	doc.CellFormat(0, lineHeight, "Mode: "+data.Method, "", 1, "L", false, 0, "")

	if data.Reference != "" {
		doc.CellFormat(0, lineHeight, "Reference: "+data.Reference, "", 1, "L", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont(fontFamily, "B", 12)
	doc.CellFormat(0, 8, "Amount: "+formatAmount(data.Amount), "TB", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err = doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(doc *gofpdf.Fpdf, property Property, title string) {
	doc.SetFont(fontFamily, "B", 16)
	doc.CellFormat(0, 8, property.Name, "", 1, "C", false, 0, "")
	doc.SetFont(fontFamily, "", 9)

	for _, line := range property.Address {
		if line != "" {
			doc.CellFormat(0, 4.5, line, "", 1, "C", false, 0, "")
		}
	}

	contact := property.Phone
	if property.Email != "" {
		if contact != "" {
			contact += "  |  "
		}

		contact += property.Email
	}

	if contact != "" {
		doc.CellFormat(0, 4.5, contact, "", 1, "C", false, 0, "")
	}

	if property.GSTNumber != "" {
		doc.CellFormat(0, 4.5, "GSTIN: "+property.GSTNumber, "", 1, "C", false, 0, "")
	}

	doc.Ln(3)
	doc.SetFont(fontFamily, "B", 12)
	doc.CellFormat(0, 7, title, "T", 1, "C", false, 0, "")
	doc.Ln(2)
}

func writeItemTable(doc *gofpdf.Fpdf, items []Line) {
	doc.SetFont(fontFamily, "B", 9)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(30, tableColHdr-2, "Date", "1", 0, "L", true, 0, "")
	doc.CellFormat(85, tableColHdr-2, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(25, tableColHdr-2, "Category", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, tableColHdr-2, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont(fontFamily, "", 9)

	for _, item := range items {
		doc.CellFormat(30, lineHeight, item.Date, "1", 0, "L", false, 0, "")
		doc.CellFormat(85, lineHeight, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(25, lineHeight, item.Category, "1", 0, "L", false, 0, "")
		doc.CellFormat(40, lineHeight, formatAmount(item.Amount), "1", 1, "R", false, 0, "")
	}
}

func writeTotal(doc *gofpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}

	doc.SetFont(fontFamily, style, 10)
	doc.CellFormat(140, lineHeight, label, "", 0, "R", false, 0, "")
	doc.CellFormat(40, lineHeight, formatAmount(amount), "", 1, "R", false, 0, "")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("Rs. %.2f", amount)
}
