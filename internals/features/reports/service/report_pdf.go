package service

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 15.0
	pdfRowH     = 7.0
	pdfPageW    = 210.0
	pdfContentW = pdfPageW - 2*pdfMargin
)

// WritePDF render laporan ke w (A4 portrait).
func WritePDF(w io.Writer, ownerName string, r *Report, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Halaman %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Laporan Ibadah"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Nama: "+ownerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Periode: %s s/d %s", r.From, r.To), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Dibuat: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ringkasan
	section(pdf, "Ringkasan")
	summary := [][2]string{
		{"Hari dalam periode", fmt.Sprint(r.DaysInRange)},
		{"Hari aktif", fmt.Sprint(r.ActiveDays)},
		{"Hari sempurna", fmt.Sprint(r.PerfectDays)},
		{"Catatan selesai", fmt.Sprintf("%d / %d", r.CompletedRecords, r.TotalRecords)},
		{"Tingkat penyelesaian", fmt.Sprintf("%d%%", r.CompletionRate)},
		{"Streak saat ini", fmt.Sprintf("%d hari", r.CurrentStreak)},
		{"Streak terpanjang", fmt.Sprintf("%d hari", r.LongestStreak)},
		{"Muhasabah ditulis", fmt.Sprint(r.MuhasabahCount)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range summary {
		pdf.CellFormat(70, pdfRowH, tr(kv[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfContentW-70, pdfRowH, kv[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// per hari
	section(pdf, "Per Hari")
	dayCols := []float64{60, 40, 40, pdfContentW - 140}
	tableHeader(pdf, dayCols, []string{"Tanggal", "Selesai", "Total", "Persentase"})
	pdf.SetFont("Helvetica", "", 10)
	if len(r.Days) == 0 {
		pdf.CellFormat(pdfContentW, pdfRowH, tr("Belum ada catatan"), "1", 1, "C", false, 0, "")
	}
	for _, d := range r.Days {
		pdf.CellFormat(dayCols[0], pdfRowH, d.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(dayCols[1], pdfRowH, fmt.Sprint(d.Completed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dayCols[2], pdfRowH, fmt.Sprint(d.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dayCols[3], pdfRowH, fmt.Sprintf("%d%%", d.Percentage), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// per jenis
	section(pdf, "Per Jenis Ibadah")
	typeCols := []float64{pdfContentW - 90, 30, 30, 30}
	tableHeader(pdf, typeCols, []string{"Ibadah", "Selesai", "Total", "Rate"})
	pdf.SetFont("Helvetica", "", 10)
	if len(r.Types) == 0 {
		pdf.CellFormat(pdfContentW, pdfRowH, tr("Belum ada catatan"), "1", 1, "C", false, 0, "")
	}
	for _, t := range r.Types {
		pdf.CellFormat(typeCols[0], pdfRowH, tr(t.IbadahTypeName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(typeCols[1], pdfRowH, fmt.Sprint(t.Completed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(typeCols[2], pdfRowH, fmt.Sprint(t.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(typeCols[3], pdfRowH, fmt.Sprintf("%d%%", t.Rate), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 240, 235)
	for i, l := range labels {
		ln := 0
		if i == len(labels)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], pdfRowH, l, "1", ln, "C", true, 0, "")
	}
}
