package infra

// pdf.go — financial summary report generation using go-pdf/fpdf.
// Produces an A4 portrait report with:
//   - Ranch name header and the covered date range
//   - Income by category table
//   - Expenses by category table
//   - Bold net profit line
//
// The output file is saved to storagePath/financial_summary_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ranchops/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateFinancialSummaryPDF renders a financial summary into a PDF report.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateFinancialSummaryPDF(summary dto.FinancialSummaryResponse, rangeLabel, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("financial_summary_%s.pdf", time.Now().UTC().Format("20060102T150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Financial Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, rangeLabel, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colName := contentW * 0.65
	colAmount := contentW * 0.35

	writeSection := func(title string, rows []dto.CategoryAmount, emptyNote string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, title, "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		if len(rows) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(contentW, 6, emptyNote, "", 1, "L", false, 0, "")
		}
		for _, row := range rows {
			pdf.CellFormat(colName, 6, row.Category, "", 0, "L", false, 0, "")
			pdf.CellFormat(colAmount, 6, "$"+row.Amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	writeSection("Income by Category", summary.IncomeByCategory, "No income recorded in this period.")
	writeSection("Expenses by Category", summary.ExpensesByCategory, "No expenses recorded in this period.")

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colName, 6, "Total Income:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, 6, "$"+summary.TotalIncome.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(colName, 6, "Total Expenses:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, 6, "$"+summary.TotalExpenses.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(colName, 8, "Net Profit:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, 8, "$"+summary.NetProfit.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generated "+time.Now().UTC().Format("2006-01-02 15:04")+" UTC", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
