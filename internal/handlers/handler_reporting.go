package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/autohaus/dms_backend/internal/apperrors"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// reportingHandler handles HTTP requests related to period reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to period reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.getSalesReport)
		reports.GET("/expenses", h.getExpenseReport)
	}
}

// parsePeriod reads the from/to/format query parameters. The period
// defaults to the current month up to today.
func parsePeriod(c *gin.Context) (from, to time.Time, format string, err error) {
	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	fromStr := c.DefaultQuery("from", firstDayOfMonth.Format("2006-01-02"))
	from, err = time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid from date, use YYYY-MM-DD")
	}

	toStr := c.DefaultQuery("to", now.Format("2006-01-02"))
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid to date, use YYYY-MM-DD")
	}
	// Include the whole final day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	format = c.DefaultQuery("format", formatJSON)
	switch format {
	case formatJSON, formatCSV, formatXLSX:
	default:
		return time.Time{}, time.Time{}, "", fmt.Errorf("unsupported format %q, use json, csv or xlsx", format)
	}

	return from, to, format, nil
}

func writeCSV(c *gin.Context, filename string, rows [][]string) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func writeXLSX(c *gin.Context, filename, sheetName string, rows [][]interface{}) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
			return
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
			return
		}
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to write xlsx report", slog.String("error", err.Error()))
	}
}

// getSalesReport godoc
// @Summary Generate sales report
// @Description Summarises non-cancelled transactions per type for a period. Supports JSON, CSV and XLSX output.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Output format" Enums(json, csv, xlsx) default(json)
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, format, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.GetSalesReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales report"})
		return
	}

	logger.Info("Sales report generated", slog.Int("row_count", len(report.Rows)), slog.String("format", format))

	switch format {
	case formatCSV:
		rows := [][]string{{"Type", "Count", "TotalAmount", "TotalPaid", "TotalOutstanding"}}
		for _, r := range report.Rows {
			rows = append(rows, []string{
				string(r.Type),
				fmt.Sprint(r.TransactionCount),
				r.TotalAmount.String(),
				r.TotalPaid.String(),
				r.TotalOutstanding.String(),
			})
		}
		rows = append(rows, []string{"TOTAL", "", report.GrandTotal.String(), report.GrandTotalPaid.String(), report.GrandOutstanding.String()})
		writeCSV(c, "sales_report.csv", rows)
	case formatXLSX:
		rows := [][]interface{}{{"Type", "Count", "TotalAmount", "TotalPaid", "TotalOutstanding"}}
		for _, r := range report.Rows {
			rows = append(rows, []interface{}{
				string(r.Type),
				r.TransactionCount,
				r.TotalAmount.String(),
				r.TotalPaid.String(),
				r.TotalOutstanding.String(),
			})
		}
		rows = append(rows, []interface{}{"TOTAL", "", report.GrandTotal.String(), report.GrandTotalPaid.String(), report.GrandOutstanding.String()})
		writeXLSX(c, "sales_report.xlsx", "Sales", rows)
	default:
		c.JSON(http.StatusOK, report)
	}
}

// getExpenseReport godoc
// @Summary Generate expense report
// @Description Summarises expenses per category for a period. Supports JSON, CSV and XLSX output.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Output format" Enums(json, csv, xlsx) default(json)
// @Success 200 {object} dto.ExpenseReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/expenses [get]
func (h *reportingHandler) getExpenseReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, format, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.GetExpenseReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate expense report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate expense report"})
		return
	}

	logger.Info("Expense report generated", slog.Int("row_count", len(report.Rows)), slog.String("format", format))

	switch format {
	case formatCSV:
		rows := [][]string{{"Category", "Count", "TotalAmount"}}
		for _, r := range report.Rows {
			rows = append(rows, []string{r.Category, fmt.Sprint(r.ExpenseCount), r.TotalAmount.String()})
		}
		rows = append(rows, []string{"TOTAL", "", report.GrandTotal.String()})
		writeCSV(c, "expense_report.csv", rows)
	case formatXLSX:
		rows := [][]interface{}{{"Category", "Count", "TotalAmount"}}
		for _, r := range report.Rows {
			rows = append(rows, []interface{}{r.Category, r.ExpenseCount, r.TotalAmount.String()})
		}
		rows = append(rows, []interface{}{"TOTAL", "", report.GrandTotal.String()})
		writeXLSX(c, "expense_report.xlsx", "Expenses", rows)
	default:
		c.JSON(http.StatusOK, report)
	}
}
