// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportJobResult is written to the task result once the workbook is stored
type ExportJobResult struct {
	FileKey        string `json:"file_key"`
	SalesLines     int    `json:"sales_lines"`
	RestockLines   int    `json:"restock_lines"`
	ProcessingTime string `json:"processing_time"`
}

// ExportProcessor builds report workbooks and stores them
type ExportProcessor struct {
	reports ports.ReportService
	storage ports.FileStorage
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(reports ports.ReportService, storage ports.FileStorage, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		reports: reports,
		storage: storage,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ProcessReportExport writes the sales and restock reports to a workbook
// stored under exports/{job_id}.xlsx
func (p *ExportProcessor) ProcessReportExport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ports.ReportExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return skipRetry(fmt.Errorf("failed to unmarshal payload: %w", err))
	}
	if payload.JobID == "" {
		return skipRetry(fmt.Errorf("job_id is required"))
	}
	if payload.End.IsZero() {
		payload.End = time.Now()
	}
	if payload.Start.IsZero() {
		payload.Start = payload.End.AddDate(0, 0, -1)
	}

	ctx = logger.WithJob(ctx, payload.JobID, t.Type())
	p.logger.InfoContext(ctx, "exporting reports",
		slog.Time("start", payload.Start),
		slog.Time("end", payload.End))

	sales, err := p.reports.SalesReport(ctx, payload.Start, payload.End)
	if err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			return skipRetry(err)
		}
		return fmt.Errorf("failed to build sales report: %w", err)
	}

	restock, err := p.reports.RestockReport(ctx, payload.MinimumQty)
	if err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			return skipRetry(err)
		}
		return fmt.Errorf("failed to build restock report: %w", err)
	}

	data, err := buildWorkbook(sales, restock)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	key := ExportKey(payload.JobID)
	if _, err := p.storage.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
		return fmt.Errorf("failed to upload export: %w", err)
	}

	result := ExportJobResult{
		FileKey:        key,
		SalesLines:     len(sales.Lines),
		RestockLines:   len(restock.Items),
		ProcessingTime: time.Since(start).String(),
	}
	writeResult(ctx, t, result, p.logger)

	p.logger.InfoContext(ctx, "export completed",
		slog.String("file_key", key),
		slog.Int("sales_lines", result.SalesLines),
		slog.Int("restock_lines", result.RestockLines))
	return nil
}

// buildWorkbook renders the reports as a two sheet workbook
func buildWorkbook(sales *domain.SalesReport, restock *domain.RestockReport) ([]byte, error) {
	file := xlsx.NewFile()

	salesSheet, err := file.AddSheet("Sales")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(salesSheet, "Menu Item ID", "Name", "Units Sold", "Revenue")
	for _, l := range sales.Lines {
		addRow(salesSheet,
			strconv.FormatInt(l.MenuItemID, 10),
			l.Name,
			strconv.FormatInt(l.UnitsSold, 10),
			l.Revenue.StringFixed(2))
	}
	addRow(salesSheet, "", "Total", "", sales.TotalRevenue.StringFixed(2))
	salesSheet.SetColWidth(1, 4, 18)

	restockSheet, err := file.AddSheet("Restock")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(restockSheet, "Inventory ID", "Name", "Quantity", "Unit")
	for _, item := range restock.Items {
		addRow(restockSheet,
			strconv.FormatInt(item.InventoryID, 10),
			item.Name,
			strconv.Itoa(item.Quantity),
			item.Unit)
	}
	restockSheet.SetColWidth(1, 4, 18)

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

func addHeader(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.Value = h
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

// writeResult stores a JSON result on the task when it runs under a server
func writeResult(ctx context.Context, t *asynq.Task, result interface{}, log *slog.Logger) {
	w := t.ResultWriter()
	if w == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		log.WarnContext(ctx, "failed to write task result", slog.String("error", err.Error()))
	}
}
