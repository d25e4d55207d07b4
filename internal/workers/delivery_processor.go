// internal/workers/delivery_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/pkg/logger"
)

// maxDeliveryNoteBytes bounds how much of a delivery note is read into memory
const maxDeliveryNoteBytes = 32 << 20

// DeliveryJobResult is written to the task result after a restock
type DeliveryJobResult struct {
	ItemsRestocked int      `json:"items_restocked"`
	LinesSkipped   []string `json:"lines_skipped,omitempty"`
	ProcessingTime string   `json:"processing_time"`
}

// textExtractor returns the text lines of a document
type textExtractor func(r io.ReaderAt, size int64) ([]string, error)

// DeliveryProcessor restocks inventory from supplier delivery notes
type DeliveryProcessor struct {
	inventory ports.InventoryService
	storage   ports.FileStorage
	extract   textExtractor
	logger    *slog.Logger
}

// NewDeliveryProcessor creates a new delivery note processor
func NewDeliveryProcessor(inventory ports.InventoryService, storage ports.FileStorage, logger *slog.Logger) *DeliveryProcessor {
	return &DeliveryProcessor{
		inventory: inventory,
		storage:   storage,
		extract:   extractPDFLines,
		logger:    logger.With(slog.String("processor", "delivery")),
	}
}

// ProcessDeliveryNote downloads the delivery note, parses "<name> <qty>"
// lines and applies them as one restock batch. Unknown item names reject
// the whole batch.
func (p *DeliveryProcessor) ProcessDeliveryNote(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ports.DeliveryRestockPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return skipRetry(fmt.Errorf("failed to unmarshal payload: %w", err))
	}
	if payload.FileKey == "" {
		return skipRetry(fmt.Errorf("file_key is required"))
	}

	ctx = logger.WithJob(ctx, payload.JobID, t.Type())
	p.logger.InfoContext(ctx, "processing delivery note", slog.String("file_key", payload.FileKey))

	rc, err := p.storage.Download(ctx, payload.FileKey)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return skipRetry(err)
		}
		return fmt.Errorf("failed to download delivery note: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(rc, maxDeliveryNoteBytes))
	rc.Close()
	if err != nil {
		return fmt.Errorf("failed to read delivery note: %w", err)
	}

	lines, err := p.extract(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return skipRetry(fmt.Errorf("failed to extract text: %w", err))
	}

	restocks, skipped := ParseDeliveryLines(lines)
	if len(restocks) == 0 {
		return skipRetry(domain.Errorf(domain.KindValidation, "delivery.parse",
			"no restock lines found in %s", payload.FileKey))
	}

	if err := p.inventory.RestockBatch(ctx, restocks); err != nil {
		switch domain.KindOf(err) {
		case domain.KindValidation, domain.KindReference:
			return skipRetry(err)
		}
		return fmt.Errorf("failed to apply restock: %w", err)
	}

	result := DeliveryJobResult{
		ItemsRestocked: len(restocks),
		LinesSkipped:   skipped,
		ProcessingTime: time.Since(start).String(),
	}
	writeResult(ctx, t, result, p.logger)

	p.logger.InfoContext(ctx, "delivery note applied",
		slog.Int("items_restocked", result.ItemsRestocked),
		slog.Int("lines_skipped", len(skipped)))
	return nil
}

var deliveryLineRe = regexp.MustCompile(`^(.*\S)\s+(\d+)$`)

// ParseDeliveryLines turns "<name> <qty>" lines into restocks. Amounts for
// the same name are summed, names keep their first-seen order. Non-blank
// lines that do not match are returned as skipped.
func ParseDeliveryLines(lines []string) ([]domain.Restock, []string) {
	var (
		restocks []domain.Restock
		skipped  []string
		index    = make(map[string]int)
	)

	for _, raw := range lines {
		line := strings.Join(strings.Fields(raw), " ")
		if line == "" {
			continue
		}

		m := deliveryLineRe.FindStringSubmatch(line)
		if m == nil {
			skipped = append(skipped, line)
			continue
		}
		amount, err := strconv.Atoi(m[2])
		if err != nil || amount <= 0 {
			skipped = append(skipped, line)
			continue
		}

		name := m[1]
		if i, ok := index[strings.ToLower(name)]; ok {
			restocks[i].Amount += amount
			continue
		}
		index[strings.ToLower(name)] = len(restocks)
		restocks = append(restocks, domain.Restock{Name: name, Amount: amount})
	}

	return restocks, skipped
}

// extractPDFLines reads the text of every page row by row
func extractPDFLines(r io.ReaderAt, size int64) ([]string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var lines []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, text := range row.Content {
				words = append(words, text.S)
			}
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return lines, nil
}
