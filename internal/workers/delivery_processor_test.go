package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/workers"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

func TestParseDeliveryLines(t *testing.T) {
	tests := []struct {
		name             string
		lines            []string
		expectedRestocks []domain.Restock
		expectedSkipped  []string
	}{
		{
			name:             "simple_lines",
			lines:            []string{"Tortilla 40", "Ground Beef 12"},
			expectedRestocks: []domain.Restock{{Name: "Tortilla", Amount: 40}, {Name: "Ground Beef", Amount: 12}},
		},
		{
			name:             "collapses_whitespace_and_skips_blank",
			lines:            []string{"  Sour   Cream\t 6 ", "", "   "},
			expectedRestocks: []domain.Restock{{Name: "Sour Cream", Amount: 6}},
		},
		{
			name:             "sums_repeated_names",
			lines:            []string{"Cheese 5", "Tortilla 10", "cheese 3"},
			expectedRestocks: []domain.Restock{{Name: "Cheese", Amount: 8}, {Name: "Tortilla", Amount: 10}},
		},
		{
			name:             "skips_headers_and_zero_amounts",
			lines:            []string{"DELIVERY NOTE", "Item Qty", "Limes 0", "Limes 20"},
			expectedRestocks: []domain.Restock{{Name: "Limes", Amount: 20}},
			expectedSkipped:  []string{"DELIVERY NOTE", "Item Qty", "Limes 0"},
		},
		{
			name:            "quantity_only_line",
			lines:           []string{"40"},
			expectedSkipped: []string{"40"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restocks, skipped := workers.ParseDeliveryLines(tt.lines)
			assert.Equal(t, tt.expectedRestocks, restocks)
			assert.Equal(t, tt.expectedSkipped, skipped)
		})
	}
}

func deliveryTask(t *testing.T, key string) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(ports.DeliveryRestockPayload{JobID: "job-1", FileKey: key})
	require.NoError(t, err)
	return asynq.NewTask(workers.TypeDeliveryRestock, data)
}

func staticLines(lines ...string) func(io.ReaderAt, int64) ([]string, error) {
	return func(io.ReaderAt, int64) ([]string, error) { return lines, nil }
}

func TestDeliveryProcessor_ProcessDeliveryNote(t *testing.T) {
	tests := []struct {
		name       string
		extract    func(io.ReaderAt, int64) ([]string, error)
		setupMocks func(*mocks.MockInventoryService, *mocks.MockFileStorage)
		wantErr    bool
		skipRetry  bool
	}{
		{
			name:    "applies_restock_batch",
			extract: staticLines("Delivery note", "Tortilla 40", "Beef 10"),
			setupMocks: func(inv *mocks.MockInventoryService, fs *mocks.MockFileStorage) {
				fs.EXPECT().Download(gomock.Any(), "deliveries/a.pdf").
					Return(io.NopCloser(strings.NewReader("%PDF")), nil)
				inv.EXPECT().
					RestockBatch(gomock.Any(), []domain.Restock{{Name: "Tortilla", Amount: 40}, {Name: "Beef", Amount: 10}}).
					Return(nil)
			},
		},
		{
			name:    "unknown_item_rejects_batch",
			extract: staticLines("Saffron 2"),
			setupMocks: func(inv *mocks.MockInventoryService, fs *mocks.MockFileStorage) {
				fs.EXPECT().Download(gomock.Any(), gomock.Any()).Return(io.NopCloser(strings.NewReader("")), nil)
				inv.EXPECT().RestockBatch(gomock.Any(), gomock.Any()).
					Return(domain.Errorf(domain.KindReference, "inventory.restock_batch", "unknown inventory items [Saffron]"))
			},
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:    "no_parsable_lines",
			extract: staticLines("Thank you for your business"),
			setupMocks: func(_ *mocks.MockInventoryService, fs *mocks.MockFileStorage) {
				fs.EXPECT().Download(gomock.Any(), gomock.Any()).Return(io.NopCloser(strings.NewReader("")), nil)
			},
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:    "missing_file",
			extract: staticLines(),
			setupMocks: func(_ *mocks.MockInventoryService, fs *mocks.MockFileStorage) {
				fs.EXPECT().Download(gomock.Any(), gomock.Any()).
					Return(nil, domain.Errorf(domain.KindNotFound, "storage.download", "file not found"))
			},
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:    "storage_outage_is_retried",
			extract: staticLines("Tortilla 40"),
			setupMocks: func(inv *mocks.MockInventoryService, fs *mocks.MockFileStorage) {
				fs.EXPECT().Download(gomock.Any(), gomock.Any()).Return(io.NopCloser(strings.NewReader("")), nil)
				inv.EXPECT().RestockBatch(gomock.Any(), gomock.Any()).
					Return(domain.NewError(domain.KindStorageUnavailable, "inventory.restock_batch", "database unavailable", nil))
			},
			wantErr:   true,
			skipRetry: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inv := mocks.NewMockInventoryService(ctrl)
			fs := mocks.NewMockFileStorage(ctrl)
			tt.setupMocks(inv, fs)

			p := workers.NewDeliveryProcessor(inv, fs, helpers.TestLogger())
			workers.SetTextExtractor(p, tt.extract)

			err := p.ProcessDeliveryNote(context.Background(), deliveryTask(t, "deliveries/a.pdf"))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestDeliveryProcessor_InvalidPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileStorage(ctrl)
	fs.EXPECT().Download(gomock.Any(), gomock.Any()).
		Return(io.NopCloser(strings.NewReader("this is not a pdf")), nil)

	p := workers.NewDeliveryProcessor(mocks.NewMockInventoryService(ctrl), fs, helpers.TestLogger())
	err := p.ProcessDeliveryNote(context.Background(), deliveryTask(t, "deliveries/bad.pdf"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestDeliveryProcessor_MissingFileKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := workers.NewDeliveryProcessor(mocks.NewMockInventoryService(ctrl), mocks.NewMockFileStorage(ctrl), helpers.TestLogger())

	err := p.ProcessDeliveryNote(context.Background(), deliveryTask(t, ""))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
