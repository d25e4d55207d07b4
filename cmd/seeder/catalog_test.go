package main

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func writeWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	file := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := file.AddSheet(name)
		require.NoError(t, err)
		for _, values := range rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().SetString(v)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, file.Save(path))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		inventorySheet: {
			{"name", "quantity", "unit"},
			{"Tortilla", "100", "each"},
			{"", "", ""},
			{"Ground Beef", "40", "portion"},
		},
		menuSheet: {
			{"name", "price", "type", "recipe"},
			{"Taco", "$3.50", "entree", "Tortilla:1; Ground Beef"},
		},
	})

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog.Inventory, 2)
	assert.Equal(t, InventoryRow{Name: "Ground Beef", Quantity: 40, Unit: "portion"}, catalog.Inventory[1])

	require.Len(t, catalog.Menu, 1)
	taco := catalog.Menu[0]
	assert.True(t, taco.Price.Equal(decimal.RequireFromString("3.5")))
	assert.Equal(t, []RecipeRow{{"Tortilla", 1}, {"Ground Beef", 1}}, taco.Recipe)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name   string
		sheets map[string][][]string
		errMsg string
	}{
		{
			name: "bad_quantity",
			sheets: map[string][][]string{
				inventorySheet: {{"name", "quantity"}, {"Tortilla", "lots"}},
			},
			errMsg: "invalid quantity",
		},
		{
			name: "bad_price",
			sheets: map[string][][]string{
				menuSheet: {{"name", "price"}, {"Taco", "free"}},
			},
			errMsg: "invalid price",
		},
		{
			name: "no_known_sheets",
			sheets: map[string][][]string{
				"Sheet1": {{"a"}},
			},
			errMsg: "no Inventory or Menu rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeWorkbook(t, tt.sheets))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseRecipe(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []RecipeRow
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "bare_name", input: "Salsa", want: []RecipeRow{{"Salsa", 1}}},
		{name: "quantities", input: "Tortilla:2;Cheese:3;", want: []RecipeRow{{"Tortilla", 2}, {"Cheese", 3}}},
		{name: "zero_quantity", input: "Tortilla:0", wantErr: true},
		{name: "missing_name", input: ":2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecipe(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
