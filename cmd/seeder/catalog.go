// cmd/seeder/catalog.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// Sheet names expected in a catalog workbook
const (
	inventorySheet = "Inventory"
	menuSheet      = "Menu"
)

// InventoryRow is one row of the Inventory sheet: name | quantity | unit
type InventoryRow struct {
	Name     string
	Quantity int
	Unit     string
}

// RecipeRow references an inventory item by name
type RecipeRow struct {
	Inventory string
	Quantity  int
}

// MenuRow is one row of the Menu sheet: name | price | type | recipe
type MenuRow struct {
	Name   string
	Price  decimal.Decimal
	Type   string
	Recipe []RecipeRow
}

// Catalog is everything a workbook seeds
type Catalog struct {
	Inventory []InventoryRow
	Menu      []MenuRow
}

// LoadCatalog reads the Inventory and Menu sheets. The first row of each
// sheet is a header. Rows with an empty name are skipped.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}

	catalog := &Catalog{}

	if sheet, ok := file.Sheet[inventorySheet]; ok {
		err := forEachDataRow(sheet, func(line int, get func(int) string) error {
			name := get(0)
			if name == "" {
				return nil
			}
			qty, err := strconv.Atoi(get(1))
			if err != nil {
				return fmt.Errorf("%s row %d: invalid quantity %q", inventorySheet, line, get(1))
			}
			catalog.Inventory = append(catalog.Inventory, InventoryRow{Name: name, Quantity: qty, Unit: get(2)})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if sheet, ok := file.Sheet[menuSheet]; ok {
		err := forEachDataRow(sheet, func(line int, get func(int) string) error {
			name := get(0)
			if name == "" {
				return nil
			}
			price, err := decimal.NewFromString(strings.TrimPrefix(get(1), "$"))
			if err != nil {
				return fmt.Errorf("%s row %d: invalid price %q", menuSheet, line, get(1))
			}
			recipe, err := ParseRecipe(get(3))
			if err != nil {
				return fmt.Errorf("%s row %d: %w", menuSheet, line, err)
			}
			catalog.Menu = append(catalog.Menu, MenuRow{Name: name, Price: price, Type: get(2), Recipe: recipe})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(catalog.Inventory) == 0 && len(catalog.Menu) == 0 {
		return nil, fmt.Errorf("catalog has no %s or %s rows", inventorySheet, menuSheet)
	}
	return catalog, nil
}

// ParseRecipe parses "Tortilla:1; Ground Beef:2". A bare name means one unit.
func ParseRecipe(s string) ([]RecipeRow, error) {
	var rows []RecipeRow
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, qtyStr, found := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		qty := 1
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(qtyStr))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid recipe quantity in %q", part)
			}
			qty = n
		}
		if name == "" {
			return nil, fmt.Errorf("recipe entry %q has no inventory name", part)
		}
		rows = append(rows, RecipeRow{Inventory: name, Quantity: qty})
	}
	return rows, nil
}

func forEachDataRow(sheet *xlsx.Sheet, fn func(line int, get func(int) string) error) error {
	rowIdx := 0
	return sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		// Skip header
		if rowIdx == 1 {
			return nil
		}

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}
		return fn(rowIdx, get)
	})
}

// demoCatalog is the small taqueria menu used by -demo
func demoCatalog() *Catalog {
	return &Catalog{
		Inventory: []InventoryRow{
			{Name: "Tortilla", Quantity: 200, Unit: "each"},
			{Name: "Ground Beef", Quantity: 80, Unit: "portion"},
			{Name: "Chicken", Quantity: 80, Unit: "portion"},
			{Name: "Cheese", Quantity: 120, Unit: "portion"},
			{Name: "Salsa", Quantity: 150, Unit: "cup"},
			{Name: "Rice", Quantity: 100, Unit: "cup"},
			{Name: "Beans", Quantity: 100, Unit: "cup"},
			{Name: "Horchata", Quantity: 60, Unit: "cup"},
		},
		Menu: []MenuRow{
			{Name: "Beef Taco", Price: decimal.RequireFromString("3.50"), Type: "entree",
				Recipe: []RecipeRow{{"Tortilla", 1}, {"Ground Beef", 1}, {"Cheese", 1}}},
			{Name: "Chicken Taco", Price: decimal.RequireFromString("3.25"), Type: "entree",
				Recipe: []RecipeRow{{"Tortilla", 1}, {"Chicken", 1}, {"Salsa", 1}}},
			{Name: "Quesadilla", Price: decimal.RequireFromString("5.00"), Type: "entree",
				Recipe: []RecipeRow{{"Tortilla", 2}, {"Cheese", 2}}},
			{Name: "Rice and Beans", Price: decimal.RequireFromString("2.75"), Type: "side",
				Recipe: []RecipeRow{{"Rice", 1}, {"Beans", 1}}},
			{Name: "Chips and Salsa", Price: decimal.RequireFromString("2.00"), Type: "side",
				Recipe: []RecipeRow{{"Salsa", 1}}},
			{Name: "Horchata", Price: decimal.RequireFromString("2.50"), Type: "drink",
				Recipe: []RecipeRow{{"Horchata", 1}}},
		},
	}
}
