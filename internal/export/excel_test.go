package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/montazhpro/smeta/internal/domain/estimates"
	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/units"
	"github.com/montazhpro/smeta/internal/domain/works"
	"github.com/montazhpro/smeta/internal/store"
)

func fptr(v float64) *float64 { return &v }

func TestEstimateXLSX(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	um := units.NewManager(s)
	em := estimates.NewManager(s, works.NewManager(s), materials.NewManager(s))

	u, err := um.Create(ctx, units.Input{Code: "м", Name: "метр", Kind: units.KindLength})
	if err != nil {
		t.Fatal(err)
	}

	iw := em.NewItemWork(estimates.ItemWorkInput{
		WorkName: "Прокладка кабеля", UnitID: &u.ID, Quantity: 3, PricePerUnit: fptr(500),
	})
	item := em.NewItem(estimates.ItemInput{Number: 1, MaterialName: "Кабель ВВГнг", Works: []estimates.ItemWork{iw}})
	e, err := em.Create(ctx, estimates.Input{Number: "СМ-1", Name: "СКС", Items: []estimates.Item{item}})
	if err != nil {
		t.Fatal(err)
	}

	b, err := EstimateXLSX(ctx, e, um, "Офис Ленина 10")
	if err != nil {
		t.Fatalf("EstimateXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		t.Fatal(err)
	}

	var grandTotal string
	var sawWork bool
	for _, row := range rows {
		for i, cell := range row {
			if cell == "ИТОГО:" && i+1 < len(row) {
				grandTotal = row[i+1]
			}
			if cell == "Прокладка кабеля" {
				sawWork = true
			}
		}
	}
	if !sawWork {
		t.Fatal("work row missing")
	}
	if grandTotal != "1500" {
		t.Fatalf("grand total cell: %q", grandTotal)
	}
}

func TestImportMaterials(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	um := units.NewManager(s)
	mm := materials.NewManager(s)

	if _, err := um.Create(ctx, units.Input{Code: "м", Kind: units.KindLength}); err != nil {
		t.Fatal(err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows := [][]interface{}{
		{"Код", "Наименование", "Ед.", "Цена", "Производитель"},
		{"KAB-3x2.5", "Кабель ВВГнг 3x2.5", "м", "120,50", "Камкабель"},
		{"", "", "", "", ""},                 // нет наименования — пропуск
		{"X-1", "Гофра", "м", "abc", "ИЭК"}, // цена не число — пропуск
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	rep, err := ImportMaterials(ctx, buf, mm, um)
	if err != nil {
		t.Fatalf("ImportMaterials: %v", err)
	}
	if rep.Total != 3 || rep.Imported != 1 || rep.Skipped != 2 {
		t.Fatalf("report: %+v", rep)
	}

	list, _ := mm.List(ctx)
	if len(list) != 1 {
		t.Fatalf("materials: %#v", list)
	}
	m := list[0]
	if m.Code != "KAB-3x2.5" || m.Price == nil || *m.Price != 120.50 || m.UnitID == nil {
		t.Fatalf("imported material: %#v", m)
	}
}
