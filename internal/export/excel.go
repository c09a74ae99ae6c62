// Package export — выгрузка смет и загрузка материалов в формате Excel.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/montazhpro/smeta/internal/domain/estimates"
	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/units"
)

// EstimateXLSX рендерит смету: строка на каждую работу, подытог по позиции,
// общий итог в конце.
func EstimateXLSX(ctx context.Context, est *estimates.Estimate, unitsRepo *units.Manager, projectName string) ([]byte, error) {
	unitNames, err := unitCodes(ctx, unitsRepo)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	title := fmt.Sprintf("Смета № %s — %s", est.Number, est.Name)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{title}); err != nil {
		return nil, err
	}
	if projectName != "" {
		if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"Объект:", projectName}); err != nil {
			return nil, err
		}
	}

	header := []interface{}{"№", "Материал", "Работа", "Ед.", "Кол-во", "Цена", "Стоимость"}
	if err := f.SetSheetRow(sheet, "A4", &header); err != nil {
		return nil, err
	}

	row := 5
	writeRow := func(vals []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
		row++
		return nil
	}

	for _, it := range est.Items {
		if err := writeRow([]interface{}{it.Number, it.MaterialName, "", "", "", "", ""}); err != nil {
			return nil, err
		}
		for _, w := range it.Works {
			unit := ""
			if w.UnitID != nil {
				unit = unitNames[*w.UnitID]
			}
			if err := writeRow([]interface{}{"", "", w.WorkName, unit, w.Quantity, money(w.PricePerUnit), money(w.TotalCost)}); err != nil {
				return nil, err
			}
		}
		if err := writeRow([]interface{}{"", "", "", "", "", "Итого по позиции:", it.TotalCost}); err != nil {
			return nil, err
		}
	}
	if err := writeRow([]interface{}{"", "", "", "", "", "ИТОГО:", est.TotalCost}); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(p *float64) interface{} {
	if p == nil {
		return "" // цена не известна
	}
	return *p
}

func unitCodes(ctx context.Context, unitsRepo *units.Manager) (map[string]string, error) {
	list, err := unitsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(list))
	for _, u := range list {
		out[u.ID] = u.Code
	}
	return out, nil
}

type ImportReport struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// ImportMaterials читает первый лист книги: код, наименование, код единицы,
// цена, производитель. Первая строка — заголовок. Строки без наименования
// пропускаются, код единицы ищется в справочнике без учёта регистра.
func ImportMaterials(ctx context.Context, r io.Reader, mats *materials.Manager, unitsRepo *units.Manager) (ImportReport, error) {
	var rep ImportReport

	f, err := excelize.OpenReader(r)
	if err != nil {
		return rep, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return rep, err
	}

	unitList, err := unitsRepo.List(ctx)
	if err != nil {
		return rep, err
	}
	unitByCode := make(map[string]string, len(unitList))
	for _, u := range unitList {
		unitByCode[strings.ToLower(u.Code)] = u.ID
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	for n, row := range rows {
		if n == 0 {
			continue // заголовок
		}
		rep.Total++

		name := cell(row, 1)
		if name == "" {
			rep.Skipped++
			rep.Errors = append(rep.Errors, fmt.Sprintf("строка %d: нет наименования", n+1))
			continue
		}

		in := materials.Input{
			Type:         materials.TypeMaterial,
			Code:         cell(row, 0),
			Name:         name,
			Manufacturer: cell(row, 4),
		}
		if code := cell(row, 2); code != "" {
			if id, ok := unitByCode[strings.ToLower(code)]; ok {
				in.UnitID = &id
			}
		}
		if raw := cell(row, 3); raw != "" {
			p, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil {
				rep.Skipped++
				rep.Errors = append(rep.Errors, fmt.Sprintf("строка %d: цена %q не число", n+1, raw))
				continue
			}
			in.Price = &p
		}

		if _, err := mats.Create(ctx, in); err != nil {
			return rep, err
		}
		rep.Imported++
	}
	return rep, nil
}
