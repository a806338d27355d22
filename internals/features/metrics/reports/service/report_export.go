package service

import (
	"bytes"
	"context"
	"fmt"

	"mantenimiento_backend/internals/features/metrics/reports/dto"

	"github.com/xuri/excelize/v2"
)

const (
	sheetEfficiency   = "Eficiencia"
	sheetAvailability = "Disponibilidad"
	sheetIndicators   = "Indicadores"
)

// ExportWeek builds an XLSX workbook with the week's efficiency rows,
// availability rows and per-machine indicators.
func (s *ReportService) ExportWeek(ctx context.Context, f dto.WeekFilter) ([]byte, string, error) {
	eff, err := s.WeeklyEfficiency(ctx, f.Year, f.Week)
	if err != nil {
		return nil, "", err
	}
	avail, err := s.WeeklyAvailability(ctx, f.Year, f.Week)
	if err != nil {
		return nil, "", err
	}
	ind, err := s.Indicators(ctx, &f)
	if err != nil {
		return nil, "", err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", sheetEfficiency); err != nil {
		return nil, "", err
	}
	for _, name := range []string{sheetAvailability, sheetIndicators} {
		if _, err := x.NewSheet(name); err != nil {
			return nil, "", err
		}
	}

	header, _ := x.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	effRows := make([][]any, 0, len(eff))
	for _, e := range eff {
		effRows = append(effRows, []any{e.Fecha, e.Maquina, e.NoParteInterno, e.NombreOperador,
			e.PiezasProgramadas, e.PiezasReales, e.Scrap})
	}
	if err := writeSheet(x, sheetEfficiency, header,
		[]string{"Fecha", "Maquina", "No. parte interno", "Operador", "Programado", "Real", "Scrap"}, effRows); err != nil {
		return nil, "", err
	}

	availRows := make([][]any, 0, len(avail))
	for _, a := range avail {
		availRows = append(availRows, []any{a.Fecha, a.Maquina, a.NoParteInterno, a.Operador,
			a.EstandarParo, a.CausaParo, a.MinutosPerdidos})
	}
	if err := writeSheet(x, sheetAvailability, header,
		[]string{"Fecha", "Maquina", "No. parte interno", "Operador", "Estandar paro", "Causa paro", "Minutos"}, availRows); err != nil {
		return nil, "", err
	}

	indRows := make([][]any, 0, len(ind))
	for _, i := range ind {
		indRows = append(indRows, []any{i.Nombre, i.MinutosParo, i.MinutosProgramados,
			i.PorcentajeTiempoMuerto, i.ObjetivoTiempoMuerto,
			i.PiezasScrap, i.PiezasProducidas, i.PorcentajeScrap, i.ObjetivoScrap})
	}
	if err := writeSheet(x, sheetIndicators, header,
		[]string{"Maquina", "Minutos paro", "Minutos programados", "% Tiempo muerto", "Objetivo %",
			"Piezas scrap", "Piezas producidas", "% Scrap", "Objetivo scrap %"}, indRows); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eficiencias_%d_S%02d.xlsx", f.Year, f.Week)
	return buf.Bytes(), filename, nil
}

func writeSheet(x *excelize.File, sheet string, style int, headers []string, rows [][]any) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := x.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		_ = x.SetCellStyle(sheet, cell, cell, style)
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
