// Package reportexport writes a graded exercise to an xlsx workbook.
package reportexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/go-petr/ledger-quiz/internal/domain"
	"github.com/go-petr/ledger-quiz/pkg/currencypkg"
)

// Sheet names of the workbook.
const (
	ResultsSheet = "Resultados"
	SummarySheet = "Resumen"
)

// ContentType is the media type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func yesNo(ok bool) string {
	if ok {
		return "Sí"
	}

	return "No"
}

// Workbook renders res as an xlsx file with a row per account and a summary sheet.
func Workbook(res domain.CheckResult, f currencypkg.Formatter) (*bytes.Buffer, error) {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return nil, fmt.Errorf("rename results sheet: %w", err)
	}

	if _, err := x.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeResults(x, res); err != nil {
		return nil, err
	}

	if err := writeSummary(x, res, f); err != nil {
		return nil, err
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf, nil
}

func writeResults(x *excelize.File, res domain.CheckResult) error {
	headers := []any{"Cuenta", "Nombre", "Cargo", "Abono", "Cargo correcto", "Abono correcto"}
	if err := x.SetSheetRow(ResultsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	for i, field := range res.Fields {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			string(field.Account),
			field.Label,
			field.Entered.Debit,
			field.Entered.Credit,
			yesNo(field.DebitCorrect),
			yesNo(field.CreditCorrect),
		}
		if err := x.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", field.Account, err)
		}
	}

	style, err := x.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	last := fmt.Sprintf("D%d", len(res.Fields)+1)

	return x.SetCellStyle(ResultsSheet, "C2", last, style)
}

func writeSummary(x *excelize.File, res domain.CheckResult, f currencypkg.Formatter) error {
	verdict := "Sigue intentando"
	if res.Passed {
		verdict = "Aprobado"
	}

	rows := [][]any{
		{"Aciertos", res.Score},
		{"Posibles", res.Possible},
		{"Total cargos", f.Money(res.TotalDebit)},
		{"Total abonos", f.Money(res.TotalCredit)},
		{"Saldo final", f.Money(res.Balance)},
		{"Resultado", verdict},
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := x.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}
