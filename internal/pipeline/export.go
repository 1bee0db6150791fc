// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/models"
)

// Workbook sheet names.
const (
	SheetPairs   = "pairs"
	SheetMatrix  = "matrix"
	SheetRecipes = "recipes"
)

// WriteWorkbook exports the pipeline tables to an xlsx file. The matrix is
// written in long form, one row per ingredient and partner.
func WriteWorkbook(path string, pairs []models.PairingEntry, matrix *catalog.Matrix, recipes []models.Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	pairRows := make([][]interface{}, 0, len(pairs))
	for _, p := range pairs {
		pairRows = append(pairRows, []interface{}{p.Ing1, p.Ing2, p.Count})
	}

	var matrixRows [][]interface{}
	for _, ing := range matrix.Ingredients() {
		for _, partner := range matrix.Partners(ing) {
			matrixRows = append(matrixRows, []interface{}{ing, partner.Name, partner.Count})
		}
	}

	recipeRows := make([][]interface{}, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		recipeRows = append(recipeRows, []interface{}{r.Title, r.URL, r.Hostname(), strings.Join(r.Ingredients, ", ")})
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetPairs, []interface{}{"ing1", "ing2", "count"}, pairRows},
		{SheetMatrix, []interface{}{"ingredient", "partner", "count"}, matrixRows},
		{SheetRecipes, []interface{}{"title", "url", "hostname", "ingredients"}, recipeRows},
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetPairs); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
