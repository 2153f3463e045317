package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Tiny dev-only workbook seeder.
//
// It writes an xlsx file shaped like the Canvas roster export: a header
// row, "Last, First" entries and the trailing "Student, Test" artifact row
// the export always appends. Useful for trying labpair without a real
// export at hand.

var sampleRoster = []string{
	"Doe, Jane",
	"Smith, Bob",
	"de la Cruz, Maria",
	"Lee, Alice",
	"Tanaka, Ken",
	"Novak, Petra",
	"Okafor, Chidi",
}

func main() {
	var (
		path  = flag.String("out", "students.xlsx", "workbook path to create")
		sheet = flag.String("sheet", "full_list", "sheet to hold the raw roster")
		n     = flag.Int("n", len(sampleRoster), "number of sample students (capped at the sample size)")
	)
	flag.Parse()

	if *n < 1 || *n > len(sampleRoster) {
		*n = len(sampleRoster)
	}
	if strings.TrimSpace(*sheet) == "" {
		log.Fatal("sheet name must not be empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(*sheet); err != nil {
		log.Fatalf("create sheet: %v", err)
	}
	if *sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			log.Fatalf("drop default sheet: %v", err)
		}
	}

	rows := [][]string{{"Student"}}
	for _, name := range sampleRoster[:*n] {
		rows = append(rows, []string{name})
	}
	rows = append(rows, []string{"Student, Test"})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatalf("cell name: %v", err)
		}
		cells := row
		if err := f.SetSheetRow(*sheet, cell, &cells); err != nil {
			log.Fatalf("write row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(*path); err != nil {
		log.Fatalf("save workbook: %v", err)
	}
	fmt.Printf("wrote %d students to %s (sheet %s)\n", *n, *path, *sheet)
}
