package config

import "time"

// Fixed inputs and presentation defaults for the sales report. The input file
// and sheet are compiled in; the tool takes no input arguments.

const (
	// Input workbook
	DefaultWorkbookPath  = "Dados_ficticios_Analise de Dados.xlsx"
	DefaultSheet         = "Sheet1"
	CanonicalColumnCount = 6
)

const (
	// Month-year cells are MM/YYYY text; the single-digit month form is accepted too.
	MonthLayout        = "01/2006"
	MonthLayoutLenient = "1/2006"

	CurrencySymbol = "R$"
)

const (
	// Terminal chart geometry
	DefaultBarWidth      = 48 // max cells for the longest horizontal bar
	DefaultVerticalRows  = 16 // rows for the tallest vertical bar
	DefaultLineHeight    = 12
	DefaultReportRuleLen = 70
)

const (
	// Aggregate preparation
	DefaultPrepareWorkers = 4
	DefaultPrepareTimeout = 30 * time.Second
)
