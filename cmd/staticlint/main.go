package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func main() {
	// analysis/passes
	mychecks := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
	}
	// staticcheck. Проверки класса SA
	for _, v := range staticcheck.Analyzers {
		if v.Analyzer.Name[0:2] == "SA" {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	// Проверки остальных классов
	// "S1028" Simplify error construction with fmt.Errorf
	// "ST1016" Use consistent method receiver names
	others := append(append([]*lint.Analyzer{}, simple.Analyzers...), stylecheck.Analyzers...)
	for _, v := range others {
		if v.Analyzer.Name == "S1028" || v.Analyzer.Name == "ST1016" {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	// Собственный анализатор: полный разбор исходов клиента
	mychecks = append(mychecks, OutcomeSwitch)

	multichecker.Main(mychecks...)
}

// go run ./cmd/staticlint ./...
