package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OutcomeSwitch проверяет, что switch по перечислимому типу (целый именованный тип
// с константами в своем пакете) перечисляет все константы или содержит default.
// Так исходы клиента (client.Kind) разбираются полностью
var OutcomeSwitch = &analysis.Analyzer{
	Name:     "outcomeswitch",
	Doc:      "check that switch over an enum-like type covers every constant or has a default case",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runOutcomeSwitch,
}

func runOutcomeSwitch(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.SwitchStmt)
		if sw.Tag == nil {
			return
		}
		named, ok := pass.TypesInfo.TypeOf(sw.Tag).(*types.Named)
		if !ok {
			return
		}
		consts := enumConsts(named)
		if len(consts) == 0 {
			return
		}

		covered := make(map[string]bool)
		for _, stmt := range sw.Body.List {
			clause, ok := stmt.(*ast.CaseClause)
			if !ok {
				continue
			}
			// default
			if clause.List == nil {
				return
			}
			for _, expr := range clause.List {
				if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
					covered[tv.Value.ExactString()] = true
				}
			}
		}

		var missing []string
		for _, c := range consts {
			if !covered[c.Val().ExactString()] {
				missing = append(missing, c.Name())
			}
		}
		if len(missing) > 0 {
			pass.Reportf(sw.Pos(), "missing cases in switch of type %s: %s",
				named.Obj().Name(), strings.Join(missing, ", "))
		}
	})

	return nil, nil //nolint:nilnil
}

// enumConsts - константы типа named, объявленные в его пакете
func enumConsts(named *types.Named) []*types.Const {
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil
	}
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return nil
	}

	var consts []*types.Const
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			consts = append(consts, c)
		}
	}
	return consts
}
