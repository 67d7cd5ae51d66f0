// Package sheetfilter selects sheets by name.
//
// A Filter is built once from one of several shapes (a single name, a set of
// names, a Go predicate or an expression) and then applied to every sheet.
package sheetfilter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter decides whether a sheet takes part in processing.
// index is the sheet's 0-based position in the workbook.
type Filter interface {
	Match(name string, index int) (bool, error)
}

type nameSet map[string]struct{}

func (s nameSet) Match(name string, _ int) (bool, error) {
	_, ok := s[name]
	return ok, nil
}

// Name matches exactly one sheet name.
func Name(name string) Filter {
	return Names(name)
}

// Names matches any of the given sheet names.
func Names(names ...string) Filter {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Predicate matches the names for which fn returns true.
type Predicate func(name string) bool

// Match implements Filter.
func (p Predicate) Match(name string, _ int) (bool, error) {
	return p(name), nil
}

type not struct {
	f Filter
}

func (n not) Match(name string, index int) (bool, error) {
	ok, err := n.f.Match(name, index)
	return !ok, err
}

// Not inverts f.
func Not(f Filter) Filter {
	return not{f: f}
}

// exprEnv is the environment visible to filter expressions.
type exprEnv struct {
	Name  string `expr:"name"`
	Index int    `expr:"index"`
}

type exprFilter struct {
	src     string
	program *vm.Program
}

// Expr compiles a boolean expression over `name` and `index`, for example
// `name startsWith "CORGI"` or `index > 0 && name != "Notes"`.
func Expr(src string) (Filter, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &exprFilter{src: src, program: program}, nil
}

func (e *exprFilter) Match(name string, index int) (bool, error) {
	out, err := expr.Run(e.program, exprEnv{Name: name, Index: index})
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", e.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluated to %T, expected bool", e.src, out)
	}
	return b, nil
}

// Apply returns the names matching f, keeping their order. A nil filter
// matches everything.
func Apply(f Filter, names []string) ([]string, error) {
	if f == nil {
		return append([]string(nil), names...), nil
	}
	out := make([]string, 0, len(names))
	for i, name := range names {
		ok, err := f.Match(name, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}
