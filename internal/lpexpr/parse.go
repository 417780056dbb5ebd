// Package lpexpr parses a small algebraic text format for linear
// programs: one objective line ("maximize: 2x1 + 3.5x2") followed by
// one "<=" constraint per line ("x1 + x2 <= 4"). It only supports the
// constraint shape the simplex package accepts — nonnegative
// variables, "<=" inequalities — and produces float64 coefficients
// throughout, since the solver compares them with exact floating-point
// zero tests and a rational front end would misrepresent what it
// actually computes.
package lpexpr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Term is a single coefficient*variable term, e.g. "2x1" or "-x3".
type Term struct {
	Coefficient float64
	Variable    string
}

// Problem is a parsed linear program prior to variable-index
// assignment: an objective row of terms and one row of terms per
// constraint, each paired with its right-hand side.
type Problem struct {
	Objective   []Term
	Constraints [][]Term
	RHS         []float64
	Variables   []string // stable order: first appearance in the objective, then constraints
}

var (
	termPattern  = regexp.MustCompile(`^([+-]?\d*\.?\d*)([a-zA-Z]\w*)$`)
	constantPat  = regexp.MustCompile(`^[+-]?\d*\.?\d+$`)
	signSplitPat = regexp.MustCompile(`\s*([+-])\s*`)
	relationPat  = regexp.MustCompile(`<=|>=|=`)
)

// Parse parses an objective line and its constraint lines into a
// Problem. Only "<=" constraints are accepted; ">=" and "=" report an
// error, since equality and the constraints they'd imply fall outside
// what the solver supports.
func Parse(objectiveLine string, constraintLines []string) (*Problem, error) {
	objectiveLine = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(objectiveLine), "maximize:"))
	objTerms, err := parseTerms(objectiveLine)
	if err != nil {
		return nil, errors.Wrap(err, "lpexpr: parsing objective")
	}

	p := &Problem{Objective: objTerms}
	seen := map[string]bool{}
	for _, term := range objTerms {
		if term.Variable != "" && !seen[term.Variable] {
			seen[term.Variable] = true
			p.Variables = append(p.Variables, term.Variable)
		}
	}

	for i, line := range constraintLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rel := relationPat.FindString(line)
		if rel == "" {
			return nil, errors.Errorf("lpexpr: constraint %d has no relation (<=, >=, =): %q", i+1, line)
		}
		if rel != "<=" {
			return nil, errors.Errorf("lpexpr: constraint %d uses %q; only <= is supported (equality and ranged constraints are out of scope)", i+1, rel)
		}

		parts := strings.SplitN(line, rel, 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("lpexpr: malformed constraint %d: %q", i+1, line)
		}
		lhsTerms, err := parseTerms(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "lpexpr: parsing constraint %d left-hand side", i+1)
		}
		rhs, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "lpexpr: parsing constraint %d right-hand side", i+1)
		}

		p.Constraints = append(p.Constraints, lhsTerms)
		p.RHS = append(p.RHS, rhs)
		for _, term := range lhsTerms {
			if term.Variable != "" && !seen[term.Variable] {
				seen[term.Variable] = true
				p.Variables = append(p.Variables, term.Variable)
			}
		}
	}

	return p, nil
}

// parseTerms splits a sum of signed terms like "2x1 - 3.5x2 + x3" into
// individual Terms, normalizing implicit "+" at the start and between
// terms that lack an explicit operator.
func parseTerms(expr string) ([]Term, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if !strings.HasPrefix(expr, "+") && !strings.HasPrefix(expr, "-") {
		expr = "+" + expr
	}
	expr = signSplitPat.ReplaceAllString(expr, " $1 ")
	fields := strings.Fields(expr)

	var terms []Term
	for i := 0; i < len(fields); i++ {
		sign := 1.0
		tok := fields[i]
		switch tok {
		case "+":
			continue
		case "-":
			sign = -1
			i++
			if i >= len(fields) {
				return nil, errors.Errorf("lpexpr: dangling sign in %q", expr)
			}
			tok = fields[i]
		default:
			if strings.HasPrefix(tok, "+") {
				tok = strings.TrimPrefix(tok, "+")
			}
		}

		if constantPat.MatchString(tok) {
			// A bare constant on the LHS of an objective or constraint
			// has no variable; keep it as a term with an empty name so
			// callers can decide whether to fold it into the RHS.
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "lpexpr: invalid constant %q", tok)
			}
			terms = append(terms, Term{Coefficient: sign * v})
			continue
		}

		m := termPattern.FindStringSubmatch(tok)
		if m == nil {
			return nil, errors.Errorf("lpexpr: invalid term %q", tok)
		}
		coefStr, variable := m[1], m[2]
		coef := 1.0
		if coefStr != "" && coefStr != "+" {
			v, err := strconv.ParseFloat(coefStr, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "lpexpr: invalid coefficient in %q", tok)
			}
			coef = v
		}
		terms = append(terms, Term{Coefficient: sign * coef, Variable: variable})
	}
	return terms, nil
}

// ToMatrices lays out p's variables in a stable order and returns the
// objective row and combined constraints matrix that simplex.Solve
// expects: objective has n entries, constraints has len(p.Constraints)
// rows of n+1 entries each (coefficients then right-hand side).
func (p *Problem) ToMatrices() (objective []float64, constraints [][]float64) {
	index := make(map[string]int, len(p.Variables))
	for i, v := range p.Variables {
		index[v] = i
	}
	n := len(p.Variables)

	objective = make([]float64, n)
	for _, term := range p.Objective {
		if term.Variable == "" {
			continue
		}
		objective[index[term.Variable]] += term.Coefficient
	}

	constraints = make([][]float64, len(p.Constraints))
	for i, row := range p.Constraints {
		line := make([]float64, n+1)
		for _, term := range row {
			if term.Variable == "" {
				continue
			}
			line[index[term.Variable]] += term.Coefficient
		}
		line[n] = p.RHS[i]
		constraints[i] = line
	}
	return objective, constraints
}
