// Command simplex-solve reads a linear program written in a small
// algebraic text format and prints its optimal value and solution
// vector, using a two-phase simplex solver with Bland's rule.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/ivasenko/gosimplex"
	"github.com/ivasenko/gosimplex/internal/lpexpr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simplex-solve",
		Short: "Solve a linear program with the two-phase simplex method",
	}

	solve := &cobra.Command{
		Use:   "solve",
		Short: "Solve the problem described by --problem",
		RunE:  runSolve,
	}
	solve.Flags().String("problem", "", "path to a problem file (required)")
	solve.Flags().Bool("verbose", false, "trace every pivot")
	solve.Flags().String("log-format", "console", "log output format: console or json")
	_ = viper.BindPFlag("problem", solve.Flags().Lookup("problem"))
	_ = viper.BindPFlag("verbose", solve.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("log-format", solve.Flags().Lookup("log-format"))

	root.AddCommand(solve)
	return root
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.ProblemFile == "" {
		return fmt.Errorf("simplex-solve: --problem is required")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("simplex-solve: building logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	objectiveLine, constraintLines, err := readProblemFile(cfg.ProblemFile)
	if err != nil {
		return fmt.Errorf("simplex-solve: %w", err)
	}

	problem, err := lpexpr.Parse(objectiveLine, constraintLines)
	if err != nil {
		return fmt.Errorf("simplex-solve: %w", err)
	}

	objectiveCoefs, constraintRows := problem.ToMatrices()
	if len(objectiveCoefs) == 0 {
		return fmt.Errorf("simplex-solve: problem declares no variables")
	}

	simplex.SetTracer(&zapTracer{log: sugar})

	objective := mat.NewDense(1, len(objectiveCoefs), objectiveCoefs)
	constraints := flattenConstraints(constraintRows, len(objectiveCoefs))

	status, x, err := simplex.Solve(objective, constraints)
	if err != nil {
		return fmt.Errorf("simplex-solve: %w", err)
	}

	sugar.Infow("solved", "status", status.String())
	switch status {
	case simplex.StatusInfeasible:
		fmt.Println("infeasible")
	case simplex.StatusUnbounded:
		fmt.Println("unbounded")
	default:
		fmt.Printf("status: %s\n", status)
		for i, name := range problem.Variables {
			fmt.Printf("%s = %g\n", name, x[i])
		}
		fmt.Printf("objective = %g\n", dotProduct(objectiveCoefs, x))
	}
	return nil
}

func flattenConstraints(rows [][]float64, n int) *mat.Dense {
	m := len(rows)
	data := make([]float64, 0, m*(n+1))
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(m, n+1, data)
}

func dotProduct(a, x []float64) float64 {
	total := 0.0
	for i := range a {
		total += a[i] * x[i]
	}
	return total
}

// readProblemFile reads a problem file whose first non-blank,
// non-comment line is the objective ("maximize: ...") and whose
// remaining non-blank, non-comment lines are "<=" constraints. Lines
// starting with "#" are treated as comments.
func readProblemFile(path string) (objective string, constraints []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if objective == "" {
			objective = line
			continue
		}
		constraints = append(constraints, line)
	}
	if err := scanner.Err(); err != nil {
		return "", nil, err
	}
	if objective == "" {
		return "", nil, fmt.Errorf("problem file %q has no objective line", path)
	}
	return objective, constraints, nil
}
