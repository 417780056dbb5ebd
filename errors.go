package simplex

import "github.com/pkg/errors"

// Contract violations on the Solve boundary are reported as ordinary
// errors rather than returned statuses: they describe a caller bug
// (wrong shape), not an outcome of the linear program itself.
var (
	errObjectiveNotRow  = errors.New("simplex: objective must be a single row")
	errShapeMismatch    = errors.New("simplex: constraints column count must equal len(objective)+1")
	errEmptyObjective   = errors.New("simplex: objective must have at least one variable")
	errNegativeRowCount = errors.New("simplex: constraints must have at least one row")
)
