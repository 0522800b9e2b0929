package cli

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/dualdiff/internal/dual"
)

// expression is a named univariate function available to eval and integrate.
type expression struct {
	Description string
	F           func(x dual.Dual) dual.Dual
	// Antiderivative, when known, gives the exact integral.
	Antiderivative func(x float64) float64
}

var expressions = map[string]expression{
	"square": {
		Description:    "x^2",
		F:              dual.Square,
		Antiderivative: func(x float64) float64 { return x * x * x / 3 },
	},
	"quadratic": {
		Description: "2x^2 + 3x + 4",
		F: func(x dual.Dual) dual.Dual {
			return dual.ScalarMul(2, x.Pow(2)).Add(dual.ScalarMul(3, x)).AddScalar(4)
		},
		Antiderivative: func(x float64) float64 { return 2*x*x*x/3 + 1.5*x*x + 4*x },
	},
	"parabola": {
		Description:    "x^2 + 2x + 1",
		F:              parabola,
		Antiderivative: func(x float64) float64 { return math.Pow(x+1, 3) / 3 },
	},
	"sin": {
		Description:    "sin(x)",
		F:              dual.Sin,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
	},
	"sqrt": {
		Description:    "sqrt(x)",
		F:              dual.Sqrt,
		Antiderivative: func(x float64) float64 { return 2 * math.Pow(x, 1.5) / 3 },
	},
	"composite": {
		Description: "tan(ln(x) + sin(x)) + x*cos(x)",
		F: func(x dual.Dual) dual.Dual {
			return dual.Tan(dual.Ln(x).Add(dual.Sin(x))).Add(x.Mul(dual.Cos(x)))
		},
	},
}

func parabola(x dual.Dual) dual.Dual {
	return dual.Square(x).Add(dual.ScalarMul(2, x)).AddScalar(1)
}

func lookupExpression(name string) (expression, error) {
	e, ok := expressions[name]
	if !ok {
		return expression{}, errors.Errorf("unknown expression %q (available: %v)", name, expressionNames())
	}
	return e, nil
}

func expressionNames() []string {
	names := make([]string, 0, len(expressions))
	for name := range expressions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
