package calc

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is reported when evaluation divides by zero. Parsing
// cannot catch it; it is a runtime result for the line.
var ErrDivideByZero = errors.New("division by zero")

// Eval folds the operand to an integer.
func (o *Operand) Eval() (int, error) {
	switch {
	case o.Number != nil:
		return int(*o.Number), nil
	case o.Signed != nil:
		return o.Signed.Eval()
	default:
		return o.Sub.Eval()
	}
}

// Eval applies the unary sign to the evaluated operand.
func (s *SignedNumber) Eval() (int, error) {
	rhs, err := s.Operand.Eval()
	if err != nil {
		return 0, err
	}
	switch s.Sign {
	case '-':
		return -rhs, nil
	case '+':
		return rhs, nil
	}
	// The grammar only produces '+' and '-'.
	panic(fmt.Sprintf("unsupported sign %q", s.Sign))
}

// Eval evaluates the program: the first operand, then each operation
// folded against the running value, strictly left to right. Division
// is integer division.
func (p *Program) Eval() (int, error) {
	acc, err := p.First.Eval()
	if err != nil {
		return 0, err
	}
	for _, op := range p.Rest {
		rhs, err := op.Operand.Eval()
		if err != nil {
			return 0, err
		}
		switch op.Operator {
		case '+':
			acc += rhs
		case '-':
			acc -= rhs
		case '*':
			acc *= rhs
		case '/':
			if rhs == 0 {
				return 0, fmt.Errorf("%d / 0: %w", acc, ErrDivideByZero)
			}
			acc /= rhs
		default:
			panic(fmt.Sprintf("unsupported operator %q", op.Operator))
		}
	}
	return acc, nil
}
