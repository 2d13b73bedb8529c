package combat

import "fmt"

// ContractViolation reports input that the caller must never produce
// (e.g. a Status move with power, a zero stat on a critical hit).
// CalcDamage panics with *ContractViolation; it is not a recoverable runtime condition.
type ContractViolation struct {
	Op     string
	Reason string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("combat: %s: contract violation: %s", e.Op, e.Reason)
}

func violate(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Reason: fmt.Sprintf(format, args...)})
}
