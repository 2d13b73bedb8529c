package model

import "fmt"

// StatusKind is a non-volatile status condition.
type StatusKind uint8

const (
	StatusHealthy StatusKind = iota
	StatusBurned
	StatusPoisoned
	StatusParalyzed
	StatusAsleep
	StatusFrozen
)

func (k StatusKind) String() string {
	switch k {
	case StatusHealthy:
		return "Healthy"
	case StatusBurned:
		return "Burned"
	case StatusPoisoned:
		return "Poisoned"
	case StatusParalyzed:
		return "Paralyzed"
	case StatusAsleep:
		return "Asleep"
	case StatusFrozen:
		return "Frozen"
	default:
		return fmt.Sprintf("StatusKind(%d)", uint8(k))
	}
}

// Status: состояние комбатанта. SleepTurns имеет смысл только для StatusAsleep.
// Поведение статусов по ходам реализует battle engine, здесь только данные.
type Status struct {
	Kind       StatusKind
	SleepTurns uint8
}

// Healthy returns the zero status.
func Healthy() Status { return Status{} }

// Burned returns a burn status.
func Burned() Status { return Status{Kind: StatusBurned} }

// Poisoned returns a poison status.
func Poisoned() Status { return Status{Kind: StatusPoisoned} }

// Paralyzed returns a paralysis status.
func Paralyzed() Status { return Status{Kind: StatusParalyzed} }

// Frozen returns a freeze status.
func Frozen() Status { return Status{Kind: StatusFrozen} }

// Asleep returns a sleep status with the given number of remaining turns.
func Asleep(turns uint8) Status { return Status{Kind: StatusAsleep, SleepTurns: turns} }

// IsBurned reports whether the status halves physical attack.
func (s Status) IsBurned() bool {
	return s.Kind == StatusBurned
}

func (s Status) String() string {
	if s.Kind == StatusAsleep {
		return fmt.Sprintf("Asleep(%d)", s.SleepTurns)
	}
	return s.Kind.String()
}
