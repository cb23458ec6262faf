package rules

// ResultKind is the broad outcome of a finished game.
type ResultKind uint8

const (
	Died ResultKind = iota + 1
	Won
	ManuallyTerminated
)

func (k ResultKind) String() string {
	switch k {
	case Died:
		return "Died"
	case Won:
		return "Won"
	case ManuallyTerminated:
		return "ManuallyTerminated"
	default:
		return "Unknown"
	}
}

// DeathReason says why a game ended with Died.
type DeathReason uint8

const (
	NoReason DeathReason = iota
	HitWall
	HitSelf
)

func (r DeathReason) String() string {
	switch r {
	case HitWall:
		return "HitWall"
	case HitSelf:
		return "HitSelf"
	default:
		return "None"
	}
}

// Result is the terminal outcome of a simulation. Reason is only set when
// Kind is Died.
type Result struct {
	Kind   ResultKind
	Reason DeathReason
}

func (r Result) String() string {
	if r.Kind == Died {
		return "Died(" + r.Reason.String() + ")"
	}
	return r.Kind.String()
}
