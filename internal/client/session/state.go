package session

// Phase is the lifecycle position of a Session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitializing
	PhaseAuthenticated
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitializing:
		return "initializing"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a Session.
//
// IsAuthenticated is true iff Token is non-empty. IsInitializing is true
// until the first Initialize finishes and false from then on.
type State struct {
	Token           string
	IsAuthenticated bool
	IsInitializing  bool

	phase Phase
}

// Phase returns the lifecycle phase the snapshot was taken in.
func (s State) Phase() Phase {
	return s.phase
}

func uninitialized() State {
	return State{IsInitializing: true, phase: PhaseUninitialized}
}

func initializing() State {
	return State{IsInitializing: true, phase: PhaseInitializing}
}

func authenticated(token string) State {
	return State{Token: token, IsAuthenticated: true, phase: PhaseAuthenticated}
}

func unauthenticated() State {
	return State{phase: PhaseUnauthenticated}
}
