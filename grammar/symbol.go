package grammar

// EpsilonMarker denotes the empty production in a rhs.
const EpsilonMarker = "<u>"

// Kind classifies a Symbol.
type Kind int

const (
	Terminal Kind = iota
	Nonterminal
	Epsilon
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Nonterminal:
		return "nonterminal"
	case Epsilon:
		return "epsilon"
	}

	return "unknown"
}

// Symbol is a rhs symbol together with its kind, resolved at load time.
type Symbol struct {
	Text string
	Kind Kind
}

func (s Symbol) String() string {
	return s.Text
}
