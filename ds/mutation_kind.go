package ds

// MutationKind identifies one of the three geometric mutation operators.
// Dispatched with a plain switch (see bpt.Mutate) rather than an array of
// closures.
type MutationKind int

const (
	MutationBuddyBuddy MutationKind = iota
	MutationShake
	MutationJiggle
)

func (k MutationKind) String() string {
	switch k {
	case MutationBuddyBuddy:
		return "BuddyBuddy"
	case MutationShake:
		return "Shake"
	case MutationJiggle:
		return "Jiggle"
	default:
		return "Unknown"
	}
}
