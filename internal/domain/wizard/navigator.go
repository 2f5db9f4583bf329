package wizard

// Step identifies one screen of the profile wizard.
type Step string

const (
	StepPersonal   Step = "personal"
	StepEducation  Step = "education"
	StepExperience Step = "experience"
	StepSkills     Step = "skills"
	StepPreview    Step = "preview"
)

var steps = []Step{StepPersonal, StepEducation, StepExperience, StepSkills, StepPreview}

// Steps returns the fixed step order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// IndexOf returns the position of s, or -1 when s is not a wizard step.
func IndexOf(s Step) int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return -1
}

// Navigator tracks the active step. The zero value starts on StepPersonal.
// Every transition is total: out-of-range moves clamp instead of failing.
type Navigator struct {
	index int
}

func NewNavigator() Navigator {
	return Navigator{}
}

func (n Navigator) Index() int    { return n.index }
func (n Navigator) Current() Step { return steps[n.index] }
func (n Navigator) IsFirst() bool { return n.index == 0 }
func (n Navigator) IsLast() bool  { return n.index == len(steps)-1 }

func (n *Navigator) Next() {
	n.JumpToIndex(n.index + 1)
}

func (n *Navigator) Previous() {
	n.JumpToIndex(n.index - 1)
}

// JumpTo activates s regardless of the current position. It reports false and
// leaves the navigator untouched when s is not a wizard step.
func (n *Navigator) JumpTo(s Step) bool {
	i := IndexOf(s)
	if i < 0 {
		return false
	}
	n.index = i
	return true
}

func (n *Navigator) JumpToIndex(i int) {
	switch {
	case i < 0:
		n.index = 0
	case i > len(steps)-1:
		n.index = len(steps) - 1
	default:
		n.index = i
	}
}
