package search

// State is a phase of the search sequence.
type State string

const (
	StateIdle            State = "idle"
	StatePropertySet     State = "property_set"
	StateWindowActivated State = "window_activated"
	StateWaitingReady    State = "waiting_ready"
	StateSettlingDelay   State = "settling_delay"
	StateFocusingResults State = "focusing_results"
	StateBuiltinSearch   State = "builtin_search"
	StateDelegated       State = "delegated"
	StateDone            State = "done"
	StateSkipped         State = "skipped"
)

// Step records one phase of a run.
type Step struct {
	State   State  `yaml:"state"             json:"state"`
	OK      bool   `yaml:"ok"                json:"ok"`
	Skipped bool   `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Command string `yaml:"command,omitempty" json:"command,omitempty"`
	Detail  string `yaml:"detail,omitempty"  json:"detail,omitempty"`
	Elapsed string `yaml:"elapsed,omitempty" json:"elapsed,omitempty"`
}

// Report describes what a search did. It exists for logs and CLI output;
// callers never branch on it.
type Report struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Action  string `yaml:"action"            json:"action"`
	Query   string `yaml:"query,omitempty"   json:"query,omitempty"`
	Method  string `yaml:"method,omitempty"  json:"method,omitempty"`
	Skin    string `yaml:"skin,omitempty"    json:"skin,omitempty"`
	Profile string `yaml:"profile,omitempty" json:"profile,omitempty"`
	Focused bool   `yaml:"focused"           json:"focused"`
	Steps   []Step `yaml:"steps,omitempty"   json:"steps,omitempty"`
}

// States returns the visited phases in order, with skipped phases reported
// as StateSkipped.
func (r Report) States() []State {
	out := make([]State, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Skipped {
			out = append(out, StateSkipped)
			continue
		}
		out = append(out, s.State)
	}
	return out
}

func (r *Report) add(s Step) {
	r.Steps = append(r.Steps, s)
}

func (r *Report) skip(state State, detail string) {
	r.Steps = append(r.Steps, Step{State: state, OK: true, Skipped: true, Detail: detail})
}
