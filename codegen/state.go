package codegen

import "fmt"

// State is the TranslationUnitState of spec.md §3: per-run state owned by
// CodeGen. current_function, call counts, and comparison counters persist
// across files in a single run so every emitted label stays globally
// unique in the combined output; file_prefix is reassigned per file.
type State struct {
	filePrefix      string
	currentFunction string

	eqCount uint
	gtCount uint
	ltCount uint

	callCounts map[string]uint

	// staticLabels records the first-use order of each "<prefix>.<offset>"
	// slot. The map's value is unused semantically (the label text is
	// reconstructed on demand); it exists only so repeated lookups of the
	// same slot are idempotent; staticOrder keeps the discovery order that
	// the inspector lists.
	staticLabels map[string]int
	staticOrder  []string
}

// NewState constructs a fresh, empty TranslationUnitState. Construct once
// per run (spec.md §3 Lifecycle).
func NewState() *State {
	return &State{
		callCounts:   make(map[string]uint),
		staticLabels: make(map[string]int),
	}
}

// EnterFile resets file_prefix for a newly-opened input file. Per spec.md
// §3 Invariants, this is the only field reset between files in one run.
func (s *State) EnterFile(prefix string) {
	s.filePrefix = prefix
}

// EnterFunction records the most recently declared function, used to
// namespace local branch labels (spec.md §4.3.5).
func (s *State) EnterFunction(name string) {
	s.currentFunction = name
}

// CurrentFunction returns the active function scope, or "" before any
// function has been declared in the run.
func (s *State) CurrentFunction() string {
	return s.currentFunction
}

// ScopedLabel returns the function-scoped label for a branch target
// (spec.md §3 Invariants). When no function has been entered yet, the
// scope prefix is simply omitted — the documented undefined-by-the-VM-spec
// edge case (spec.md §9 Open questions).
func (s *State) ScopedLabel(name string) string {
	if s.currentFunction == "" {
		return "$" + name
	}
	return s.currentFunction + "$" + name
}

// NextEq, NextGt, NextLt post-increment their respective counters and
// return the new value, so the first eq in a run is EQ1 (spec.md §4.3.3).
func (s *State) NextEq() uint { s.eqCount++; return s.eqCount }
func (s *State) NextGt() uint { s.gtCount++; return s.gtCount }
func (s *State) NextLt() uint { s.ltCount++; return s.ltCount }

// NextCallLabel assigns the next return label for a call to name,
// starting at 1 on first encounter and counting per-callee across the
// whole run (spec.md §4.3.6, testable property 3).
func (s *State) NextCallLabel(name string) string {
	s.callCounts[name]++
	return fmt.Sprintf("%s$ret.%d", name, s.callCounts[name])
}

// StaticLabel returns the stable textual label for a static slot at the
// given offset within the current file, recording first use so the same
// label is produced consistently for both push and pop within the file
// (spec.md §4.3.8, testable property 2).
func (s *State) StaticLabel(offset uint) string {
	label := fmt.Sprintf("%s.%d", s.filePrefix, offset)
	if _, seen := s.staticLabels[label]; !seen {
		s.staticLabels[label] = len(s.staticOrder)
		s.staticOrder = append(s.staticOrder, label)
	}
	return label
}

// StaticLabels returns every static label recorded so far, in first-use
// order. Used by the inspector, not by translation itself.
func (s *State) StaticLabels() []string {
	out := make([]string, len(s.staticOrder))
	copy(out, s.staticOrder)
	return out
}

// CallCounts returns a snapshot of per-callee invocation counts. Used by
// the inspector.
func (s *State) CallCounts() map[string]uint {
	out := make(map[string]uint, len(s.callCounts))
	for k, v := range s.callCounts {
		out[k] = v
	}
	return out
}

// Counters returns the current eq/gt/lt counter values.
func (s *State) Counters() (eq, gt, lt uint) {
	return s.eqCount, s.gtCount, s.ltCount
}
