package pnfa

import "github.com/coregx/btregex/internal/conv"

// Builder constructs an NFA incrementally using a low-level API, the same
// role coregx-coregex's nfa.Builder plays for its Thompson NFA. Lowering a
// parsed pattern AST into Builder calls is out of scope for this module;
// Builder exists so tests — and any host that already has its own compiler
// — can assemble a pure NFA directly.
//
// Transitions out of a state must be added in priority order, highest
// priority first: priority is encoded purely as list order, there is no
// separate priority field.
type Builder struct {
	states            []State
	anchoredInitial   StateID
	unanchoredInitial StateID
	captureCount      int
	nQuantifiers      int
	nZeroWidth        int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		anchoredInitial:   InvalidState,
		unanchoredInitial: InvalidState,
		captureCount:      1, // group 0, the whole match, always exists
	}
}

func (b *Builder) addState(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddInitialOrFinal adds a KindInitialOrFinal state with the given role
// flags and returns its id.
func (b *Builder) AddInitialOrFinal(anchoredInitial, unanchoredInitial, anchoredFinal, unanchoredFinal bool) StateID {
	return b.addState(State{
		kind:              KindInitialOrFinal,
		anchoredInitial:   anchoredInitial,
		unanchoredInitial: unanchoredInitial,
		anchoredFinal:     anchoredFinal,
		unanchoredFinal:   unanchoredFinal,
	})
}

// AddCharacterClass adds a KindCharacterClass state testing membership in
// cs.
func (b *Builder) AddCharacterClass(cs *CharSet) StateID {
	return b.addState(State{kind: KindCharacterClass, charSet: cs})
}

// AddLookaround adds a KindLookaround state referring to sub-executor
// lookaroundID.
func (b *Builder) AddLookaround(lookaroundID int, negated bool) StateID {
	return b.addState(State{kind: KindLookaround, lookaroundID: lookaroundID, negated: negated})
}

// AddBackReference adds a KindBackReference state referring to capture
// group groupNumber.
func (b *Builder) AddBackReference(groupNumber int) StateID {
	if groupNumber+1 > b.captureCount {
		b.captureCount = groupNumber + 1
	}
	return b.addState(State{kind: KindBackReference, groupNumber: groupNumber})
}

// AddEmptyMatch adds a KindEmptyMatch marker state.
func (b *Builder) AddEmptyMatch() StateID {
	return b.addState(State{kind: KindEmptyMatch})
}

// DeclareCaptureGroups ensures the built NFA reports at least n capture
// groups (including group 0), even if no BackReference state references the
// highest-numbered one.
func (b *Builder) DeclareCaptureGroups(n int) {
	if n > b.captureCount {
		b.captureCount = n
	}
}

// NewQuantifier allocates a quantifier slot and returns it. withZeroWidth
// requests a zero-width witness slot as well, for quantifiers whose body
// can match empty.
func (b *Builder) NewQuantifier(min, max int, withZeroWidth bool) *Quantifier {
	q := &Quantifier{Index: b.nQuantifiers, Min: min, Max: max}
	b.nQuantifiers++
	if withZeroWidth {
		q.HasZeroWidth = true
		q.ZeroWidthIndex = b.nZeroWidth
		b.nZeroWidth++
	}
	return q
}

// AddTransition connects source to target with the given boundary updates,
// anchor guards, and quantifier guards, and registers it as source's next
// (forward) / target's next (backward) successor in priority order: calls
// made earlier for the same source have higher priority than calls made
// later.
func (b *Builder) AddTransition(source, target StateID, boundaries GroupBoundaries, caretGuard, dollarGuard bool, guards []QuantifierGuard) {
	t := Transition{
		Source:      source,
		Target:      target,
		Boundaries:  boundaries,
		CaretGuard:  caretGuard,
		DollarGuard: dollarGuard,
		Guards:      append([]QuantifierGuard(nil), guards...),
	}
	b.states[source].successorsForward = append(b.states[source].successorsForward, t)
	b.states[target].successorsBackward = append(b.states[target].successorsBackward, t)
	b.states[target].predecessors++
}

// SetStart records the anchored and unanchored initial state ids for the
// NFA being built. Pass the same id for both when the pattern has no
// loop-back behavior of its own (e.g. sub-NFAs for lookaround, which are
// always anchored to their entry point).
func (b *Builder) SetStart(anchored, unanchored StateID) {
	b.anchoredInitial = anchored
	b.unanchoredInitial = unanchored
}

// EnableInitialLoopBack installs the extra transition from the anchored
// initial state to the unanchored initial state, used for non-sticky
// patterns that do not start with ^. Grounded on
// TRegexBacktrackingNFAExecutorNode's constructor, which performs exactly
// this wiring when nfa == nfaMap.getRoot() and the pattern is not sticky
// and does not start with a caret.
func (b *Builder) EnableInitialLoopBack() {
	if b.anchoredInitial == b.unanchoredInitial || b.anchoredInitial == InvalidState {
		return
	}
	b.AddTransition(b.anchoredInitial, b.unanchoredInitial, GroupBoundaries{}, false, false, nil)
}

// Build finalizes the NFA and validates that every transition target is in
// range and that start states were set. The builder must not be used
// afterwards.
func (b *Builder) Build() (*NFA, error) {
	if b.anchoredInitial == InvalidState || b.unanchoredInitial == InvalidState {
		return nil, ErrNoStart
	}
	for i := range b.states {
		for _, t := range b.states[i].successorsForward {
			if int(t.Target) >= len(b.states) {
				return nil, &BuildError{StateID: StateID(i), Err: ErrInvalidState}
			}
		}
	}
	n := &NFA{
		states:                b.states,
		anchoredInitial:       b.anchoredInitial,
		unanchoredInitial:     b.unanchoredInitial,
		initialLoopBack:       b.anchoredInitial != b.unanchoredInitial && hasLoopBack(b.states[b.anchoredInitial], b.unanchoredInitial),
		captureCount:          b.captureCount,
		nQuantifiers:          b.nQuantifiers,
		nZeroWidthQuantifiers: b.nZeroWidth,
	}
	return n, nil
}

// MustBuild is like Build but panics on error, for tests and callers that
// construct the graph from trusted, statically-known shapes.
func (b *Builder) MustBuild() *NFA {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

func hasLoopBack(s State, unanchored StateID) bool {
	for _, t := range s.successorsForward {
		if t.Target == unanchored {
			return true
		}
	}
	return false
}
