package anim

// Factory builds a fresh Animation when its turn in a sequence comes.
// Building late lets an animation start from the state the previous one
// left its target in. A factory returning nil is skipped.
type Factory func() Animation

// Animator plays a sequence of animations one at a time. It does not loop:
// once the last animation finishes the Animator goes idle until Start is
// called again.
type Animator struct {
	factories []Factory
	current   Animation

	// number of factories consumed; the active index is consumed-1
	consumed int

	currentTime    float32
	nextTransition float32
}

func NewAnimator(factories ...Factory) *Animator {
	return &Animator{factories: factories}
}

// AddAnimation appends a factory to the end of the sequence.
func (a *Animator) AddAnimation(f Factory) {
	a.factories = append(a.factories, f)
}

func (a *Animator) Len() int { return len(a.factories) }

// Index is the position of the active animation in the sequence, -1 before
// Start and Len() once the sequence is exhausted.
func (a *Animator) Index() int { return a.consumed - 1 }

func (a *Animator) Current() Animation { return a.current }

func (a *Animator) Running() bool { return a.current != nil }

func (a *Animator) CurrentTime() float32 { return a.currentTime }

// NextTransition is the sequence time at which the active animation ends.
// It advances from the previous threshold by each new animation's duration,
// not from the current time, so time left over after a transition is
// carried into the next animation.
func (a *Animator) NextTransition() float32 { return a.nextTransition }

// Start rewinds the sequence and builds its first animation.
func (a *Animator) Start() {
	a.currentTime = 0
	a.nextTransition = 0
	a.consumed = 0
	a.current = nil
	a.next()
}

// Tick advances the active animation by dt. Time left over after an
// animation ends is handed to the animations that follow it.
func (a *Animator) Tick(dt float32) {
	if a.current == nil {
		return
	}
	a.currentTime += dt
	a.current.Tick(dt)

	for a.current != nil && a.currentTime >= a.nextTransition {
		threshold := a.nextTransition
		a.next()
		if a.current != nil {
			a.current.Tick(a.currentTime - threshold)
		}
	}
}

// next builds the following animation and moves the transition point past
// it, or clears the active animation when nothing is left.
func (a *Animator) next() {
	a.current = nil
	for a.consumed < len(a.factories) {
		f := a.factories[a.consumed]
		a.consumed++
		if anim := f(); anim != nil {
			a.current = anim
			a.nextTransition += anim.Duration()
			return
		}
	}
	a.consumed = len(a.factories) + 1
}
