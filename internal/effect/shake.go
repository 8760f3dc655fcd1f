package effect

import (
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/motion"
)

// ShakeSequence is the rotation, in degrees, the target passes through.
var ShakeSequence = []float64{0, -15, 15, -5, 5, 0}

// ShakeSubsteps is the number of frames spent between two angles.
const ShakeSubsteps = 10

// Shake wobbles the target through ShakeSequence and then clears its
// rotation. Overlapping shakes on one target always settle at zero.
type Shake struct{}

// Name implements Namer.
func (Shake) Name() string { return "shake" }

// Run implements Effect.
func (Shake) Run(p Props) func() {
	m := &shakeMachine{props: p}
	if !p.Target.Connected() {
		m.state = shakeDone
		p.Cleanup()
		return m.stop
	}
	m.handle = p.Frames.RequestFrame(m.advance)
	return m.stop
}

type shakeState int

const (
	shakeRunning shakeState = iota
	shakeDone
)

// shakeMachine advances one sub-step per frame. step counts completed
// sub-steps across all segments.
type shakeMachine struct {
	props  Props
	state  shakeState
	step   int
	handle frame.Handle
}

func (m *shakeMachine) total() int {
	return (len(ShakeSequence) - 1) * ShakeSubsteps
}

func (m *shakeMachine) advance(time.Time) {
	m.handle = frame.Handle{}
	if m.state != shakeRunning {
		return
	}
	if m.step >= m.total() {
		m.state = shakeDone
		m.props.Target.Style.Rotate = 0
		m.props.Cleanup()
		return
	}
	m.step++
	segment := (m.step - 1) / ShakeSubsteps
	sub := (m.step-1)%ShakeSubsteps + 1
	from, to := ShakeSequence[segment], ShakeSequence[segment+1]
	m.props.Target.Style.Rotate = motion.Lerp(from, to, float64(sub)/ShakeSubsteps)
	m.handle = m.props.Frames.RequestFrame(m.advance)
}

func (m *shakeMachine) stop() {
	m.props.Frames.Cancel(m.handle)
	m.handle = frame.Handle{}
	if m.state == shakeRunning {
		m.state = shakeDone
		m.props.Target.Style.Rotate = 0
	}
}
