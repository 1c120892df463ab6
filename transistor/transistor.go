// transistor is an open-closed example: an amplifier built from stages
// behind a single Transistor interface, so new device models extend the
// circuit without modifying it.
package transistor

// Transistor models a three-terminal device: a control signal on the
// base/gate, a main input on the collector/drain, and a measured output.
type Transistor interface {
	Base(signal float64)
	Collector(input float64)
	Output() float64
}

// BJT is a bipolar junction transistor with a crude linear gain model.
type BJT struct {
	baseSignal     float64
	collectorInput float64
}

// NewBJT returns an unbiased BJT.
func NewBJT() *BJT {
	return &BJT{}
}

func (b *BJT) Base(signal float64) {
	b.baseSignal = signal
}

func (b *BJT) Collector(input float64) {
	b.collectorInput = input
}

func (b *BJT) Output() float64 {
	return b.collectorInput * (b.baseSignal * 0.1)
}

// FET is a field effect transistor; slightly higher transconductance
// than the BJT model.
type FET struct {
	gateVoltage  float64
	drainCurrent float64
}

// NewFET returns an unbiased FET.
func NewFET() *FET {
	return &FET{}
}

func (f *FET) Base(signal float64) {
	f.gateVoltage = signal
}

func (f *FET) Collector(input float64) {
	f.drainCurrent = input
}

func (f *FET) Output() float64 {
	return f.drainCurrent * (f.gateVoltage * 0.15)
}

// mosfetThreshold is the gate voltage below which the MOSFET model
// conducts nothing.
const mosfetThreshold = 0.7

// MOSFET conducts only above its gate threshold.
type MOSFET struct {
	gateVoltage  float64
	drainCurrent float64
}

// NewMOSFET returns an unbiased MOSFET.
func NewMOSFET() *MOSFET {
	return &MOSFET{}
}

func (m *MOSFET) Base(signal float64) {
	m.gateVoltage = signal
}

func (m *MOSFET) Collector(input float64) {
	m.drainCurrent = input
}

func (m *MOSFET) Output() float64 {
	if m.gateVoltage <= mosfetThreshold {
		return 0
	}
	return m.drainCurrent * (m.gateVoltage - mosfetThreshold) * 0.2
}
