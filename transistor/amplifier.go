package transistor

// Amplifier drives every stage with the same signal and input and sums
// their outputs. It knows nothing about concrete device types; adding a
// new Transistor implementation needs no change here.
type Amplifier struct {
	stages []Transistor
}

// NewAmplifier returns an Amplifier with the given stages.
func NewAmplifier(stages ...Transistor) *Amplifier {
	return &Amplifier{stages: stages}
}

// AddStage appends a stage to the circuit.
func (a *Amplifier) AddStage(t Transistor) {
	a.stages = append(a.stages, t)
}

// Stages reports how many stages the circuit holds.
func (a *Amplifier) Stages() int {
	return len(a.stages)
}

// Drive applies signal and input to every stage and returns the summed
// output.
func (a *Amplifier) Drive(signal, input float64) float64 {
	total := 0.0
	for _, stage := range a.stages {
		stage.Base(signal)
		stage.Collector(input)
		total += stage.Output()
	}
	return total
}
