// workforce is an interface-segregation example: capabilities are split
// into one-concern interfaces so each implementer picks up only the
// methods it can honor, and clients depend only on the capability they
// actually use.
package workforce

import "errors"

var (
	// ErrExhausted is returned when a worker has no energy or charge left.
	ErrExhausted = errors.New("worker is exhausted")
	// ErrNoProgram is returned when a robot is told to run with nothing loaded.
	ErrNoProgram = errors.New("no program loaded")
)

// Worker performs a unit of work.
type Worker interface {
	Work() error
}

// Biological covers needs only living workers have.
type Biological interface {
	Eat()
	Sleep()
}

// Learner acquires new skills.
type Learner interface {
	Learn(skill string)
}

// Communicator exchanges messages.
type Communicator interface {
	Communicate(message string) string
}

// Rechargeable covers battery-backed workers.
type Rechargeable interface {
	Recharge()
	BatteryLevel() int
}

// Programmable accepts and executes stored programs.
type Programmable interface {
	LoadProgram(program string)
	RunProgram() error
}

// RunShift drives each worker once. It depends on Worker alone, so humans
// and machines are equally acceptable. It returns how many completed.
func RunShift(workers ...Worker) int {
	completed := 0
	for _, w := range workers {
		if err := w.Work(); err == nil {
			completed++
		}
	}
	return completed
}
