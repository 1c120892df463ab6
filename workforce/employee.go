package workforce

// workCost is the energy one unit of work drains from an employee.
const workCost = 20

// Employee is a human worker: biological, learning, communicating. It
// implements none of the machine capabilities.
type Employee struct {
	Name   string
	energy int
	skills []string
}

// NewEmployee returns a rested Employee.
func NewEmployee(name string) *Employee {
	return &Employee{Name: name, energy: 100}
}

// Energy reports remaining energy.
func (e *Employee) Energy() int {
	return e.energy
}

// Skills lists everything learned so far.
func (e *Employee) Skills() []string {
	return e.skills
}

func (e *Employee) Work() error {
	if e.energy < workCost {
		return ErrExhausted
	}
	e.energy -= workCost
	return nil
}

func (e *Employee) Eat() {
	e.energy = min(e.energy+30, 100)
}

func (e *Employee) Sleep() {
	e.energy = 100
}

func (e *Employee) Learn(skill string) {
	e.skills = append(e.skills, skill)
}

func (e *Employee) Communicate(message string) string {
	return e.Name + " says: " + message
}

var (
	_ Worker       = (*Employee)(nil)
	_ Biological   = (*Employee)(nil)
	_ Learner      = (*Employee)(nil)
	_ Communicator = (*Employee)(nil)
)
