package workforce

// workDraw is the charge one unit of work draws from a robot's battery.
const workDraw = 10

// Robot is a machine worker: it works, recharges and runs programs, and
// is never asked to eat, sleep or socialize.
type Robot struct {
	Serial  string
	battery int
	program string
}

// NewRobot returns a fully charged Robot.
func NewRobot(serial string) *Robot {
	return &Robot{Serial: serial, battery: 100}
}

func (r *Robot) Work() error {
	if r.battery < workDraw {
		return ErrExhausted
	}
	r.battery -= workDraw
	return nil
}

func (r *Robot) Recharge() {
	r.battery = 100
}

func (r *Robot) BatteryLevel() int {
	return r.battery
}

func (r *Robot) LoadProgram(program string) {
	r.program = program
}

func (r *Robot) RunProgram() error {
	if r.program == "" {
		return ErrNoProgram
	}
	return r.Work()
}

var (
	_ Worker       = (*Robot)(nil)
	_ Rechargeable = (*Robot)(nil)
	_ Programmable = (*Robot)(nil)
)
