package workforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeWorkDrainsEnergy(t *testing.T) {
	e := NewEmployee("mira")
	require.NoError(t, e.Work())
	assert.Equal(t, 80, e.Energy())
}

func TestEmployeeCannotWorkExhausted(t *testing.T) {
	e := NewEmployee("mira")
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Work())
	}
	assert.ErrorIs(t, e.Work(), ErrExhausted)
	e.Sleep()
	assert.NoError(t, e.Work())
}

func TestEmployeeEatCapsEnergy(t *testing.T) {
	e := NewEmployee("mira")
	require.NoError(t, e.Work())
	e.Eat()
	assert.Equal(t, 100, e.Energy())
}

func TestEmployeeLearnsAndCommunicates(t *testing.T) {
	e := NewEmployee("mira")
	e.Learn("go")
	e.Learn("review")
	assert.Equal(t, []string{"go", "review"}, e.Skills())
	assert.Equal(t, "mira says: done", e.Communicate("done"))
}

func TestRobotWorkDrawsBattery(t *testing.T) {
	r := NewRobot("rx-7")
	require.NoError(t, r.Work())
	assert.Equal(t, 90, r.BatteryLevel())
	r.Recharge()
	assert.Equal(t, 100, r.BatteryLevel())
}

func TestRobotRunsOnlyLoadedPrograms(t *testing.T) {
	r := NewRobot("rx-7")
	assert.ErrorIs(t, r.RunProgram(), ErrNoProgram)
	r.LoadProgram("weld")
	assert.NoError(t, r.RunProgram())
	assert.Equal(t, 90, r.BatteryLevel())
}

func TestRobotDrainedCannotRun(t *testing.T) {
	r := NewRobot("rx-7")
	r.LoadProgram("weld")
	for i := 0; i < 10; i++ {
		require.NoError(t, r.RunProgram())
	}
	assert.ErrorIs(t, r.RunProgram(), ErrExhausted)
}

// RunShift only sees Worker, so it cannot tell humans and machines apart.
func TestRunShiftAcceptsAnyWorker(t *testing.T) {
	tired := NewEmployee("tired")
	for i := 0; i < 5; i++ {
		require.NoError(t, tired.Work())
	}
	completed := RunShift(NewEmployee("mira"), NewRobot("rx-7"), tired)
	assert.Equal(t, 2, completed)
}
