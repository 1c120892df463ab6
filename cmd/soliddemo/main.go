// soliddemo walks through each example package on the console: the
// substitutable container family, a transfer between unlike variants, the
// extensible amplifier, the decomposed user service and a mixed shift.
package main

import (
	"fmt"
	"os"

	"github.com/symonk/solid/container"
	"github.com/symonk/solid/transistor"
	"github.com/symonk/solid/users"
	"github.com/symonk/solid/workforce"
)

func main() {
	demoContainers()
	demoTransfer()
	demoAmplifier()
	demoUserService()
	demoShift()
}

func demoContainers() {
	fmt.Println("--- container variants, one client ---")
	variants := map[string]container.Container[int]{
		"stack":          container.NewStack[int](),
		"queue":          container.NewQueue[int](),
		"priority queue": container.NewPriorityQueue[int](),
		"deque (back)":   container.NewDeque[int](),
		"deque (front)":  container.NewDeque[int](container.WithFrontRemoval()),
	}
	for name, c := range variants {
		describe(name, c)
	}
	fmt.Println()
}

// describe is written purely against the contract; every variant takes
// the same walk.
func describe(name string, c container.Container[int]) {
	for _, v := range []int{5, 1, 3} {
		c.Add(v)
	}
	next, _ := c.Peek()
	removed, _ := c.Remove()
	fmt.Printf("%-14s add 5,1,3  peek=%d remove=%d size=%d drained=%v\n",
		name, next, removed, c.Size(), container.Drain[int](c))
}

func demoTransfer() {
	fmt.Println("--- transfer between unlike variants ---")
	source := container.NewStack[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		source.Add(v)
	}
	target := container.NewQueue[int]()
	moved := container.Transfer[int](source, target, 3)
	fmt.Printf("moved %d elements, source keeps %d, target drains to %v\n\n",
		moved, source.Size(), container.Drain[int](target))
}

func demoAmplifier() {
	fmt.Println("--- amplifier, open to new stages ---")
	amp := transistor.NewAmplifier(
		transistor.NewBJT(),
		transistor.NewFET(),
		transistor.NewMOSFET(),
	)
	fmt.Printf("%d stages driven at signal=2.0 input=5.0 -> %.2f\n\n",
		amp.Stages(), amp.Drive(2.0, 5.0))
}

func demoUserService() {
	fmt.Println("--- user service, one responsibility each ---")
	svc := users.NewService(
		users.NewRuleValidator(),
		users.NewMemoryRepository(),
		users.NewConsoleNotifier(os.Stdout),
		users.NewConsoleAuditLog(os.Stdout),
	)
	if _, err := svc.Register("ada", "ada@example.com"); err != nil {
		fmt.Println("register failed:", err)
	}
	if _, err := svc.Register("x", "bad"); err != nil {
		fmt.Println("rejected:", err)
	}
	fmt.Println()
}

func demoShift() {
	fmt.Println("--- shift staffed by humans and machines ---")
	robot := workforce.NewRobot("rx-7")
	robot.LoadProgram("weld")
	completed := workforce.RunShift(workforce.NewEmployee("mira"), robot)
	fmt.Printf("%d workers completed the shift\n", completed)
}
