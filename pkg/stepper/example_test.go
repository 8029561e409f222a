package stepper_test

import (
	"fmt"

	"github.com/go-drift/dyntype/pkg/stepper"
)

func ExampleStepper() {
	s := stepper.New()
	s.SetBounds(0, 1)
	s.SetStepSize(0.25)
	s.AddListener(func(v float64) {
		fmt.Println("value", v)
	})

	for s.Increment() {
	}
	fmt.Printf("%+v\n", s.Affordance())
	// Output:
	// value 0.25
	// value 0.5
	// value 0.75
	// value 1
	// {CanDecrement:true CanIncrement:false}
}

func ExampleAutoRepeat_Delay() {
	p := stepper.DefaultAutoRepeat()
	for _, fired := range []int{0, 1, 10} {
		fmt.Println(fired, p.Delay(fired))
	}
	// Output:
	// 0 500ms
	// 1 150ms
	// 10 50ms
}
