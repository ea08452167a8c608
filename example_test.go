package fsmall_test

import (
	"fmt"

	"github.com/jpnt/fsmall"
)

// A four-state dimmer switch with two buttons: "on" cycles the
// brightness up, "off" turns the light off from anywhere.
const (
	lightOff fsmall.State = iota
	lightDimmed
	lightMedium
	lightBright
)

var dimmerTransitions = fsmall.TransitionTable[string]{
	{From: lightOff, Input: "on", To: lightDimmed},
	{From: lightDimmed, Input: "on", To: lightMedium},
	{From: lightMedium, Input: "on", To: lightBright},
	{From: lightBright, Input: "on", To: lightDimmed},
	{From: lightDimmed, Input: "off", To: lightOff},
	{From: lightMedium, Input: "off", To: lightOff},
	{From: lightBright, Input: "off", To: lightOff},
	{From: lightOff, Input: "off", To: lightOff},
}

// Example: Moore flavor of the dimmer, each state has a fixed
// brightness.
func Example_mooreLightswitch() {
	outputs := []string{"off", "low", "medium", "high"}

	fsm := fsmall.NewMoore(lightOff, dimmerTransitions, outputs)

	brightness, _ := fsm.CurrentOutput()
	fmt.Println("brightness:", brightness)

	for _, press := range []string{"on", "on", "on", "off"} {
		brightness, err := fsm.Step(press)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("brightness:", brightness)
	}

	// Output:
	// brightness: off
	// brightness: low
	// brightness: medium
	// brightness: high
	// brightness: off
}

// Example: Mealy flavor of the dimmer, the brightness is the output of
// the button press itself.
func Example_mealyLightswitch() {
	outputs := fsmall.MealyOutputTable[string, string]{
		{State: lightOff, Input: "on", Output: "low"},
		{State: lightDimmed, Input: "on", Output: "medium"},
		{State: lightMedium, Input: "on", Output: "high"},
		{State: lightBright, Input: "on", Output: "low"},
		{State: lightDimmed, Input: "off", Output: "off"},
		{State: lightMedium, Input: "off", Output: "off"},
		{State: lightBright, Input: "off", Output: "off"},
		{State: lightOff, Input: "off", Output: "off"},
	}

	fsm := fsmall.NewMealy(lightOff, dimmerTransitions, outputs)

	for _, press := range []string{"on", "on", "off"} {
		brightness, err := fsm.Step(press)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("brightness:", brightness)
	}

	// An input with no table entry is rejected without changing state.
	if _, err := fsm.Step("toggle"); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println("state:", fsm.CurrentState())

	// Output:
	// brightness: low
	// brightness: medium
	// brightness: off
	// error: fsmall: no transition for state and input
	// state: 0
}
