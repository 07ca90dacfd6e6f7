// Package input converts raw press/release edges into per-action amounts.
//
// An Action is written by the input-dispatch goroutine (Press, Release, Tap)
// and read once per tick by the simulation (Amount, IsPressed). Reads are
// consuming: they may clear the amount or move the action into
// WaitingForRelease.
package input

import (
	"fmt"
	"sync"
)

// Behavior selects how a held action is reported.
type Behavior int

const (
	// Normal reports the held amount on every read until release.
	Normal Behavior = iota
	// DetectInitialPressOnly reports a press once, then nothing until the
	// action is released and pressed again.
	DetectInitialPressOnly
)

func (b Behavior) String() string {
	switch b {
	case Normal:
		return "normal"
	case DetectInitialPressOnly:
		return "initial-press-only"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// State is the debounce state of an action.
type State int

const (
	Released State = iota
	Pressed
	WaitingForRelease
	stateCount
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	case WaitingForRelease:
		return "waiting-for-release"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type trigger int

const (
	triggerPress trigger = iota
	triggerRelease
	triggerCount
)

type effect int

const (
	effectNone effect = iota
	effectAccumulate
	effectClear
)

type transition struct {
	next   State
	effect effect
}

// transitions is indexed by [current state][trigger].
var transitions = [stateCount][triggerCount]transition{
	Released: {
		triggerPress:   {next: Pressed, effect: effectAccumulate},
		triggerRelease: {next: Released, effect: effectNone},
	},
	Pressed: {
		triggerPress:   {next: Pressed, effect: effectAccumulate},
		triggerRelease: {next: Released, effect: effectNone},
	},
	WaitingForRelease: {
		triggerPress:   {next: WaitingForRelease, effect: effectNone},
		triggerRelease: {next: Released, effect: effectClear},
	},
}

// Action is a named logical input such as "jump".
type Action struct {
	name     string
	behavior Behavior

	mu     sync.Mutex
	state  State
	amount int
}

// NewAction creates a released action.
func NewAction(name string, behavior Behavior) *Action {
	return &Action{name: name, behavior: behavior}
}

func (a *Action) Name() string {
	return a.name
}

func (a *Action) Behavior() Behavior {
	return a.behavior
}

// State returns the current debounce state without consuming anything.
func (a *Action) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Reset releases the action and drops any pending amount.
func (a *Action) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = Released
	a.amount = 0
}

// Press adds amount to the action. Presses while waiting for release are
// ignored; negative amounts are ignored.
func (a *Action) Press(amount int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.press(amount)
}

// Release ends a press. A pressed action keeps its amount for one more read.
func (a *Action) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fire(triggerRelease, 0)
}

// Tap presses by one and releases in a single step.
func (a *Action) Tap() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.press(1)
	a.fire(triggerRelease, 0)
}

// Amount returns the accumulated amount. It is a consuming read: a released
// action clears its amount, and a pressed initial-press-only action moves to
// WaitingForRelease.
func (a *Action) Amount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	amount := a.amount
	if amount == 0 {
		return 0
	}
	switch {
	case a.state == Released:
		a.amount = 0
	case a.state == Pressed && a.behavior == DetectInitialPressOnly:
		a.state = WaitingForRelease
		a.amount = 0
	}
	return amount
}

// IsPressed reports whether Amount is non-zero, consuming it the same way.
func (a *Action) IsPressed() bool {
	return a.Amount() != 0
}

func (a *Action) press(amount int) {
	if amount < 0 {
		return
	}
	a.fire(triggerPress, amount)
}

func (a *Action) fire(t trigger, amount int) {
	tr := transitions[a.state][t]
	switch tr.effect {
	case effectAccumulate:
		a.amount += amount
	case effectClear:
		a.amount = 0
	}
	a.state = tr.next
}
