package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is the movement kind selected by an instruction's leading letter.
type Action byte

const (
	North   Action = 'N'
	East    Action = 'E'
	South   Action = 'S'
	West    Action = 'W'
	Left    Action = 'L'
	Right   Action = 'R'
	Forward Action = 'F'
)

func (a Action) valid() bool {
	switch a {
	case North, East, South, West, Left, Right, Forward:
		return true
	}
	return false
}

func (a Action) String() string { return string(rune(a)) }

// Represents a single parsed navigation step.
// Value is degrees for Left/Right and a distance for everything else.
type Instruction struct {
	Action Action
	Value  int64
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s%d", i.Action, i.Value)
}

// Parse one instruction line such as "F10" or "R90".
// Rotation degrees are not required to be multiples of 90.
func ParseInstruction(line string) (Instruction, error) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return Instruction{}, fmt.Errorf("parse instruction: empty line: %w", ErrInstructionCode)
	}

	action := Action(line[0])
	if !action.valid() {
		return Instruction{}, fmt.Errorf("parse instruction %q: unknown code %q: %w", line, line[:1], ErrInstructionCode)
	}

	value, err := strconv.ParseInt(line[1:], 10, 64)
	if err != nil {
		return Instruction{}, fmt.Errorf("parse instruction %q: %w", line, ErrMagnitude)
	}

	return Instruction{Action: action, Value: value}, nil
}
