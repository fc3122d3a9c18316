package game

import (
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/PRiewe/neon-sub000/pkg/pcg"
)

// DiceRoll represents the result of rolling dice
type DiceRoll struct {
	Rolls    []int // Individual die results
	Total    int   // Sum of all rolls
	Modifier int   // Modifier applied to the total
	Final    int   // Final result (Total + Modifier)
}

// DiceRoller rolls dice against a caller-supplied RandomSource so the
// results share the generator's seed stream.
type DiceRoller struct {
	rng *pcg.RandomSource
}

// NewDiceRoller creates a dice roller drawing from rng.
func NewDiceRoller(rng *pcg.RandomSource) *DiceRoller {
	return &DiceRoller{rng: rng}
}

// exprPattern admits "NdS", "NdS+M", "NdS-M": exactly one sign, at
// most once, after the dice portion. Anything else is a parse error.
var exprPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Roll sums n rolls of a d-sided die plus the modifier m.
// It returns m when n < 1 or d < 1.
func (dr *DiceRoller) Roll(n, d, m int) int {
	if n < 1 || d < 1 {
		return m
	}
	total := m
	for i := 0; i < n; i++ {
		total += dr.rng.IntRange(1, d)
	}
	return total
}

// RollExpr parses and rolls a dice expression like "2d6+3".
func (dr *DiceRoller) RollExpr(expression string) (*DiceRoll, error) {
	matches := exprPattern.FindStringSubmatch(expression)
	if matches == nil {
		logrus.WithFields(logrus.Fields{
			"function":   "RollExpr",
			"expression": expression,
		}).Error("invalid dice expression format")
		return nil, &pcg.DiceParseError{Expression: expression}
	}

	numDice, err := strconv.Atoi(matches[1])
	if err != nil || numDice <= 0 {
		return nil, &pcg.DiceParseError{Expression: expression}
	}

	dieSize, err := strconv.Atoi(matches[2])
	if err != nil || dieSize <= 0 {
		return nil, &pcg.DiceParseError{Expression: expression}
	}

	var modifier int
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, &pcg.DiceParseError{Expression: expression}
		}
	}

	rolls := make([]int, numDice)
	total := 0
	for i := 0; i < numDice; i++ {
		roll := dr.rng.IntRange(1, dieSize)
		rolls[i] = roll
		total += roll
	}

	return &DiceRoll{
		Rolls:    rolls,
		Total:    total,
		Modifier: modifier,
		Final:    total + modifier,
	}, nil
}
