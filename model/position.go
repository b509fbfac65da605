package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_G       Position = "G"
	POS_D       Position = "D"
	POS_C       Position = "C"
	POS_LW      Position = "LW"
	POS_RW      Position = "RW"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "g", "goalie":
		return POS_G
	case "d", "defense", "defenseman":
		return POS_D
	case "c", "center":
		return POS_C
	case "lw", "left wing":
		return POS_LW
	case "rw", "right wing":
		return POS_RW
	default:
		return POS_UNKNOWN
	}
}

// PositionPriority gives the fixed ordering used when sorting draft-eligible
// players by position: goalies first, then defense, center, left wing, and
// right wing last. Unknown positions sort after everything else.
func PositionPriority(pos Position) int {
	switch pos {
	case POS_G:
		return 0
	case POS_D:
		return 1
	case POS_C:
		return 2
	case POS_LW:
		return 3
	case POS_RW:
		return 4
	default:
		return 5
	}
}
