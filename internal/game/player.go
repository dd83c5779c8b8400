package game

import "fmt"

// Player identifies one of the two seats
type Player int

const (
	Player1 Player = iota
	Player2
)

// NumPlayers is fixed at two
const NumPlayers = 2

// Players lists both seats in dealing order
var Players = [NumPlayers]Player{Player1, Player2}

// String returns "Player 1" or "Player 2"
func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p)+1)
}

// Valid reports whether p is Player1 or Player2
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}
