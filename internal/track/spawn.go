package track

import rl "github.com/gen2brain/raylib-go/raylib"

// spawnGrid staggers players down the start straight, pole position first.
var spawnGrid = [...]rl.Vector3{
	{X: -4.5, Z: 120},
	{X: 5, Z: 100},
	{X: -4.5, Z: 80},
	{X: 5, Z: 60},
	{X: -4.5, Z: 40},
	{X: 5, Z: 20},
}

// SpawnPosition returns the grid slot for a player id (1-based). Ids without
// a slot share the back of the grid.
func SpawnPosition(playerID int) rl.Vector3 {
	p := rl.Vector3{X: -4.5, Z: 0}
	if playerID >= 1 && playerID <= len(spawnGrid) {
		p = spawnGrid[playerID-1]
	}
	p.Y = Elevation
	return p
}
