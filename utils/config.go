// File: utils/config.go
package utils

import "time"

// Config holds all configurable board server parameters.
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod"` // Time between simulation generations

	// Board
	GridSize   int    `json:"gridSize"`   // Number of cells along one dimension of the square grid
	BirthColor string `json:"birthColor"` // Color assigned to cells born by the simulation rule

	// Supervision
	MaxRestarts   int           `json:"maxRestarts"`   // Board actor restarts tolerated inside RestartWindow
	RestartWindow time.Duration `json:"restartWindow"` // Rolling window for the restart budget

	// Gateway
	ServerAddr string `json:"serverAddr"` // Listen address for the websocket/HTTP gateway
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing. An earlier revision of the board ran at 10s; 3s is the
		// canonical default now.
		TickPeriod: 3000 * time.Millisecond,

		// Board
		GridSize:   100,
		BirthColor: "#00ff00",

		// Supervision
		MaxRestarts:   4,
		RestartWindow: 3600 * time.Second,

		// Gateway
		ServerAddr: ":3001",
	}
}
