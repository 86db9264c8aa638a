package controller

import "time"

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg clears the status line set by the mutation with the same id.
type clearStatusMsg struct {
	id int
}
