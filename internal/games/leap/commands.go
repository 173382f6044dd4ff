package leap

// Command is a deferred world mutation raised during a tick.
type Command interface {
	command()
}

// CmdHeroDied ends the run after the death delay.
type CmdHeroDied struct {
	Cause string
}

// CmdSpawnTerrain spawns one tile of a freshly drawn kind.
type CmdSpawnTerrain struct{}

// CmdDestroyArmedTile reclaims a breakable tile whose deadline passed.
type CmdDestroyArmedTile struct {
	ID int
}

func (CmdHeroDied) command()         {}
func (CmdSpawnTerrain) command()     {}
func (CmdDestroyArmedTile) command() {}

// Commands is a FIFO queue drained once per tick.
type Commands struct {
	queue []Command
}

// Push appends a command.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Drain hands every queued command to fn in push order and empties the
// queue. Commands pushed by fn run in the same drain, after the others.
func (c *Commands) Drain(fn func(Command)) {
	for i := 0; i < len(c.queue); i++ {
		fn(c.queue[i])
	}
	clear(c.queue)
	c.queue = c.queue[:0]
}

// Reset drops every queued command.
func (c *Commands) Reset() {
	clear(c.queue)
	c.queue = c.queue[:0]
}
