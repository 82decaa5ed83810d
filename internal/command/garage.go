package command

// GarageDoor is the receiver port for door commands.
type GarageDoor interface {
	Up()
	Down()
	Name() string
}

type GarageDoorUpCommand struct {
	door GarageDoor
}

func NewGarageDoorUpCommand(door GarageDoor) *GarageDoorUpCommand {
	return &GarageDoorUpCommand{door: door}
}

func (c *GarageDoorUpCommand) Execute() { c.door.Up() }
func (c *GarageDoorUpCommand) Undo()    { c.door.Down() }

func (c *GarageDoorUpCommand) String() string { return c.door.Name() + ".up" }

type GarageDoorDownCommand struct {
	door GarageDoor
}

func NewGarageDoorDownCommand(door GarageDoor) *GarageDoorDownCommand {
	return &GarageDoorDownCommand{door: door}
}

func (c *GarageDoorDownCommand) Execute() { c.door.Down() }
func (c *GarageDoorDownCommand) Undo()    { c.door.Up() }

func (c *GarageDoorDownCommand) String() string { return c.door.Name() + ".down" }
