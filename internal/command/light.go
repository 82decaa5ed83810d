package command

// Light is the receiver port for lamp commands.
type Light interface {
	On()
	Off()
	Name() string
}

type LightOnCommand struct {
	light Light
}

func NewLightOnCommand(light Light) *LightOnCommand {
	return &LightOnCommand{light: light}
}

func (c *LightOnCommand) Execute() { c.light.On() }
func (c *LightOnCommand) Undo()    { c.light.Off() }

func (c *LightOnCommand) String() string { return c.light.Name() + ".on" }

type LightOffCommand struct {
	light Light
}

func NewLightOffCommand(light Light) *LightOffCommand {
	return &LightOffCommand{light: light}
}

func (c *LightOffCommand) Execute() { c.light.Off() }
func (c *LightOffCommand) Undo()    { c.light.On() }

func (c *LightOffCommand) String() string { return c.light.Name() + ".off" }
