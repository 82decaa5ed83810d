package command

// StereoVolume is the volume a stereo is left at when switched on with a CD.
const StereoVolume = 11

// Stereo is the receiver port for stereo commands.
type Stereo interface {
	On()
	Off()
	SetCD()
	SetVolume(level int)
	Name() string
}

// StereoOnWithCDCommand powers the stereo on, selects the CD input and sets
// the volume. Undo powers it off.
type StereoOnWithCDCommand struct {
	stereo Stereo
	volume int
}

func NewStereoOnWithCDCommand(stereo Stereo) *StereoOnWithCDCommand {
	return &StereoOnWithCDCommand{stereo: stereo, volume: StereoVolume}
}

func (c *StereoOnWithCDCommand) Execute() {
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(c.volume)
}

func (c *StereoOnWithCDCommand) Undo() { c.stereo.Off() }

func (c *StereoOnWithCDCommand) String() string { return c.stereo.Name() + ".on" }

// StereoOffCommand powers the stereo off. Undo restores power, input and
// volume from the values the command carries.
type StereoOffCommand struct {
	stereo Stereo
	volume int
}

func NewStereoOffCommand(stereo Stereo) *StereoOffCommand {
	return &StereoOffCommand{stereo: stereo, volume: StereoVolume}
}

func (c *StereoOffCommand) Execute() { c.stereo.Off() }

func (c *StereoOffCommand) Undo() {
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(c.volume)
}

func (c *StereoOffCommand) String() string { return c.stereo.Name() + ".off" }
