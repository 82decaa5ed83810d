package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"remote-control/internal/domain"
)

type Config struct {
	Remote     RemoteConfig      `yaml:"remote"`
	Appliances []ApplianceConfig `yaml:"appliances"`
	Macros     []MacroConfig     `yaml:"macros"`
	Bindings   []BindingConfig   `yaml:"bindings"`
	HTTP       HTTPConfig        `yaml:"http"`
	Pushover   PushoverConfig    `yaml:"pushover"`
	Telemetry  TelemetryConfig   `yaml:"telemetry"`
	Log        LogConfig         `yaml:"log"`
}

type RemoteConfig struct {
	Slots int `yaml:"slots"`
}

type ApplianceConfig struct {
	Name string               `yaml:"name"`
	Kind domain.ApplianceKind `yaml:"kind"`
}

// MacroConfig names an ordered list of command references. A macro may use
// macros defined above it.
type MacroConfig struct {
	Name     string   `yaml:"name"`
	Commands []string `yaml:"commands"`
}

type BindingConfig struct {
	Slot int    `yaml:"slot"`
	On   string `yaml:"on"`
	Off  string `yaml:"off"`
}

type HTTPConfig struct {
	Addr      string `yaml:"addr"`
	AuthToken string `yaml:"auth_token"`
}

type PushoverConfig struct {
	Token   string `yaml:"token"`
	UserKey string `yaml:"user_key"`
	Enabled bool   `yaml:"enabled"`
}

type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type envOverrides struct {
	LogLevel        string `env:"REMOTE_LOG_LEVEL"`
	LogFormat       string `env:"REMOTE_LOG_FORMAT"`
	HTTPAddr        string `env:"REMOTE_HTTP_ADDR"`
	AuthToken       string `env:"REMOTE_AUTH_TOKEN"`
	TelemetryURL    string `env:"REMOTE_OTEL_ENDPOINT"`
	PushoverToken   string `env:"PUSHOVER_TOKEN"`
	PushoverUserKey string `env:"PUSHOVER_USER_KEY"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, then applies environment overrides,
// defaults and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the stock layout: a living room light, the garage door and
// the stereo on slots 0-2 and party mode on slot 3.
func Default() *Config {
	cfg := &Config{
		Appliances: []ApplianceConfig{
			{Name: "living_room_light", Kind: domain.ApplianceKindLight},
			{Name: "garage_door", Kind: domain.ApplianceKindGarageDoor},
			{Name: "stereo", Kind: domain.ApplianceKindStereo},
		},
		Macros: []MacroConfig{
			{Name: "party_on", Commands: []string{"living_room_light.on", "stereo.on", "garage_door.up"}},
			{Name: "party_off", Commands: []string{"living_room_light.off", "stereo.off", "garage_door.down"}},
		},
		Bindings: []BindingConfig{
			{Slot: 0, On: "living_room_light.on", Off: "living_room_light.off"},
			{Slot: 1, On: "garage_door.up", Off: "garage_door.down"},
			{Slot: 2, On: "stereo.on", Off: "stereo.off"},
			{Slot: 3, On: "party_on", Off: "party_off"},
		},
	}
	cfg.setDefaults()
	return cfg
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&c.Log.Level, o.LogLevel)
	override(&c.Log.Format, o.LogFormat)
	override(&c.HTTP.Addr, o.HTTPAddr)
	override(&c.HTTP.AuthToken, o.AuthToken)
	override(&c.Telemetry.Endpoint, o.TelemetryURL)
	override(&c.Pushover.Token, o.PushoverToken)
	override(&c.Pushover.UserKey, o.PushoverUserKey)

	return nil
}

func (c *Config) setDefaults() {
	if c.Remote.Slots == 0 {
		c.Remote.Slots = 7
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "remote-control"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	for i := range c.Bindings {
		if strings.TrimSpace(c.Bindings[i].On) == "" {
			c.Bindings[i].On = domain.NoneRef
		}
		if strings.TrimSpace(c.Bindings[i].Off) == "" {
			c.Bindings[i].Off = domain.NoneRef
		}
	}
}

// Validate checks the layout's shape. Whether command references resolve is
// checked when the remote is built.
func (c *Config) Validate() error {
	if c.Remote.Slots < 0 {
		return fmt.Errorf("remote.slots must be positive, got %d", c.Remote.Slots)
	}

	names := make(map[string]bool)
	for i, a := range c.Appliances {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("appliances[%d]: name is required", i)
		}
		if !a.Kind.Valid() {
			return fmt.Errorf("appliances[%d] %s: unknown kind %q", i, a.Name, a.Kind)
		}
		key := strings.ToLower(a.Name)
		if names[key] {
			return fmt.Errorf("appliances[%d]: duplicate name %s", i, a.Name)
		}
		names[key] = true
	}

	for i, m := range c.Macros {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("macros[%d]: name is required", i)
		}
		if strings.Contains(m.Name, ".") {
			return fmt.Errorf("macros[%d] %s: name must not contain '.'", i, m.Name)
		}
		if len(m.Commands) == 0 {
			return fmt.Errorf("macros[%d] %s: at least one command is required", i, m.Name)
		}
	}

	for i, b := range c.Bindings {
		if b.Slot < 0 || b.Slot >= c.Remote.Slots {
			return fmt.Errorf("bindings[%d]: slot %d out of range [0, %d)", i, b.Slot, c.Remote.Slots)
		}
	}

	return nil
}
