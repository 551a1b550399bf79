package physics

import (
	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Config holds the parameters of a simulation.
type Config struct {
	Integrator Integrator `toml:"integrator"`
	Timestep   float64    `toml:"timestep"` // unit: s
	MaxStep    float64    `toml:"max_step"` // unit: s, longer steps are skipped

	Gravity            float64 `toml:"gravity"`             // unit: m/s²
	EnergySmoothing    float64 `toml:"energy_smoothing"`    // unit: s
	CollisionStiffness float64 `toml:"collision_stiffness"` // 0 disables collision response

	// Defaults for springs that don't say otherwise
	Spring SpringConfig `toml:"spring"`
}

type SpringConfig struct {
	SpringConstant float64 `toml:"spring_constant"`
	Damping        float64 `toml:"damping"`
	Height         float64 `toml:"height"`
	Coils          int     `toml:"coils"`
	CoilDiameter   float32 `toml:"coil_diameter"`
}

// DefaultConf are the default parameters. Use DefaultConfig for a copy.
var DefaultConf = Config{
	Integrator:         VelocityVerlet,
	Timestep:           1.0 / 60.0,
	MaxStep:            MaxStep,
	Gravity:            Gravity,
	EnergySmoothing:    DefaultEnergySmoothing,
	CollisionStiffness: DefaultCollisionStiffness,
	Spring: SpringConfig{
		SpringConstant: 20,
		Damping:        0,
		Height:         0.1,
		Coils:          10,
		CoilDiameter:   0.1,
	},
}

// Returns a copy of DefaultConf.
func DefaultConfig() Config {
	var conf Config
	if err := copier.Copy(&conf, &DefaultConf); err != nil {
		panic(err)
	}
	return conf
}

// ParseConfig parses the TOML config file whose path is provided.
// Missing keys keep their default value.
func ParseConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, errors.Wrapf(err, "reading config %s", path)
	}
	return conf, conf.Validate()
}

// DecodeConfig is ParseConfig for an in-memory document.
func DecodeConfig(data string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.Decode(data, &conf); err != nil {
		return conf, errors.Wrap(err, "decoding config")
	}
	return conf, conf.Validate()
}

func (conf *Config) Validate() error {
	switch {
	case conf.Timestep <= 0:
		return errors.Errorf("timestep must be positive, got %v", conf.Timestep)
	case conf.MaxStep <= 0:
		return errors.Errorf("max_step must be positive, got %v", conf.MaxStep)
	case conf.Timestep > conf.MaxStep:
		return errors.Errorf("timestep %v is above max_step %v, every step would be skipped", conf.Timestep, conf.MaxStep)
	case conf.EnergySmoothing < 0:
		return errors.Errorf("energy_smoothing must not be negative, got %v", conf.EnergySmoothing)
	case conf.CollisionStiffness < 0:
		return errors.Errorf("collision_stiffness must not be negative, got %v", conf.CollisionStiffness)
	case conf.Spring.SpringConstant < 0 || conf.Spring.Damping < 0:
		return errors.New("spring constant and damping must not be negative")
	case conf.Spring.Coils < 1:
		return errors.Errorf("spring coils must be at least 1, got %d", conf.Spring.Coils)
	case conf.Spring.CoilDiameter <= 0 || conf.Spring.CoilDiameter >= 1:
		return errors.Errorf("spring coil_diameter must be in (0, 1), got %v", conf.Spring.CoilDiameter)
	}
	return nil
}
