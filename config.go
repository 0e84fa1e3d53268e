package dungeongraph

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const (
	// defaults, chosen to match what looks reasonable at ~10 rooms
	DefaultRooms          = 10
	DefaultInitialRadius  = 30.0
	DefaultHallwayWidth   = 1.5
	DefaultHallwayInset   = 0.1
	DefaultMainRoomFactor = 1.05
	DefaultSigma          = 2.0
	DefaultStep           = 1.0
	DefaultMaxTicks       = 10000
	DefaultMapScale       = 4.0
)

// Config holds configuration for a given dungeon.
// Everything except Seed, IncludeSelfPairs & MapScale is required to be
// positive; DefaultConfig() fills in sane values.
type Config struct {
	// MeanDimensions (width, height, depth) of rooms. Width & depth are sampled
	// around the mean, height is used as is for every room.
	MeanDimensions model3d.Coord3D `toml:"mean_dimensions"`

	// MinDimensions are per axis floors; sampled widths & depths are always
	// strictly larger. Each must be less than the matching mean.
	MinDimensions model3d.Coord3D `toml:"min_dimensions"`

	// Rooms is the number of rooms to sample
	Rooms int `toml:"rooms"`

	// InitialRadius of the disk (in the x-z plane) room centres are sampled in
	InitialRadius float64 `toml:"initial_radius"`

	// HallwayWidth is both the width of every hallway & the min distance
	// between the centres of two rooms for a hallway to be placed between them.
	HallwayWidth float64 `toml:"hallway_width"`

	// HallwayInset is taken off the mean room height to give the hallway
	// height, so hallways sit inside the rooms they join.
	HallwayInset float64 `toml:"hallway_inset"`

	// MainRoomFactor; a room is a main room if both width & depth are greater
	// than mean * MainRoomFactor
	MainRoomFactor float64 `toml:"main_room_factor"`

	// Sigma is the standard deviation used when sampling widths & depths
	Sigma float64 `toml:"sigma"`

	// Step is how far an overlapping room moves each tick
	Step float64 `toml:"step"`

	// MaxTicks bounds the separation; if rooms still overlap after this many
	// ticks we give up with ErrConvergenceTimeout
	MaxTicks int `toml:"max_ticks"`

	// IncludeSelfPairs casts a (zero length) sightline from every main room to
	// itself. This has no effect on which rooms are kept.
	IncludeSelfPairs bool `toml:"include_self_pairs"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `toml:"seed"`

	// MapScale is pixels per unit of the plan view DungeonMap
	MapScale float64 `toml:"map_scale"`
}

// DefaultConfig returns a config that produces ~10 room dungeons
func DefaultConfig() *Config {
	return &Config{
		MeanDimensions: model3d.XYZ(10, 5, 10),
		MinDimensions:  model3d.XYZ(3.5, 1.5, 3.5),
		Rooms:          DefaultRooms,
		InitialRadius:  DefaultInitialRadius,
		HallwayWidth:   DefaultHallwayWidth,
		HallwayInset:   DefaultHallwayInset,
		MainRoomFactor: DefaultMainRoomFactor,
		Sigma:          DefaultSigma,
		Step:           DefaultStep,
		MaxTicks:       DefaultMaxTicks,
		MapScale:       DefaultMapScale,
	}
}

// LoadConfig reads a TOML file over the top of DefaultConfig()
func LoadConfig(fpath string) (*Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(fpath, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", fpath)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error wrapping ErrConfiguration if the config cannot
// produce a dungeon. Notably a min dimension at or above its mean would
// have us sampling forever.
func (c *Config) Validate() error {
	mean, min := c.MeanDimensions, c.MinDimensions

	if mean.X <= 0 || mean.Y <= 0 || mean.Z <= 0 {
		return errors.Wrapf(ErrConfiguration, "mean dimensions must be positive, got %v", mean)
	}
	if min.X <= 0 || min.Y <= 0 || min.Z <= 0 {
		return errors.Wrapf(ErrConfiguration, "min dimensions must be positive, got %v", min)
	}
	if min.X >= mean.X {
		return errors.Wrapf(ErrConfiguration, "min width %v must be less than mean width %v", min.X, mean.X)
	}
	if min.Y >= mean.Y {
		return errors.Wrapf(ErrConfiguration, "min height %v must be less than mean height %v", min.Y, mean.Y)
	}
	if min.Z >= mean.Z {
		return errors.Wrapf(ErrConfiguration, "min depth %v must be less than mean depth %v", min.Z, mean.Z)
	}
	if c.Rooms <= 0 {
		return errors.Wrapf(ErrConfiguration, "room count must be positive, got %d", c.Rooms)
	}
	if c.InitialRadius <= 0 {
		return errors.Wrapf(ErrConfiguration, "initial radius must be positive, got %v", c.InitialRadius)
	}
	if c.HallwayWidth <= 0 {
		return errors.Wrapf(ErrConfiguration, "hallway width must be positive, got %v", c.HallwayWidth)
	}
	if c.HallwayInset < 0 || c.HallwayInset >= mean.Y {
		return errors.Wrapf(ErrConfiguration, "hallway inset %v must be in [0, %v)", c.HallwayInset, mean.Y)
	}
	if c.MainRoomFactor <= 0 {
		return errors.Wrapf(ErrConfiguration, "main room factor must be positive, got %v", c.MainRoomFactor)
	}
	if c.Sigma <= 0 {
		return errors.Wrapf(ErrConfiguration, "sigma must be positive, got %v", c.Sigma)
	}
	if c.Step <= 0 {
		return errors.Wrapf(ErrConfiguration, "step must be positive, got %v", c.Step)
	}
	if c.MaxTicks <= 0 {
		return errors.Wrapf(ErrConfiguration, "max ticks must be positive, got %d", c.MaxTicks)
	}
	if c.MapScale < 0 {
		return errors.Wrapf(ErrConfiguration, "map scale cannot be negative, got %v", c.MapScale)
	}
	return nil
}
