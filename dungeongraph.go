package dungeongraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/voidshard/dungeongraph/internal/rng"
)

var (
	// ErrConfiguration implies the given Config can never produce a dungeon.
	ErrConfiguration = fmt.Errorf("invalid configuration")

	// ErrConvergenceTimeout is returned when rooms still overlap after
	// Config.MaxTicks ticks. A more relaxed config (larger radius, fewer
	// rooms) will probably do better.
	ErrConvergenceTimeout = fmt.Errorf("rooms failed to separate")

	// ErrNotSettled is returned when asked to connect rooms that may still overlap
	ErrNotSettled = fmt.Errorf("rooms have not finished separating")

	// ErrNotConnected is returned when asking for output that needs Connect first
	ErrNotConnected = fmt.Errorf("rooms have not been connected")

	// ErrMapTooLarge is returned when the plan view would need more pixels than
	// we're willing to allocate. Lower Config.MapScale or the room spread.
	ErrMapTooLarge = fmt.Errorf("map too large")

	// ErrSampling implies the random source could not produce a valid room
	ErrSampling = fmt.Errorf("failed to sample room")
)

// Dungeon holds our room information & handles the bulk of our math operations
type Dungeon struct {
	cfg *Config

	rng        RandomSource
	log        *log.Logger
	presenters []Presenter

	Rooms      []*Room
	Hallways   []*Hallway   `json:",omitempty"`
	Sightlines []*Sightline `json:",omitempty"`
	Stats      *Stats
	Seed       int64

	settled    bool
	connected  bool
	presentErr error
	dmap       *imageMap
}

// Option configures optional parts of a Dungeon
type Option func(*Dungeon)

// WithLogger sets the logger, by default nothing is logged
func WithLogger(l *log.Logger) Option {
	return func(d *Dungeon) { d.log = l }
}

// WithRandomSource replaces the seeded random source
func WithRandomSource(src RandomSource) Option {
	return func(d *Dungeon) { d.rng = src }
}

// WithPresenter adds a Presenter to be called once the dungeon is connected
func WithPresenter(p Presenter) Option {
	return func(d *Dungeon) { d.presenters = append(d.presenters, p) }
}

// New creates a dungeon running the whole pipeline; sampling rooms, separating
// them, pruning rooms off the main room sightlines & carving hallways.
func New(cfg *Config, opts ...Option) (*Dungeon, error) {
	d, err := Sample(cfg, opts...)
	if err != nil {
		return nil, err
	}

	err = d.Settle(context.Background())
	if err != nil {
		return nil, err
	}

	err = d.Connect()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Sample validates the config & places rooms. The rooms are likely to
// overlap; call Step or Settle to push them apart.
func Sample(cfg *Config, opts ...Option) (*Dungeon, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	d := newDungeon(cfg, opts...)
	err = d.sampleRooms()
	if err != nil {
		return nil, err
	}

	d.log.Info("sampled rooms", "rooms", d.Stats.Rooms, "main", d.Stats.MainRooms, "seed", d.Seed)
	return d, nil
}

// newDungeon sets up a dungeon without any rooms
func newDungeon(cfg *Config, opts ...Option) *Dungeon {
	c := *cfg // we fill in the seed; don't touch the callers copy
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	d := &Dungeon{
		cfg:        &c,
		rng:        rng.New(c.Seed),
		log:        log.New(io.Discard),
		presenters: []Presenter{},
		Rooms:      []*Room{},
		Hallways:   []*Hallway{},
		Sightlines: []*Sightline{},
		Stats:      &Stats{},
		Seed:       c.Seed,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the config in use, including the chosen seed
func (d *Dungeon) Config() Config {
	return *d.cfg
}

// Settle calls Step until no room moves.
// We give up with ErrConvergenceTimeout after Config.MaxTicks ticks.
func (d *Dungeon) Settle(ctx context.Context) error {
	for !d.settled {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.Stats.Ticks >= d.cfg.MaxTicks {
			return errors.Wrapf(ErrConvergenceTimeout, "rooms still overlapping after %d ticks", d.Stats.Ticks)
		}

		d.Step()
	}

	d.log.Info("rooms separated", "ticks", d.Stats.Ticks)
	return nil
}

// Settled returns if the last tick moved nothing
func (d *Dungeon) Settled() bool {
	return d.settled
}

// Connect casts sightlines between main rooms, drops rooms not on any of
// them & carves hallways between what is left. Presenters are then
// called (once); if one fails its error is returned from every later call.
// Order of the functions is important as later functions rely on the
// results of earlier ones.
func (d *Dungeon) Connect() error {
	if !d.settled {
		return ErrNotSettled
	}
	if d.connected {
		return d.presentErr
	}

	d.castSightlines()
	d.log.Info("cast sightlines", "sightlines", len(d.Sightlines))

	d.prune()
	d.log.Info("pruned rooms", "kept", d.Stats.Kept, "discarded", d.Stats.Discarded)

	d.carveHallways()
	d.log.Info("carved hallways", "hallways", d.Stats.Hallways)

	d.connected = true

	for _, p := range d.presenters {
		err := p.Present(d.Rooms, d.Hallways)
		if err != nil {
			d.presentErr = errors.Wrap(err, "presenter failed")
			return d.presentErr
		}
	}

	return nil
}

// Map returns the plan view DungeonMap, painting it on first use.
// Maps over the pixel limit return ErrMapTooLarge; the dungeon itself is
// unaffected.
func (d *Dungeon) Map() (DungeonMap, error) {
	if !d.connected {
		return nil, ErrNotConnected
	}
	if d.dmap != nil {
		return d.dmap, nil
	}

	m := newMap(d.cfg.MapScale)
	err := m.Present(d.Rooms, d.Hallways)
	if err != nil {
		return nil, err
	}
	for _, s := range d.Sightlines {
		m.drawSightline(s.Start, s.End)
	}

	d.dmap = m
	return m, nil
}

// JSON returns the dungeon as json.
func (d *Dungeon) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// SaveJSON writes a json file to the given path.
func (d *Dungeon) SaveJSON(fpath string) error {
	data, err := d.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}
