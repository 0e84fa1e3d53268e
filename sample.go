package dungeongraph

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"github.com/voidshard/dungeongraph/internal/rng"
)

// maxSampleAttempts bounds the draws for a single dimension. With floor < mean
// each draw is accepted at least half the time, so only a broken
// RandomSource gets near this.
const maxSampleAttempts = 1000

// sampleRooms places Config.Rooms rooms at random within the initial radius.
// Rooms sit on the ground plane; their width & depth are sampled around the
// configured mean, height is always the mean height.
func (d *Dungeon) sampleRooms() error {
	mean := d.cfg.MeanDimensions
	min := d.cfg.MinDimensions

	for i := 0; i < d.cfg.Rooms; i++ {
		cx, cz := d.rng.InsideUnitCircle()

		width, err := d.sampleAbove(mean.X, min.X)
		if err != nil {
			return errors.Wrapf(err, "room %d width", i)
		}
		depth, err := d.sampleAbove(mean.Z, min.Z)
		if err != nil {
			return errors.Wrapf(err, "room %d depth", i)
		}

		dimensions := model3d.XYZ(width, mean.Y, depth)
		position := model3d.XYZ(
			cx*d.cfg.InitialRadius,
			dimensions.Y/2,
			cz*d.cfg.InitialRadius,
		)

		r := newRoom(i, dimensions, position, d.cfg)
		if r.MainRoom {
			d.Stats.MainRooms++
		}
		d.Rooms = append(d.Rooms, r)
	}

	d.Stats.Rooms = len(d.Rooms)
	return nil
}

// sampleAbove draws from a normal distribution around mu until the value is
// strictly greater than floor, giving up with ErrSampling after
// maxSampleAttempts draws.
func (d *Dungeon) sampleAbove(mu, floor float64) (float64, error) {
	for i := 0; i < maxSampleAttempts; i++ {
		x, err := rng.Gaussian(d.rng, mu, d.cfg.Sigma)
		if err != nil {
			return 0, errors.Wrap(ErrSampling, err.Error())
		}
		if x > floor {
			return x, nil
		}
	}
	return 0, errors.Wrapf(ErrSampling, "no value above %v in %d draws", floor, maxSampleAttempts)
}
