package dungeongraph

import (
	"github.com/unixpickle/essentials"

	"github.com/voidshard/dungeongraph/internal/spatial"
)

// castSightlines decides which rooms are kept.
// A straight segment is cast between the centres of every pair of main rooms
// & every room it passes through is kept, as are all main rooms. Anything not
// on any sightline is discarded.
func (d *Dungeon) castSightlines() {
	idx := spatial.New()
	mains := []*Room{}
	for _, r := range d.Rooms {
		idx.Add(r.ID, r.Bounds())
		if r.MainRoom {
			r.State = StateKeep
			mains = append(mains, r)
		}
	}

	for i := range mains {
		first := i + 1
		if d.cfg.IncludeSelfPairs {
			first = i
		}

		for j := first; j < len(mains); j++ {
			a, b := mains[i], mains[j]

			hits := idx.Segment(a.Position, b.Position)
			d.Sightlines = append(d.Sightlines, &Sightline{
				From:  a.ID,
				To:    b.ID,
				Start: a.Position,
				End:   b.Position,
				Hits:  spatial.Sorted(hits),
			})

			for _, r := range d.Rooms {
				r.mark(hits.Has(r.ID))
			}
		}
	}

	// rooms no sightline reached (eg. there were no pairs to cast between)
	for _, r := range d.Rooms {
		if r.State == StateUnknown {
			r.State = StateDiscard
		}
	}
}

// prune removes discarded rooms, keeping the order of the others
func (d *Dungeon) prune() {
	for i := len(d.Rooms) - 1; i >= 0; i-- {
		if d.Rooms[i].State != StateDiscard {
			continue
		}
		d.log.Debug("discarding room", "id", d.Rooms[i].ID)
		essentials.OrderedDelete(&d.Rooms, i)
		d.Stats.Discarded++
	}
	d.Stats.Kept = len(d.Rooms)
}
