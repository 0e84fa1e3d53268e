package dungeongraph

// RandomSource hands out the random values used to place rooms.
// Implementations must be deterministic for a given seed if layouts are to be
// reproducible.
type RandomSource interface {
	// uniform value in [0,1)
	Float64() float64

	// uniform point (x, y) inside the unit circle
	InsideUnitCircle() (float64, float64)
}

// Presenter receives the finished layout. It is called exactly once per
// dungeon, after hallways have been carved, and must not modify what it is given.
// Drawing meshes, picking materials & parenting things into a scene are all
// the Presenter's problem.
type Presenter interface {
	Present(rooms []*Room, hallways []*Hallway) error
}

// PresenterFunc lets a plain function act as a Presenter
type PresenterFunc func(rooms []*Room, hallways []*Hallway) error

// Present calls f(rooms, hallways)
func (f PresenterFunc) Present(rooms []*Room, hallways []*Hallway) error {
	return f(rooms, hallways)
}
