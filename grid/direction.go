package grid

// Direction is one of the four orthogonal unit moves.
// The numeric value is stable and doubles as an array index (0..3).
type Direction int

const (
	// North moves toward y-1 (up).
	North Direction = iota
	// East moves toward x+1 (right).
	East
	// South moves toward y+1 (down).
	South
	// West moves toward x-1 (left).
	West
)

// Aliases matching the screen-oriented naming.
const (
	Up    = North
	Right = East
	Down  = South
	Left  = West
)

// NumDirections is the number of distinct facings.
const NumDirections = 4

// offsets is indexed by Direction, clockwise from North.
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// AllDirections returns the four directions in index order.
func AllDirections() [NumDirections]Direction {
	return [NumDirections]Direction{North, East, South, West}
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the (dx, dy) unit offset of d.
func (d Direction) Delta() (dx, dy int) {
	o := offsets[d&3]

	return o[0], o[1]
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Perpendicular returns the two 90° rotations of d: clockwise first.
func (d Direction) Perpendicular() [2]Direction {
	return [2]Direction{(d + 1) & 3, (d + 3) & 3}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
