package components

// Direction is a collective swarm motion.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionDown
	DirectionLeft
	// DirectionUp never appears in the swarm cycle; it only undoes a
	// DirectionDown step during rollback.
	DirectionUp
)

// Delta returns the (dx, dy) offset of moving step pixels in d.
func (d Direction) Delta(step int) (int, int) {
	switch d {
	case DirectionRight:
		return step, 0
	case DirectionLeft:
		return -step, 0
	case DirectionDown:
		return 0, step
	case DirectionUp:
		return 0, -step
	}
	return 0, 0
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionDown:
		return DirectionUp
	default:
		return DirectionDown
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	}
	return "unknown"
}

// Heading is the signed vertical velocity of a bullet: +1 travels toward
// increasing y (down the screen), -1 toward the top.
type Heading int

const (
	HeadingUp   Heading = -1
	HeadingDown Heading = 1
)
