// Package models contains domain types for the Kinetic Notation backend.
package models

// MotionType classifies how a prop moves during one beat.
type MotionType string

const (
	MotionPro    MotionType = "pro"
	MotionAnti   MotionType = "anti"
	MotionStatic MotionType = "static"
	MotionDash   MotionType = "dash"
	MotionFloat  MotionType = "float"
)

// Legacy documentation sometimes groups pro/anti/float under a "shift"
// category. "shift" is a category label, never a wire value, so it is
// deliberately absent from this table.
var motionTypes = map[string]MotionType{
	"pro":    MotionPro,
	"anti":   MotionAnti,
	"static": MotionStatic,
	"dash":   MotionDash,
	"float":  MotionFloat,
}

// ParseMotionType parses a legacy motion_type string.
func ParseMotionType(s string) (MotionType, bool) {
	mt, ok := motionTypes[s]
	return mt, ok
}

// Location is one of the eight grid compass points, written with the
// legacy single/double-letter codes ("n", "ne", ...).
type Location string

const (
	LocationNorth     Location = "n"
	LocationNortheast Location = "ne"
	LocationEast      Location = "e"
	LocationSoutheast Location = "se"
	LocationSouth     Location = "s"
	LocationSouthwest Location = "sw"
	LocationWest      Location = "w"
	LocationNorthwest Location = "nw"
)

var locations = map[string]Location{
	"n": LocationNorth, "ne": LocationNortheast,
	"e": LocationEast, "se": LocationSoutheast,
	"s": LocationSouth, "sw": LocationSouthwest,
	"w": LocationWest, "nw": LocationNorthwest,
}

// ParseLocation parses a legacy location code.
func ParseLocation(s string) (Location, bool) {
	loc, ok := locations[s]
	return loc, ok
}

// Orientation describes how a prop is held relative to the grid center.
// In/Out are the radial orientations, Clock/Counter the non-radial ones.
type Orientation string

const (
	OrientationIn      Orientation = "in"
	OrientationOut     Orientation = "out"
	OrientationClock   Orientation = "clock"
	OrientationCounter Orientation = "counter"
)

var orientations = map[string]Orientation{
	"in":      OrientationIn,
	"out":     OrientationOut,
	"clock":   OrientationClock,
	"counter": OrientationCounter,
}

// ParseOrientation parses a legacy orientation string.
func ParseOrientation(s string) (Orientation, bool) {
	o, ok := orientations[s]
	return o, ok
}

// IsRadial reports whether the orientation points toward or away from
// the grid center.
func (o Orientation) IsRadial() bool {
	return o == OrientationIn || o == OrientationOut
}

// RotationDirection is the direction a prop rotates during a motion.
type RotationDirection string

const (
	RotationClockwise        RotationDirection = "cw"
	RotationCounterClockwise RotationDirection = "ccw"
	RotationNone             RotationDirection = "no_rot"
)

var rotationDirections = map[string]RotationDirection{
	"cw":     RotationClockwise,
	"ccw":    RotationCounterClockwise,
	"no_rot": RotationNone,
}

// ParseRotationDirection parses a legacy prop_rot_dir string.
func ParseRotationDirection(s string) (RotationDirection, bool) {
	rd, ok := rotationDirections[s]
	return rd, ok
}

// MotionData describes one prop motion within a beat. Turns is
// non-negative in well-formed data; legacy files may carry it as an
// integer or a fractional value.
type MotionData struct {
	MotionType MotionType        `json:"motion_type"`
	StartLoc   Location          `json:"start_loc"`
	EndLoc     Location          `json:"end_loc"`
	StartOri   Orientation       `json:"start_ori"`
	EndOri     Orientation       `json:"end_ori"`
	PropRotDir RotationDirection `json:"prop_rot_dir"`
	Turns      float64           `json:"turns"`
}
