package geometry

// Region identifies which part of a segment a point is near
type Region int

const (
	RegionNone Region = iota
	RegionStart
	RegionEnd
	RegionBody
)

func (r Region) String() string {
	switch r {
	case RegionStart:
		return "start"
	case RegionEnd:
		return "end"
	case RegionBody:
		return "body"
	default:
		return "none"
	}
}
