package bsp

// HyperplaneLocation is the side of a hyperplane a point lies on.
type HyperplaneLocation int

const (
	Minus HyperplaneLocation = -1
	On    HyperplaneLocation = 0
	Plus  HyperplaneLocation = 1
)

func (loc HyperplaneLocation) String() string {
	switch loc {
	case Minus:
		return "Minus"
	case On:
		return "On"
	case Plus:
		return "Plus"
	}
	return "HyperplaneLocation(?)"
}

// RegionLocation is the location of a point relative to a region.
type RegionLocation int

const (
	Outside RegionLocation = iota
	Inside
	Boundary
)

// Complement swaps Inside and Outside.
func (loc RegionLocation) Complement() RegionLocation {
	switch loc {
	case Inside:
		return Outside
	case Outside:
		return Inside
	}
	return loc
}

func (loc RegionLocation) String() string {
	switch loc {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Boundary:
		return "Boundary"
	}
	return "RegionLocation(?)"
}

// SplitLocation describes on which sides of a hyperplane the parts of a split object lie.
type SplitLocation int

const (
	SplitNeither SplitLocation = iota
	SplitMinus
	SplitPlus
	SplitBoth
)

func (loc SplitLocation) String() string {
	switch loc {
	case SplitNeither:
		return "Neither"
	case SplitMinus:
		return "Minus"
	case SplitPlus:
		return "Plus"
	case SplitBoth:
		return "Both"
	}
	return "SplitLocation(?)"
}
