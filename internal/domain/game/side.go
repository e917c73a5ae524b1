package game

type Side int

const (
	SideBlack Side = iota + 1
	SideWhite
)

func (s Side) Other() Side {
	if s == SideBlack {
		return SideWhite
	}
	return SideBlack
}

// Color is the observed colour owned by the side.
func (s Side) Color() Color {
	if s == SideBlack {
		return ColorBlack
	}
	return ColorWhite
}

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "black"
	case SideWhite:
		return "white"
	default:
		return "none"
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black":
		*s = SideBlack
	case "white":
		*s = SideWhite
	default:
		*s = 0
	}
	return nil
}
