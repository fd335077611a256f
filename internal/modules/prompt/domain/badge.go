package domain

type Badge string

const (
	BadgeNone     Badge = ""
	BadgeBronze   Badge = "bronze"
	BadgeSilver   Badge = "silver"
	BadgeGold     Badge = "gold"
	BadgePlatinum Badge = "platinum"
)

func BadgeFor(overall float64) Badge {
	switch {
	case overall >= 90:
		return BadgePlatinum
	case overall >= 80:
		return BadgeGold
	case overall >= 70:
		return BadgeSilver
	case overall >= 60:
		return BadgeBronze
	default:
		return BadgeNone
	}
}

func (b Badge) Awarded() bool {
	return b != BadgeNone
}
