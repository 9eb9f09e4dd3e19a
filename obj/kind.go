package obj

// Kind identifies what a physics body represents in the level.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlatform
	KindPlayer
	KindEnemy
	KindPaper
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPaper:
		return "paper"
	default:
		return "none"
	}
}
