package leap

// SoundID identifies a sound effect.
type SoundID int

const (
	SoundHeal SoundID = iota
	SoundSting
	SoundBreak
	SoundSelectMaskDude
	SoundSelectNinjaFrog
	SoundSelectPinkMan
)

// String returns the name of the effect.
func (s SoundID) String() string {
	switch s {
	case SoundHeal:
		return "heal"
	case SoundSting:
		return "sting"
	case SoundBreak:
		return "break"
	case SoundSelectMaskDude:
		return "select-maskdude"
	case SoundSelectNinjaFrog:
		return "select-ninjafrog"
	case SoundSelectPinkMan:
		return "select-pinkman"
	default:
		return "unknown"
	}
}

// SoundSink plays sound effects. Play must not block the tick.
type SoundSink interface {
	Play(id SoundID)
}

// MusicPlayer is implemented by sinks that can loop background music.
// The game turns it on while a run is live and off otherwise.
type MusicPlayer interface {
	Music(on bool)
}

type nopSink struct{}

func (nopSink) Play(SoundID) {}
