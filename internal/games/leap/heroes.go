package leap

import (
	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
)

// heroDef is a selectable hero and its presentation.
type heroDef struct {
	info  registry.HeroInfo
	head  rune
	sound SoundID
}

var heroDefs = []heroDef{
	{
		info:  registry.HeroInfo{ID: "maskdude", Title: "Mask Dude", Slot: 0, Color: core.ColorBrightYellow},
		head:  '@',
		sound: SoundSelectMaskDude,
	},
	{
		info:  registry.HeroInfo{ID: "ninjafrog", Title: "Ninja Frog", Slot: 1, Color: core.ColorBrightGreen},
		head:  'Q',
		sound: SoundSelectNinjaFrog,
	},
	{
		info:  registry.HeroInfo{ID: "pinkman", Title: "Pink Man", Slot: 2, Color: core.ColorBrightMagenta},
		head:  'O',
		sound: SoundSelectPinkMan,
	},
}

func init() {
	for _, d := range heroDefs {
		registry.Register(d.info)
	}
}

// heroDefFor returns the definition of a roster id, falling back to the
// first hero for unknown ids.
func heroDefFor(id string) heroDef {
	for _, d := range heroDefs {
		if d.info.ID == id {
			return d
		}
	}
	return heroDefs[0]
}
