package leap

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/leap-of-faith/internal/config"
)

func newTestHero() *Hero {
	cfg := config.DefaultLeapConfig()
	return NewHero("maskdude", &cfg)
}

func TestHeroAppearsOnce(t *testing.T) {
	h := newTestHero()
	if h.Motion != MotionAppearing || h.CutsceneComplete {
		t.Fatalf("new hero: Motion = %v, CutsceneComplete = %v", h.Motion, h.CutsceneComplete)
	}

	// 7 frames at 0.2 per tick
	x, y := h.X, h.Y
	for i := 0; i < 34; i++ {
		h.Update(HeroInput{Left: true})
		if h.CutsceneComplete {
			t.Fatalf("cutscene completed after %d ticks, expected 35", i+1)
		}
	}
	if h.X != x || h.Y != y {
		t.Error("hero moved during the appear animation")
	}
	h.Update(HeroInput{})
	if !h.CutsceneComplete || h.Motion != MotionIdle {
		t.Errorf("after 35 ticks: CutsceneComplete = %v, Motion = %v", h.CutsceneComplete, h.Motion)
	}

	for i := 0; i < 100; i++ {
		h.Update(HeroInput{})
		if h.Motion == MotionAppearing {
			t.Fatal("hero re-entered the appear state")
		}
	}
}

func TestHeroMovementRejectedAtWalls(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		in         HeroInput
		wantX      float64
		wantMotion Motion
		wantFacing Facing
	}{
		{"left into wall", 2.4, HeroInput{Left: true}, 2.4, MotionIdle, FacingLeft},
		{"left free", 10, HeroInput{Left: true}, 9.5, MotionRunning, FacingLeft},
		{"right into wall", 58.6, HeroInput{Right: true}, 58.6, MotionIdle, FacingRight},
		{"right free", 10, HeroInput{Right: true}, 10.5, MotionRunning, FacingRight},
		{"left exactly to wall", 2.5, HeroInput{Left: true}, 2, MotionRunning, FacingLeft},
		{"no input", 10, HeroInput{}, 10, MotionIdle, FacingLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHero()
			h.CutsceneComplete = true
			h.Motion = MotionIdle
			h.X = tt.x
			y := h.Y

			h.Update(tt.in)
			if h.X != tt.wantX {
				t.Errorf("X = %v, expected %v", h.X, tt.wantX)
			}
			if h.Y != y {
				t.Errorf("Y = %v, expected %v", h.Y, y)
			}
			if h.Motion != tt.wantMotion {
				t.Errorf("Motion = %v, expected %v", h.Motion, tt.wantMotion)
			}
			if h.Facing != tt.wantFacing {
				t.Errorf("Facing = %v, expected %v", h.Facing, tt.wantFacing)
			}
		})
	}
}

func TestHeroGravity(t *testing.T) {
	h := newTestHero()
	h.CutsceneComplete = true
	h.Falling = true
	y := h.Y

	h.Update(HeroInput{Right: true})
	if h.Y != y+h.cfg.Physics.FallSpeed {
		t.Errorf("Y = %v, expected %v", h.Y, y+h.cfg.Physics.FallSpeed)
	}
	if h.Motion != MotionFalling {
		t.Errorf("Motion = %v, expected falling over running", h.Motion)
	}

	h.Land(20)
	if h.Bottom() != 20 || h.Falling {
		t.Errorf("after Land(20): Bottom = %v, Falling = %v", h.Bottom(), h.Falling)
	}
}

func TestHeroHitPlaysOneCycle(t *testing.T) {
	h := newTestHero()
	h.CutsceneComplete = true
	h.Falling = true

	h.Damage()
	for i := 0; i < 34; i++ {
		h.Update(HeroInput{})
		if h.Motion != MotionHit {
			t.Fatalf("tick %d: Motion = %v, expected hit over falling", i+1, h.Motion)
		}
	}
	if !h.HitPlaying() {
		t.Fatal("hit ended early")
	}
	h.Update(HeroInput{})
	if h.HitPlaying() {
		t.Error("hit still playing after one full cycle")
	}
	h.Update(HeroInput{})
	if h.Motion != MotionFalling {
		t.Errorf("Motion = %v after hit, expected falling", h.Motion)
	}
}

func TestHeroHealthBounds(t *testing.T) {
	h := newTestHero()
	maxHealth := h.cfg.Hero.MaxHealth
	rng := rand.New(rand.NewSource(5))

	deaths := 0
	transitions := 0
	for i := 0; i < 5000; i++ {
		before := h.Health
		if rng.Intn(2) == 0 {
			if h.Damage() {
				deaths++
			}
			if before == 1 {
				transitions++
			}
		} else {
			healed := h.Heal()
			if before == maxHealth && healed {
				t.Fatal("Heal() at full health changed health")
			}
		}
		if h.Health < 0 || h.Health > maxHealth {
			t.Fatalf("op %d: Health = %d outside [0, %d]", i, h.Health, maxHealth)
		}
	}
	if deaths != transitions {
		t.Errorf("Damage() reported %d deaths, expected %d", deaths, transitions)
	}
	if deaths == 0 {
		t.Error("sequence never reached 0 health")
	}
}

func TestHeroDamageAtZero(t *testing.T) {
	h := newTestHero()
	for h.Health > 1 {
		h.Damage()
	}
	if !h.Damage() {
		t.Error("Damage() to 0 = false, expected true")
	}
	if h.Damage() {
		t.Error("Damage() at 0 = true, expected a single death")
	}
	if h.Health != 0 {
		t.Errorf("Health = %d, expected 0", h.Health)
	}
}

func TestHeroOutOfBounds(t *testing.T) {
	tests := []struct {
		y    float64
		want string
	}{
		{0.9, CauseCeiling},
		{1, ""},
		{12, ""},
		{24, ""},
		{24.1, CauseFloor},
	}
	for _, tt := range tests {
		h := newTestHero()
		h.Y = tt.y
		if got := h.OutOfBounds(); got != tt.want {
			t.Errorf("OutOfBounds() at Y=%v = %q, expected %q", tt.y, got, tt.want)
		}
	}
}

func TestHeroFrameInRange(t *testing.T) {
	h := newTestHero()
	for i := 0; i < 500; i++ {
		h.Update(HeroInput{Left: i%50 < 20})
		if i%97 == 0 {
			h.Damage()
			h.Heal()
		}
		h.Falling = i%60 > 40
		if f := h.Frame(); f < 0 || f >= motionFrames[h.Motion] {
			t.Fatalf("Frame() = %d outside %v's %d frames", f, h.Motion, motionFrames[h.Motion])
		}
	}
}

func TestHeroSpriteMirrors(t *testing.T) {
	right := heroSprite(MotionRunning, 0, FacingRight, 'Q')
	left := heroSprite(MotionRunning, 0, FacingLeft, 'Q')
	if right[0] != " Q " || right[1] != "/|>" {
		t.Errorf("right sprite = %q", right)
	}
	if left[0] != " Q " || left[1] != "<|\\" {
		t.Errorf("left sprite = %q", left)
	}

	for m := MotionAppearing; m < numMotions; m++ {
		for f := 0; f < motionFrames[m]; f++ {
			rows := heroSprite(m, f, FacingLeft, '@')
			if len(rows) != 2 {
				t.Fatalf("%v frame %d has %d rows", m, f, len(rows))
			}
		}
	}
}
