package game

import (
	"fmt"
	"time"

	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

// Sound is the fire-and-forget audio surface the scene drives.
type Sound interface {
	PlayTone(freq float64, dur time.Duration, vol float64, delay time.Duration)
	PlayUnlockFanfare()
	SetMuted(muted bool)
}

type silent struct{}

func (silent) PlayTone(float64, time.Duration, float64, time.Duration) {}
func (silent) PlayUnlockFanfare()                                      {}
func (silent) SetMuted(bool)                                           {}

// Cue constants.
const (
	wheelCueThreshold = 50.0
	wheelCueBase      = 200.0
	wheelCueDur       = 100 * time.Millisecond
	wheelCueVol       = 0.05
)

// Click is a qualifying click or tap on the scene. While docked it undocks;
// in free flight it docks at the hovered entity, if any.
func (s *Sim) Click() {
	if s.docked {
		s.undock()
		return
	}
	if s.hover == "" {
		return
	}
	if e := s.Catalog.Find(s.hover); e != nil {
		s.dock(e)
	}
}

func (s *Sim) dock(e *world.CrewEntity) {
	s.docked = true
	s.active = e
	s.hover = ""
	s.markVisited(e.ID)

	s.sound.PlayTone(400, 300*time.Millisecond, 0.1, 0)
	s.sound.PlayTone(300, 200*time.Millisecond, 0.08, 150*time.Millisecond)

	dest := world.ClampDepth(e.Z - dockStandoff)
	s.warp = warpBurst
	s.startTween(dest)
	s.targetZ = dest

	s.Log.Add(fmt.Sprintf("Docked at %s. %s, %s.", e.ID, e.Name, e.Role), MsgDock)
	s.logger.Debug().Str("id", e.ID).Float64("dest", dest).Msg("docked")
	s.checkUnlock()
	s.publish()
}

func (s *Sim) undock() {
	id := s.active.ID
	s.cancelTween()
	s.docked = false
	s.active = nil
	s.warp = 0
	s.sound.PlayTone(150, 200*time.Millisecond, 0.08, 0)

	s.Log.Add("Docking clamps released.", MsgInfo)
	s.logger.Debug().Str("id", id).Msg("undocked")
	s.publish()
}

func (s *Sim) markVisited(id string) {
	s.visited.Mark(id)
}

// checkUnlock fires the completion latch once, the first time every crew
// entity has been visited.
func (s *Sim) checkUnlock() {
	if s.unlocked || !s.visited.Complete(s.Catalog) {
		return
	}
	s.unlocked = true
	s.sound.PlayUnlockFanfare()
	s.Log.Add("All crew archives collected. Secret signal detected.", MsgUnlock)
	s.logger.Debug().Str("secret", s.Catalog.Secret.ID).Msg("secret unlocked")
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Sim) ToggleMute() bool {
	s.muted = !s.muted
	s.sound.SetMuted(s.muted)
	s.publish()
	return s.muted
}

// SetMuted forces the mute flag.
func (s *Sim) SetMuted(m bool) {
	if s.muted == m {
		return
	}
	s.ToggleMute()
}

// Muted reports the mute flag.
func (s *Sim) Muted() bool { return s.muted }

// DismissBanner hides the completion banner for the rest of the session.
func (s *Sim) DismissBanner() {
	if s.bannerDismissed {
		return
	}
	s.bannerDismissed = true
	s.publish()
}
