package game

import (
	"math"

	"raycastgame/internal/collision"
	"raycastgame/internal/config"
	"raycastgame/internal/game/keytracker"
	"raycastgame/internal/mathutil"
	"raycastgame/internal/render"
	"raycastgame/internal/world"
)

// State is the mutable simulation state. The renderer reads it between
// ticks and never writes it.
type State struct {
	Camera  *render.Camera
	Sprites []world.Sprite

	Ceiling bool
	Overlay bool
	Quit    bool
}

// Step advances the simulation by one fixed tick of cfg.TickSeconds using
// the held keys in input. Edge-triggered keys are handled once per frame by
// the loop, not here, so a frame that runs several ticks toggles only once.
func Step(st *State, input *keytracker.Snapshot, cfg config.SimConfig, cs *collision.CollisionSystem) {
	dt := cfg.TickSeconds
	cam := st.Camera

	// Turning
	if turn := axis(input, keytracker.TurnRight, keytracker.TurnLeft); turn != 0 {
		cam.SetAngle(normalizeAngle(cam.Angle() + turn*cfg.RotationSpeed*dt))
	}

	// Walking and strafing
	forward := axis(input, keytracker.Forward, keytracker.Back)
	strafe := axis(input, keytracker.StrafeRight, keytracker.StrafeLeft)
	if forward != 0 || strafe != 0 {
		move := cam.Direction().Scale(forward).Add(cam.Right().Scale(strafe))
		if l := move.Len(); l > 1 {
			move = move.Scale(1 / l)
		}
		res := cs.MoveAndSlide(cam.Position(), move.Scale(cfg.MoveSpeed*dt), cfg.CollisionRadius)
		cam.SetPosition(res.Pos)
	}

	// Field of view, clamped here because the camera accepts any value
	if zoom := axis(input, keytracker.FovWider, keytracker.FovNarrower); zoom != 0 {
		fov := mathutil.Clamp(cam.FieldOfView()+zoom*cfg.FOVRate*dt, cfg.FOVMin, cfg.FOVMax)
		if fov != cam.FieldOfView() {
			cam.SetFieldOfView(fov)
		}
	}

	stepJump(cam, input, cfg)

	for i := range st.Sprites {
		driftSprite(&st.Sprites[i], dt, cfg.CollisionRadius, cs)
	}
}

// stepJump integrates the eye height. A jump starts only from the ground;
// landing snaps back to the standing eye height.
func stepJump(cam *render.Camera, input *keytracker.Snapshot, cfg config.SimConfig) {
	eye := cam.EyeHeight()
	vz := cam.VerticalVelocity()
	grounded := vz == 0 && eye <= cfg.StandingEye

	if grounded && input.Down(keytracker.Jump) {
		vz = cfg.JumpImpulse
		grounded = false
	}
	if grounded {
		return
	}

	vz -= cfg.Gravity * cfg.TickSeconds
	eye += vz * cfg.TickSeconds
	if eye <= cfg.StandingEye {
		eye = cfg.StandingEye
		vz = 0
	}
	cam.SetEyeHeight(eye)
	cam.SetVerticalVelocity(vz)
}

// driftSprite moves a sprite by its velocity and reflects the velocity on
// every axis a wall blocked.
func driftSprite(s *world.Sprite, dt, radius float64, cs *collision.CollisionSystem) {
	if s.Velocity.X == 0 && s.Velocity.Y == 0 {
		return
	}
	res := cs.MoveAndSlide(s.Pos, s.Velocity.Scale(dt), radius)
	s.Pos = res.Pos
	if res.BlockedX {
		s.Velocity.X = -s.Velocity.X
	}
	if res.BlockedY {
		s.Velocity.Y = -s.Velocity.Y
	}
}

// axis returns +1, -1 or 0 from a pair of opposing held keys.
func axis(input *keytracker.Snapshot, pos, neg keytracker.Key) float64 {
	v := 0.0
	if input.Down(pos) {
		v++
	}
	if input.Down(neg) {
		v--
	}
	return v
}

// normalizeAngle wraps a to [0, 2π) so long sessions do not lose precision.
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
