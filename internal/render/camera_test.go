package render

import (
	"math"
	"testing"

	"raycastgame/internal/mathutil"
)

func TestSetAngleSetsExactDirection(t *testing.T) {
	cam := NewCamera(320, mathutil.V(2, 2), 0, math.Pi/3, 0.5)
	for a := -7.0; a <= 7.0; a += 0.137 {
		cam.SetAngle(a)
		want := mathutil.Vec2{X: math.Cos(a), Y: math.Sin(a)}
		if cam.Direction() != want {
			t.Fatalf("angle %.3f: direction %v, want %v", a, cam.Direction(), want)
		}
		if cam.Angle() != a {
			t.Fatalf("angle = %v, want %v", cam.Angle(), a)
		}
	}
}

func TestFieldOfViewChangesProjectionMonotonically(t *testing.T) {
	cam := NewCamera(320, mathutil.V(2, 2), 0, math.Pi/3, 0.5)

	prev := math.Inf(1)
	for deg := 10.0; deg <= 170; deg += 5 {
		cam.SetFieldOfView(deg * math.Pi / 180)
		pd := cam.ProjectionDistance()
		if !(pd < prev) {
			t.Fatalf("fov %.0f°: projection distance %.4f not below %.4f", deg, pd, prev)
		}
		if math.Abs(pd*cam.InverseProjectionDistance()-1) > 1e-12 {
			t.Fatalf("fov %.0f°: reciprocal out of sync", deg)
		}
		prev = pd
	}

	for deg := 170.0; deg >= 10; deg -= 5 {
		before := cam.ProjectionDistance()
		cam.SetFieldOfView(deg * math.Pi / 180)
		if deg < 170 && !(cam.ProjectionDistance() > before) {
			t.Fatalf("narrowing to %.0f° did not increase projection distance", deg)
		}
	}
}

func TestProjectionDistanceFormula(t *testing.T) {
	cam := NewCamera(320, mathutil.V(0, 0), 0, math.Pi/2, 0.5)
	if got := cam.ProjectionDistance(); math.Abs(got-160) > 1e-9 {
		t.Errorf("90° over 320 columns: projection distance %.6f, want 160", got)
	}
}

func TestEdgeDirectionsSpanFieldOfView(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		fov   float64
	}{
		{"east 60", 0, math.Pi / 3},
		{"south 90", math.Pi / 2, math.Pi / 2},
		{"oblique 70", 2.4, 70 * math.Pi / 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(200, mathutil.V(3, 3), tt.angle, tt.fov, 0.5)
			left, right := cam.EdgeDirections()
			dir := cam.Direction()

			// Shear keeps the forward component at exactly one tile.
			if math.Abs(left.Dot(dir)-1) > 1e-12 || math.Abs(right.Dot(dir)-1) > 1e-12 {
				t.Errorf("edge forward components %.6f, %.6f", left.Dot(dir), right.Dot(dir))
			}

			half := tt.fov / 2
			gotHalf := math.Atan2(right.Dot(cam.Right()), right.Dot(dir))
			if math.Abs(gotHalf-half) > 1e-9 {
				t.Errorf("right edge at %.6f rad, want %.6f", gotHalf, half)
			}
			if left.Dot(cam.Right()) >= 0 {
				t.Error("left edge should point left of the view axis")
			}

			mid := cam.ColumnRay(100)
			if mid.Sub(dir).Len() > 1e-12 {
				t.Errorf("centre column ray %v, want %v", mid, dir)
			}
			if cam.ColumnRay(0) != left {
				t.Errorf("column 0 ray %v, want left edge %v", cam.ColumnRay(0), left)
			}
		})
	}
}

func TestSettersRecomputeDerivedState(t *testing.T) {
	cam := NewCamera(100, mathutil.V(1, 1), 0, math.Pi/2, 0.5)
	leftBefore, _ := cam.EdgeDirections()

	cam.SetFieldOfView(math.Pi / 4)
	leftAfter, _ := cam.EdgeDirections()
	if leftAfter == leftBefore {
		t.Error("edge directions not recomputed after SetFieldOfView")
	}

	cam.SetPosition(mathutil.V(4, 2))
	cam.SetEyeHeight(0.7)
	cam.SetVerticalVelocity(1.5)
	if cam.Position() != mathutil.V(4, 2) || cam.EyeHeight() != 0.7 || cam.VerticalVelocity() != 1.5 {
		t.Errorf("setters not applied: pos=%v eye=%v vz=%v", cam.Position(), cam.EyeHeight(), cam.VerticalVelocity())
	}
}
