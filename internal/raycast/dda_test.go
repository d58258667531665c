package raycast

import (
	"math"
	"testing"

	"raycastgame/internal/mathutil"
	"raycastgame/internal/world"
)

func TestCast_AxisAligned(t *testing.T) {
	g := world.NewBorderedGrid(10, 1)
	origin := mathutil.V(5.5, 5.5)

	tests := []struct {
		name     string
		dir      mathutil.Vec2
		tileX    int
		tileY    int
		distance float64
		side     Side
	}{
		{"east", mathutil.V(1, 0), 9, 5, 3.5, SideX},
		{"west", mathutil.V(-1, 0), 0, 5, 4.5, SideX},
		{"south", mathutil.V(0, 1), 5, 9, 3.5, SideY},
		{"north", mathutil.V(0, -1), 5, 0, 4.5, SideY},
		{"east unnormalized", mathutil.V(2, 0), 9, 5, 1.75, SideX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit := Cast(g, origin, tc.dir)
			if hit.Miss() {
				t.Fatal("unexpected miss")
			}
			if hit.TileX != tc.tileX || hit.TileY != tc.tileY {
				t.Errorf("tile = (%d,%d), want (%d,%d)", hit.TileX, hit.TileY, tc.tileX, tc.tileY)
			}
			if math.Abs(hit.Distance-tc.distance) > 1e-12 {
				t.Errorf("distance = %v, want %v", hit.Distance, tc.distance)
			}
			if hit.Side != tc.side {
				t.Errorf("side = %v, want %v", hit.Side, tc.side)
			}
			if hit.Tile != 1 {
				t.Errorf("tile id = %d", hit.Tile)
			}
		})
	}
}

func TestCast_EnclosedGridAlwaysHits(t *testing.T) {
	g := world.NewBorderedGrid(10, 1)
	origins := []mathutil.Vec2{{X: 5.5, Y: 5.5}, {X: 1.01, Y: 8.99}, {X: 3.25, Y: 2.75}}

	for _, origin := range origins {
		for i := 0; i < 720; i++ {
			a := float64(i) * math.Pi / 360
			dir := mathutil.FromAngle(a)
			if dir.X == 0 || dir.Y == 0 {
				continue
			}
			hit := Cast(g, origin, dir)
			if hit.Miss() {
				t.Fatalf("origin %v angle %v: miss in enclosed grid", origin, a)
			}
			if !g.InBounds(hit.TileX, hit.TileY) {
				t.Fatalf("hit tile (%d,%d) out of bounds", hit.TileX, hit.TileY)
			}
			if hit.Distance < 0 {
				t.Fatalf("negative distance %v", hit.Distance)
			}
			// Entry point lies on the struck cell's boundary.
			p := hit.Point(origin, dir)
			if p.X < float64(hit.TileX)-1e-9 || p.X > float64(hit.TileX+1)+1e-9 ||
				p.Y < float64(hit.TileY)-1e-9 || p.Y > float64(hit.TileY+1)+1e-9 {
				t.Fatalf("entry point %v outside tile (%d,%d)", p, hit.TileX, hit.TileY)
			}
		}
	}
}

func TestCast_MissWhenLeavingGrid(t *testing.T) {
	g, err := world.NewGrid(4, make([]world.TileID, 16))
	if err != nil {
		t.Fatal(err)
	}
	hit := Cast(g, mathutil.V(1.5, 1.5), mathutil.V(0.7, 0.3))
	if !hit.Miss() || hit.Distance != MissDistance {
		t.Errorf("expected miss sentinel, got %+v", hit)
	}
}

func TestCast_ZeroDirection(t *testing.T) {
	g := world.NewBorderedGrid(6, 1)
	if hit := Cast(g, mathutil.V(3, 3), mathutil.V(0, 0)); !hit.Miss() {
		t.Errorf("zero vector should miss, got %+v", hit)
	}
	// Origin exactly on a boundary with a zero component must not produce NaN.
	hit := Cast(g, mathutil.V(3, 3), mathutil.V(0, -1))
	if hit.Miss() || math.IsNaN(hit.Distance) {
		t.Fatalf("got %+v", hit)
	}
	if hit.TileX != 3 || hit.TileY != 0 || hit.Distance != 2 {
		t.Errorf("got %+v", hit)
	}
}

func TestCast_InteriorWallAndSide(t *testing.T) {
	tiles := make([]world.TileID, 25)
	tiles[2*5+3] = 4 // (3,2)
	g, _ := world.NewGrid(5, tiles)

	// Diagonal from (1.8, 0.5) heading down-right enters (3,2) through its top face.
	origin := mathutil.V(1.8, 0.5)
	hit := Cast(g, origin, mathutil.V(1, 1))
	if hit.Miss() {
		t.Fatal("unexpected miss")
	}
	if hit.TileX != 3 || hit.TileY != 2 || hit.Tile != 4 {
		t.Fatalf("hit = %+v", hit)
	}
	if hit.Side != SideY {
		t.Errorf("side = %v, want SideY", hit.Side)
	}
	if math.Abs(hit.Distance-1.5) > 1e-12 {
		t.Errorf("distance = %v, want 1.5", hit.Distance)
	}
	frac := WallFraction(hit, origin, mathutil.V(1, 1))
	if math.Abs(frac-0.3) > 1e-12 {
		t.Errorf("wall fraction = %v, want 0.3", frac)
	}

	// Shifted left, the same ray direction meets the cell's left face instead.
	origin = mathutil.V(1.2, 0.5)
	hit = Cast(g, origin, mathutil.V(1, 1))
	if hit.TileX != 3 || hit.TileY != 2 || hit.Side != SideX {
		t.Fatalf("hit = %+v", hit)
	}
	if math.Abs(hit.Distance-1.8) > 1e-12 {
		t.Errorf("distance = %v, want 1.8", hit.Distance)
	}
}

func TestCast_Deterministic(t *testing.T) {
	g := world.NewBorderedGrid(10, 1)
	origin := mathutil.V(5, 5)
	dir := mathutil.FromAngle(0.6)

	first := Cast(g, origin, dir)
	for i := 0; i < 100; i++ {
		if got := Cast(g, origin, dir); got != first {
			t.Fatalf("run %d: %+v != %+v", i, got, first)
		}
	}
	t.Logf("hit %+v", first)
}
