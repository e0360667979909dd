package core

import (
	"math"
	"testing"
)

func TestInsertAhead(t *testing.T) {
	chain := spheres(
		[]Color{ColorBlue, ColorYellow, ColorRed, ColorBlue},
		[]float64{380, 340, 300, 260},
	)

	chain, at := Insert(chain, Hit{Index: 2, Side: InsertAhead}, Sphere{ID: 99, Color: ColorGreen}, testDiameter)

	if at != 2 {
		t.Fatalf("Insert() index = %d, expected 2", at)
	}
	want := []struct {
		color Color
		d     float64
	}{
		{ColorBlue, 420},
		{ColorYellow, 380},
		{ColorGreen, 340},
		{ColorRed, 300},
		{ColorBlue, 260},
	}
	if len(chain) != len(want) {
		t.Fatalf("len(chain) = %d, expected %d", len(chain), len(want))
	}
	for i, w := range want {
		if chain[i].Color != w.color || chain[i].Distance != w.d {
			t.Errorf("chain[%d] = %v@%v, expected %v@%v", i, chain[i].Color, chain[i].Distance, w.color, w.d)
		}
	}
}

func TestInsertBehind(t *testing.T) {
	chain := spheres(
		[]Color{ColorBlue, ColorYellow, ColorRed},
		[]float64{300, 260, 220},
	)

	chain, at := Insert(chain, Hit{Index: 1, Side: InsertBehind}, Sphere{ID: 99, Color: ColorGreen}, testDiameter)

	if at != 2 {
		t.Fatalf("Insert() index = %d, expected 2", at)
	}
	expected := []float64{300, 260, 220, 180}
	for i, d := range expected {
		if chain[i].Distance != d {
			t.Errorf("chain[%d].Distance = %v, expected %v", i, chain[i].Distance, d)
		}
	}
	if chain[2].ID != 99 {
		t.Errorf("chain[2].ID = %d, expected 99", chain[2].ID)
	}
}

func TestInsertKeepsSpacing(t *testing.T) {
	for _, side := range []Side{InsertAhead, InsertBehind} {
		for idx := 0; idx < 4; idx++ {
			chain := spheres(
				[]Color{ColorRed, ColorBlue, ColorRed, ColorBlue},
				[]float64{400, 350, 300, 260},
			)
			chain, _ = Insert(chain, Hit{Index: idx, Side: side}, Sphere{Color: ColorGreen}, testDiameter)

			for i := 0; i < len(chain)-1; i++ {
				if gap := chain[i].Distance - chain[i+1].Distance; gap < testDiameter {
					t.Errorf("%v at %d: gap %d = %v, expected >= %v", side, idx, i, gap, testDiameter)
				}
			}
		}
	}
}

func TestInsertStaleIndex(t *testing.T) {
	chain := spheres([]Color{ColorRed}, []float64{100})

	for _, idx := range []int{-1, 1, 5} {
		got, at := Insert(chain, Hit{Index: idx}, Sphere{Color: ColorGreen}, testDiameter)
		if at != -1 || len(got) != 1 {
			t.Errorf("Insert(index %d) = (len %d, %d), expected (len 1, -1)", idx, len(got), at)
		}
	}
}

func TestDetect(t *testing.T) {
	params := DefaultParams()
	path := BuildPath(800, 600, params.Path)
	chain := spheres([]Color{ColorBlue, ColorRed}, []float64{900, 500})

	tests := []struct {
		name  string
		pos   Point
		hit   bool
		index int
		side  Side
	}{
		{"miss", Point{-1000, -1000}, false, 0, 0},
		{"hit ahead side", path.PointAt(510), true, 1, InsertAhead},
		{"hit behind side", path.PointAt(490), true, 1, InsertBehind},
		{"hit first sphere", path.PointAt(905), true, 0, InsertAhead},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			projectiles := []Projectile{{ID: 1, Pos: tc.pos, Color: ColorGreen}}
			hit, ok := Detect(projectiles, chain, path, params.Diameter(), params.Collision)
			if ok != tc.hit {
				t.Fatalf("Detect() ok = %v, expected %v", ok, tc.hit)
			}
			if !ok {
				return
			}
			if hit.Index != tc.index {
				t.Errorf("Detect() index = %d, expected %d", hit.Index, tc.index)
			}
			if hit.Side != tc.side {
				t.Errorf("Detect() side = %v, expected %v", hit.Side, tc.side)
			}
		})
	}
}

func TestDetectFirstProjectileWins(t *testing.T) {
	params := DefaultParams()
	path := BuildPath(800, 600, params.Path)
	chain := spheres([]Color{ColorBlue, ColorRed}, []float64{900, 500})

	projectiles := []Projectile{
		{ID: 1, Pos: Point{-1000, 0}},
		{ID: 2, Pos: path.PointAt(500)},
		{ID: 3, Pos: path.PointAt(900)},
	}
	hit, ok := Detect(projectiles, chain, path, params.Diameter(), params.Collision)
	if !ok {
		t.Fatal("Detect() found no hit")
	}
	if hit.Projectile != 1 || hit.Index != 1 {
		t.Errorf("Detect() = %+v, expected projectile 1 on sphere 1", hit)
	}
}

func TestDetectHitRadius(t *testing.T) {
	params := DefaultParams()
	path := BuildPath(800, 600, params.Path)
	chain := spheres([]Color{ColorRed}, []float64{500})
	center := path.PointAt(500)
	limit := params.Diameter() * params.Collision.HitFactor

	// Offset along the track normal.
	tangent := path.PointAt(501)
	dx, dy := tangent.X-center.X, tangent.Y-center.Y
	n := math.Hypot(dx, dy)
	normal := Point{X: -dy / n, Y: dx / n}

	inside := []Projectile{{Pos: center.Add(normal.Scale(limit - 0.5))}}
	if _, ok := Detect(inside, chain, path, params.Diameter(), params.Collision); !ok {
		t.Errorf("Detect() at %v missed, expected hit", limit-0.5)
	}

	outside := []Projectile{{Pos: center.Add(normal.Scale(limit + 0.5))}}
	if _, ok := Detect(outside, chain, path, params.Diameter(), params.Collision); ok {
		t.Errorf("Detect() at %v hit, expected miss", limit+0.5)
	}
}

func TestDetectNilPath(t *testing.T) {
	chain := spheres([]Color{ColorRed}, []float64{500})
	if _, ok := Detect([]Projectile{{}}, chain, nil, testDiameter, DefaultParams().Collision); ok {
		t.Error("Detect() with nil path reported a hit")
	}
}
