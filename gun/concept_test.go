package gun

import (
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/GamesFromRust/piston-shooty/audio/mocks"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

func countType(reqs []component.SpawnRequest, typ core.ObjectType) int {
	n := 0
	for _, r := range reqs {
		if r.Type == component.AddDynamicRenderable && r.Renderable.ObjectType() == typ {
			n++
		}
	}
	return n
}

func countGuns(reqs []component.SpawnRequest) int {
	n := 0
	for _, r := range reqs {
		if r.Type == component.AddDynamicRenderable && r.Renderable.ObjectType().IsGun() {
			n++
		}
	}
	return n
}

func newMockedConcept(t *testing.T, kind Kind, gunPlays, bulletPlays int) *Concept {
	ctrl := gomock.NewController(t)
	gunSound := mocks.NewMockSound(ctrl)
	bulletSound := mocks.NewMockSound(ctrl)
	gunSound.EXPECT().Play().Times(gunPlays)
	bulletSound.EXPECT().Play().Times(bulletPlays)

	c := NewConcept(NewBehavior(kind, 2), testTextures(), gunSound, bulletSound)
	c.SetSelected(true)
	return c
}

func TestFirstShotAimsAtMouse(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 1, 0)
	player := vmath.V2(100, 100)

	reqs := c.ShootGun(player, 0.7, vmath.V2(100, 300))
	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want dynamic+updatable", len(reqs))
	}
	if reqs[0].Type != component.AddDynamicRenderable || reqs[1].Type != component.AddUpdatable {
		t.Errorf("request types = %v, %v", reqs[0].Type, reqs[1].Type)
	}

	g := c.Guns[0]
	if g.Position() != player || g.Rotation() != 0.7 || g.Depth != 0 {
		t.Errorf("first gun pose = %v rot %v depth %d", g.Position(), g.Rotation(), g.Depth)
	}
	if !g.Velocity.ApproxEqual(vmath.V2(0, parameter.ProjectileVelocity), eps) {
		t.Errorf("velocity = %v, want straight down", g.Velocity)
	}
	if !g.Selected {
		t.Error("newest gun must be selected")
	}
}

func TestShootAtOwnPositionGivesZeroVelocity(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 1, 0)
	player := vmath.V2(50, 50)

	reqs := c.ShootGun(player, 0, player)
	if countGuns(reqs) != 1 {
		t.Fatal("firing at own position must still spawn a gun")
	}
	v := c.Guns[0].Velocity
	if v != (vmath.Vector2{}) || math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Errorf("velocity = %v, want zero", v)
	}
}

// HandGun fires three times, then one volley converts all three guns
func TestHandGunThreeShotsThenVolley(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 3, 3)
	player := vmath.V2(0, 0)
	mouse := vmath.V2(10, 0)

	for i := 0; i < 3; i++ {
		reqs := c.ShootGun(player, 0, mouse)
		if n := countGuns(reqs); n != 1 {
			t.Fatalf("shot %d spawned %d guns, want 1", i+1, n)
		}
	}
	if c.ShotsTaken != 3 || len(c.Guns) != 3 {
		t.Fatalf("shots %d guns %d, want 3 and 3", c.ShotsTaken, len(c.Guns))
	}
	for i, g := range c.Guns {
		if g.Depth != i {
			t.Errorf("gun %d depth = %d", i, g.Depth)
		}
		if g.Selected != (i == 2) {
			t.Errorf("gun %d selected = %v", i, g.Selected)
		}
	}

	reqs := c.ShootBullets()
	if n := countType(reqs, core.ObjectBullet); n != 3 {
		t.Fatalf("volley spawned %d bullets, want 3", n)
	}
	if len(reqs) != 6 {
		t.Errorf("volley produced %d requests, want 6", len(reqs))
	}
	if !c.HasShotBullet {
		t.Error("volley must latch HasShotBullet")
	}
	for i, g := range c.Guns {
		if !g.ShouldDelete() {
			t.Errorf("gun %d survived its conversion", i)
		}
	}

	if reqs := c.ShootGun(player, 0, mouse); reqs != nil {
		t.Errorf("firing after volley returned %d requests", len(reqs))
	}
	if reqs := c.ShootBullets(); reqs != nil {
		t.Errorf("second volley returned %d requests", len(reqs))
	}
	if c.CanShootGun() || c.CanShootBullet() {
		t.Error("weapon must be spent after volley")
	}
}

func TestGunAxeDepthLimit(t *testing.T) {
	c := newMockedConcept(t, KindGunAxe, 2, 0)
	player := vmath.V2(0, 0)

	for i := 0; i < 2; i++ {
		if !c.CanShootGun() {
			t.Fatalf("shot %d rejected early", i+1)
		}
		if reqs := c.ShootGun(player, 0, vmath.V2(1, 0)); countGuns(reqs) != 1 {
			t.Fatalf("shot %d did not spawn a gun", i+1)
		}
	}

	if c.CanShootGun() {
		t.Error("CanShootGun true after reaching depth")
	}
	if reqs := c.ShootGun(player, 0, vmath.V2(1, 0)); len(reqs) != 0 {
		t.Errorf("third shot returned %d requests", len(reqs))
	}
	if c.ShotsTaken != 2 {
		t.Errorf("ShotsTaken = %d, want 2", c.ShotsTaken)
	}
	if !c.CanShootBullet() {
		t.Error("depth-capped weapon can still fire its volley")
	}
}

func TestGunAxeDepthStaysCappedAfterGunsDie(t *testing.T) {
	c := newMockedConcept(t, KindGunAxe, 2, 0)
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))

	for _, g := range c.Guns {
		g.Collide(core.ObjectWall)
	}
	c.Update()

	if len(c.Guns) != 0 || c.HasGunsInPlay() {
		t.Fatal("dead guns not pruned")
	}
	if c.CanShootGun() || c.CanShootBullet() {
		t.Error("spent gun axe must stay spent for the attempt")
	}
}

func TestShotGunForksDeepestGuns(t *testing.T) {
	c := newMockedConcept(t, KindShotGun, 3, 0)
	player := vmath.V2(0, 0)

	wantSpawned := []int{1, 2, 4}
	for i, want := range wantSpawned {
		reqs := c.ShootGun(player, 0, vmath.V2(1, 0))
		if n := countGuns(reqs); n != want {
			t.Fatalf("shot %d spawned %d guns, want %d", i+1, n, want)
		}
	}
	if c.ShotsTaken != 3 {
		t.Errorf("ShotsTaken = %d, want 3 (one per action)", c.ShotsTaken)
	}
	if len(c.Guns) != 7 {
		t.Errorf("chain length = %d, want 7", len(c.Guns))
	}

	selected := 0
	for _, g := range c.Guns {
		if g.Selected {
			selected++
		}
	}
	if selected != 1 || !c.Guns[len(c.Guns)-1].Selected {
		t.Errorf("%d guns selected, want only the last", selected)
	}
}

func TestUpdatePrunesAndReselects(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 2, 0)
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))

	first, last := c.Guns[0], c.Guns[1]
	last.Collide(core.ObjectWall)
	c.Update()

	if len(c.Guns) != 1 || c.Guns[0] != first {
		t.Fatalf("chain after prune = %v", c.Guns)
	}
	if !first.Selected {
		t.Error("surviving head must be reselected")
	}

	c.SetSelected(false)
	c.Update()
	if first.Selected {
		t.Error("head of an unselected weapon must not be highlighted")
	}
}

func TestVolleySkipsDeadGuns(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 2, 1)
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))
	c.ShootGun(vmath.Vector2{}, 0, vmath.V2(1, 0))
	c.Guns[0].Collide(core.ObjectWall)

	if n := countType(c.ShootBullets(), core.ObjectBullet); n != 1 {
		t.Errorf("volley spawned %d bullets, want 1", n)
	}
}

func TestVolleyWithoutGunsIsRejected(t *testing.T) {
	c := newMockedConcept(t, KindHandGun, 0, 0)
	if reqs := c.ShootBullets(); reqs != nil {
		t.Errorf("volley with no guns returned %d requests", len(reqs))
	}
	if c.HasShotBullet {
		t.Error("rejected volley must not latch")
	}
}
