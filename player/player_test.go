package player

import (
	"math"
	"testing"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/gun"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

var _ interface {
	component.Renderable
	component.Updatable
} = (*Player)(nil)

func tex(name string) *asset.Texture {
	return &asset.Texture{Name: name, Glyph: '@', Width: 32, Height: 32}
}

func newTestPlayer(pos vmath.Vector2) *Player {
	gt := gun.Textures{Gun: tex("gun"), GunSelected: tex("gun_selected"), Bullet: tex("bullet")}
	concepts := []*gun.Concept{
		gun.NewConcept(gun.NewBehavior(gun.KindHandGun, 2), gt, nil, nil),
		gun.NewConcept(gun.NewBehavior(gun.KindGunAxe, 2), gt, nil, nil),
		gun.NewConcept(gun.NewBehavior(gun.KindShotGun, 2), gt, nil, nil),
	}
	return New(pos, Textures{Player: tex("player"), PlayerSelected: tex("player_selected")}, concepts)
}

func snapshot(mouse vmath.Vector2, keys []input.Key, buttons []input.MouseButton) *input.Snapshot {
	tr := input.NewTracker()
	tr.MoveMouse(mouse)
	for _, k := range keys {
		tr.Press(k)
	}
	for _, b := range buttons {
		tr.PressMouse(b)
	}
	return tr.Snapshot()
}

func countDynamic(reqs []component.SpawnRequest, pred func(core.ObjectType) bool) int {
	n := 0
	for _, r := range reqs {
		if r.Type == component.AddDynamicRenderable && pred(r.Renderable.ObjectType()) {
			n++
		}
	}
	return n
}

func TestPlayerFacesMouse(t *testing.T) {
	p := newTestPlayer(vmath.V2(100, 100))
	p.Update(snapshot(vmath.V2(100, 200), nil, nil), 0.016)
	if math.Abs(p.Rotation()-math.Pi/2) > 1e-9 {
		t.Errorf("rotation = %v, want pi/2", p.Rotation())
	}

	// Mouse on the player keeps the previous facing
	p.Update(snapshot(vmath.V2(100, 100), nil, nil), 0.016)
	if math.Abs(p.Rotation()-math.Pi/2) > 1e-9 {
		t.Errorf("rotation changed to %v with mouse on player", p.Rotation())
	}
}

func TestPlayerFiresCurrentWeapon(t *testing.T) {
	p := newTestPlayer(vmath.V2(0, 0))

	reqs := p.Update(snapshot(vmath.V2(10, 0), nil, []input.MouseButton{input.MouseLeft}), 0.016)
	if n := countDynamic(reqs, core.ObjectType.IsGun); n != 1 {
		t.Fatalf("left click spawned %d guns, want 1", n)
	}
	if p.Concepts[0].ShotsTaken != 1 {
		t.Error("hand gun did not record the shot")
	}

	reqs = p.Update(snapshot(vmath.V2(10, 0), []input.Key{input.KeyFire}, nil), 0.016)
	if n := countDynamic(reqs, core.ObjectType.IsGun); n != 1 {
		t.Fatalf("space spawned %d guns, want 1", n)
	}

	reqs = p.Update(snapshot(vmath.V2(10, 0), nil, []input.MouseButton{input.MouseRight}), 0.016)
	isBullet := func(typ core.ObjectType) bool { return typ == core.ObjectBullet }
	if n := countDynamic(reqs, isBullet); n != 2 {
		t.Fatalf("right click spawned %d bullets, want 2", n)
	}
}

func TestPlayerWeaponCycling(t *testing.T) {
	p := newTestPlayer(vmath.V2(0, 0))
	next := []input.Key{input.KeyNextWeapon}
	prev := []input.Key{input.KeyPrevWeapon}

	steps := []struct {
		keys []input.Key
		want int
	}{
		{next, 1},
		{next, 2},
		{next, 0},
		{prev, 2},
		{prev, 1},
	}
	for i, s := range steps {
		p.Update(snapshot(vmath.Vector2{}, s.keys, nil), 0.016)
		if p.Current != s.want {
			t.Fatalf("step %d: current = %d, want %d", i, p.Current, s.want)
		}
		for j, c := range p.Concepts {
			if c.Selected != (j == s.want) {
				t.Errorf("step %d: concept %d selected = %v", i, j, c.Selected)
			}
		}
	}
}

func TestPlayerTextureFollowsGunsInPlay(t *testing.T) {
	p := newTestPlayer(vmath.V2(0, 0))
	if p.RenderableObject().Texture.Name != "player_selected" {
		t.Error("armed player should be highlighted")
	}

	p.Update(snapshot(vmath.V2(1, 0), nil, []input.MouseButton{input.MouseLeft}), 0.016)
	if p.RenderableObject().Texture.Name != "player" {
		t.Error("player with a gun in flight should not be highlighted")
	}
}

func TestPlayerCanShootAcrossWeapons(t *testing.T) {
	p := newTestPlayer(vmath.V2(0, 0))
	if !p.CanShootGun() || p.CanShootBullet() {
		t.Fatal("fresh player can fire guns but has no volley")
	}

	p.Concepts[0].HasShotBullet = true
	p.Concepts[1].ShotsTaken = 2
	if !p.CanShootGun() {
		t.Error("shot gun is still available")
	}
	p.Concepts[2].HasShotBullet = true
	if p.CanShootGun() {
		t.Error("every weapon is spent")
	}
}

func TestPlayerIsPermanent(t *testing.T) {
	p := newTestPlayer(vmath.V2(0, 0))
	p.SetShouldDelete(true)
	if p.ShouldDelete() {
		t.Error("player must never be deleted")
	}
}
