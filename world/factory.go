package world

import (
	"fmt"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/audio"
	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/gun"
	"github.com/GamesFromRust/piston-shooty/level"
	"github.com/GamesFromRust/piston-shooty/player"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// SoundSource hands out sound handles by name
type SoundSource interface {
	Get(name string) audio.Sound
}

// Factory assembles fresh worlds from the level catalogue
type Factory struct {
	Levels      *level.Catalogue
	Assets      *asset.Manager
	Sounds      SoundSource
	GunAxeDepth int
}

// weaponSpec pairs a behavior with its texture names
type weaponSpec struct {
	kind    gun.Kind
	texture string
	chosen  string
}

var loadout = []weaponSpec{
	{gun.KindHandGun, asset.TextureHandGun, asset.TextureHandGunSelected},
	{gun.KindGunAxe, asset.TextureGunAxe, asset.TextureGunAxeSelected},
	{gun.KindShotGun, asset.TextureShotGun, asset.TextureShotGunSelected},
}

// Load builds a fresh attempt at the level with the given play-order index
func (f *Factory) Load(index int) (game.State, error) {
	names := f.Levels.Names()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("level index %d out of range [0, %d)", index, len(names))
	}
	return f.Build(names[index])
}

// Build creates and populates a world for the named level
func (f *Factory) Build(name string) (*World, error) {
	tex, err := f.worldTextures()
	if err != nil {
		return nil, err
	}
	newPlayer, err := f.playerFactory()
	if err != nil {
		return nil, err
	}

	w := New(name, tex, newPlayer)
	if err := f.Levels.Load(name, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (f *Factory) worldTextures() (Textures, error) {
	var tex Textures
	var err error
	if tex.Wall, err = f.Assets.Get(asset.TextureWall); err != nil {
		return tex, err
	}
	if tex.Ground, err = f.Assets.Get(asset.TextureGround); err != nil {
		return tex, err
	}
	if tex.Enemy, err = f.Assets.Get(asset.TextureEnemy); err != nil {
		return tex, err
	}
	return tex, nil
}

// playerFactory resolves every texture up front; the returned func cannot fail
func (f *Factory) playerFactory() (PlayerFactory, error) {
	var ptex player.Textures
	var err error
	if ptex.Player, err = f.Assets.Get(asset.TexturePlayer); err != nil {
		return nil, err
	}
	if ptex.PlayerSelected, err = f.Assets.Get(asset.TexturePlayerSelected); err != nil {
		return nil, err
	}
	bullet, err := f.Assets.Get(asset.TextureBullet)
	if err != nil {
		return nil, err
	}

	gunTextures := make([]gun.Textures, len(loadout))
	for i, weapon := range loadout {
		plain, err := f.Assets.Get(weapon.texture)
		if err != nil {
			return nil, err
		}
		chosen, err := f.Assets.Get(weapon.chosen)
		if err != nil {
			return nil, err
		}
		gunTextures[i] = gun.Textures{Gun: plain, GunSelected: chosen, Bullet: bullet}
	}

	return func(pos vmath.Vector2) *player.Player {
		concepts := make([]*gun.Concept, len(loadout))
		for i, weapon := range loadout {
			concepts[i] = gun.NewConcept(
				gun.NewBehavior(weapon.kind, f.GunAxeDepth),
				gunTextures[i],
				f.sound(audio.SoundBoom),
				f.sound(audio.SoundBoop),
			)
		}
		return player.New(pos, ptex, concepts)
	}, nil
}

func (f *Factory) sound(name string) audio.Sound {
	if f.Sounds == nil {
		return audio.Silent{}
	}
	return f.Sounds.Get(name)
}
