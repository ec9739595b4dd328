package asset

// Texture names used by the game
const (
	TextureHandGun         = "hand_gun"
	TextureHandGunSelected = "hand_gun_selected"
	TextureGunAxe          = "gun_axe"
	TextureGunAxeSelected  = "gun_axe_selected"
	TextureShotGun         = "shot_gun"
	TextureShotGunSelected = "shot_gun_selected"
	TextureBullet          = "bullet"
	TextureWall            = "wall"
	TextureEnemy           = "enemy"
	TextureGround          = "ground"
	TexturePlayer          = "player"
	TexturePlayerSelected  = "player_selected"
)

// DefaultCatalogue returns the built-in texture definitions
// Config entries with the same name override these
func DefaultCatalogue() map[string]Definition {
	return map[string]Definition{
		TextureHandGun:         {Glyph: "h", Width: 32, Height: 32, Color: "silver"},
		TextureHandGunSelected: {Glyph: "H", Width: 32, Height: 32, Color: "yellow"},
		TextureGunAxe:          {Glyph: "x", Width: 32, Height: 32, Color: "silver"},
		TextureGunAxeSelected:  {Glyph: "X", Width: 32, Height: 32, Color: "yellow"},
		TextureShotGun:         {Glyph: "s", Width: 32, Height: 32, Color: "silver"},
		TextureShotGunSelected: {Glyph: "S", Width: 32, Height: 32, Color: "yellow"},
		TextureBullet:          {Glyph: "*", Width: 256, Height: 256, Color: "white"},
		TextureWall:            {Glyph: "█", Width: 40, Height: 40, Color: "maroon"},
		TextureEnemy:           {Glyph: "E", Width: 40, Height: 40, Color: "red"},
		TextureGround:          {Glyph: "·", Width: 40, Height: 40, Color: "green"},
		TexturePlayer:          {Glyph: "@", Width: 64, Height: 64, Color: "aqua"},
		TexturePlayerSelected:  {Glyph: "@", Width: 64, Height: 64, Color: "yellow"},
	}
}
