package core

// ObjectType tags every game object for collision-reaction dispatch
type ObjectType uint8

const (
	ObjectWall ObjectType = iota
	ObjectBullet
	ObjectGun
	ObjectHandGun
	ObjectGunAxe
	ObjectShotGun
	ObjectEnemy
	ObjectPlayer
	ObjectGround
)

var objectTypeNames = [...]string{
	ObjectWall:    "wall",
	ObjectBullet:  "bullet",
	ObjectGun:     "gun",
	ObjectHandGun: "hand_gun",
	ObjectGunAxe:  "gun_axe",
	ObjectShotGun: "shot_gun",
	ObjectEnemy:   "enemy",
	ObjectPlayer:  "player",
	ObjectGround:  "ground",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return "unknown"
}

// IsGun is true for the generic gun tag and every weapon-specific variant
func (t ObjectType) IsGun() bool {
	switch t {
	case ObjectGun, ObjectHandGun, ObjectGunAxe, ObjectShotGun:
		return true
	}
	return false
}
