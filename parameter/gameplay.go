package parameter

import (
	"math"
	"time"
)

// Projectiles
const (
	// ProjectileVelocity is the speed of a thrown gun in pixels per second
	ProjectileVelocity = 150.0

	// BulletVelocity is the speed of a bullet in pixels per second
	BulletVelocity = 200.0

	// GunRotationalVelocity is the spin of an in-flight gun in radians per second
	GunRotationalVelocity = 4.0

	// ChainOffset is the distance ahead of the previous gun a chained gun spawns at
	ChainOffset = 30.0

	// ShotGunForkAngle is the position offset angle of each forked shotgun gun
	ShotGunForkAngle = math.Pi / 4

	// ShotGunForks is the number of guns a shotgun spawns per gun at the chain head
	ShotGunForks = 2

	// GunAxeDepth is the default maximum number of gun-axe firing actions per attempt
	GunAxeDepth = 2
)

// Entity scales
const (
	PlayerScale = 0.5
	WallScale   = 1.0
	EnemyScale  = 1.0
	GroundScale = 1.0
	GunScale    = 0.5
	BulletScale = 0.03125
)

// Render layers, drawn in ascending order
const (
	LayerGround     = 0
	LayerWall       = 0
	LayerEnemy      = 1
	LayerPlayer     = 1
	LayerProjectile = 2
	LayerCount      = 3
)

// LevelNameDuration is how long the level name banner stays up after a level loads
const LevelNameDuration = 1 * time.Second
