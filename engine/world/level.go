package world

// LevelFor returns the level reached with xp experience at xpPerLevel
// experience per level: floor(xp/xpPerLevel) + 1.
func LevelFor(xp, xpPerLevel int) int {
	if xpPerLevel <= 0 || xp < 0 {
		return 1
	}
	return xp/xpPerLevel + 1
}

// GainExperience adds experience and recomputes the level. It returns the
// number of levels gained. Negative amounts are ignored.
func (e *Entity) GainExperience(xp int) int {
	if xp <= 0 {
		return 0
	}
	e.experience += xp
	return e.RecomputeLevel()
}

// RecomputeLevel derives the level from experience. On a level increase the
// maximum hit points and base attack are rescaled to the new level and hit
// points are restored. Calling it with unchanged experience changes nothing.
func (e *Entity) RecomputeLevel() int {
	if e.growth.XPPerLevel <= 0 {
		return 0
	}
	level := LevelFor(e.experience, e.growth.XPPerLevel)
	if level <= e.level {
		return 0
	}
	gained := level - e.level
	e.level = level
	e.maxHP = level * e.growth.HPPerLevel
	e.baseAttack = level * e.growth.AttackPerLevel
	e.hp = e.maxHP
	return gained
}
