package game

// EnemySystem owns the enemy population and its periodic spawning.
type EnemySystem struct {
	Enemies    []Enemy
	SpawnTimer Countdown

	seed     uint64
	spawnSeq uint64
	rand     *Rand
}

func NewEnemySystem(seed uint64) *EnemySystem {
	es := &EnemySystem{}
	es.Reset(seed)
	return es
}

// Reset drops every enemy and reseeds spawning.
func (es *EnemySystem) Reset(seed uint64) {
	es.Enemies = es.Enemies[:0]
	es.seed = seed
	es.spawnSeq = 0
	es.rand = NewRand(seed ^ 0xE4E3F00D)
	es.SpawnTimer = 0
}

func (es *EnemySystem) nextSpawnRand(salt uint64) *Rand {
	es.spawnSeq++
	return NewRand(splitmix64(es.seed ^ salt ^ es.spawnSeq*0x9E3779B185EBCA87))
}

// pickType rolls seekerChance for a seeker, otherwise draws from the table
// weights of the other kinds.
func pickEnemyType(t *Tables, seekerChance float64, r *Rand) EnemyType {
	if seeker, ok := t.EnemyType(EnemySeeker); ok && r.Chance(seekerChance) {
		return seeker
	}
	weights := make([]int, len(t.Enemies))
	for i, e := range t.Enemies {
		if e.Kind != EnemySeeker {
			weights[i] = e.Weight
		}
	}
	return t.Enemies[r.Weighted(weights)]
}

// Spawn adds an enemy of type t at pos. The pointer is valid until the next
// Spawn or RemoveDead.
func (es *EnemySystem) Spawn(t EnemyType, pos Vec3, detectRange float64) *Enemy {
	r := es.nextSpawnRand(0x5EED)
	es.Enemies = append(es.Enemies, NewEnemy(t, pos, detectRange, r))
	return &es.Enemies[len(es.Enemies)-1]
}

// SpawnRandom places n enemies at free spots away from the player.
func (es *EnemySystem) SpawnRandom(n int, ctx *GameContext) int {
	if ctx.City == nil || ctx.Tables == nil {
		return 0
	}
	avoid, _ := ctx.playerTarget()
	spawned := 0
	for range n {
		r := es.nextSpawnRand(uint64(len(es.Enemies)+1) * 0xE11)
		t := pickEnemyType(ctx.Tables, ctx.Settings.SeekerChance, r)
		pos := ctx.City.SafeSpot(r, 1.5, avoid, SpawnMinDist)
		es.Spawn(t, pos, ctx.Settings.DetectionRange)
		spawned++
	}
	return spawned
}

// Update runs every behavior and tops the population up on a timer.
func (es *EnemySystem) Update(dt float64, ctx *GameContext) {
	target, ok := ctx.playerTarget()
	limit := ctx.Settings.WanderLimit()
	for i := range es.Enemies {
		es.Enemies[i].Update(dt, target, ok, limit, es.rand)
	}

	if es.AliveCount() >= ctx.Settings.EnemyCap {
		return
	}
	if !es.SpawnTimer.Active() {
		es.SpawnTimer.Set(ctx.Settings.EnemySpawnInterval)
		return
	}
	if es.SpawnTimer.Tick(dt) {
		es.SpawnRandom(1, ctx)
		es.SpawnTimer.Set(ctx.Settings.EnemySpawnInterval)
	}
}

// Find returns the live enemy with id.
func (es *EnemySystem) Find(id EntityID) *Enemy {
	for i := range es.Enemies {
		if es.Enemies[i].ID == id && es.Enemies[i].Alive {
			return &es.Enemies[i]
		}
	}
	return nil
}

func (es *EnemySystem) RemoveDead() {
	for i := 0; i < len(es.Enemies); {
		if !es.Enemies[i].Alive {
			es.Enemies[i] = es.Enemies[len(es.Enemies)-1]
			es.Enemies = es.Enemies[:len(es.Enemies)-1]
		} else {
			i++
		}
	}
}

func (es *EnemySystem) AliveCount() int {
	n := 0
	for i := range es.Enemies {
		if es.Enemies[i].Alive {
			n++
		}
	}
	return n
}
