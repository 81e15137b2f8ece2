package pin

// playerState is the per-player snapshot taken when a ball ends and restored
// on the player's next ball.
type playerState struct {
	scoreMain     Bcd
	scoreBonus    Bcd
	numCyclone    uint16
	bcdNumCyclone Bcd

	party  partyPlayerState
	speed  speedPlayerState
	show   showPlayerState
	stones stonesPlayerState
}

type partyPlayerState struct {
	lightPuke             [4]bool
	lightMad              [3]bool
	lightCrazy            [5]bool
	lightParty            [5]bool
	scoreTunnelSkillShot  Bcd
	scoreCycloneSkillShot Bcd
}

type speedPlayerState struct {
	curGear     uint8
	curSpeed    uint8
	curPlace    uint8
	maxPlace    uint8
	carMods     uint8
	lightGoal   bool
	lightCarLit [5]bool
	lightCar    [5]bool
}

type showPlayerState struct {
	prizeSets uint8
}

type stonesPlayerState struct {
	curGhost       uint8
	ghostActive    bool
	scoreSkillShot Bcd
	kickback       bool
	lightRip       [3]bool
	lightStone     [5]bool
	lightBone      [4]bool
}

func newPlayerState(table TableID) playerState {
	return playerState{}
}

func (t *Table) loadCurPlayer() {
	player := &t.players[t.curPlayer-1]
	t.scoreMain = player.scoreMain
	t.scoreBonus = player.scoreBonus
	t.numCyclone = player.numCyclone
	t.bcdNumCyclone = player.bcdNumCyclone
	switch t.assets.Table {
	case Table1:
		t.lightLoad(LightPartyPuke, player.party.lightPuke[:])
		t.lightLoad(LightPartyMad, player.party.lightMad[:])
		t.lightLoad(LightPartyCrazy, player.party.lightCrazy[:])
		t.lightLoad(LightPartyParty, player.party.lightParty[:])
		t.party.scoreCycloneSkillShot = player.party.scoreCycloneSkillShot
		t.party.scoreTunnelSkillShot = player.party.scoreTunnelSkillShot
	case Table2:
		t.speed.curGear = player.speed.curGear
		t.speed.curSpeed = player.speed.curSpeed
		t.speed.carMods = player.speed.carMods
		t.speed.curPlace = player.speed.curPlace
		t.speed.maxPlace = player.speed.maxPlace
		t.lightSet(LightSpeedPitStopGoal, 0, player.speed.lightGoal)
		t.lightLoad(LightSpeedCarPart, player.speed.lightCar[:])
		t.lightLoad(LightSpeedCarPartLit, player.speed.lightCarLit[:])
		t.speedLoadFixup()
	case Table3:
		t.show.prizeSets = player.show.prizeSets
		for i := uint8(0); i < player.show.prizeSets*3; i++ {
			t.show.prizes[i] = prizeTaken
			t.lightSet(LightShowPrize, i, true)
		}
	case Table4:
		t.stones.curGhost = player.stones.curGhost
		t.stones.ghostActive = player.stones.ghostActive
		t.stones.scoreSkillShot = player.stones.scoreSkillShot
		t.stones.kickback = player.stones.kickback
		t.lightLoad(LightStonesRip, player.stones.lightRip[:])
		t.lightLoad(LightStonesStone, player.stones.lightStone[:])
		t.lightLoad(LightStonesBone, player.stones.lightBone[:])
		t.stonesLoadFixup()
	}
}

func (t *Table) saveCurPlayer() {
	player := &t.players[t.curPlayer-1]
	player.scoreMain = t.scoreMain
	player.scoreBonus = t.scoreBonus
	player.numCyclone = t.numCyclone
	player.bcdNumCyclone = t.bcdNumCyclone
	switch t.assets.Table {
	case Table1:
		t.lightSave(LightPartyPuke, player.party.lightPuke[:])
		t.lightSave(LightPartyMad, player.party.lightMad[:])
		t.lightSave(LightPartyCrazy, player.party.lightCrazy[:])
		t.lightSave(LightPartyParty, player.party.lightParty[:])
		player.party.scoreTunnelSkillShot = t.party.scoreTunnelSkillShot
		player.party.scoreCycloneSkillShot = t.party.scoreCycloneSkillShot
	case Table2:
		player.speed.curGear = t.speed.curGear
		player.speed.curSpeed = t.speed.curSpeed
		player.speed.curPlace = t.speed.curPlace
		player.speed.maxPlace = t.speed.maxPlace
		player.speed.carMods = t.speed.carMods
		player.speed.lightGoal = t.lightState(LightSpeedPitStopGoal, 0)
		t.lightSave(LightSpeedCarPartLit, player.speed.lightCarLit[:])
		t.lightSave(LightSpeedCarPart, player.speed.lightCar[:])
	case Table3:
		player.show.prizeSets = t.show.prizeSets
	case Table4:
		player.stones.curGhost = t.stones.curGhost
		player.stones.ghostActive = t.stones.ghostActive
		player.stones.scoreSkillShot = t.stones.scoreSkillShot
		player.stones.kickback = t.stones.kickback
		t.lightSave(LightStonesRip, player.stones.lightRip[:])
		t.lightSave(LightStonesStone, player.stones.lightStone[:])
		t.lightSave(LightStonesBone, player.stones.lightBone[:])
	}
}
