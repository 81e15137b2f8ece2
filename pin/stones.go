package pin

// stonesState holds Stones'n'Bones' ghosts, tower rewards and locks.
type stonesState struct {
	flipperLockKey bool
	flipperLockRip bool

	curGhost      uint8
	ghostActive   bool
	vaultFromRamp bool
	inVault       bool
	vaultHold     bool

	boneBlinking        [4]bool
	stoneBlinking       [5]bool
	stonesBonesBlinking bool
	ghostsBlinking      bool

	ballLocked bool

	millionPlus      bool
	scoreMillionPlus Bcd
	scoreSkillShot   Bcd
	keyBlinking      bool
	keySkillshot     int // key index, -1 when spent
	keyTowerCycle    uint8

	inTower             bool
	towerOpen           bool
	towerExtraBall      bool
	towerJackpot        bool
	towerSuperJackpot   bool
	tower1m             bool
	tower5m             bool
	towerDoubleBonus    bool
	towerHoldBonus      bool
	towerHunt           bool
	towerHuntCtr        uint8
	towerResumeMode     bool
	towerResumeModeRamp bool

	screamX2       bool
	screamDemon    bool
	inWell         bool
	wellMultiBonus bool
	loopCombo      uint8
	kickback       bool
	ripBlinking    bool

	lockReady      bool
	lockWellReady  bool
	lockVaultReady bool

	lightPhaseRight uint8
	lightPhaseTower uint8

	timeoutTopLoop    uint16
	timeoutLeftRamp   uint16
	timeoutMultiBonus uint16
	timeoutLoopCombo  uint16
	timeoutTowerHunt  uint16
	timeoutLock       uint16

	scoreVault      Bcd
	scoreWell       Bcd
	scoreTowerBonus Bcd
}

func newStonesState() stonesState {
	return stonesState{
		keySkillshot:    -1,
		scoreVault:      BcdFromASCII([]byte("500000")),
		scoreWell:       BcdFromASCII([]byte("100000")),
		scoreTowerBonus: BcdFromASCII([]byte("1000000")),
	}
}

func (t *Table) stonesFrame() {
	s := &t.stones
	s.lightPhaseRight = (s.lightPhaseRight + 1) % 32
	s.lightPhaseTower = (s.lightPhaseTower + 1) % 36
	if t.inDrain || t.timerStop {
		return
	}
	if s.timeoutTopLoop != 0 {
		s.timeoutTopLoop--
	}
	if s.timeoutLock != 0 && !s.ballLocked {
		s.timeoutLock--
		if s.timeoutLock == 0 {
			s.lockReady = false
			if s.lockVaultReady {
				s.lockVaultReady = false
				t.lightSet(LightStonesVaultLock, 0, false)
			}
			if s.lockWellReady {
				s.lockWellReady = false
				t.lightSet(LightStonesWellLock, 0, false)
			}
		}
	}
	if s.timeoutLeftRamp != 0 {
		s.timeoutLeftRamp--
		if s.timeoutLeftRamp == 0 {
			if s.millionPlus {
				s.millionPlus = false
				t.lightSet(LightStonesMillionPlus, 0, false)
			}
			if s.screamX2 {
				s.screamX2 = false
				t.lightSet(LightStonesScreamX2, 0, false)
			}
		}
		if s.timeoutLeftRamp == 90 {
			if s.millionPlus {
				t.lightBlink(LightStonesMillionPlus, 0, 1, 0)
			}
			if s.screamX2 {
				t.lightBlink(LightStonesScreamX2, 0, 1, 0)
			}
		}
	}
	if s.timeoutMultiBonus != 0 {
		s.timeoutMultiBonus--
		if s.timeoutMultiBonus == 0 && s.wellMultiBonus {
			s.wellMultiBonus = false
			t.lightSet(LightStonesWellMultiBonus, 0, false)
		}
		if s.timeoutMultiBonus == 90 && s.wellMultiBonus {
			t.lightBlink(LightStonesWellMultiBonus, 0, 1, 0)
		}
	}
	if s.timeoutLoopCombo != 0 {
		s.timeoutLoopCombo--
		if s.timeoutLoopCombo == 0 {
			s.loopCombo = 0
		}
	}
	if s.timeoutTowerHunt != 0 {
		s.timeoutTowerHunt--
		if s.timeoutTowerHunt == 0 {
			s.towerHunt = false
			s.towerHuntCtr = 0
			t.playJingleBind(JingleStonesTowerHuntEnd)
			t.setMusicMain()
		}
	}
}

func (t *Table) stonesFlipperPressed() {
	if !t.stones.flipperLockKey {
		t.lightRotate(LightStonesKey)
	}
	if !t.stones.flipperLockRip {
		t.lightRotate(LightStonesRip)
	}
}

func (t *Table) stonesDrained() {
	t.ball.frozen = true
	t.flippersEnabled = false
	t.inMode = false
	t.inModeHit = false
	t.inModeRamp = false
	t.inDrain = true
	t.addTask(taskDrainSfx)
	t.lightSet(LightStonesGhost, 7, false)
	t.sequencer.ResetPriority()
	t.effect(EffectDrained)
}

func (t *Table) stonesModeCheck() {
	if t.modeTimeoutSecs != 0 {
		return
	}
	if t.inModeHit {
		t.playJingleBind(JingleModeEndHit)
	} else {
		t.playJingleBind(JingleModeEndRamp)
	}
	t.sequencer.SetMusic(3)
	t.sequencer.ResetPriority()
	t.inModeHit = false
	t.inModeRamp = false
}

func (t *Table) stonesStonesBonesAll() {
	t.incrJackpot()
	t.stones.stonesBonesBlinking = true
	if !t.stones.ghostActive {
		t.effect([...]EffectBind{
			EffectStonesGhostLit0,
			EffectStonesGhostLit1,
			EffectStonesGhostLit2,
			EffectStonesGhostLit3,
			EffectStonesGhostLit4,
			EffectStonesGhostLit5,
			EffectStonesGhostLit6,
			EffectStonesGhostLit7,
		}[t.stones.curGhost])
		t.stones.ghostActive = true
		t.lightBlink(LightStonesGhost, t.stones.curGhost, 32, 0)
		t.lightBlink(LightStonesVaultGhost, 0, 18, 0)
	} else {
		t.effect(EffectStonesStonesBonesAllRedundant)
	}
	for i := uint8(0); i < 5; i++ {
		t.lightBlink(LightStonesStone, i, 2, 0)
	}
	for i := uint8(0); i < 4; i++ {
		t.lightBlink(LightStonesBone, i, 2, 0)
	}
	t.addTask(taskStonesUnblinkStonesBones)
}

func (t *Table) stonesHitStone(which uint8) {
	if t.stones.ghostsBlinking || t.stones.stoneBlinking[which] || t.stones.stonesBonesBlinking {
		return
	}
	t.modeCountHit()
	t.playSfxBind(SfxStonesHitStone)
	t.scorePremult(BcdFromASCII([]byte("17520")), BcdFromASCII([]byte("750")))
	t.lightSet(LightStonesStone, which, true)
	if t.lightAllLit(LightStonesStone) && t.lightAllLit(LightStonesBone) {
		t.stonesStonesBonesAll()
	} else {
		t.stones.stoneBlinking[which] = true
		t.lightBlink(LightStonesStone, which, 2, 0)
		t.addTaskArg(taskStonesUnblinkStone, uint16(which))
	}
}

func (t *Table) stonesHitBone(which uint8) {
	if t.stones.ghostsBlinking || t.stones.boneBlinking[which] || t.stones.stonesBonesBlinking {
		return
	}
	t.modeCountHit()
	t.playSfxBind(SfxStonesHitBone)
	t.scorePremult(BcdFromASCII([]byte("27530")), BcdFromASCII([]byte("510")))
	t.lightSet(LightStonesBone, which, true)
	if t.lightAllLit(LightStonesStone) && t.lightAllLit(LightStonesBone) {
		t.stonesStonesBonesAll()
	} else {
		t.stones.boneBlinking[which] = true
		t.lightBlink(LightStonesBone, which, 2, 0)
		t.addTaskArg(taskStonesUnblinkBone, uint16(which))
	}
}

func (t *Table) stonesRollKeyEntry() {
	t.raisePhysmap(PhysmapStonesGateRampTower)
	if t.stones.millionPlus {
		t.stones.scoreMillionPlus = t.stones.scoreMillionPlus.Add(BcdFromASCII([]byte("1000000")))
		t.score(t.stones.scoreMillionPlus, BcdZero)
		t.effect(EffectStonesMillionPlus)
		t.lightSet(LightStonesMillionPlus, 0, false)
		t.stones.millionPlus = false
	}
	t.stones.ballLocked = false
	t.score(BcdFromASCII([]byte("10000")), BcdFromASCII([]byte("1000")))
}

func (t *Table) stonesRollKey(which uint8) {
	if t.stones.keyBlinking {
		return
	}
	t.playSfxBind(SfxRollTrigger)
	t.scorePremult(BcdFromASCII([]byte("10060")), BcdFromASCII([]byte("1010")))
	t.lightSet(LightStonesKey, which, true)
	if t.stones.keySkillshot >= 0 {
		target := uint8(t.stones.keySkillshot)
		if which == target {
			t.stones.scoreSkillShot = t.stones.scoreSkillShot.Add(BcdFromASCII([]byte("1000000")))
			t.scoreMain = t.scoreMain.Add(t.stones.scoreSkillShot)
			t.effect(EffectStonesSkillShot)
			t.stonesIncrVault()
			t.stonesIncrTowerBonus()
			t.stonesIncrWell()
			t.incrJackpot()
		} else {
			t.lightSet(LightStonesKey, target, false)
		}
		t.stones.keySkillshot = -1
	}
	if t.lightAllLit(LightStonesKey) {
		t.stonesIncrVault()
		t.incrJackpot()
		t.stones.keyBlinking = true
		t.stones.flipperLockKey = true
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightStonesKey, i, 2, 0)
		}
		switch t.stones.keyTowerCycle {
		case 0:
			if !t.stones.tower1m {
				t.stones.tower1m = true
				t.lightBlink(LightStonesTowerMillion, 0, 18, t.stones.lightPhaseTower)
			}
			t.stones.keyTowerCycle = 1
		case 1:
			if !t.stones.tower5m {
				t.stones.tower5m = true
				t.lightBlink(LightStonesTower5M, 0, 18, t.stones.lightPhaseTower)
			}
			t.stones.keyTowerCycle = 2
		case 2:
			if !t.stones.towerDoubleBonus {
				t.stones.towerDoubleBonus = true
				t.lightBlink(LightStonesTowerDoubleBonus, 0, 18, t.stones.lightPhaseTower)
			}
			t.stones.keyTowerCycle = 3
		case 3:
			if !t.stones.towerHoldBonus {
				t.stones.towerHoldBonus = true
				t.lightBlink(LightStonesTowerHoldBonus, 0, 18, t.stones.lightPhaseTower)
			}
			t.stones.keyTowerCycle = 4
		default:
			if !t.stones.tower5m {
				t.stones.tower5m = true
				t.lightBlink(LightStonesTower5M, 0, 18, t.stones.lightPhaseTower)
			}
		}
		if !t.stones.towerOpen {
			t.effect(EffectStonesTowerOpen)
		}
		t.stonesTowerOpen()
		t.addTask(taskStonesUnblinkKeyAll)
	} else {
		t.lightBlink(LightStonesKey, which, 2, 0)
		t.addTaskArg(taskStonesUnblinkKey, uint16(which))
		t.stones.flipperLockKey = true
	}
}

func (t *Table) stonesTower() {
	t.ball.teleportFreeze(LayerOverhead, 141, 143)
	t.stones.inTower = true
	t.modeCountRamp()
	t.incrJackpot()
	t.timerStop = true
	t.stones.towerResumeMode = t.inMode
	t.stones.towerResumeModeRamp = t.inModeRamp
	t.raisePhysmap(PhysmapStonesGateTowerEntry)
	t.dropPhysmap(PhysmapStonesGateRampTower)
	t.stones.towerOpen = false
	t.lightSet(LightStonesTower, 0, false)
	visibleEffect := false
	if t.stones.towerHunt && t.stones.towerHuntCtr < 3 {
		visibleEffect = t.effect([...]EffectBind{
			EffectStonesTowerHunt0,
			EffectStonesTowerHunt1,
			EffectStonesTowerHunt2,
		}[t.stones.towerHuntCtr]) || visibleEffect
		if music := t.sequencer.Music(); music != 0x32 {
			t.sequencer.SetMusic(music + 1)
		}
		t.stones.towerHuntCtr++
		t.stonesTowerOpen()
		t.silenceEffect = true
	}
	if t.stones.towerSuperJackpot {
		t.stones.towerSuperJackpot = false
		t.lightSet(LightStonesTowerSuperJackpot, 0, false)
		t.effectForce(EffectStonesTowerSuperJackpot)
		visibleEffect = true
		t.silenceEffect = true
	}
	if t.stones.towerJackpot {
		t.stones.towerJackpot = false
		t.lightSet(LightStonesTowerJackpot, 0, false)
		t.effectForce(EffectStonesTowerJackpot)
		t.scoreMain = t.scoreMain.Add(t.scoreJackpot)
		t.scoreJackpot = t.assets.ScoreJackpotInit
		visibleEffect = true
		t.silenceEffect = true
		t.stones.towerSuperJackpot = true
		t.lightBlink(LightStonesTowerSuperJackpot, 0, 18, t.stones.lightPhaseTower)
		t.stonesTowerOpen()
		t.addTask(taskStonesResetSuperJackpot)
	}
	if t.stones.towerExtraBall {
		t.stones.towerExtraBall = false
		t.lightSet(LightStonesTowerExtraBall, 0, false)
		visibleEffect = t.effect(EffectStonesTowerExtraBall) || visibleEffect
		t.extraBall()
		t.silenceEffect = true
	}
	if t.stones.towerDoubleBonus {
		t.stones.towerDoubleBonus = false
		t.lightSet(LightStonesTowerDoubleBonus, 0, false)
		visibleEffect = t.effect(EffectStonesTowerDoubleBonus) || visibleEffect
		t.scoreBonus = t.scoreBonus.Add(t.scoreBonus)
		t.silenceEffect = true
	}
	if t.stones.towerHoldBonus {
		t.stones.towerHoldBonus = false
		t.lightSet(LightStonesTowerHoldBonus, 0, false)
		visibleEffect = t.effect(EffectStonesTowerHoldBonus) || visibleEffect
		t.holdBonus = true
		t.silenceEffect = true
	}
	if t.stones.tower5m {
		t.stones.tower5m = false
		t.lightSet(LightStonesTower5M, 0, false)
		visibleEffect = t.effect(EffectStonesTower5M) || visibleEffect
		t.silenceEffect = true
	}
	if t.stones.tower1m {
		t.stones.tower1m = false
		t.lightSet(LightStonesTowerMillion, 0, false)
		visibleEffect = t.effect(EffectStonesTowerMillion) || visibleEffect
		t.silenceEffect = true
	} else {
		visibleEffect = t.effect(EffectStonesTowerBonus) || visibleEffect
		t.score(t.stones.scoreTowerBonus, BcdZero)
		t.stones.scoreTowerBonus = BcdFromASCII([]byte("1000000"))
		if t.stones.towerHunt {
			t.stonesTowerOpen()
		}
	}
	if !visibleEffect {
		t.addTask(taskStonesTowerEject)
	}
	t.silenceEffect = false
}

func (t *Table) stonesTowerTilt() {
	t.ball.teleportFreeze(LayerOverhead, 141, 143)
	t.addTask(taskStonesTowerEject)
}

func (t *Table) stonesEndMode() {
	t.lightSet(LightStonesTowerJackpot, 0, false)
	t.lightSet(LightStonesTowerSuperJackpot, 0, false)
	t.stones.towerJackpot = false
	t.stones.towerSuperJackpot = false
	t.stonesTowerCheckClose()
}

func (t *Table) stonesTowerCheckClose() {
	s := &t.stones
	if !s.towerExtraBall && !s.towerJackpot && !s.towerSuperJackpot &&
		!s.tower1m && !s.tower5m && !s.towerDoubleBonus && !s.towerHoldBonus && !s.towerHunt {
		s.towerOpen = false
		t.lightSet(LightStonesTower, 0, false)
		t.raisePhysmap(PhysmapStonesGateTowerEntry)
	}
}

func (t *Table) stonesTowerOpen() {
	t.dropPhysmap(PhysmapStonesGateTowerEntry)
	if !t.stones.towerOpen {
		t.lightBlink(LightStonesTower, 0, 20, 0)
		t.stones.towerOpen = true
	}
}

func (t *Table) stonesTowerEject() {
	t.playSfxBind(SfxStonesEject)
	t.ball.teleport(LayerOverhead, 141, 143, 0, -3333, t.rng)
	t.stones.inTower = false
}

func (t *Table) stonesWell() {
	if t.lightState(LightStonesWellLock, 0) {
		t.ball.frozen = true
		t.addTask(taskStonesWellEject)
		return
	}
	t.ball.teleportFreeze(LayerGround, 275, 245)
	t.stones.inWell = true
	t.modeCountRamp()
	t.incrJackpot()
	visibleEffect := false
	t.scoreMain = t.scoreMain.Add(t.stones.scoreWell)
	if t.stones.lockWellReady {
		t.stones.ballLocked = true
		t.sequencer.ResetPriority()
		visibleEffect = t.effect(EffectStonesLock) || visibleEffect
		t.silenceEffect = true
		t.ball.teleport(LayerGround, 300, 530, 10, 0, t.rng)
		t.specialPlungerEvent = true
		t.stones.inWell = false
		t.setMusicPlunger()
		t.stones.lockWellReady = false
		t.lightSet(LightStonesWellLock, 0, true)
	}
	visibleEffect = t.effect(EffectStonesWell) || visibleEffect
	if t.stones.wellMultiBonus {
		t.stones.wellMultiBonus = false
		t.lightSet(LightStonesWellMultiBonus, 0, false)
		which := t.lightSequence(LightStonesBonus)
		if which < 5 {
			t.bonusMultLate = [...]uint8{2, 4, 6, 8, 10}[which]
			visibleEffect = t.effect([...]EffectBind{
				EffectStonesWellMb2,
				EffectStonesWellMb4,
				EffectStonesWellMb6,
				EffectStonesWellMb8,
				EffectStonesWellMb10,
			}[which]) || visibleEffect
		}
	}
	if !visibleEffect {
		t.addTask(taskStonesWellEject)
	}
	t.silenceEffect = false
}

func (t *Table) stonesWellTilt() {
	t.addTask(taskStonesWellEject)
}

func (t *Table) stonesVault() {
	if !t.stones.vaultFromRamp {
		t.lightSet(LightStonesKickback, 0, false)
		t.stones.kickback = false
	}
	t.ball.teleportFreeze(LayerGround, 2, 532)
	if t.tilted || t.lightState(LightStonesVaultLock, 0) {
		t.addTask(taskStonesVaultEject)
		return
	}
	t.stones.inVault = true
	t.incrJackpot()
	visibleEffect := false
	if t.stones.lockVaultReady {
		t.stones.ballLocked = true
		t.sequencer.ResetPriority()
		visibleEffect = t.effect(EffectStonesLock) || visibleEffect
		t.silenceEffect = true
		t.ball.teleport(LayerGround, 300, 530, 10, 0, t.rng)
		t.specialPlungerEvent = true
		t.stones.inVault = false
		t.setMusicPlunger()
		t.stones.lockVaultReady = false
		t.lightSet(LightStonesVaultLock, 0, true)
	}
	if t.stones.ghostActive {
		t.stones.ghostActive = false
		t.lightSet(LightStonesVaultGhost, 0, false)
		t.lightSet(LightStonesGhost, t.stones.curGhost, true)
		switch t.stones.curGhost {
		case 0:
			visibleEffect = t.effect(EffectStonesGhost5M) || visibleEffect
		case 1:
			visibleEffect = t.effect(EffectStonesGhostTowerHunt) || visibleEffect
			t.stonesTowerOpen()
			t.stones.towerHunt = true
			t.stones.towerHuntCtr = 0
			t.stones.timeoutTowerHunt = 2400
			t.sequencer.SetMusic(0x2e)
		case 2:
			visibleEffect = t.effect(EffectStonesGhostExtraBall) || visibleEffect
			if !t.stones.towerExtraBall {
				t.stones.towerExtraBall = true
				t.lightBlink(LightStonesTowerExtraBall, 0, 18, t.stones.lightPhaseTower)
				t.stonesTowerOpen()
			}
		case 3:
			visibleEffect = t.effect(EffectStonesGhost10M) || visibleEffect
		case 4:
			t.addTask(taskStonesModeHit)
			t.stones.vaultHold = true
			if !t.stones.towerJackpot {
				t.stones.towerJackpot = true
				t.lightBlink(LightStonesTowerJackpot, 0, 18, t.stones.lightPhaseTower)
				t.stonesTowerOpen()
			}
		case 5:
			visibleEffect = t.effect(EffectStonesGhostDemon) || visibleEffect
			t.stones.lockReady = true
			t.stones.lockWellReady = true
			t.stones.lockVaultReady = true
			t.stones.timeoutLock = 2100
			t.stones.ballLocked = false
			t.stones.screamDemon = true
			t.lightBlink(LightStonesWellLock, 0, 18, 0)
			t.lightBlink(LightStonesVaultLock, 0, 18, 0)
			t.lightBlink(LightStonesScreamDemon, 0, 18, 0)
		case 6:
			visibleEffect = t.effect(EffectStonesGhost15M) || visibleEffect
		case 7:
			t.addTask(taskStonesModeRamp)
			if !t.stones.towerJackpot {
				t.stones.towerJackpot = true
				t.lightBlink(LightStonesTowerJackpot, 0, 18, t.stones.lightPhaseTower)
				t.stonesTowerOpen()
			}
		}
		t.stones.curGhost++
		if t.stones.curGhost == 8 {
			t.stones.curGhost = 0
			t.stones.ghostsBlinking = true
			for i := uint8(0); i < 8; i++ {
				t.lightBlink(LightStonesGhost, i, 2, 0)
			}
			t.addTask(taskStonesUnblinkGhosts)
		}
	}
	t.modeCountRamp()
	t.scoreMain = t.scoreMain.Add(t.stones.scoreVault)
	if visibleEffect {
		t.silenceEffect = true
	}
	visibleEffect = t.effect(EffectStonesVault) || visibleEffect
	t.silenceEffect = false
	if !visibleEffect {
		t.addTask(taskStonesVaultEject)
	}
}

func (t *Table) stonesRampTop() {
	t.modeCountRamp()
	t.stonesIncrVault()
	if t.stones.timeoutLoopCombo != 0 && t.stones.loopCombo == 2 {
		t.effect(EffectStonesLoopCombo)
	}
	t.stones.loopCombo = 0
	if t.stones.timeoutTopLoop != 0 {
		t.effect(EffectStonesTopMillion)
	} else {
		t.playSfxBind(SfxRollTrigger)
		t.scorePremult(BcdFromASCII([]byte("10030")), BcdFromASCII([]byte("1020")))
	}
	t.stones.timeoutTopLoop = 300
}

func (t *Table) stonesRollRip(which uint8) {
	if t.stones.ripBlinking {
		return
	}
	t.playSfxBind(SfxRollTrigger)
	t.scorePremult(BcdFromASCII([]byte("10070")), BcdFromASCII([]byte("1080")))
	t.lightSet(LightStonesRip, which, true)
	if t.lightAllLit(LightStonesRip) {
		t.stones.ripBlinking = true
		t.stones.flipperLockRip = true
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightStonesRip, i, 2, 0)
		}
		if !t.stones.kickback {
			t.stones.kickback = true
			t.lightBlink(LightStonesKickback, 0, 18, 0)
			t.dropPhysmap(PhysmapStonesGateKickback)
		}
		t.effect(EffectStonesKickback)
		t.addTask(taskStonesUnblinkRipAll)
	} else {
		t.addTaskArg(taskStonesUnblinkRip, uint16(which))
		t.lightBlink(LightStonesRip, which, 2, 0)
		t.stones.flipperLockRip = true
	}
}

func (t *Table) stonesRampScreams() {
	t.playSfxBind(SfxRollTrigger)
	t.scorePremult(BcdFromASCII([]byte("10060")), BcdFromASCII([]byte("1050")))
	if t.stones.screamDemon {
		t.stones.screamDemon = false
		t.lightSet(LightStonesScreamDemon, 0, false)
		t.stones.timeoutLock = 1
		numLocked := 0
		if t.lightState(LightStonesWellLock, 0) {
			numLocked++
		}
		if t.lightState(LightStonesVaultLock, 0) {
			numLocked++
		}
		t.effect([...]EffectBind{
			EffectStonesDemon5M,
			EffectStonesDemon10M,
			EffectStonesDemon20M,
		}[numLocked])
		t.lightSet(LightStonesWellLock, 0, false)
		t.lightSet(LightStonesVaultLock, 0, false)
		t.silenceEffect = true
	}
	if t.stones.timeoutLoopCombo != 0 && t.stones.loopCombo == 1 {
		t.stones.loopCombo = 2
	}
	t.modeCountRamp()
	t.stonesIncrWell()
	t.addCyclone(1)
	if t.stones.screamX2 {
		t.addTask(taskStonesScreamExtra)
		t.lightSet(LightStonesScreamX2, 0, false)
		t.stones.screamX2 = false
	}
	t.numCycloneTarget = t.numCyclone/10*10 + 10
	if t.numCyclone%10 == 0 {
		if t.numCyclone == 10 {
			if !t.stones.towerExtraBall {
				t.stones.towerExtraBall = true
				t.lightBlink(LightStonesTowerExtraBall, 0, 18, t.stones.lightPhaseTower)
				t.stonesTowerOpen()
				t.effect(EffectStonesScreamsExtraBall)
			}
		} else {
			if !t.stones.tower5m {
				t.stones.tower5m = true
				t.lightBlink(LightStonesTower5M, 0, 18, t.stones.lightPhaseTower)
				t.stonesTowerOpen()
				t.effect(EffectStonesTowerOpen)
			}
			t.effect(EffectStonesScreamsTo5M)
		}
	} else if t.numCyclone < 10 {
		t.effect(EffectStonesScreamsToExtraBall)
	} else {
		t.effect(EffectStonesScreamsTo5M)
	}
	t.silenceEffect = false
}

func (t *Table) stonesRampLeftToLane() {
	t.dropPhysmap(PhysmapStonesGateRampLeft0)
	if t.tilted {
		return
	}
	t.modeCountRamp()
	t.stonesIncrVault()
	t.playSfxBind(SfxRollTrigger)
	t.scorePremult(BcdFromASCII([]byte("10030")), BcdFromASCII([]byte("1040")))
	if !t.stones.millionPlus {
		t.stones.millionPlus = true
		t.lightBlink(LightStonesMillionPlus, 0, 16, t.stones.lightPhaseRight)
	}
	if !t.stones.screamX2 {
		t.stones.screamX2 = true
		t.lightBlink(LightStonesScreamX2, 0, 16, t.stones.lightPhaseRight)
	}
	t.stones.timeoutLeftRamp = 450
	if !t.stones.wellMultiBonus && !t.lightAllLit(LightStonesBonus) {
		t.stones.wellMultiBonus = true
		t.lightBlink(LightStonesWellMultiBonus, 0, 16, t.stones.lightPhaseRight)
	}
	t.stones.timeoutMultiBonus = 570
	t.stones.loopCombo = 1
	if t.hifps {
		t.stones.timeoutLoopCombo = 936
	} else {
		t.stones.timeoutLoopCombo = 780
	}
}

func (t *Table) stonesRampLeftToVault() {
	t.raisePhysmap(PhysmapStonesGateRampLeft0)
	if t.tilted {
		return
	}
	t.modeCountRamp()
	t.playSfxBind(SfxRollTrigger)
	t.scorePremult(BcdFromASCII([]byte("10020")), BcdFromASCII([]byte("1010")))
}

func (t *Table) stonesIncrVault() {
	t.stones.scoreVault = t.stones.scoreVault.Add(BcdFromASCII([]byte("82150")))
}

func (t *Table) stonesIncrWell() {
	t.stones.scoreWell = t.stones.scoreWell.Add(BcdFromASCII([]byte("64190")))
}

func (t *Table) stonesIncrTowerBonus() {
	t.stones.scoreTowerBonus = t.stones.scoreTowerBonus.Add(BcdFromASCII([]byte("223470")))
}

func (t *Table) stonesLoadFixup() {
	if t.stones.kickback {
		t.lightBlink(LightStonesKickback, 0, 18, 0)
		t.dropPhysmap(PhysmapStonesGateKickback)
	}
	for i := uint8(0); i < t.stones.curGhost; i++ {
		t.lightSet(LightStonesGhost, i, true)
	}
	if t.stones.ghostActive {
		t.lightBlink(LightStonesGhost, t.stones.curGhost, 32, 0)
		t.lightBlink(LightStonesVaultGhost, 0, 18, 0)
	}
}
