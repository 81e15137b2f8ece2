package pin

// taskKind enumerates the deferred per-frame tasks. A task fires when its
// elapsed timer reaches the kind's delay; firing may re-arm by returning
// "keep" from run.
type taskKind int

const (
	taskSetStartKeysActive taskKind = iota
	taskPartyOn
	taskIssueBall
	taskIssueBallFinish
	taskIssueBallRelease
	taskIssueBallSfx
	taskIssueBallRaiseSfx
	taskDrainSfx
	taskGameOver
	taskPartyDropZoneStart
	taskPartyDropZoneWait
	taskPartyDropZoneRelease
	taskPartyDropZoneScroll
	taskPartyResetArcadeButton
	taskPartyOrbitRightUnblink
	taskPartyMadUnblink
	taskPartyMadAllUnblink
	taskPartySecretDrop
	taskPartyCycloneX5Blink
	taskPartyCycloneX5End
	taskPartyTunnelFreeze
	taskPartyArcadePickReward
	taskPartyArcadeDropZoneStart
	taskPartyDoubleBonusBlink
	taskPartyDoubleBonusEnd
	taskPartySnacksRelease
	taskPartySnacksFinish
	taskPartyDemonBlink
	taskPartyDemonRelease
	taskPartySideExtraBallFinish
	taskPartySkyrideUnblink
	taskPartyPukeUnblink
	taskPartyPukeUnblinkAll
	taskPartyDuckDrop
	taskPartyDuckUnblink
	taskPartyDuckAllUnblink
	taskPartyHappyHour
	taskPartyMegaLaugh
	taskSpeedUnblinkBur
	taskSpeedUnblinkBurAll
	taskSpeedUnblinkNin
	taskSpeedUnblinkNinAll
	taskSpeedUnblinkGear
	taskSpeedUnblinkGearAll
	taskSpeedOffroad
	taskSpeedTurbo
	taskSpeedPitStop
	taskSpeedUnblinkCar
	taskSpeedResetSuperJackpot
	taskShowResetDropCenter
	taskShowResetDropLeft
	taskShowUnblinkDollar
	taskShowUnblinkDollarAll
	taskShowVaultEject
	taskShowBillionRelease
	taskShowSpinWheelEnd
	taskShowGivePrize
	taskShowCashpot
	taskShowCashpotEject
	taskStonesUnblinkStone
	taskStonesUnblinkBone
	taskStonesUnblinkStonesBones
	taskStonesUnblinkKey
	taskStonesUnblinkKeyAll
	taskStonesResetSuperJackpot
	taskStonesTowerEject
	taskStonesTowerEjectNow
	taskStonesWellEject
	taskStonesVaultEject
	taskStonesUnblinkGhosts
	taskStonesModeHit
	taskStonesModeRamp
	taskStonesRaiseKickback
	taskStonesUnblinkRip
	taskStonesUnblinkRipAll
	taskStonesScreamExtra
)

type task struct {
	timer uint16
	kind  taskKind
	a     uint16 // kind-specific: which-index, delay, soft timeout, scroll pos
	b     uint16 // kind-specific: hard timeout
	flag  bool   // kind-specific: jingle-done
}

func (t *Table) addTask(kind taskKind) {
	t.tasks = append(t.tasks, task{kind: kind})
}

func (t *Table) addTaskArg(kind taskKind, a uint16) {
	t.tasks = append(t.tasks, task{kind: kind, a: a})
}

func (t *Table) addTaskArgs(kind taskKind, a, b uint16) {
	t.tasks = append(t.tasks, task{kind: kind, a: a, b: b})
}

func (s *task) delay(t *Table) uint16 {
	switch s.kind {
	case taskSetStartKeysActive:
		return 15
	case taskPartyOn, taskIssueBall, taskIssueBallFinish:
		return 30
	case taskIssueBallRelease:
		return 80
	case taskIssueBallSfx:
		return 45
	case taskIssueBallRaiseSfx, taskDrainSfx:
		return 5
	case taskGameOver:
		return 0
	case taskPartyDropZoneStart, taskPartyDemonBlink, taskSpeedPitStop, taskShowCashpotEject:
		return s.a
	case taskPartyDropZoneWait:
		return 30
	case taskPartyDropZoneRelease, taskPartyDemonRelease:
		return 27
	case taskPartyDropZoneScroll:
		return 0
	case taskPartyOrbitRightUnblink:
		return 120
	case taskPartyMadUnblink:
		return 14
	case taskPartyMadAllUnblink:
		return 120
	case taskPartySecretDrop:
		return 0
	case taskPartyCycloneX5Blink:
		return 480
	case taskPartyCycloneX5End:
		return 120
	case taskPartyTunnelFreeze:
		return 2
	case taskPartyArcadePickReward, taskPartyArcadeDropZoneStart:
		return 0
	case taskPartyDoubleBonusBlink:
		return 480
	case taskPartyDoubleBonusEnd:
		return 120
	case taskPartySnacksRelease:
		if t.inMode {
			return 40
		}
		return 130
	case taskPartySnacksFinish:
		return 60
	case taskPartySideExtraBallFinish:
		return 600
	case taskPartySkyrideUnblink:
		return 120
	case taskPartyPukeUnblink:
		return 13
	case taskPartyPukeUnblinkAll:
		return 100
	case taskPartyResetArcadeButton:
		return 20
	case taskPartyDuckDrop:
		return 20
	case taskPartyDuckUnblink:
		return 13
	case taskPartyDuckAllUnblink:
		return 71
	case taskPartyHappyHour, taskPartyMegaLaugh:
		return 400
	case taskSpeedUnblinkBur, taskSpeedUnblinkNin, taskSpeedUnblinkGear:
		return 10
	case taskSpeedUnblinkBurAll, taskSpeedUnblinkNinAll:
		return 40
	case taskSpeedUnblinkGearAll:
		return 45
	case taskSpeedTurbo, taskSpeedOffroad:
		return 0
	case taskSpeedUnblinkCar:
		return 120
	case taskSpeedResetSuperJackpot:
		return 1200
	case taskShowResetDropCenter, taskShowResetDropLeft:
		return 60
	case taskShowUnblinkDollar:
		return 25
	case taskShowUnblinkDollarAll:
		return 60
	case taskShowVaultEject:
		return 30
	case taskShowBillionRelease:
		return 250
	case taskShowSpinWheelEnd:
		return 100
	case taskShowGivePrize:
		return 0
	case taskShowCashpot:
		return 160
	case taskStonesUnblinkStone, taskStonesUnblinkBone, taskStonesUnblinkKey:
		return 10
	case taskStonesUnblinkStonesBones, taskStonesUnblinkKeyAll, taskStonesUnblinkRipAll:
		return 70
	case taskStonesResetSuperJackpot:
		return 780
	case taskStonesTowerEject, taskStonesWellEject, taskStonesVaultEject:
		return 10
	case taskStonesTowerEjectNow:
		return 0
	case taskStonesUnblinkGhosts:
		return 240
	case taskStonesModeHit, taskStonesModeRamp:
		return 0
	case taskStonesRaiseKickback:
		return 30
	case taskStonesUnblinkRip:
		return 20
	case taskStonesScreamExtra:
		return 2
	}
	return 0
}

// run returns true while the task should stay in the queue.
func (s *task) run(t *Table) bool {
	if s.timer != s.delay(t) {
		s.timer++
		return true
	}
	switch s.kind {
	case taskSetStartKeysActive:
		t.startKeysActive = true
	case taskPartyOn:
		t.partyOn = true
		t.issueBall()
	case taskIssueBall:
		t.issueBall()
	case taskIssueBallFinish:
		t.issueBallFinish()
	case taskIssueBallRelease:
		t.issueBallRelease()
	case taskIssueBallSfx:
		t.playSfxBind(SfxIssueBall)
	case taskIssueBallRaiseSfx:
		t.playSfxBind(SfxRaiseHitTargets)
	case taskDrainSfx:
		t.playSfxBind(SfxBallDrained)
	case taskGameOver:
		t.kbdState = kbdMain
		t.inAttract = true
		t.lights.reset()
		t.startKeysActive = true
		t.scoreMain = BcdZero
		if t.assets.Table == Table1 {
			t.lightSetAll(LightPartyDuckDrop, true)
		}
	case taskPartyDropZoneStart:
		t.partyStartDropZone()
	case taskPartyDropZoneWait:
		t.lightBlink(LightPartyDrop, 0, 7, 0)
		t.lightBlink(LightPartyDrop, 1, 7, 0)
		t.addTask(taskPartyDropZoneRelease)
	case taskPartyDropZoneRelease:
		t.scroll.resetSpecialTarget()
		t.ball.teleport(LayerOverhead, 15, 47, 0, int16(t.rng.Intn(0x80)), t.rng)
		t.playSfxBind(SfxIssueBall)
		t.lightSetAll(LightPartyDrop, false)
	case taskPartyDropZoneScroll:
		if s.a >= 5 {
			s.a -= 5
			t.scroll.setSpecialTargetNow(s.a)
			return true
		}
		t.scroll.setSpecialTargetNow(0)
	case taskPartyOrbitRightUnblink:
		t.lightSetAll(LightPartyRightOrbitScore, false)
		t.lightBlink(LightPartyRightOrbitScore, 0, 9, 0)
		t.party.orbitRightBlinking = false
	case taskPartyMadUnblink:
		t.lightSet(LightPartyMad, uint8(s.a), true)
	case taskPartyMadAllUnblink:
		t.lightSetAll(LightPartyMad, false)
		t.party.madBlinking = false
	case taskPartySecretDrop:
		if !t.party.secretDropRelease {
			return true
		}
		t.addTask(taskPartyCycloneX5Blink)
		t.partyStartDropZone()
	case taskPartyCycloneX5Blink:
		if t.party.cycloneX5 {
			t.lightBlink(LightPartyCycloneX5, 0, 2, 0)
			t.addTask(taskPartyCycloneX5End)
		} else {
			t.lightSet(LightPartyCycloneX5, 0, false)
		}
	case taskPartyCycloneX5End:
		t.party.cycloneX5 = false
		t.lightSet(LightPartyCycloneX5, 0, false)
	case taskPartyTunnelFreeze:
		t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
	case taskPartyArcadePickReward:
		if t.inMode || t.party.arcadeReady {
			if t.tilted {
				t.partyStartDropZone()
			} else {
				t.setMusicMain()
				t.sequencer.ForceEndLoop()
				t.partyArcadePickReward()
			}
		} else {
			return true
		}
	case taskPartyArcadeDropZoneStart:
		s.b--
		if t.inMode || s.b == 0 {
			t.partyStartDropZone()
		} else {
			if s.a != 0 {
				s.a--
			}
			if t.sequencer.JinglePlaying() || s.flag {
				s.flag = true
				if s.a == 0 {
					t.partyStartDropZone()
				} else {
					return true
				}
			} else {
				return true
			}
		}
	case taskPartyDoubleBonusBlink:
		if t.party.orbitRightDb {
			t.lightBlink(LightPartyRightOrbitDoubleBonus, 0, 2, 0)
			t.addTask(taskPartyDoubleBonusEnd)
		}
	case taskPartyDoubleBonusEnd:
		if t.party.orbitRightDb {
			t.lightSet(LightPartyRightOrbitDoubleBonus, 0, false)
			t.party.orbitRightDb = false
		}
	case taskPartySnacksRelease:
		t.playSfxBind(SfxPartySnacksRelease)
		t.ball.teleport(LayerOverhead, 3, 253, 0, -2500, t.rng)
		t.addTask(taskPartySnacksFinish)
	case taskPartySnacksFinish:
		t.party.inSnack = false
	case taskPartyDemonBlink:
		t.lightBlink(LightPartyDemonHead, 0, 7, 0)
		t.addTask(taskPartyDemonRelease)
	case taskPartyDemonRelease:
		t.lightSet(LightPartyDemonHead, 0, false)
		t.playSfxBind(SfxIssueBall)
		t.ball.teleport(LayerGround, 257, 310, -575, 1575, t.rng)
		t.party.inDemon = false
	case taskPartySideExtraBallFinish:
		t.blockDrain = false
	case taskPartySkyrideUnblink:
		t.lightSetAll(LightPartySkyride, false)
	case taskPartyPukeUnblink:
		t.lightSet(LightPartyPuke, uint8(s.a), true)
		t.party.flipperLockPuke = false
	case taskPartyPukeUnblinkAll:
		t.lightSetAll(LightPartyPuke, false)
	case taskPartyResetArcadeButton:
		t.party.arcadeButtonJustHit = false
	case taskPartyDuckDrop:
		switch s.a {
		case 0:
			t.dropPhysmap(PhysmapPartyHitDuck0)
		case 1:
			t.dropPhysmap(PhysmapPartyHitDuck1)
		case 2:
			t.dropPhysmap(PhysmapPartyHitDuck2)
		}
	case taskPartyDuckUnblink:
		t.lightSet(LightPartyDuck, uint8(s.a), true)
	case taskPartyDuckAllUnblink:
		t.lightSetAll(LightPartyDuck, false)
		t.lightSetAll(LightPartyDuckDrop, true)
		t.raisePhysmap(PhysmapPartyHitDuck0)
		t.raisePhysmap(PhysmapPartyHitDuck1)
		t.raisePhysmap(PhysmapPartyHitDuck2)
		t.playSfxBind(SfxRaiseHitTargets)
		t.party.duckHit = [3]bool{}
	case taskPartyHappyHour:
		t.partyHappyHour()
	case taskPartyMegaLaugh:
		t.partyMegaLaugh()
	case taskSpeedUnblinkBur:
		if t.speed.blinkBur[s.a] {
			t.speed.blinkBur[s.a] = false
			t.lightSet(LightSpeedBur, uint8(s.a), true)
		}
	case taskSpeedUnblinkBurAll:
		t.lightSet(LightSpeedGear, 2, true)
		t.lightSetAll(LightSpeedBur, false)
		t.speed.blinkBur = [3]bool{}
	case taskSpeedUnblinkNin:
		if t.speed.blinkNin[s.a] {
			t.speed.blinkNin[s.a] = false
			t.lightSet(LightSpeedNin, uint8(s.a), true)
		}
	case taskSpeedUnblinkNinAll:
		t.lightSet(LightSpeedGear, 3, true)
		t.lightSetAll(LightSpeedNin, false)
		t.speed.blinkNin = [3]bool{}
	case taskSpeedUnblinkGear:
		t.lightSet(LightSpeedGear, uint8(s.a), true)
	case taskSpeedUnblinkGearAll:
		t.lightSetAll(LightSpeedGear, false)
	case taskSpeedOffroad:
		if !t.inDrain {
			if t.inMode {
				return true
			}
			t.speedDoOffroad()
		}
	case taskSpeedTurbo:
		if !t.inDrain {
			if t.inMode {
				return true
			}
			t.speedDoTurbo()
		}
	case taskSpeedPitStop:
		t.playSfxBind(SfxSpeedEjectPit)
		t.ball.teleport(LayerGround, 256, 41, -2100, 800, t.rng)
	case taskSpeedUnblinkCar:
		t.lightSetAll(LightSpeedCarPart, false)
	case taskSpeedResetSuperJackpot:
		t.lightSet(LightSpeedPitStopSuperJackpot, 0, false)
	case taskShowResetDropCenter:
		t.playSfxBind(SfxRaiseHitTargets)
		t.lightSetAll(LightShowDropCenter, true)
		t.raisePhysmap(PhysmapShowHitCenter0)
		t.raisePhysmap(PhysmapShowHitCenter1)
	case taskShowResetDropLeft:
		t.playSfxBind(SfxRaiseHitTargets)
		t.lightSetAll(LightShowDropLeft, true)
		t.raisePhysmap(PhysmapShowHitLeft0)
		t.raisePhysmap(PhysmapShowHitLeft1)
	case taskShowUnblinkDollar:
		t.lightSet(LightShowDollar, uint8(s.a), true)
	case taskShowUnblinkDollarAll:
		t.lightSetAll(LightShowDollar, false)
	case taskShowVaultEject:
		t.playSfxBind(SfxIssueBall)
		t.ball.frozen = false
		t.ball.speed[1] = -3500
	case taskShowBillionRelease:
		t.lightSet(LightShowBillion, 0, false)
		t.lightSetAll(LightShowPrize, false)
		t.show.prizes = [6]prizeState{}
		t.show.prizeSets = 0
		t.playSfxBind(SfxIssueBall)
		t.ball.frozen = false
		t.ball.speed[1] = -3500
	case taskShowSpinWheelEnd:
		t.scroll.resetSpecialTarget()
		t.scoreMain = t.scoreMain.Add(t.showWheelScore())
		t.startScript(ScriptShowSpinWheelClear)
		t.ball.frozen = false
		t.ball.speed[1] = -2916
		t.lightSet(LightShowSpinWheel, 0, false)
	case taskShowGivePrize:
		t.showGivePrize()
	case taskShowCashpot:
		t.addTaskArg(taskShowCashpotEject, 40)
		t.lightSet(LightShowCashpot, 0, true)
	case taskShowCashpotEject:
		t.showCashpotEject()
	case taskStonesUnblinkStone:
		if !t.stones.stonesBonesBlinking {
			t.lightSet(LightStonesStone, uint8(s.a), true)
		}
		t.stones.stoneBlinking[s.a] = false
	case taskStonesUnblinkBone:
		if !t.stones.stonesBonesBlinking {
			t.lightSet(LightStonesBone, uint8(s.a), true)
		}
		t.stones.boneBlinking[s.a] = false
	case taskStonesUnblinkStonesBones:
		t.lightSetAll(LightStonesStone, false)
		t.lightSetAll(LightStonesBone, false)
		t.stones.stonesBonesBlinking = false
	case taskStonesUnblinkKey:
		if !t.stones.keyBlinking {
			t.lightSet(LightStonesKey, uint8(s.a), true)
			t.stones.flipperLockKey = false
		}
	case taskStonesUnblinkKeyAll:
		t.lightSetAll(LightStonesKey, false)
		t.stones.keyBlinking = false
		t.stones.flipperLockKey = false
	case taskStonesResetSuperJackpot:
		if t.stones.towerSuperJackpot {
			t.stones.towerSuperJackpot = false
			t.lightSet(LightStonesTowerSuperJackpot, 0, false)
			t.stonesTowerCheckClose()
		}
	case taskStonesTowerEject:
		t.timerStop = false
		if t.stones.towerResumeMode {
			if t.stones.towerResumeModeRamp {
				t.startScript(ScriptStonesModeRampContinue)
			} else {
				t.startScript(ScriptStonesModeHitContinue)
			}
		}
		t.stonesTowerEject()
	case taskStonesTowerEjectNow:
		t.stonesTowerEject()
	case taskStonesWellEject:
		t.playSfxBind(SfxStonesEject)
		t.ball.teleport(LayerGround, 275, 245, -666, 1666, t.rng)
		t.stones.inWell = false
	case taskStonesVaultEject:
		t.playSfxBind(SfxStonesEject)
		t.dropPhysmap(PhysmapStonesGateKickback)
		t.ball.teleport(LayerGround, 2, 532, 0, -2880, t.rng)
		t.stones.inVault = false
		t.addTask(taskStonesRaiseKickback)
	case taskStonesUnblinkGhosts:
		t.lightSetAll(LightStonesGhost, false)
		t.stones.ghostsBlinking = false
	case taskStonesModeHit:
		if t.inMode {
			return true
		}
		if !t.inDrain {
			if t.stones.inVault {
				t.stones.vaultHold = true
			}
			t.effect(EffectStonesGhostGhostHunter)
		}
	case taskStonesModeRamp:
		if t.inMode {
			return true
		}
		if !t.inDrain {
			t.stones.vaultHold = true
			t.effect(EffectStonesGhostGrimReaper)
		}
	case taskStonesRaiseKickback:
		if !t.stones.kickback {
			t.raisePhysmap(PhysmapStonesGateKickback)
		}
		t.stones.vaultFromRamp = false
	case taskStonesUnblinkRip:
		if !t.stones.ripBlinking {
			t.lightSet(LightStonesRip, uint8(s.a), true)
			t.stones.flipperLockRip = false
		}
	case taskStonesUnblinkRipAll:
		t.lightSetAll(LightStonesRip, false)
		t.stones.ripBlinking = false
		t.stones.flipperLockRip = false
	case taskStonesScreamExtra:
		t.stonesRampScreams()
	}
	return false
}

// tasksFrame drains the queue once per frame. The queue is taken by value
// for the duration so fired tasks can enqueue fresh ones.
func (t *Table) tasksFrame() {
	tasks := t.tasks
	t.tasks = nil
	kept := tasks[:0]
	for i := range tasks {
		if tasks[i].run(t) {
			kept = append(kept, tasks[i])
		}
	}
	t.tasks = append(kept, t.tasks...)
}
