package pin

type prizeState int

const (
	prizeNone prizeState = iota
	prizeLit
	prizeTaken
)

// showState holds Billion Dollar Game Show's prize/wheel machinery.
type showState struct {
	scoreCashpot       Bcd
	prizes             [6]prizeState
	prizeSets          uint8
	timeoutWheelTick   uint16
	timeoutMb          uint16
	timeoutTopLoop     uint16
	timeoutTv          uint16
	timeoutTrip        uint16
	timeoutCar         uint16
	timeoutBoat        uint16
	timeoutHouse       uint16
	timeoutPlane       uint16
	timeoutCashpotX5   uint16
	timeoutJackpot     uint16
	timeoutSuperJackpot uint16
	billionLit         bool
	lightPhasePrize    uint8
	wheelCycle         int
	wheelPos           uint8
	wheelTiming        []uint16
}

func newShowState(hifps bool) showState {
	timing := []uint16{
		4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8,
		8, 8, 8, 9, 9, 10, 10, 12, 14, 17, 20, 24, 32, 47,
	}
	if hifps {
		timing = []uint16{
			4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 6, 7, 7, 7, 7, 8, 8, 8, 9,
			10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 14, 16, 19, 22, 25, 50,
		}
	}
	return showState{
		scoreCashpot: BcdFromASCII([]byte("500000")),
		wheelTiming:  timing,
	}
}

func (t *Table) showFrame() {
	s := &t.show
	if s.timeoutSuperJackpot != 0 {
		s.timeoutSuperJackpot--
		if s.timeoutSuperJackpot == 0 {
			t.lightSet(LightShowSuperJackpot, 0, false)
		} else if s.timeoutSuperJackpot == 120 {
			t.lightBlink(LightShowSuperJackpot, 0, 2, 0)
		}
	}
	if s.timeoutJackpot != 0 {
		s.timeoutJackpot--
		if s.timeoutJackpot == 0 {
			t.lightSet(LightShowJackpot, 0, false)
		} else if s.timeoutJackpot == 120 {
			t.lightBlink(LightShowJackpot, 0, 2, 0)
		}
	}
	s.lightPhasePrize = (s.lightPhasePrize + 1) % 20
	if s.timeoutWheelTick != 0 {
		s.timeoutWheelTick--
		if s.timeoutWheelTick == 0 {
			t.showWheelTick()
		}
	}
	for _, timeout := range []*uint16{
		&s.timeoutMb, &s.timeoutTv, &s.timeoutTrip, &s.timeoutCar,
		&s.timeoutBoat, &s.timeoutHouse, &s.timeoutPlane,
	} {
		if *timeout != 0 {
			*timeout--
		}
	}
	if s.timeoutCashpotX5 != 0 {
		s.timeoutCashpotX5--
		if s.timeoutCashpotX5 == 0 {
			t.lightSet(LightShowCashpotX5, 0, false)
		} else if s.timeoutCashpotX5 == 120 {
			t.lightBlink(LightShowCashpotX5, 0, 2, 0)
		}
	}
	if s.timeoutTopLoop != 0 {
		s.timeoutTopLoop--
		if s.timeoutTopLoop == 0 {
			t.lightSet(LightShowTopLoop, 0, false)
		} else if s.timeoutTopLoop == 120 {
			t.lightBlink(LightShowTopLoop, 0, 3, 0)
		}
	}
}

func (t *Table) showFlipperPressed() {}

func (t *Table) showDrained() {
	t.effect(EffectDrained)
	t.setMusicSilence()
	t.addTask(taskDrainSfx)
}

func (t *Table) showModeCheck() {
	if t.modeTimeoutSecs != 0 {
		return
	}
	t.playJingleBind(JingleModeEndHit)
	t.sequencer.SetMusic(3)
	t.sequencer.ResetPriority()
	t.inModeHit = false
	t.inModeRamp = false
}

func (t *Table) showHitCenter(which uint8) {
	t.modeCountHit()
	if !t.lightState(LightShowDropCenter, which) {
		return
	}
	t.effect(EffectShowDropCenter)
	t.playSfxBind(SfxShowHitTrigger)
	if which == 0 {
		t.dropPhysmap(PhysmapShowHitCenter0)
	} else {
		t.dropPhysmap(PhysmapShowHitCenter1)
	}
	t.lightSet(LightShowDropCenter, which, false)
	if t.lightAllUnlit(LightShowDropCenter) {
		t.addTask(taskShowResetDropCenter)
	}
}

func (t *Table) showHitLeft(which uint8) {
	t.modeCountHit()
	if !t.lightState(LightShowDropLeft, which) {
		return
	}
	t.effect(EffectShowDropLeft)
	t.playSfxBind(SfxShowHitTrigger)
	if which == 0 {
		t.dropPhysmap(PhysmapShowHitLeft0)
	} else {
		t.dropPhysmap(PhysmapShowHitLeft1)
	}
	t.lightSet(LightShowDropLeft, which, false)
	if t.lightAllUnlit(LightShowDropLeft) {
		t.addTask(taskShowResetDropLeft)
	}
}

func (t *Table) showHitDollar(which uint8) {
	t.modeCountHit()
	t.playSfxBind(SfxShowHitTrigger)
	t.lightSet(LightShowDollar, which, true)
	if t.lightAllLit(LightShowDollar) {
		for i := uint8(0); i < 2; i++ {
			t.lightBlink(LightShowDollar, i, 2, 0)
		}
		t.effect(EffectShowDollarBoth)
		t.addTask(taskShowUnblinkDollarAll)
		t.lightSet(LightShowSpinWheel, 0, true)
		t.lightBlink(LightShowSpinWheel, 0, 10, (t.show.lightPhasePrize+10)%20)
		t.dropPhysmap(PhysmapShowGateVaultEntry)
	} else {
		t.lightBlink(LightShowDollar, which, 6, 0)
		t.effect(EffectShowDollar)
		t.addTaskArg(taskShowUnblinkDollar, uint16(which))
	}
}

func (t *Table) showVault() {
	t.dropPhysmap(PhysmapShowGateVaultExit)
	t.ball.teleportFreeze(LayerGround, 4, 529)
	switch {
	case t.inMode || t.tilted:
		t.addTask(taskShowVaultEject)
	case t.show.billionLit:
		t.show.billionLit = false
		t.effect(EffectShowBillion)
		t.lightBlink(LightShowBillion, 0, 4, 0)
		t.addTask(taskShowBillionRelease)
	default:
		if !t.lightState(LightShowCollectPrize, 0) {
			t.raisePhysmap(PhysmapShowGateVaultEntry)
		}
		t.playJingleBind(JingleShowSpinWheel)
		t.show.wheelCycle = 0
		t.show.timeoutWheelTick = t.show.wheelTiming[0]
		t.startScript(ScriptShowSpinWheelClearHalt)
		t.lightSetAll(LightShowWheel, false)
		var target uint8
		switch {
		case !t.lightState(LightShowCollectPrize, 0):
			target = uint8(t.rng.Intn(8))
		case t.show.prizes[0] == prizeLit:
			target = 0
		case t.show.prizes[1] == prizeLit:
			target = 1
		case t.show.prizes[2] == prizeLit:
			target = 2
		case t.show.prizes[3] == prizeLit:
			target = 6
		case t.show.prizes[4] == prizeLit:
			target = 5
		default:
			target = 4
		}
		t.show.wheelPos = (target - uint8(len(t.show.wheelTiming))) & 7
		switch t.options.Resolution {
		case ResNormal:
			t.scroll.setSpecialTarget(270)
		case ResHigh:
			t.scroll.setSpecialTarget(220)
		case ResFull:
			t.scroll.setSpecialTarget(0)
		}
	}
}

func (t *Table) showWheelTick() {
	t.show.wheelCycle++
	if t.show.wheelCycle == len(t.show.wheelTiming) {
		t.startScript(ScriptShowSpinWheelBlink)
		if t.lightState(LightShowCollectPrize, 0) {
			t.addTask(taskShowGivePrize)
		} else {
			t.addTask(taskShowSpinWheelEnd)
		}
	} else {
		t.show.timeoutWheelTick = t.show.wheelTiming[t.show.wheelCycle]
		t.lightSetAll(LightShowWheel, false)
		t.show.wheelPos = (t.show.wheelPos + 1) % 8
		t.lightSet(LightShowWheel, t.show.wheelPos, true)
		t.startScript(ScriptShowSpinWheelScore)
	}
}

func (t *Table) showGivePrize() {
	for i := uint8(0); i < 6; i++ {
		if t.show.prizes[i] == prizeTaken {
			continue
		}
		t.show.prizes[i] = prizeTaken
		t.lightSet(LightShowPrize, i, true)
		t.sequencer.ResetPriority()
		t.effect([...]EffectBind{
			EffectShowPrizeTv,
			EffectShowPrizeTrip,
			EffectShowPrizeCar,
			EffectShowPrizeBoat,
			EffectShowPrizeHouse,
			EffectShowPrizePlane,
		}[i])
		if i == 2 {
			t.lightSet(LightShowCollectPrize, 0, false)
			t.raisePhysmap(PhysmapShowGateVaultEntry)
			t.lightSet(LightShowJackpot, 0, true)
			t.lightBlink(LightShowJackpot, 0, 10, t.show.lightPhasePrize)
			t.show.timeoutJackpot = 1500
			t.show.prizeSets = 1
		} else if i == 5 {
			t.lightSet(LightShowCollectPrize, 0, false)
			t.raisePhysmap(PhysmapShowGateVaultEntry)
			t.show.prizeSets = 2
		}
		return
	}
}

func (t *Table) showWheelScore() Bcd {
	return [...]Bcd{
		BcdFromASCII([]byte("25000")),
		BcdFromASCII([]byte("50000")),
		BcdFromASCII([]byte("100000")),
		BcdFromASCII([]byte("250000")),
		BcdFromASCII([]byte("500000")),
		BcdFromASCII([]byte("1000000")),
		BcdFromASCII([]byte("2500000")),
		BcdFromASCII([]byte("5000000")),
	}[t.show.wheelPos]
}

func (t *Table) showCashpot() {
	switch {
	case t.inMode:
		t.ball.teleportFreeze(LayerGround, 103, 233)
		t.lightSet(LightShowCashpot, 0, true)
		t.addTaskArg(taskShowCashpotEject, 30)
	case t.show.prizeSets == 2:
		t.lightSet(LightShowCashpot, 0, true)
		t.lightBlink(LightShowBillion, 0, 10, t.show.lightPhasePrize)
		t.show.billionLit = true
		t.effect(EffectShowCashpotLock)
		t.sequencer.SetMusic(0)
		t.sequencer.ResetPriority()
		t.ball.teleport(LayerGround, 304, 535, 10, 0, t.rng)
		t.dropPhysmap(PhysmapShowGateVaultEntry)
	default:
		t.incrJackpot()
		if t.show.timeoutCashpotX5 != 0 {
			t.show.timeoutCashpotX5 = 10
			effect := t.assets.effect(EffectShowCashpotX5)
			for i := 0; i < 5; i++ {
				effect.ScoreMain = effect.ScoreMain.Add(t.show.scoreCashpot)
			}
			t.effectRaw(effect)
		} else {
			effect := t.assets.effect(EffectShowCashpot)
			effect.ScoreMain = t.show.scoreCashpot
			t.effectRaw(effect)
		}
		t.ball.teleportFreeze(LayerGround, 103, 233)
		t.addTask(taskShowCashpot)
	}
}

func (t *Table) showCashpotEject() {
	t.playSfxBind(SfxShowEjectCashpot)
	t.lightSet(LightShowCashpot, 0, false)
	t.ball.teleport(LayerGround, 103, 233, 83, 1416, t.rng)
}

func (t *Table) showRampRight() {
	t.show.scoreCashpot = t.show.scoreCashpot.Add(BcdFromASCII([]byte("7130")))
	t.modeCountRamp()
	t.effect(EffectShowRampRight)
	t.show.timeoutTv = 240
	t.show.timeoutCar = 240
	t.dropPhysmap(PhysmapShowGateRampRight)
	if t.show.timeoutJackpot != 0 {
		t.show.timeoutJackpot = 1
		effect := t.assets.effect(EffectShowJackpot)
		effect.ScoreMain = t.scoreJackpot
		t.effectRaw(effect)
		t.scoreJackpot = t.assets.ScoreJackpotInit
		t.show.timeoutSuperJackpot = 300
		t.lightBlink(LightShowSuperJackpot, 0, 10, 0)
		t.playJingleBind(JingleShowJackpot)
	}
}

func (t *Table) showLitPrize(which uint8) {
	t.show.prizes[which] = prizeLit
	t.effect([...]EffectBind{
		EffectShowLitTv,
		EffectShowLitTrip,
		EffectShowLitCar,
		EffectShowLitBoat,
		EffectShowLitHouse,
		EffectShowLitPlane,
	}[which])
	phase := t.show.lightPhasePrize
	if which == 1 || which == 4 {
		phase = (t.show.lightPhasePrize + 10) % 20
	}
	t.lightBlink(LightShowPrize, which, 10, phase)
	if (t.show.prizes[0] == prizeLit && t.show.prizes[1] == prizeLit && t.show.prizes[2] == prizeLit) ||
		(t.show.prizes[3] == prizeLit && t.show.prizes[4] == prizeLit && t.show.prizes[5] == prizeLit) {
		t.lightSet(LightShowCollectPrize, 0, true)
		t.lightBlink(LightShowCollectPrize, 0, 10, (t.show.lightPhasePrize+10)%20)
		t.dropPhysmap(PhysmapShowGateVaultEntry)
	}
}

func (t *Table) showRampLoop() {
	t.show.scoreCashpot = t.show.scoreCashpot.Add(BcdFromASCII([]byte("7130")))
	t.incrJackpot()
	t.modeCountRamp()
	t.effect(EffectShowRampLoop)
	if t.show.timeoutSuperJackpot != 0 {
		t.show.timeoutSuperJackpot = 1
		t.effect(EffectShowSuperJackpot)
	}
	t.show.timeoutCashpotX5 = 660
	t.lightBlink(LightShowCashpotX5, 0, 10, (t.show.lightPhasePrize+10)%20)
	if t.show.timeoutCar != 0 {
		t.show.timeoutCar = 0
		switch {
		case t.show.prizes[2] == prizeNone:
			t.showLitPrize(2)
		case t.show.prizes[5] == prizeNone && t.show.prizeSets == 1:
			t.show.timeoutPlane = 600
			if !t.inMode {
				t.startScript(ScriptShowHintLoopLeft)
			}
		default:
			t.scoreRaisingMillions = t.scoreRaisingMillions.Add(BcdFromASCII([]byte("1000000")))
			effect := t.assets.effect(EffectShowRaisingMillions)
			effect.ScoreMain = t.scoreRaisingMillions
			t.effectRaw(effect)
		}
	}
	if t.show.timeoutMb != 0 {
		which := t.lightSequence(LightShowBonus)
		if which < 6 {
			if t.playJingleBind(JingleShowMultiBonus) {
				t.startScript([...]ScriptBind{
					ScriptShowMbX2,
					ScriptShowMbX3,
					ScriptShowMbX4,
					ScriptShowMbX6,
					ScriptShowMbX8,
					ScriptShowMbX10,
				}[which])
			}
			t.bonusMultLate = [...]uint8{2, 3, 4, 6, 8, 10}[which]
		}
	}
}

func (t *Table) showOrbitLeft() {
	t.effect(EffectShowOrbitLeft)
	if !t.prevRollIs(RollShowOrbitRight) {
		return
	}
	if t.show.timeoutBoat != 0 && t.show.prizes[3] == prizeNone {
		t.show.timeoutBoat = 0
		t.showLitPrize(3)
	}
	if t.show.timeoutHouse != 0 && t.show.prizes[4] == prizeNone {
		t.show.timeoutHouse = 0
		t.showLitPrize(4)
	}
}

func (t *Table) showOrbitRight() {
	t.modeCountRamp()
	t.effect(EffectShowOrbitRight)
	if !t.prevRollIs(RollShowOrbitLeft) {
		return
	}
	if t.lightState(LightShowOrbitExtraBall, 0) {
		t.lightSet(LightShowOrbitExtraBall, 0, false)
		t.effect(EffectShowExtraBall)
		t.extraBall()
	}
	if t.show.timeoutPlane != 0 && t.show.prizes[5] == prizeNone {
		t.show.timeoutPlane = 0
		t.showLitPrize(5)
	} else {
		t.raisePhysmap(PhysmapShowGateRampRight)
		t.show.timeoutMb = 240
		t.show.timeoutTrip = 240
	}
}

func (t *Table) showRampSkills() {
	t.effect(EffectShowRampSkills)
	t.incrJackpot()
	t.show.scoreCashpot = t.show.scoreCashpot.Add(BcdFromASCII([]byte("7130")))
	t.modeCountRamp()
	t.addCyclone(1)
	t.numCycloneTarget = t.numCyclone/6*6 + 6
	switch {
	case t.numCyclone <= 5:
		t.effect(EffectShowSkillsToMoneyMania)
	case t.numCyclone == 6:
		t.effect(EffectShowModeHit)
		t.inMode = true
		t.inModeHit = true
		t.lightSet(LightShowMoneyMania, 0, true)
	case t.numCyclone <= 11:
		t.effect(EffectShowSkillsToExtraBall)
	case t.numCyclone == 12:
		t.playJingleBind(JingleShowExtraBallLit)
		t.lightSet(LightShowOrbitExtraBall, 0, true)
		t.lightBlink(LightShowOrbitExtraBall, 0, 15, (t.show.lightPhasePrize+10)%20)
	case t.numCyclone%12 == 6:
		t.effect(EffectShowModeRamp)
		t.inMode = true
		t.inModeRamp = true
		t.lightSet(LightShowMoneyMania, 0, true)
	case t.numCyclone%12 == 0:
		t.effect(EffectShowModeHit)
		t.inMode = true
		t.inModeHit = true
		t.lightSet(LightShowMoneyMania, 0, true)
	default:
		t.effect(EffectShowSkillsToMoneyMania)
	}
	if t.show.timeoutTv != 0 {
		if t.show.prizes[0] == prizeNone {
			t.show.timeoutTv = 0
			t.showLitPrize(0)
		} else if t.show.prizes[3] == prizeNone && t.show.prizeSets == 1 {
			t.show.timeoutBoat = 600
			if !t.inMode {
				t.startScript(ScriptShowHintLoopRight)
			}
		}
	}
	if t.show.timeoutTrip != 0 {
		if t.show.prizes[1] == prizeNone {
			t.show.timeoutTrip = 0
			t.showLitPrize(1)
		} else if t.show.prizes[4] == prizeNone && t.show.prizeSets == 1 {
			t.show.timeoutHouse = 600
			if !t.inMode {
				t.startScript(ScriptShowHintLoopRight)
			}
		}
	}
}

func (t *Table) showRampTop() {
	t.show.scoreCashpot = t.show.scoreCashpot.Add(BcdFromASCII([]byte("7130")))
	t.effect(EffectShowRampTop)
	if t.show.timeoutTopLoop != 0 {
		t.effect(EffectShowRampTopTwice)
	}
	t.show.timeoutTopLoop = 600
	if t.lightState(LightShowCollectPrize, 0) {
		t.playJingleBind(JingleShowPrizeIncoming)
	}
	t.lightBlink(LightShowTopLoop, 0, 10, t.show.lightPhasePrize)
}
