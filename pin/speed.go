package pin

// speedState holds Speed Devils' race machinery: gears, places, pit targets
// and the overtake mile counters.
type speedState struct {
	blinkBur            [3]bool
	blinkNin            [3]bool
	timeoutPitAll       uint16
	timeoutPit          [3]uint16
	curPlace            uint8
	maxPlace            uint8
	curGear             uint8
	lightPhasePlace     uint8
	timeoutGearBlink    uint16
	timeoutMilesLeft    uint16
	timeoutMilesRight   uint16
	timeoutJackpot      uint16
	mbActive            uint8
	mbPending           uint8
	carMods             uint8
	pedalMetal          bool
	curSpeed            uint8
	numCycloneTargetJump uint16
}

func newSpeedState() speedState {
	return speedState{numCycloneTargetJump: 30}
}

func (t *Table) speedFrame() {
	s := &t.speed
	s.lightPhasePlace = (s.lightPhasePlace + 1) % 30
	for i := 0; i < 3; i++ {
		if s.timeoutPit[i] != 0 {
			s.timeoutPit[i]--
			if s.timeoutPit[i] == 0 {
				t.lightSet(LightSpeedPit, uint8(i), true)
			}
		}
	}
	if s.timeoutPitAll != 0 {
		s.timeoutPitAll--
		if s.timeoutPitAll == 0 {
			t.lightSetAll(LightSpeedPit, false)
		}
	}
	if s.timeoutMilesLeft != 0 {
		s.timeoutMilesLeft--
	}
	if s.timeoutMilesRight != 0 {
		s.timeoutMilesRight--
	}
	if s.timeoutGearBlink != 0 {
		s.timeoutGearBlink--
		if s.timeoutGearBlink == 0 {
			s.curGear = 0
			t.lightSetAll(LightSpeedGearNum, false)
			if !t.lightState(LightSpeedPitStopHoldBonus, 0) {
				t.lightSet(LightSpeedPitStopHoldBonus, 0, true)
				t.lightBlink(LightSpeedPitStopHoldBonus, 0, 15, s.lightPhasePlace)
			}
		}
	}
	if s.timeoutJackpot != 0 {
		s.timeoutJackpot--
		if s.timeoutJackpot == 0 {
			t.lightSet(LightSpeedMiniRampJackpot, 0, false)
		}
	}
}

// The pit light banks rotate with the flippers; holding the flipper rotation
// also resets the pit retrigger timers.
func (t *Table) speedFlipperPressed() {
	t.lightRotate(LightSpeedBur)
	t.speed.blinkBur = [3]bool{}
	t.lightRotate(LightSpeedNin)
	t.speed.blinkNin = [3]bool{}
	if t.speed.timeoutPitAll == 0 {
		t.speed.timeoutPit = [3]uint16{}
		t.lightRotate(LightSpeedPit)
	}
}

func (t *Table) speedDrained() {
	t.sequencer.ResetPriority()
	t.effect(EffectDrained)
	t.sequencer.ResetPriority()
	t.addTask(taskDrainSfx)
}

func (t *Table) speedModeCheck() {
	if t.modeTimeoutSecs != 0 {
		return
	}
	if t.inModeRamp {
		t.playJingleBind(JingleModeEndRamp)
	}
	if t.inModeHit {
		t.playJingleBind(JingleModeEndHit)
	}
	t.sequencer.SetMusic(3)
	t.sequencer.ResetPriority()
	t.inModeHit = false
	t.inModeRamp = false
}

func (t *Table) speedHitBur(which uint8) {
	if t.speed.blinkBur[which] {
		return
	}
	t.speed.blinkBur[which] = true
	t.lightSet(LightSpeedBur, which, true)
	t.modeCountHit()
	t.scorePremult(BcdFromASCII([]byte("7510")), BcdFromASCII([]byte("550")))
	t.playSfxBind(SfxSpeedHitTarget)
	if t.lightAllLit(LightSpeedBur) {
		t.incrJackpot()
		t.speed.blinkBur = [3]bool{true, true, true}
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightSpeedBur, i, 1, 0)
		}
		t.addTask(taskSpeedUnblinkBurAll)
		t.speedGear(2)
	} else {
		t.lightBlink(LightSpeedBur, which, 1, 0)
		t.addTaskArg(taskSpeedUnblinkBur, uint16(which))
	}
}

func (t *Table) speedHitNin(which uint8) {
	if t.speed.blinkNin[which] {
		return
	}
	t.speed.blinkNin[which] = true
	t.lightSet(LightSpeedNin, which, true)
	t.modeCountHit()
	t.scorePremult(BcdFromASCII([]byte("7510")), BcdFromASCII([]byte("550")))
	t.playSfxBind(SfxSpeedHitTarget)
	if t.lightAllLit(LightSpeedNin) {
		t.incrJackpot()
		t.speed.blinkNin = [3]bool{true, true, true}
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightSpeedNin, i, 1, 0)
		}
		t.addTask(taskSpeedUnblinkNinAll)
		t.speedGear(3)
	} else {
		t.lightBlink(LightSpeedNin, which, 1, 0)
		t.addTaskArg(taskSpeedUnblinkNin, uint16(which))
	}
}

func (t *Table) speedGear(which uint8) bool {
	t.lightSet(LightSpeedGear, which, true)
	t.lightBlink(LightSpeedGear, which, 1, 0)
	if !t.lightAllLit(LightSpeedGear) {
		return false
	}
	if t.speed.maxPlace < 10 {
		t.lightBlink(LightSpeedPlace, t.speed.maxPlace, 15, t.speed.lightPhasePlace)
		t.lightBlink(LightSpeedPlace, t.speed.maxPlace+1, 15, (t.speed.lightPhasePlace+15)%30)
		t.speed.maxPlace += 2
	} else {
		t.effect(EffectSpeedExtraGear)
	}
	if t.speed.curGear < 5 {
		t.lightSet(LightSpeedGearNum, t.speed.curGear, true)
		t.speed.curGear++
	} else {
		t.speed.timeoutGearBlink = 30
		for i := uint8(0); i < 6; i++ {
			t.lightBlink(LightSpeedGearNum, i, 1, 0)
		}
	}
	t.lightSetAll(LightSpeedGear, false)
	for i := uint8(0); i < 4; i++ {
		t.lightBlink(LightSpeedGear, i, 2, 0)
	}
	t.addTask(taskSpeedUnblinkGearAll)
	t.effect(EffectSpeedGear)
	return true
}

func (t *Table) speedGoal() {
	t.lightSetAll(LightSpeedPlace, false)
	t.speed.curPlace = 0
	t.speed.maxPlace = 0
	if t.inMode {
		t.addTask(taskSpeedTurbo)
	} else {
		t.speedDoTurbo()
	}
}

func (t *Table) speedDoTurbo() {
	t.effect(EffectSpeedTurbo)
	t.inMode = true
	t.inModeRamp = true
}

func (t *Table) speedOffroad() {
	if t.inMode {
		t.addTask(taskSpeedOffroad)
	} else {
		t.speedDoOffroad()
	}
}

func (t *Table) speedDoOffroad() {
	t.playJingleBindForce(JingleSpeedModeHit)
	t.inMode = true
	t.inModeHit = true
	t.startScript(ScriptSpeedModeHit)
}

func (t *Table) speedPitStop() {
	if t.lightState(LightSpeedPitStopSuperJackpot, 0) {
		t.lightSet(LightSpeedPitStopSuperJackpot, 0, false)
		if t.lightState(LightSpeedPitStopGoal, 0) {
			t.effect(EffectSpeedSuperJackpotGoal)
			t.ball.teleportFreeze(LayerGround, 256, 41)
			t.addTaskArg(taskSpeedPitStop, 150)
			return
		}
		t.timerStop = true
		t.effectForce(EffectSpeedSuperJackpot)
	}
	if t.lightState(LightSpeedPitStopGoal, 0) {
		t.lightSet(LightSpeedPitStopGoal, 0, false)
		t.speedGoal()
	}
	if t.lightState(LightSpeedPitStopHoldBonus, 0) {
		t.lightSet(LightSpeedPitStopHoldBonus, 0, false)
		t.effect(EffectSpeedHoldBonus)
		t.holdBonus = true
	}
	t.ball.teleportFreeze(LayerGround, 256, 41)
	delay := uint16(20)
	if t.inMode {
		delay = 80
	}
	t.addTaskArg(taskSpeedPitStop, delay)
}

func (t *Table) speedCarMod(which uint8) {
	if !t.lightState(LightSpeedCarPartLit, which) {
		return
	}
	t.lightSet(LightSpeedCarPartLit, which, false)
	t.effect([...]EffectBind{
		EffectSpeedCar0,
		EffectSpeedCar1,
		EffectSpeedCar2,
		EffectSpeedCar3,
		EffectSpeedCar4,
	}[which])
	t.lightSet(LightSpeedCarPart, which, true)
	phase := t.speed.lightPhasePlace
	if which == 0 || which == 2 {
		phase = (t.speed.lightPhasePlace + 15) % 30
	}
	t.lightBlink(LightSpeedCarPart, which, 15, phase)
	if t.lightAllLit(LightSpeedCarPart) {
		t.lightSetAll(LightSpeedCarPart, false)
		for i := uint8(0); i < 5; i++ {
			t.lightBlink(LightSpeedCarPart, i, 1, 0)
			t.speed.carMods = 0
			t.addTask(taskSpeedUnblinkCar)
		}
	}
}

func (t *Table) speedRampOffroad() {
	if t.inModeRamp {
		t.effect(EffectSpeedTurboRamp)
	}
	t.modeCountRamp()
	t.effect(EffectSpeedRampOffroad)
	t.speedCarMod(0)
	t.speedCarMod(3)
	if t.lightState(LightSpeedOffroadMultiBonus, 0) {
		t.effect([...]EffectBind{
			EffectSpeedMb2,
			EffectSpeedMb3,
			EffectSpeedMb4,
			EffectSpeedMb5,
			EffectSpeedMb6,
			EffectSpeedMb7,
			EffectSpeedMb8,
			EffectSpeedMb9,
		}[t.speed.mbActive])
		t.lightSet(LightSpeedBonus, t.speed.mbActive, true)
		t.speed.mbActive++
		t.bonusMultEarly = t.speed.mbActive + 1
		t.bonusMultLate = t.speed.mbActive + 1
		t.speed.mbPending--
		if t.speed.mbPending == 0 {
			t.lightSet(LightSpeedOffroadMultiBonus, 0, false)
		}
	}
	t.incrJackpot()
	if !t.speedGear(1) {
		t.addTaskArg(taskSpeedUnblinkGear, 1)
	}
}

func (t *Table) speedRampJump() {
	if t.inModeRamp {
		t.effect(EffectSpeedTurboRamp)
	}
	t.modeCountRamp()
	t.incrJackpot()
	if t.lightState(LightSpeedMiniRampJackpot, 0) {
		t.scoreMain = t.scoreMain.Add(t.scoreJackpot)
		t.scoreJackpot = t.assets.ScoreJackpotInit
		if t.inModeRamp {
			t.effectForce(EffectSpeedJackpot)
			t.timerStop = true
		} else {
			t.effect(EffectSpeedJackpot)
		}
		t.lightSet(LightSpeedMiniRampJackpot, 0, false)
		t.lightSet(LightSpeedPitStopSuperJackpot, 0, true)
		t.lightBlink(LightSpeedPitStopSuperJackpot, 0, 15, t.speed.lightPhasePlace)
		t.addTask(taskSpeedResetSuperJackpot)
	}
	if t.lightState(LightSpeedMiniRampJump, 0) {
		t.effect(EffectSpeedJump)
		t.lightSet(LightSpeedMiniRampJump, 0, false)
	}
	t.speedCarMod(1)
	if t.speed.pedalMetal {
		t.speed.pedalMetal = false
		t.effect(EffectSpeedPedalMetal)
		if t.speed.curSpeed&1 == 1 && t.speed.carMods != 5 {
			t.lightSet(LightSpeedCarPartLit, t.speed.carMods, true)
			t.lightBlink(LightSpeedCarPartLit, t.speed.carMods, 15, t.speed.lightPhasePlace)
			t.speed.carMods++
		}
		if t.speed.curSpeed < 12 {
			t.lightSet(LightSpeedSpeed, t.speed.curSpeed, true)
		}
		t.speed.curSpeed++
		if t.speed.curSpeed == 14 {
			t.speed.curSpeed = 12
		}
	}
	if !t.speedGear(0) {
		t.addTaskArg(taskSpeedUnblinkGear, 0)
	}
	t.incrJackpot()
}

func (t *Table) speedPitLoop() {
	t.speedCarMod(2)
	t.speedCarMod(4)
	if t.lightState(LightSpeedPitLoopExtraBall, 0) {
		t.effect(EffectSpeedExtraBall)
		t.lightSet(LightSpeedPitLoopExtraBall, 0, false)
		t.extraBall()
	}
}

func (t *Table) speedRollPit(which uint8) {
	if t.speed.timeoutPit[which] != 0 {
		return
	}
	t.lightSet(LightSpeedPit, which, true)
	t.modeCountHit()
	t.playSfxBind(SfxSpeedHitTarget)
	t.effect(EffectSpeedPit)
	if t.lightAllLit(LightSpeedPit) && t.speed.timeoutPitAll == 0 {
		t.effect(EffectSpeedPitAll)
		if t.speed.mbActive+t.speed.mbPending < 8 {
			if t.speed.mbPending == 0 {
				t.lightSet(LightSpeedOffroadMultiBonus, 0, true)
				t.lightBlink(LightSpeedOffroadMultiBonus, 0, 10, 0)
			}
			t.speed.mbPending++
		} else {
			t.effect(EffectSpeedMillion)
		}
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightSpeedPit, i, 2, 0)
		}
		t.speed.timeoutPitAll = 40
	} else {
		t.lightBlink(LightSpeedPit, which, 1, 0)
		t.speed.timeoutPit[which] = 20
	}
}

func (t *Table) speedOvertake() {
	if t.speed.curPlace < t.speed.maxPlace {
		t.lightSet(LightSpeedPlace, t.speed.curPlace, true)
		t.speed.curPlace++
		t.effect(EffectSpeedOvertake)
		if t.speed.curPlace == 10 {
			t.lightSet(LightSpeedPitStopGoal, 0, true)
			t.lightBlink(LightSpeedPitStopGoal, 0, 15, (t.speed.lightPhasePlace+15)%30)
			t.lightSet(LightSpeedMiniRampJackpot, 0, true)
			t.lightBlink(LightSpeedMiniRampJackpot, 0, 15, t.speed.lightPhasePlace)
			t.speed.timeoutJackpot = 1200
			t.effect(EffectSpeedOvertakeFinal)
		}
	}
	t.effect(EffectSpeedMillion)
	t.speed.pedalMetal = true
}

func (t *Table) speedBumpMiles() {
	t.incrJackpot()
	miles := t.speed.curSpeed
	if miles > 11 {
		miles = 11
	}
	t.effect([...]EffectBind{
		EffectSpeedMiles0,
		EffectSpeedMiles1,
		EffectSpeedMiles2,
		EffectSpeedMiles3,
		EffectSpeedMiles4,
		EffectSpeedMiles5,
		EffectSpeedMiles6,
		EffectSpeedMiles7,
		EffectSpeedMiles8,
		EffectSpeedMiles9,
		EffectSpeedMiles10,
		EffectSpeedMiles11,
	}[miles])
	if t.inModeRamp {
		t.effect(EffectSpeedTurboRamp)
	}
	t.modeCountRamp()
	t.addCyclone(1)
	t.numCycloneTarget = t.numCyclone/10*10 + 10
	switch {
	case t.numCyclone <= 9:
		t.effect(EffectSpeedMilesToFirstOffroad)
	case t.numCyclone == 10:
		t.speedOffroad()
	case t.numCyclone <= 19:
		t.effect(EffectSpeedMilesToExtraBall)
	case t.numCyclone == 20:
		t.lightSet(LightSpeedPitLoopExtraBall, 0, true)
		t.lightBlink(LightSpeedPitLoopExtraBall, 0, 15, 0)
		t.effect(EffectSpeedMilesExtraBall)
	case t.numCyclone%20 >= 1 && t.numCyclone%20 <= 9:
		t.effect(EffectSpeedMilesToJump)
	case t.numCyclone%20 == 10:
		if !t.lightState(LightSpeedMiniRampJump, 0) {
			t.lightSet(LightSpeedMiniRampJump, 0, true)
			t.lightBlink(LightSpeedMiniRampJump, 0, 15, 0)
			t.effect(EffectSpeedMilesJump)
		}
	case t.numCyclone%20 >= 11 && t.numCyclone%20 <= 19:
		t.effect(EffectSpeedMilesToOffroad)
	default: // multiple of 20
		t.speedOffroad()
	}
}

func (t *Table) speedLoadFixup() {
	if t.lightState(LightSpeedPitStopGoal, 0) {
		t.lightBlink(LightSpeedPitStopGoal, 0, 15, (t.speed.lightPhasePlace+15)%30)
	}
	for i := uint8(0); i < t.speed.curGear; i++ {
		t.lightSet(LightSpeedGearNum, i, true)
	}
	for i := uint8(0); i < 5; i++ {
		if t.lightState(LightSpeedCarPart, i) {
			phase := t.speed.lightPhasePlace
			if i == 0 || i == 2 {
				phase = (t.speed.lightPhasePlace + 15) % 30
			}
			t.lightBlink(LightSpeedCarPart, i, 15, phase)
		}
	}
	for i := uint8(0); i < 5; i++ {
		if t.lightState(LightSpeedCarPartLit, i) {
			t.lightBlink(LightSpeedCarPartLit, i, 15, t.speed.lightPhasePlace)
		}
	}
	for i := uint8(0); i < t.speed.curPlace; i++ {
		t.lightSet(LightSpeedPlace, i, true)
	}
	for i := t.speed.curPlace; i < t.speed.maxPlace; i++ {
		phase := t.speed.lightPhasePlace
		if i%2 != 0 {
			phase = (t.speed.lightPhasePlace + 15) % 30
		}
		t.lightBlink(LightSpeedPlace, i, 15, phase)
	}
	for i := uint8(0); i < t.speed.curSpeed && i < 12; i++ {
		t.lightSet(LightSpeedSpeed, i, true)
	}
}
