package pin

// partyState holds Partyland's per-ball mode machinery.
type partyState struct {
	flipperLockPuke bool

	orbitRightCycle    uint8
	orbitRightBlinking bool
	orbitRightMb       bool
	orbitRightHb       bool
	orbitRightDb       bool
	madBlinking        bool
	cycloneX5          bool

	secretDropRelease   bool
	arcadeButtonJustHit bool
	arcadeOpen          bool
	arcadeReady         bool

	duckHit  [3]bool
	curSnack uint8
	snackLit [3]bool
	inSnack  bool
	popcorns uint8

	inDemon           bool
	demonReward       uint8
	demon5m           bool
	demonExtraBall    bool
	demonJackpot      bool
	demonJackpotTimed bool

	skyride uint8

	scoreCycloneSkillShot Bcd
	scoreTunnelSkillShot  Bcd

	lightPhaseSnack        uint8
	lightPhaseOrbitSpecial uint8
	lightPhasePuke         uint8
	lightPhaseDemon        uint8

	timeoutSkillShot  uint16
	timeoutPartyT     uint16
	timeoutPartyPr    uint16
	timeoutSpringLoop uint16
	timeoutTunnel     uint16
}

func newPartyState() partyState {
	return partyState{}
}

func (t *Table) partyFrame() {
	if t.inDrain {
		return
	}
	p := &t.party
	if p.timeoutSkillShot != 0 {
		p.timeoutSkillShot--
	}
	if p.timeoutPartyT != 0 {
		p.timeoutPartyT--
	}
	if p.timeoutPartyPr != 0 {
		p.timeoutPartyPr--
	}
	if p.timeoutSpringLoop != 0 {
		p.timeoutSpringLoop--
	}
	if p.timeoutTunnel != 0 {
		p.timeoutTunnel--
		if p.timeoutTunnel == 720 {
			t.lightSet(LightPartyTunnel, 2, false)
			t.lightSet(LightPartyTunnel, 1, false)
			t.lightBlink(LightPartyTunnel, 1, 8, 0)
		} else if p.timeoutTunnel == 0 {
			t.lightSet(LightPartyTunnel, 1, false)
			t.lightSet(LightPartyTunnel, 0, false)
			t.lightBlink(LightPartyTunnel, 0, 8, 0)
		}
	}
	p.lightPhaseSnack = (p.lightPhaseSnack + 1) % 16
	p.lightPhaseOrbitSpecial = (p.lightPhaseOrbitSpecial + 1) % 24
	p.lightPhasePuke = (p.lightPhasePuke + 1) % 4
	p.lightPhaseDemon = (p.lightPhaseDemon + 1) % 28
}

func (t *Table) partyFlipperPressed() {
	if !t.party.flipperLockPuke {
		t.lightRotate(LightPartyPuke)
	}
}

func (t *Table) partyModeCheck() {
	if t.modeTimeoutSecs == 2 && t.party.demonJackpotTimed && !t.party.demonJackpot {
		t.lightBlink(LightPartyDemonJackpot, 0, 2, 0)
	}
	if t.modeTimeoutSecs != 0 {
		return
	}
	t.inMode = false
	t.party.demonJackpotTimed = false
	if !t.party.demonJackpot {
		t.lightSet(LightPartyDemonJackpot, 0, false)
	}
	if t.inModeHit {
		t.inModeHit = false
		t.lightSet(LightPartyHappyHour, 0, false)
		t.effect(EffectPartyHappyHourEnd)
		if t.pendingModeRamp {
			t.pendingModeRamp = false
			t.addTask(taskPartyMegaLaugh)
		}
	} else {
		t.inModeRamp = false
		t.lightSet(LightPartyMegaLaugh, 0, false)
		t.effect(EffectPartyMegaLaughEnd)
		if t.pendingModeHit {
			t.pendingModeHit = false
			t.addTask(taskPartyHappyHour)
		}
	}
	t.sequencer.SetMusic(1)
}

func (t *Table) partyDrained() {
	if t.ballScoredPoints {
		t.effect(EffectDrained)
		t.setMusicSilence()
		t.addTask(taskDrainSfx)
	} else {
		// a ball that never scored gets handed straight back
		t.startScript(ScriptPartyOn)
		t.playJinglePlunger()
		t.partyOn = true
		t.addTask(taskPartyOn)
	}
}

func (t *Table) partyStartDropZone() {
	t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
	t.addTaskArg(taskPartyDropZoneScroll, t.scroll.pos)
	t.addTask(taskPartyDropZoneWait)
}

func (t *Table) partyParty(which uint8) {
	if t.lightState(LightPartyParty, which) {
		return
	}
	t.lightSet(LightPartyParty, which, true)
	t.effect([...]EffectBind{
		EffectPartyPartyP,
		EffectPartyPartyA,
		EffectPartyPartyR,
		EffectPartyPartyT,
		EffectPartyPartyY,
	}[which])
	t.partyCheckPartyAll()
}

func (t *Table) partyCheckPartyAll() {
	if t.lightAllLit(LightPartyParty) {
		if t.inMode {
			t.pendingModeHit = true
		} else {
			t.partyHappyHour()
		}
	}
}

func (t *Table) partyHappyHour() {
	t.effect(EffectPartyHappyHour)
	t.sequencer.SetMusic(0x2b)
	t.lightSetAll(LightPartyParty, false)
	if !t.party.demonJackpot && !t.party.demonJackpotTimed {
		t.lightBlink(LightPartyDemonJackpot, 0, 14, t.party.lightPhaseDemon)
	}
	t.party.demonJackpotTimed = true
	t.inMode = true
	t.inModeHit = true
	t.lightBlink(LightPartyHappyHour, 0, 8, 0)
	t.pendingMode = true
}

func (t *Table) partyCrazyLetter(effect EffectBind) bool {
	t.incrJackpot()
	res := t.effect(effect)
	t.lightSequence(LightPartyCrazy)
	if t.lightAllLit(LightPartyCrazy) {
		t.lightSetAll(LightPartyCrazy, false)
		if t.inMode {
			t.pendingModeRamp = true
		} else {
			t.partyMegaLaugh()
		}
	}
	return res
}

func (t *Table) partyMegaLaugh() {
	t.effect(EffectPartyMegaLaugh)
	t.sequencer.SetMusic(0x19)
	if !t.party.demonJackpot && !t.party.demonJackpotTimed {
		t.lightBlink(LightPartyDemonJackpot, 0, 14, t.party.lightPhaseDemon)
	}
	t.party.demonJackpotTimed = true
	t.inMode = true
	t.inModeRamp = true
	t.lightBlink(LightPartyMegaLaugh, 0, 8, 0)
	t.pendingMode = true
}

func (t *Table) partyArcadeButton() {
	if t.party.arcadeButtonJustHit {
		return
	}
	t.playSfxBind(SfxPartyArcadeButton)
	t.party.arcadeButtonJustHit = true
	t.addTask(taskPartyResetArcadeButton)
	if !t.party.arcadeOpen {
		t.party.arcadeOpen = true
		t.lightBlink(LightPartyArcade, 0, 12, 0)
		t.lightBlink(LightPartyArcade, 1, 12, 0)
	}
}

func (t *Table) partyHitDuck(which uint8) {
	if !t.lightState(LightPartyDuckDrop, which) {
		return
	}
	if t.party.duckHit[which] {
		return
	}
	t.party.duckHit[which] = true
	t.lightSet(LightPartyDuckDrop, which, false)
	t.addTaskArg(taskPartyDuckDrop, uint16(which))
	t.playSfxBind(SfxPartyHitDuck)
	t.scorePremult(BcdFromASCII([]byte("7510")), BcdFromASCII([]byte("750")))
	t.modeCountHit()
	if t.lightAllUnlit(LightPartyDuckDrop) {
		t.effect(EffectPartyDuckAll)
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightPartyDuck, i, 2, 0)
		}
		t.addTask(taskPartyDuckAllUnblink)
		if !t.party.snackLit[t.party.curSnack] {
			phase := t.party.lightPhaseSnack
			if t.party.curSnack == 1 {
				phase = (t.party.lightPhaseSnack + 8) % 16
			}
			t.lightBlink(LightPartySnack, t.party.curSnack, 8, phase)
			t.party.snackLit[t.party.curSnack] = true
		}
		t.party.curSnack = (t.party.curSnack + 1) % 3
	} else {
		t.addTaskArg(taskPartyDuckUnblink, uint16(which))
		t.lightBlink(LightPartyDuck, which, 3, 0)
	}
}

func (t *Table) partyOrbitRight() {
	if t.party.orbitRightBlinking {
		return
	}
	t.incrJackpot()
	t.modeCountRamp()
	if t.party.timeoutPartyT != 0 {
		t.partyParty(3)
	}
	t.party.timeoutPartyT = 600
	t.party.timeoutPartyPr = 300
	if t.party.orbitRightCycle < 2 {
		t.lightSet(LightPartyRightOrbitScore, t.party.orbitRightCycle, true)
		t.lightBlink(LightPartyRightOrbitScore, t.party.orbitRightCycle+1, 9, 0)
		if t.party.orbitRightCycle == 0 {
			t.effect(EffectPartyOrbit250k)
		} else {
			t.effect(EffectPartyOrbit500k)
		}
		t.party.orbitRightCycle++
	} else {
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightPartyRightOrbitScore, i, 2, 0)
		}
		t.effect(EffectPartyOrbit750k)
		t.addTask(taskPartyOrbitRightUnblink)
		t.party.orbitRightBlinking = true
		t.party.orbitRightCycle = 0
	}
	if t.party.orbitRightMb {
		t.party.orbitRightMb = false
		t.lightSet(LightPartyRightOrbitMultiBonus, 0, false)
		var mult uint8
		var effect EffectBind
		switch t.lightSequence(LightPartyBonus) {
		case 0:
			mult, effect = 2, EffectPartyOrbitMb2
		case 1:
			mult, effect = 4, EffectPartyOrbitMb4
		case 2:
			mult, effect = 6, EffectPartyOrbitMb6
		case 3:
			mult, effect = 8, EffectPartyOrbitMb8
		}
		if mult != 0 {
			t.effect(effect)
			t.bonusMultEarly = mult
			t.bonusMultLate = mult
		}
	}
	if t.party.orbitRightHb {
		t.party.orbitRightHb = false
		t.lightSet(LightPartyRightOrbitHoldBonus, 0, false)
		t.effect(EffectPartyOrbitHoldBonus)
		t.holdBonus = true
	}
	if t.party.orbitRightDb {
		t.party.orbitRightDb = false
		t.lightSet(LightPartyRightOrbitDoubleBonus, 0, false)
		t.effect(EffectPartyOrbitDoubleBonus)
		t.scoreBonus = t.scoreBonus.Add(t.scoreBonus)
	}
}

func (t *Table) partyOrbitLeft() {
	if t.party.madBlinking {
		return
	}
	t.incrJackpot()
	t.modeCountRamp()
	if t.party.timeoutPartyT != 0 {
		t.partyParty(3)
	}
	t.party.timeoutPartyT = 600
	which := t.lightSequence(LightPartyMad)
	t.effect([...]EffectBind{
		EffectPartyOrbitMad0,
		EffectPartyOrbitMad1,
		EffectPartyOrbitMad2,
	}[which])
	if which < 2 {
		t.lightBlink(LightPartyMad, which, 2, 0)
		t.addTaskArg(taskPartyMadUnblink, uint16(which))
	} else {
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightPartyMad, i, 2, 0)
		}
		t.addTask(taskPartyMadAllUnblink)
		t.party.madBlinking = true
		t.partyCrazyLetter(EffectPartyOrbitCrazy)
	}
}

func (t *Table) partySecret() {
	t.party.secretDropRelease = false
	t.effect(EffectPartySecret)
	t.incrJackpot()
	t.lightBlink(LightPartyCycloneX5, 0, 6, 0)
	t.party.cycloneX5 = true
	t.addTask(taskPartySecretDrop)
	t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
}

func (t *Table) partySecretTilt() {
	t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
	t.partyStartDropZone()
}

func (t *Table) partyTunnel() {
	t.incrJackpot()
	t.modeCountRamp()
	if t.party.timeoutSkillShot != 0 {
		t.incrJackpot()
		t.party.timeoutSkillShot = 0
		t.party.scoreTunnelSkillShot = t.party.scoreTunnelSkillShot.Add(BcdFromASCII([]byte("1000000")))
		t.scoreMain = t.scoreMain.Add(t.party.scoreTunnelSkillShot)
		t.effect(EffectPartyTunnelSkillShot)
		t.silenceEffect = true
		t.partyParty(0)
	} else if t.party.timeoutPartyPr != 0 {
		t.partyParty(0)
	}
	switch {
	case !t.lightState(LightPartyTunnel, 0):
		t.effect(EffectPartyTunnel1M)
		t.party.timeoutTunnel = 720
		t.lightSet(LightPartyTunnel, 0, true)
		t.lightBlink(LightPartyTunnel, 1, 8, 0)
	case !t.lightState(LightPartyTunnel, 1):
		t.effect(EffectPartyTunnel3M)
		t.party.timeoutTunnel = 1440
		t.lightSet(LightPartyTunnel, 1, true)
		t.lightBlink(LightPartyTunnel, 2, 8, 0)
	default:
		t.effect(EffectPartyTunnel5M)
		t.party.timeoutTunnel = 1440
	}
	t.addTaskArg(taskPartyDropZoneScroll, t.scroll.pos)
	delay := uint16(130)
	if t.inMode {
		delay = 0
	}
	t.addTaskArg(taskPartyDropZoneStart, delay)
	if !t.inMode {
		t.addTask(taskPartyTunnelFreeze)
	}
	t.silenceEffect = false
}

func (t *Table) partyTunnelTilt() {
	t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
	t.partyStartDropZone()
}

func (t *Table) partyArcade() {
	t.modeCountRamp()
	if t.tilted || !t.party.arcadeOpen {
		t.partyStartDropZone()
		return
	}
	t.party.arcadeOpen = false
	t.lightSetAll(LightPartyArcade, false)
	if t.effect(EffectPartyArcade) {
		t.party.arcadeReady = false
		t.setMusicSilence()
		t.addTask(taskPartyArcadePickReward)
	} else {
		t.party.arcadeReady = true
		t.partyArcadePickReward()
	}
	t.addTaskArg(taskPartyDropZoneScroll, t.scroll.pos)
	t.ball.teleport(LayerGround, 15, 47, 0, 0, t.rng)
}

func (t *Table) partyArcadePickReward() {
	var delay uint16
	switch t.rng.Intn(6) {
	case 0: // side extra ball
		t.lightSet(LightPartySideExtraBall, 0, true)
		if t.effect(EffectPartyArcadeSideExtraBall) {
			delay = 160
		} else {
			delay = 10
		}
	case 1: // crazy letter
		if t.partyCrazyLetter(EffectPartyArcadeCrazy) {
			t.addTaskArgs(taskPartyArcadeDropZoneStart, 140, 180)
			return
		}
		delay = 10
	case 2:
		if t.effect(EffectPartyArcade1M) {
			t.addTaskArgs(taskPartyArcadeDropZoneStart, 120, 150)
			return
		}
		delay = 10
	case 3:
		if t.effect(EffectPartyArcade5M) {
			t.addTaskArgs(taskPartyArcadeDropZoneStart, 110, 140)
			return
		}
		delay = 10
	case 4:
		if t.effect(EffectPartyArcade500k) {
			t.addTaskArgs(taskPartyArcadeDropZoneStart, 45, 70)
			return
		}
		delay = 10
	case 5:
		t.effect(EffectPartyArcadeNoScore)
		delay = 45
	}
	t.addTaskArg(taskPartyDropZoneStart, delay)
}

func (t *Table) partyRampSnack() {
	if t.party.inSnack {
		return
	}
	t.party.inSnack = true
	t.scorePremult(BcdFromASCII([]byte("50000")), BcdFromASCII([]byte("5000")))
	t.modeCountRamp()
	switch {
	case t.party.snackLit[2]:
		t.effect(EffectPartySnack2)
		t.incrJackpot()
		if t.party.popcorns < 2 {
			t.party.popcorns++
		}
	case t.party.snackLit[1]:
		t.effect(EffectPartySnack1)
		t.incrJackpot()
	case t.party.snackLit[0]:
		t.effect(EffectPartySnack0)
		t.incrJackpot()
	default:
		t.effect(EffectPartySnackNope)
	}
	t.lightSetAll(LightPartySnack, false)
	if t.party.snackLit[2] {
		if !t.lightState(LightPartyParty, 1) {
			t.lightSet(LightPartyParty, 1, true)
			t.effect(EffectPartyPartyA)
			t.partyCheckPartyAll()
		}
		if t.party.popcorns == 1 {
			if !t.party.orbitRightHb {
				t.party.orbitRightHb = true
				t.lightBlink(LightPartyRightOrbitHoldBonus, 0, 12, (t.party.lightPhaseOrbitSpecial+12)%24)
			}
		} else if !t.party.orbitRightDb {
			t.party.orbitRightDb = true
			t.lightBlink(LightPartyRightOrbitDoubleBonus, 0, 12, t.party.lightPhaseOrbitSpecial)
			t.addTask(taskPartyDoubleBonusBlink)
		}
	}
	t.party.snackLit = [3]bool{}
	t.ball.teleportFreeze(LayerOverhead, 3, 253)
	t.addTask(taskPartySnacksRelease)
}

func (t *Table) partyDemon() {
	if t.party.inDemon {
		return
	}
	t.party.inDemon = true
	t.ball.teleportFreeze(LayerGround, 257, 310)
	gotSomething := false
	timeout := uint16(85)
	if t.party.demon5m {
		t.party.demon5m = false
		t.effect(EffectPartyDemon5M)
		t.lightSet(LightPartyDemon5M, 0, false)
		gotSomething = true
		timeout = 160
		if t.inMode {
			timeout = 15
		}
	}
	if t.party.demonExtraBall {
		t.party.demonExtraBall = false
		t.effect(EffectPartyDemonExtraBall)
		t.extraBall()
		t.lightSet(LightPartyDemonExtraBall, 0, false)
		gotSomething = true
		timeout = 320
		if t.inMode {
			timeout = 15
		}
	}
	if t.party.demonJackpot || t.party.demonJackpotTimed {
		t.party.demonJackpot = false
		t.party.demonJackpotTimed = false
		t.lightSet(LightPartyDemonJackpot, 0, false)
		t.playJingleBind(JinglePartyJackpot)
		if !t.inMode {
			t.startScript(ScriptPartyJackpot)
		} else if t.inModeHit {
			t.startScript(ScriptPartyJackpotModeHit)
		} else {
			t.startScript(ScriptPartyJackpotModeRamp)
		}
		t.scoreMain = t.scoreMain.Add(t.scoreJackpot)
		t.scoreJackpot = t.assets.ScoreJackpotInit
		gotSomething = true
		timeout = 410
	}
	if !gotSomething {
		t.effect(EffectPartyDemon250k)
	}
	t.addTaskArg(taskPartyDemonBlink, timeout)
}

func (t *Table) partyLaneOuter() {
	if t.lightState(LightPartySideExtraBall, 0) {
		t.lightSet(LightPartySideExtraBall, 0, false)
		t.effect(EffectPartySideExtraBall)
		t.extraBall()
		t.blockDrain = true
		t.addTask(taskPartySideExtraBallFinish)
	} else {
		t.playSfxBind(SfxRollTrigger)
		t.score(BcdFromASCII([]byte("50030")), BcdZero)
	}
}

func (t *Table) partySkyrideTop() {
	t.modeCountRamp()
	t.raisePhysmap(PhysmapPartyGateSkyride)
	if t.party.timeoutPartyT != 0 {
		t.party.timeoutPartyT = 0
		t.partyParty(3)
	}
	t.party.timeoutPartyT = 600
	switch t.party.skyride {
	case 0:
		t.effect(EffectPartySkyride0)
		t.lightSet(LightPartySkyride, 0, true)
		t.party.skyride = 1
	case 1:
		t.effect(EffectPartySkyride1)
		t.lightSet(LightPartySkyride, 1, true)
		t.party.skyride = 2
	case 2:
		t.effect(EffectPartySkyride2)
		for i := uint8(0); i < 3; i++ {
			t.lightBlink(LightPartySkyride, i, 2, 0)
		}
		t.party.skyride = 0
		t.addTask(taskPartySkyrideUnblink)
		if !t.party.orbitRightMb && !t.lightState(LightPartyBonus, 3) {
			t.party.orbitRightMb = true
			t.lightBlink(LightPartyRightOrbitMultiBonus, 0, 12, t.party.lightPhaseOrbitSpecial)
			t.effect(EffectPartySkyrideLitMb)
		}
	}
}

func (t *Table) partyPuke(which uint8) {
	t.playSfxBind(SfxRollTrigger)
	if t.lightState(LightPartyPuke, which) {
		return
	}
	t.lightSet(LightPartyPuke, which, true)
	t.scorePremult(BcdFromASCII([]byte("20070")), BcdFromASCII([]byte("1000")))
	t.incrJackpot()
	if t.lightAllLit(LightPartyPuke) {
		t.lightBlink(LightPartyPuke, 0, 2, t.party.lightPhasePuke)
		t.lightBlink(LightPartyPuke, 2, 2, t.party.lightPhasePuke)
		t.lightBlink(LightPartyPuke, 1, 2, (t.party.lightPhasePuke+2)%4)
		t.lightBlink(LightPartyPuke, 3, 2, (t.party.lightPhasePuke+2)%4)
		t.addTask(taskPartyPukeUnblinkAll)
		switch t.party.demonReward {
		case 0:
			t.party.demon5m = true
			t.lightBlink(LightPartyDemon5M, 0, 14, t.party.lightPhaseDemon)
			t.party.demonReward = 1
		case 1:
			t.party.demonExtraBall = true
			t.lightBlink(LightPartyDemonExtraBall, 0, 14, (t.party.lightPhaseDemon+14)%28)
			t.party.demonReward = 2
		case 2:
			t.party.demonJackpot = true
			t.lightBlink(LightPartyDemonJackpot, 0, 14, t.party.lightPhaseDemon)
			t.party.demonReward = 3
		}
		t.partyParty(4)
	} else {
		t.party.flipperLockPuke = true
		t.lightBlink(LightPartyPuke, which, 2, 0)
		t.addTaskArg(taskPartyPukeUnblink, uint16(which))
	}
}

func (t *Table) partyRampCyclone() {
	t.modeCountRamp()
	if t.party.timeoutSkillShot != 0 {
		t.incrJackpot()
		t.incrJackpot()
		t.party.scoreCycloneSkillShot = t.party.scoreCycloneSkillShot.Add(BcdFromASCII([]byte("1000000")))
		t.scoreMain = t.scoreMain.Add(t.party.scoreCycloneSkillShot)
		t.effect(EffectPartyCycloneSkillShot)
		t.silenceEffect = true
		t.partyParty(2)
	} else if t.party.timeoutPartyPr != 0 {
		t.partyParty(2)
	}
	if t.party.cycloneX5 {
		t.addCyclone(5)
		t.effect(EffectPartyCycloneX5)
		t.lightSet(LightPartyCycloneX5, 0, false)
		t.party.cycloneX5 = false
	} else {
		t.addCyclone(1)
		t.effect(EffectPartyCyclone)
	}
	t.silenceEffect = false
}
