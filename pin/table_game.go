package pin

func (t *Table) initGame() {
	t.kbdState = kbdMain
	t.script.enterAttract = false
	t.curBall = 1
	t.curPlayer = 1
	t.gotTopScore = false
	t.gotHighScore = false
	t.inGameStart = true
	t.scoreJackpot = t.assets.ScoreJackpotInit
	t.resetPlayerState()
	t.extraBalls = 0
	t.partyOn = false
	t.matchDigit = -1
	t.scoreMain = BcdZero
	t.scoreBonus = BcdZero
	t.numCyclone = 0
	t.bcdNumCyclone = BcdZero
	t.scoreCycloneBonus = BcdZero
}

func (t *Table) resetPlayerState() {
	t.inMode = false
	t.inModeHit = false
	t.inModeRamp = false
	t.scoreModeHit = BcdZero
	t.scoreModeRamp = BcdZero
	t.bonusMultEarly = 1
	t.bonusMultLate = 1
	t.holdBonus = false
	t.lights.reset()
	switch t.assets.Table {
	case Table1:
		t.party = newPartyState()
		t.lightSetAll(LightPartyDuckDrop, true)
		t.lightBlink(LightPartyTunnel, 0, 8, 0)
		t.lightBlink(LightPartyRightOrbitScore, 0, 9, 0)
		t.raisePhysmap(PhysmapPartyHitDuck0)
		t.raisePhysmap(PhysmapPartyHitDuck1)
		t.raisePhysmap(PhysmapPartyHitDuck2)
	case Table2:
		t.speed = newSpeedState()
	case Table3:
		t.show = newShowState(t.hifps)
		t.lightSetAll(LightShowDropCenter, true)
		t.lightSetAll(LightShowDropLeft, true)
		t.lightBlink(LightShowSkills, 0, 15, 0)
		t.raisePhysmap(PhysmapShowHitCenter0)
		t.raisePhysmap(PhysmapShowHitCenter1)
		t.raisePhysmap(PhysmapShowHitLeft0)
		t.raisePhysmap(PhysmapShowHitLeft1)
		t.raisePhysmap(PhysmapShowGateRampRight)
		t.raisePhysmap(PhysmapShowGateVaultEntry)
		t.raisePhysmap(PhysmapShowGateVaultExit)
	case Table4:
		t.stones = newStonesState()
		t.raisePhysmap(PhysmapStonesGateTowerEntry)
		t.raisePhysmap(PhysmapStonesGateKickback)
		target := uint8(t.rng.Intn(3))
		t.stones.keySkillshot = int(target)
		t.lightBlink(LightStonesKey, target, 1, 0)
	}
}

func (t *Table) initBall() {
	t.haveRollTrigger = false
	t.atSpring = true
	t.flipperPressed = false
	t.silenceEffect = false
	t.inDrain = false
	t.inMode = false
	t.inModeHit = false
	t.inModeRamp = false
	t.timerStop = false
	t.lights.reset()
	t.tasks = t.tasks[:0]
	if !t.specialPlungerEvent {
		t.dm.stopBlink()
		if t.inGameStart {
			t.inGameStart = false
		} else {
			t.startScript(ScriptMain)
		}
	}
	t.resetPlayerState()
	t.loadCurPlayer()
	if t.assets.Table == Table1 {
		t.lightSetAll(LightPartyDuckDrop, true)
		t.raisePhysmap(PhysmapPartyHitDuck0)
		t.raisePhysmap(PhysmapPartyHitDuck1)
		t.raisePhysmap(PhysmapPartyHitDuck2)
		if t.extraBalls != 0 {
			t.lightSet(LightPartyExtraBall, 0, true)
		}
	}
}

func (t *Table) issueBall() {
	t.inDrain = false
	t.drained = false
	t.inPlunger = true
	t.ball.teleportFreeze(LayerGround, t.assets.IssueBallPos[0], t.assets.IssueBallPos[1])
	if !t.inGameStart && !t.partyOn {
		t.playJinglePlunger()
	} else {
		t.setMusicPlunger()
	}
	t.initBall()
	t.ballScoredPoints = false
	if t.inGameStart {
		t.addTask(taskIssueBallFinish)
	} else {
		t.issueBallFinish()
	}
}

func (t *Table) issueBallFinish() {
	t.addTask(taskIssueBallSfx)
	t.addTask(taskIssueBallRelease)
	if t.assets.SfxBinds[SfxRaiseHitTargets] != nil {
		t.addTask(taskIssueBallRaiseSfx)
	}
	t.flippersEnabled = true
	t.tilted = false
	t.tiltCounter = 0
}

func (t *Table) issueBallRelease() {
	t.ball.teleport(LayerGround, t.assets.IssueBallReleasePos[0], t.assets.IssueBallReleasePos[1], 10, 0, t.rng)
}

func (t *Table) abortGame() {
	t.ball.teleport(LayerGround, 300, 570, 0, 0, t.rng)
	t.kbdState = kbdMain
	t.addTask(taskGameOver)
	t.playJingleBindForce(JingleAttract)
	t.dm.stopBlink()
	t.startScript(ScriptAttract)
}

func (t *Table) score(main, bonus Bcd) {
	t.scoreMain = t.scoreMain.Add(main)
	t.scoreBonus = t.scoreBonus.Add(bonus)
	t.ballScoredPoints = true
	t.resetIdle()
}

func (t *Table) scorePremult(main, bonus Bcd) {
	t.scoreMain = t.scoreMain.Add(main)
	for i := uint8(0); i < t.bonusMultEarly; i++ {
		t.scoreBonus = t.scoreBonus.Add(bonus)
	}
	t.ballScoredPoints = true
	t.resetIdle()
}

func (t *Table) effectForceRaw(e Effect) {
	if e.Jingle != nil {
		t.sequencer.PlayJingle(*e.Jingle, true, NoMusicOverride)
	}
	t.score(e.ScoreMain, e.ScoreBonus)
	if e.Script != NoScript {
		t.startScriptRaw(e.Script)
	}
}

func (t *Table) effectRaw(e Effect) bool {
	var present bool
	if e.Jingle != nil {
		if (t.silenceEffect || t.inMode) &&
			e.Jingle.Position != t.assets.jingle(JingleDrained).Position {
			present = false
		} else {
			present = t.sequencer.PlayJingle(*e.Jingle, false, NoMusicOverride)
		}
	} else {
		present = e.SilentPriority >= t.sequencer.Priority()
	}
	t.score(e.ScoreMain, e.ScoreBonus)
	if present && e.Script != NoScript {
		t.startScriptRaw(e.Script)
	}
	return present
}

func (t *Table) effectForce(bind EffectBind) {
	t.effectForceRaw(t.assets.effect(bind))
}

func (t *Table) effect(bind EffectBind) bool {
	return t.effectRaw(t.assets.effect(bind))
}

// enter fires when the ball first reaches the playfield after the plunger.
func (t *Table) enter() {
	t.startKeysActive = false
	t.inGameStart = false
	bind := JingleMain
	if t.options.NoMusic {
		bind = JingleSilence
	}
	jingle := t.assets.jingle(bind)
	t.sequencer.PlayJingle(jingle, true, jingle.Position)
	t.startScript(ScriptMain)
	t.inPlunger = false
	t.atSpring = false
	t.partyOn = false
	t.specialPlungerEvent = false
}

func (t *Table) incrJackpot() {
	t.scoreJackpot = t.scoreJackpot.Add(t.assets.ScoreJackpotIncr)
}

func (t *Table) extraBall() {
	t.extraBalls++
	switch t.assets.Table {
	case Table1:
		t.lightSet(LightPartyExtraBall, 0, true)
	case Table2:
		t.lightSet(LightSpeedExtraBall, 0, true)
	case Table3:
		t.lightSet(LightShowExtraBall, 0, true)
	}
}

func (t *Table) addCyclone(cnt uint8) {
	t.numCyclone += uint16(cnt)
	t.bcdNumCyclone = t.bcdNumCyclone.Add(BcdDigit(cnt))
	var delta Bcd
	delta[6] = cnt
	t.scoreCycloneBonus = t.scoreCycloneBonus.Add(delta)
	if t.numCyclone == 1 {
		t.addCyclone(1)
	}
}

func (t *Table) matchDone(digit uint8) {
	t.matchDigit = int(digit)
	won := false
	for i := range t.players {
		if t.players[i].scoreMain[10] == digit {
			won = true
			break
		}
	}
	if !won {
		return
	}
	t.dm.startBlink(3)
	for i := range t.players {
		if t.players[i].scoreMain[10] != digit {
			t.dmPuts(FontH5, DmCoord{X: int16(i) * 16, Y: 0}, []byte("_"))
		}
	}
	t.playJingleBind(JingleMatchWin)
	t.sequencer.ResetPriority()
}

// taskAccBonus ticks the bonus into the main score digit by digit.
type taskAccBonus struct {
	frame int8
	digit int
	score Bcd
}

func newTaskAccBonus(score Bcd) *taskAccBonus {
	return &taskAccBonus{digit: 11, score: score}
}

func (s *taskAccBonus) run(t *Table) bool {
	s.frame++
	if s.frame != 4 {
		return true
	}
	s.frame = 0
	for s.score[s.digit] == 0 {
		if s.digit == 0 {
			t.dmPuts(FontH11, DmCoord{X: -32, Y: 6}, []byte("___________"))
			return false
		}
		s.digit--
	}
	s.score[s.digit]--
	if s.score[s.digit] == 0 && !s.score.IsZero() {
		s.frame = -10
	}
	var delta Bcd
	delta[s.digit] = 1
	t.scoreMain = t.scoreMain.Add(delta)
	t.playSfxBind(SfxTickBonus)
	t.dmPutBcd(FontH8, DmCoord{X: -32, Y: 6}, s.score, false)
	t.dmPutBcd(FontH13, DmCoord{X: 64, Y: 1}, t.scoreMain, false)
	return true
}

// taskMatch is the random match digit spinner.
type taskMatch struct {
	count        uint16
	frames       uint16
	framesReload uint16
	digit        uint8
}

func (s *taskMatch) run(t *Table) bool {
	s.frames--
	if s.frames != 0 {
		return true
	}
	s.frames = s.framesReload
	t.dmPuts(FontH5, DmCoord{X: int16(s.digit) * 16, Y: 7}, []byte("_"))
	newDigit := uint8(t.rng.Intn(10))
	if newDigit == s.digit {
		newDigit++
		if newDigit == 10 {
			newDigit = 0
		}
	}
	s.digit = newDigit
	t.dmPuts(FontH5, DmCoord{X: int16(s.digit) * 16, Y: 7}, []byte{'0' + s.digit})
	s.count--
	if s.count == 0 {
		t.matchDone(s.digit)
		return false
	}
	return true
}

// taskMatchStones is the decelerating countdown spinner driven by the match
// timing table.
type taskMatchStones struct {
	frames    uint16
	timingIdx int
	digit     uint8
}

func (s *taskMatchStones) run(t *Table) bool {
	s.frames--
	if s.frames != 0 {
		return true
	}
	s.frames = t.matchTiming[s.timingIdx]
	s.timingIdx++
	t.dmPuts(FontH5, DmCoord{X: int16(s.digit) * 16, Y: 7}, []byte("_"))
	if s.digit == 0 {
		s.digit = 9
	} else {
		s.digit--
	}
	t.dmPuts(FontH5, DmCoord{X: int16(s.digit) * 16, Y: 7}, []byte{'0' + s.digit})
	if s.timingIdx == len(t.matchTiming) {
		t.matchDone(s.digit)
		return false
	}
	return true
}
