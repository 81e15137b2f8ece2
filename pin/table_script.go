package pin

// scriptTask is the VM's single active task; run returns false when the task
// is done and the next micro-op should execute.
type scriptTask interface {
	run(t *Table) bool
}

type scriptState struct {
	pos          ScriptPos
	task         scriptTask
	timerIdle    uint16
	needDefaultBg bool
	inIdle       bool
	enterAttract bool
	repeatCnt    uint16
}

func newScriptState() scriptState {
	return scriptState{
		task:         taskDefault{},
		timerIdle:    718,
		enterAttract: true,
	}
}

// taskDefault is the idle task: it refreshes the score display, watches for
// a new top score, and escalates to the idle/attract scripts.
type taskDefault struct{}

func (taskDefault) run(t *Table) bool {
	if t.kbdState != kbdMain {
		return false
	}
	if t.script.timerIdle == 720 {
		if !t.atSpring {
			t.script.inIdle = true
			t.startScript(ScriptGameIdle)
		}
	} else {
		if t.script.enterAttract {
			t.script.enterAttract = false
			t.startScript(ScriptAttract)
			return false
		} else if t.inAttract {
			t.startScript(ScriptGameOver)
		} else if !t.inPlunger && t.script.needDefaultBg {
			t.script.needDefaultBg = false
			t.runUop(t.assets.ScriptBinds[ScriptMain])
		}
		t.script.timerIdle++
	}
	t.checkTopScore()
	t.dmPutBcd(FontH13, DmCoord{X: 64, Y: 1}, t.scoreMain, false)
	return false
}

type taskDelay struct{ time uint16 }

func (s *taskDelay) run(t *Table) bool {
	s.time--
	return s.time != 0
}

type taskHalt struct{}

func (taskHalt) run(t *Table) bool { return true }

type taskConfirmQuit struct{}

func (taskConfirmQuit) run(t *Table) bool {
	return t.kbdState == kbdConfirmQuit || t.quitting
}

type taskWaitJingle struct{}

func (taskWaitJingle) run(t *Table) bool { return t.sequencer.JinglePlaying() }

type taskWaitWhileGameStarting struct{}

func (taskWaitWhileGameStarting) run(t *Table) bool { return t.inGameStart }

type taskMode struct{ score ScriptScore }

func (s taskMode) run(t *Table) bool { return t.modeFrame(s.score) }

type taskDmClear struct{}

func (taskDmClear) run(t *Table) bool {
	t.dm.clear()
	return false
}

// taskRecordHighScores walks the players into the high score table; name
// entry switches the keyboard into GetName mode.
type taskRecordHighScores struct{}

func (taskRecordHighScores) run(t *Table) bool {
	if t.curPlayer > t.totalPlayers {
		if !t.gotHighScore {
			t.playJingleBindForce(JingleGameOverSad)
		}
		return false
	}
	score := t.players[t.curPlayer-1].scoreMain
	for place := 0; place < 4; place++ {
		if t.highScores[place].Score.Less(score) {
			if !t.gotHighScore {
				t.playJingleBindForce(JingleGameOverHighScore)
				t.gotHighScore = true
			}
			t.dmPuts(FontH13, DmCoord{X: 0, Y: 1}, []byte("HIGHSCORE PL \x94 (   )"))
			t.script.task = &taskRecordHighScoresGetName{place: place}
			t.kbdState = kbdGetName
			t.nameBuf = t.nameBuf[:0]
			return true
		}
	}
	t.curPlayer++
	return true
}

type taskRecordHighScoresGetName struct{ place int }

func (s *taskRecordHighScoresGetName) run(t *Table) bool {
	t.dmPuts(FontH13, DmCoord{X: 160 - 4*8, Y: 1}, t.nameBuf)
	if len(t.nameBuf) == 3 {
		var hs HighScore
		hs.Score = t.players[t.curPlayer-1].scoreMain
		copy(hs.Name[:], t.nameBuf)
		copy(t.highScores[s.place+1:], t.highScores[s.place:3])
		t.highScores[s.place] = hs
		t.curPlayer++
		t.flushHighScores = true
		t.script.task = &taskRecordHighScoresFinish{delay: 60}
	}
	return true
}

type taskRecordHighScoresFinish struct{ delay uint16 }

func (s *taskRecordHighScoresFinish) run(t *Table) bool {
	s.delay--
	if s.delay == 30 {
		t.dm.clear()
	}
	if s.delay == 2 {
		t.script.task = taskRecordHighScores{}
	}
	return true
}

func (t *Table) scriptFrame() {
	task := t.script.task
	t.script.task = nil
	if task.run(t) {
		if t.script.task == nil {
			t.script.task = task
		}
	} else {
		if t.script.task == nil {
			t.script.task = task
		}
		t.runUop(t.script.pos)
	}
}

func (t *Table) startScript(bind ScriptBind) {
	t.startScriptRaw(t.assets.ScriptBinds[bind])
}

func (t *Table) startScriptRaw(pos ScriptPos) {
	t.dm.stopBlink()
	t.script.needDefaultBg = true
	t.script.timerIdle = 0
	t.runUop(pos)
}

func (t *Table) scriptScore(which ScriptScore) Bcd {
	switch which.Kind {
	case ScoreBonus:
		return t.scoreBonus
	case ScoreModeHit:
		return t.scoreModeHit
	case ScoreModeRamp:
		return t.scoreModeRamp
	case ScoreJackpot:
		return t.scoreJackpot
	case ScoreHighScore:
		return t.highScores[which.Index].Score
	case ScoreConst:
		return which.Const
	case ScoreCycloneIncr:
		return BcdFromASCII([]byte("100000"))
	case ScoreNumCyclone:
		return t.bcdNumCyclone
	case ScoreCycloneBonus:
		return t.scoreCycloneBonus
	case ScorePartyTunnelSkillShot:
		return t.party.scoreTunnelSkillShot
	case ScorePartyCycloneSkillShot:
		return t.party.scoreCycloneSkillShot
	case ScoreShowRaisingMillions:
		return t.scoreRaisingMillions
	case ScoreShowSpinWheel:
		return t.showWheelScore()
	case ScoreShowCashpot:
		return t.show.scoreCashpot
	case ScoreShowCashpotX5:
		var score Bcd
		for i := 0; i < 5; i++ {
			score = score.Add(t.show.scoreCashpot)
		}
		return score
	case ScoreStonesSkillShot:
		return t.stones.scoreSkillShot
	case ScoreStonesMillionPlus:
		return t.stones.scoreMillionPlus
	case ScoreStonesVault:
		return t.stones.scoreVault
	case ScoreStonesWell:
		return t.stones.scoreWell
	case ScoreStonesTowerBonus:
		return t.stones.scoreTowerBonus
	}
	return BcdZero
}

func (t *Table) delay(n uint16) {
	t.script.task = &taskDelay{time: n}
}

func (t *Table) runUop(pos ScriptPos) {
	t.script.pos = pos + 1
	uop := t.assets.Scripts[pos]
	switch uop.Kind {
	case UopEnd:
		t.dm.stopBlink()
		t.script.task = taskDefault{}
		t.script.pos = pos
	case UopNoop:
		t.delay(1)
	case UopDelay:
		t.delay(uop.N)
	case UopDelayIfMultiplayer:
		if t.totalPlayers != 1 {
			t.delay(uop.N)
		} else {
			t.delay(2)
		}
	case UopHalt:
		t.script.task = taskHalt{}
	case UopJump:
		t.runUop(uop.Target)
	case UopJccScoreZero:
		if t.scriptScore(uop.Score).IsZero() {
			t.runUop(uop.Target)
		} else {
			t.runUop(t.script.pos)
		}
	case UopJccNoBonusMult:
		if t.bonusMultLate == 1 {
			t.runUop(uop.Target)
		} else {
			t.delay(1)
		}
	case UopRepeatSetup:
		t.delay(1)
		t.script.repeatCnt = uop.N
	case UopRepeatLoop:
		t.delay(1)
		t.script.repeatCnt--
		if t.script.repeatCnt == 0 {
			t.script.repeatCnt = uop.N
		} else {
			t.runUop(uop.Target)
		}
	case UopFinalScoreSetup:
		t.delay(1)
		t.curPlayer = 1
	case UopFinalScoreLoop:
		t.delay(1)
		t.dmPuts(FontH5, DmCoord{X: 0, Y: 1}, []byte("PLAYER \x96"))
		t.dmPutBcd(FontH13, DmCoord{X: 64, Y: 1}, t.players[t.curPlayer-1].scoreMain, false)
		if t.curPlayer != t.totalPlayers {
			t.curPlayer++
			t.script.pos = uop.Target
		}
	case UopConfirmQuit:
		t.script.task = taskConfirmQuit{}

	case UopWaitWhileGameStarting:
		t.script.task = taskWaitWhileGameStarting{}
	case UopExtraBall:
		t.delay(1)
		t.extraBall()
	case UopSetupPartyOn:
		t.delay(1)
		t.specialPlungerEvent = true
	case UopSetupShootAgain:
		t.delay(1)
	case UopSetSpecialPlungerEvent:
		t.script.task = taskHalt{}
		t.specialPlungerEvent = true
	case UopIssueBall:
		t.addTask(taskIssueBall)
		t.runUop(t.script.pos)

	case UopMultiplyBonus:
		t.delay(1)
		bonus := t.scoreBonus
		for i := uint8(1); i < t.bonusMultLate; i++ {
			t.scoreBonus = t.scoreBonus.Add(bonus)
		}
	case UopAccBonusModeHit:
		t.delay(1)
		t.scoreBonus = t.scoreBonus.Add(t.scoreModeHit)
	case UopAccBonusModeRamp:
		t.delay(1)
		t.scoreBonus = t.scoreBonus.Add(t.scoreModeRamp)
	case UopAccBonusCyclones:
		t.delay(1)
		t.scoreCycloneBonus = BcdZero
		incr := BcdFromASCII([]byte("100000"))
		for i := uint16(0); i < t.numCyclone; i++ {
			t.scoreCycloneBonus = t.scoreCycloneBonus.Add(incr)
		}
		t.scoreBonus = t.scoreBonus.Add(t.scoreCycloneBonus)
	case UopAccBonus:
		t.script.task = newTaskAccBonus(t.scoreBonus)
	case UopCheckTopScore:
		if !t.gotTopScore && t.highScores[0].Score.Less(t.scoreMain) {
			t.gotTopScore = true
			t.runUop(t.assets.ScriptBinds[ScriptTopScoreInterball])
		} else {
			t.runUop(t.script.pos)
		}
	case UopNextBallIfMatched:
		if t.matchDigit >= 0 {
			t.saveCurPlayer()
			if t.extraBalls != 0 {
				t.extraBalls--
				t.runUop(t.assets.ScriptBinds[ScriptShootAgain])
			} else if t.curPlayer != t.totalPlayers {
				t.curPlayer++
				t.runUop(t.assets.ScriptBinds[ScriptCheckMatch])
			} else {
				t.runUop(t.assets.ScriptBinds[ScriptPostMatch])
			}
		} else {
			t.runUop(t.script.pos)
		}
	case UopNextBall:
		if !t.holdBonus {
			t.scoreBonus = BcdZero
		}
		t.saveCurPlayer()
		switch {
		case t.extraBalls != 0:
			t.extraBalls--
			t.runUop(t.assets.ScriptBinds[ScriptShootAgain])
		case t.curPlayer != t.totalPlayers:
			t.curPlayer++
			t.addTask(taskIssueBall)
			t.runUop(t.script.pos)
		case t.curBall != t.totalBalls:
			t.curBall++
			t.curPlayer = 1
			t.addTask(taskIssueBall)
			t.runUop(t.script.pos)
		default:
			t.runUop(t.assets.ScriptBinds[ScriptMatch])
		}

	case UopMatch:
		t.curPlayer = 1
		t.playJingleBindSilence(JingleMatchStart)
		for i := range t.players {
			digit := t.players[i].scoreMain[10]
			t.dmPuts(FontH5, DmCoord{X: int16(i) * 16, Y: 0}, []byte{'0' + digit})
		}
		digit := uint8(t.rng.Intn(10))
		switch t.assets.Table {
		case Table1:
			frames := uint16(9)
			if t.hifps {
				frames = 11
			}
			t.script.task = &taskMatch{count: 22, frames: frames, framesReload: frames, digit: digit}
		case Table2:
			frames := uint16(11)
			if t.hifps {
				frames = 13
			}
			t.script.task = &taskMatch{count: 18, frames: frames, framesReload: frames, digit: digit}
		case Table3:
			t.script.task = &taskMatch{count: 15, frames: 14, framesReload: 14, digit: digit}
		case Table4:
			t.script.task = &taskMatchStones{frames: t.matchTiming[0], digit: digit}
		}
	case UopCheckMatch:
		found := false
		for i := range t.players {
			if t.matchDigit == int(t.players[i].scoreMain[10]) {
				t.curPlayer = uint8(i) + 1
				t.runUop(t.assets.ScriptBinds[ScriptShootAgain])
				found = true
				break
			}
		}
		if !found {
			t.runUop(t.assets.ScriptBinds[ScriptPostMatch])
		}
	case UopRecordHighScores:
		t.curPlayer = 1
		t.script.task = taskRecordHighScores{}
	case UopGameOver:
		t.addTask(taskGameOver)
		// emulation of bug in the DOS original
		t.script.task = taskDefault{}

	case UopDmState:
		t.delay(1)
		t.dm.setState(uop.State)
	case UopDmBlink:
		t.delay(1)
		t.dm.startBlink(uop.N)
	case UopDmStopBlink:
		t.delay(1)
		t.dm.stopBlink()
	case UopDmClear:
		t.script.task = taskDmClear{}
	case UopDmWipeDown:
		t.script.task = &taskDmWipeDown{}
	case UopDmWipeRight:
		t.script.task = &taskDmWipeRight{}
	case UopDmWipeDownStriped:
		t.script.task = &taskDmWipeDownStriped{}
	case UopDmAnim:
		t.script.task = newTaskDmAnim(t, uop.Anim)
	case UopDmPuts:
		t.delay(1)
		t.dmPuts(uop.Font, uop.Pos, t.assets.Msgs[uop.Msg])
	case UopDmPrintScore:
		t.delay(1)
		if uop.Score.Kind == ScoreShowSpinWheel {
			t.dm.clear()
		}
		t.dmPutBcd(uop.Font, uop.Pos, t.scriptScore(uop.Score), uop.Center)
	case UopDmMsgScrollUp:
		t.script.task = newTaskDmMsgScroll(uop.Msg, uop.ScrollTarget, false)
	case UopDmMsgScrollDown:
		t.script.task = newTaskDmMsgScroll(uop.Msg, uop.ScrollTarget, true)
	case UopDmLongMsg:
		t.script.task = &taskDmLongMsg{msg: uop.Msg}
	case UopDmTowerHunt:
		t.script.task = newTaskDmTowerHunt(uop.N)

	case UopSetJingleTimeout:
		t.delay(1)
	case UopWaitJingle, UopWaitJingleTimeout:
		t.script.task = taskWaitJingle{}
	case UopPlayJingle:
		t.delay(1)
		t.sequencer.PlayJingle(uop.Jingle, true, NoMusicOverride)
	case UopPlaySfx:
		t.delay(1)
		t.player.PlaySfx(uop.Sfx, uop.Volume)
	case UopSetMusic:
		t.delay(1)
		t.sequencer.SetMusic(uop.Music)

	case UopModeContinue:
		t.pendingMode = false
		t.modeTimeoutFrames = 1
		t.script.task = taskMode{score: uop.Score}
	case UopModeStart:
		t.pendingMode = false
		t.modeTimeoutSecs = uop.Time + 1
		t.modeTimeoutFrames = 1
		t.script.task = taskMode{score: uop.Score}
	case UopModeStartOrContinue:
		if t.pendingMode {
			t.pendingMode = false
			t.modeTimeoutSecs = uop.Time + 1
		}
		t.modeTimeoutFrames = 1
		t.script.task = taskMode{score: uop.Score}

	case UopPartySecretDrop:
		t.delay(1)
		t.party.secretDropRelease = true
	case UopPartyArcadeReady:
		t.delay(1)
		t.party.arcadeReady = true

	case UopSpeedCheckTurboCont:
		t.delay(1)
		if t.timerStop {
			t.timerStop = false
			t.runUop(t.assets.ScriptBinds[ScriptSpeedModeRampContinue])
		}
	case UopSpeedClearFlagMode:
		t.delay(1)
		t.inMode = false
		t.sequencer.ResetPriority()
	case UopSpeedStartTurbo:
		t.lightSet(LightSpeedPitStopGoal, 0, false)
		t.speedDoTurbo()
		t.runUop(t.assets.ScriptBinds[ScriptSpeedModeRamp])

	case UopShowBlinkMoneyMania:
		t.delay(1)
		t.lightBlink(LightShowMoneyMania, 0, 3, 0)
	case UopShowEndMoneyMania:
		t.delay(1)
		t.lightSet(LightShowMoneyMania, 0, false)
		t.inMode = false
		t.sequencer.ResetPriority()
	case UopShowSpinWheelEnd:
		t.delay(1)
		t.addTask(taskShowSpinWheelEnd)
	case UopStonesTowerEject:
		t.delay(1)
		t.addTask(taskStonesTowerEject)
	case UopStonesVaultEject:
		t.delay(1)
		t.addTask(taskStonesVaultEject)
		t.stones.vaultHold = false
	case UopStonesWellEject:
		t.delay(1)
		t.addTask(taskStonesWellEject)
	case UopStonesTiltEject:
		t.delay(1)
		if t.stones.inVault {
			t.addTask(taskStonesVaultEject)
		} else if t.stones.inTower {
			t.addTask(taskStonesTowerEject)
		}
	case UopStonesSetFlagMode:
		t.delay(1)
		t.inMode = true
	case UopStonesSetFlagModeRamp:
		t.delay(1)
		t.inModeRamp = true
	case UopStonesSetFlagModeHit:
		t.delay(1)
		t.inModeHit = true
	case UopStonesClearFlagMode:
		t.delay(1)
		t.inMode = false
		t.sequencer.ResetPriority()
	case UopStonesClearFlagModeRamp:
		t.delay(1)
		t.inModeRamp = false
	case UopStonesClearFlagModeHit:
		t.delay(1)
		t.inModeHit = false
	case UopStonesEndMode:
		t.delay(1)
		t.stonesEndMode()
	case UopStonesEndGrimReaper:
		t.delay(1)
		t.lightSet(LightStonesGhost, 7, false)
	}
}

func (t *Table) checkTopScore() {
	if t.inPlunger || t.inMode || t.gotTopScore {
		return
	}
	if t.highScores[0].Score.Less(t.scoreMain) {
		t.gotTopScore = true
		t.startScript(ScriptTopScoreIngame)
	}
}

func (t *Table) resetIdle() {
	t.script.timerIdle = 0
	if t.script.inIdle {
		t.startScript(ScriptMain)
		t.script.inIdle = false
	}
}
