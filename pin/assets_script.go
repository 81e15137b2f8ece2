package pin

import "fmt"

// ScriptPos is an abstract handle into the linearized micro-op stream.
type ScriptPos int

const NoScript ScriptPos = -1

type MsgID int
type AnimID int
type FrameID int

type DmCoord struct {
	X, Y int16
}

type UopKind int

const (
	UopEnd UopKind = iota

	UopNoop
	UopDelay
	UopDelayIfMultiplayer
	UopHalt
	UopJump
	UopJccScoreZero
	UopJccNoBonusMult
	UopRepeatSetup
	UopRepeatLoop
	UopFinalScoreSetup
	UopFinalScoreLoop
	UopConfirmQuit

	UopWaitWhileGameStarting
	UopExtraBall
	UopSetupPartyOn
	UopSetupShootAgain
	UopSetSpecialPlungerEvent
	UopIssueBall

	UopMultiplyBonus
	UopAccBonusCyclones
	UopAccBonusModeHit
	UopAccBonusModeRamp
	UopAccBonus
	UopCheckTopScore
	UopNextBallIfMatched
	UopNextBall

	UopMatch
	UopCheckMatch
	UopRecordHighScores
	UopGameOver

	UopPlaySfx
	UopPlayJingle
	UopSetMusic
	UopSetJingleTimeout
	UopWaitJingle
	UopWaitJingleTimeout

	UopModeContinue
	UopModeStart
	UopModeStartOrContinue

	UopDmBlink
	UopDmStopBlink
	UopDmState
	UopDmClear
	UopDmWipeDown
	UopDmWipeRight
	UopDmWipeDownStriped
	UopDmAnim
	UopDmPuts
	UopDmPrintScore
	uopDmBigScore // folded into UopDmPrintScore during decode
	UopDmMsgScrollUp
	UopDmMsgScrollDown
	UopDmLongMsg
	UopDmTowerHunt

	UopPartyArcadeReady
	UopPartySecretDrop

	UopSpeedStartTurbo
	UopSpeedCheckTurboCont
	UopSpeedClearFlagMode

	UopShowSpinWheelEnd
	UopShowBlinkMoneyMania
	UopShowEndMoneyMania

	UopStonesTowerEject
	UopStonesVaultEject
	UopStonesWellEject
	UopStonesTiltEject
	UopStonesSetFlagMode
	UopStonesSetFlagModeRamp
	UopStonesSetFlagModeHit
	UopStonesClearFlagMode
	UopStonesClearFlagModeRamp
	UopStonesClearFlagModeHit
	UopStonesEndMode
	UopStonesEndGrimReaper
)

type ScriptScoreKind int

const (
	ScoreBonus ScriptScoreKind = iota
	ScoreModeHit
	ScoreModeRamp
	ScoreJackpot
	ScoreHighScore
	ScoreConst
	ScoreCycloneIncr
	ScoreNumCyclone
	ScoreCycloneBonus
	ScorePartyTunnelSkillShot
	ScorePartyCycloneSkillShot
	ScoreShowRaisingMillions
	ScoreShowSpinWheel
	ScoreShowCashpot
	ScoreShowCashpotX5
	ScoreStonesSkillShot
	ScoreStonesMillionPlus
	ScoreStonesVault
	ScoreStonesWell
	ScoreStonesTowerBonus
)

type ScriptScore struct {
	Kind  ScriptScoreKind
	Index int // high score place for ScoreHighScore
	Const Bcd // literal for ScoreConst
}

// Uop is one decoded micro-op. Only the fields its kind names are meaningful.
type Uop struct {
	Kind         UopKind
	N            uint16 // delay frames, blink period, repeat count, tower target
	Target       ScriptPos
	Score        ScriptScore
	Font         DmFont
	Center       bool
	Pos          DmCoord
	Msg          MsgID
	ScrollTarget int16
	Anim         AnimID
	Sfx          Sfx
	Volume       uint8
	Jingle       Jingle
	Music        uint8
	Time         uint8 // mode timeout in seconds
	State        bool
}

type ScriptBind int

const (
	ScriptInit ScriptBind = iota
	ScriptAttract
	ScriptGameStart
	ScriptGameStartPlayers
	ScriptPartyOn
	ScriptShootAgain
	ScriptEnter
	ScriptMain
	ScriptGameIdle
	ScriptTilt
	ScriptTopScoreInterball
	ScriptTopScoreIngame
	ScriptMatch
	ScriptCheckMatch
	ScriptPostMatch
	ScriptGameOver
	ScriptConfirmQuit

	ScriptPartyJackpot
	ScriptPartyJackpotModeHit
	ScriptPartyJackpotModeRamp

	ScriptSpeedModeHit
	ScriptSpeedModeRampContinue
	ScriptSpeedModeRamp

	ScriptShowHintLoopRight
	ScriptShowHintLoopLeft
	ScriptShowMbX2
	ScriptShowMbX3
	ScriptShowMbX4
	ScriptShowMbX6
	ScriptShowMbX8
	ScriptShowMbX10
	ScriptShowSpinWheelBlink
	ScriptShowSpinWheelClear
	ScriptShowSpinWheelClearHalt
	ScriptShowSpinWheelScore

	ScriptStonesModeHitContinue
	ScriptStonesModeRampContinue
	numScriptBinds
)

type CheatEffect int

const (
	CheatNone CheatEffect = iota
	CheatTilt
	CheatSlowdown
	CheatBalls
	CheatReset
)

type Cheat struct {
	Keys   []byte
	Script ScriptPos
	Effect CheatEffect
}

type EffectBind int

const (
	EffectDrained EffectBind = iota

	EffectPartyArcadeSideExtraBall
	EffectPartyArcade5M
	EffectPartyArcade1M
	EffectPartyArcade500k
	EffectPartyArcadeNoScore
	EffectPartyArcade
	EffectPartyPartyP
	EffectPartyPartyA
	EffectPartyPartyR
	EffectPartyPartyT
	EffectPartyPartyY
	EffectPartyTunnel1M
	EffectPartyTunnel3M
	EffectPartyTunnel5M
	EffectPartyOrbit250k
	EffectPartyOrbit500k
	EffectPartyOrbit750k
	EffectPartyDemon250k
	EffectPartyDemon5M
	EffectPartyDemonExtraBall
	EffectPartyDuckAll
	EffectPartySnackNope
	EffectPartySnack0
	EffectPartySnack1
	EffectPartySnack2
	EffectPartyOrbitMb2
	EffectPartyOrbitMb4
	EffectPartyOrbitMb6
	EffectPartyOrbitMb8
	EffectPartyOrbitHoldBonus
	EffectPartyOrbitDoubleBonus
	EffectPartySideExtraBall
	EffectPartyOrbitCrazy
	EffectPartyArcadeCrazy
	EffectPartyOrbitMad0
	EffectPartyOrbitMad1
	EffectPartyOrbitMad2
	EffectPartySkyride0
	EffectPartySkyride1
	EffectPartySkyride2
	EffectPartySkyrideLitMb
	EffectPartyCyclone
	EffectPartyCycloneX5
	EffectPartySecret
	EffectPartyCycloneSkillShot
	EffectPartyTunnelSkillShot
	EffectPartyRollInner
	EffectPartyHappyHour
	EffectPartyHappyHourEnd
	EffectPartyMegaLaugh
	EffectPartyMegaLaughEnd

	EffectSpeedTurboRamp
	EffectSpeedMilesToJump
	EffectSpeedMilesToFirstOffroad
	EffectSpeedMilesToExtraBall
	EffectSpeedMilesToOffroad
	EffectSpeedSuperJackpot
	EffectSpeedJackpot
	EffectSpeedSuperJackpotGoal
	EffectSpeedHoldBonus
	EffectSpeedExtraGear
	EffectSpeedExtraBall
	EffectSpeedMilesExtraBall
	EffectSpeedJump
	EffectSpeedMilesJump
	EffectSpeedCar0
	EffectSpeedCar1
	EffectSpeedCar2
	EffectSpeedCar3
	EffectSpeedCar4
	EffectSpeedGear
	EffectSpeedPedalMetal
	EffectSpeedOvertake
	EffectSpeedOvertakeFinal
	EffectSpeedTurbo
	EffectSpeedLaneOuter
	EffectSpeedLaneInner
	EffectSpeedPit
	EffectSpeedPitAll
	EffectSpeedOffroadExit
	EffectSpeedRampOffroad
	EffectSpeedMillion
	EffectSpeedMiles0
	EffectSpeedMiles1
	EffectSpeedMiles2
	EffectSpeedMiles3
	EffectSpeedMiles4
	EffectSpeedMiles5
	EffectSpeedMiles6
	EffectSpeedMiles7
	EffectSpeedMiles8
	EffectSpeedMiles9
	EffectSpeedMiles10
	EffectSpeedMiles11
	EffectSpeedMb2
	EffectSpeedMb3
	EffectSpeedMb4
	EffectSpeedMb5
	EffectSpeedMb6
	EffectSpeedMb7
	EffectSpeedMb8
	EffectSpeedMb9

	EffectShowCashpotLock
	EffectShowBillion
	EffectShowLaneOuter
	EffectShowLaneInner
	EffectShowRampRight
	EffectShowRampTop
	EffectShowRampLoop
	EffectShowTopEntry
	EffectShowSkillsEntry
	EffectShowRampSkills
	EffectShowOrbitLeft
	EffectShowOrbitRight
	EffectShowLoopEntry
	EffectShowPrizeTv
	EffectShowPrizeTrip
	EffectShowPrizeCar
	EffectShowPrizeBoat
	EffectShowPrizeHouse
	EffectShowPrizePlane
	EffectShowModeHit
	EffectShowModeRamp
	EffectShowJackpot
	EffectShowSuperJackpot
	EffectShowExtraBall
	EffectShowRaisingMillions
	EffectShowSkillsToMoneyMania
	EffectShowSkillsToExtraBall
	EffectShowCashpot
	EffectShowCashpotX5
	EffectShowDropCenter
	EffectShowDropLeft
	EffectShowDollar
	EffectShowDollarBoth
	EffectShowRampTopTwice
	EffectShowLitTv
	EffectShowLitTrip
	EffectShowLitCar
	EffectShowLitBoat
	EffectShowLitHouse
	EffectShowLitPlane

	EffectStonesLock
	EffectStonesGhostDemon
	EffectStonesStonesBonesAllRedundant
	EffectStonesGhostLit0
	EffectStonesGhostLit1
	EffectStonesGhostLit2
	EffectStonesGhostLit3
	EffectStonesGhostLit4
	EffectStonesGhostLit5
	EffectStonesGhostLit6
	EffectStonesGhostLit7
	EffectStonesGhostExtraBall
	EffectStonesTowerHunt0
	EffectStonesTowerHunt1
	EffectStonesTowerHunt2
	EffectStonesGhost5M
	EffectStonesGhost10M
	EffectStonesGhost15M
	EffectStonesLoopCombo
	EffectStonesScreamsExtraBall
	EffectStonesKickback
	EffectStonesSkillShot
	EffectStonesTowerOpen
	EffectStonesGhostGhostHunter
	EffectStonesGhostGrimReaper
	EffectStonesGhostTowerHunt
	EffectStonesTopMillion
	EffectStonesTowerMillion
	EffectStonesDemon5M
	EffectStonesTower5M
	EffectStonesTowerExtraBall
	EffectStonesDemon10M
	EffectStonesDemon20M
	EffectStonesTowerHoldBonus
	EffectStonesTowerDoubleBonus
	EffectStonesTowerJackpot
	EffectStonesTowerSuperJackpot
	EffectStonesMillionPlus
	EffectStonesVault
	EffectStonesWell
	EffectStonesTowerBonus
	EffectStonesWellMb2
	EffectStonesWellMb4
	EffectStonesWellMb6
	EffectStonesWellMb8
	EffectStonesWellMb10
	EffectStonesScreamsToExtraBall
	EffectStonesScreamsTo5M
	numEffectBinds
)

// Effect couples a sound (jingle, or silent with a bare priority) with score
// deltas and an optional script.
type Effect struct {
	Jingle         *Jingle
	SilentPriority uint8
	ScoreMain      Bcd
	ScoreBonus     Bcd
	Script         ScriptPos
}

// DmAnim is a dot-matrix animation: frame references with dwell counts.
type DmAnim struct {
	Repeats   uint16
	Restart   int
	NumFrames int
	Frames    []struct {
		Frame FrameID
		Dwell uint16
	}
}

// DmAnimFrame is a list of pixel updates.
type DmAnimFrame []struct {
	Pos   DmCoord
	State bool
}

// Variable-substitution codes embedded in messages.
const (
	charHighScores       = 0x80
	charBonusMultL       = 0x90
	charBonusMultR       = 0x92
	charCurPlayer        = 0x94
	charCurBall          = 0x95
	charTotalPlayers     = 0x96
	charNumCyclones      = 0x98
	charNumCyclonesTgt   = 0x9c
	charNumCyclonesTgtL  = 0xa0
)

func dmAddrToXY(addr uint16, plane uint8) DmCoord {
	x := int16(addr % 0x54)
	y := int16(addr / 0x54)
	if y&1 != 0 {
		y++
		x -= 0x54
	}
	return DmCoord{X: x*2 + int16(plane), Y: y/2 - 1}
}

type msgTable struct {
	byOff map[uint16]MsgID
	msgs  [][]byte
}

func extractMsg(exe *MzExe, table TableID, off uint16, isLong bool, msgs *msgTable) MsgID {
	if id, ok := msgs.byOff[off]; ok {
		return id
	}
	var msg []byte
	pos := off
	highScoreOff := uint16(0x16)
	if table == Table4 {
		highScoreOff = 0xa6
	}
	for {
		b := exe.DataByte(pos)
		if (b == 0 && !isLong) || (b == 0xff && isLong) {
			break
		}
		var chr byte
		if isLong {
			switch b {
			case 1:
				chr = '_'
			case '^':
				chr = '-'
			default:
				chr = b
			}
		} else {
			switch {
			case b == 0x2a:
				chr = '_'
			case b >= 0x37 && b <= 0x40:
				chr = b - 7
			case b == 0x20 || b == 0x21 || b == 0x2d || (b >= 0x41 && b <= 0x5a):
				chr = b
			case b == 0x5b:
				chr = '?'
			case b == 0x5c:
				chr = '('
			case b == 0x5d:
				chr = ')'
			case b == 0x5e:
				chr = '-'
			default:
				assert(false, fmt.Sprintf("message char %02x at %04x", b, pos))
			}
		}
		if pos >= highScoreOff && pos < highScoreOff+0x40 {
			idx := (pos - highScoreOff) / 0x10
			cidx := (pos - highScoreOff) % 0x10
			assert(cidx >= 12 && cidx < 15, "message high score slot")
			chr = charHighScores + byte(idx*3+cidx-12)
		}
		if sub, ok := msgSubstitutions[table][pos]; ok {
			chr = sub
		}
		msg = append(msg, chr)
		pos++
	}
	if table == Table3 && off == 0x128f {
		msg = msg[:len(msg)-2]
		msg = append(msg, charNumCyclonesTgtL, charNumCyclonesTgtL+1, charNumCyclonesTgtL+2)
	}
	id := MsgID(len(msgs.msgs))
	msgs.msgs = append(msgs.msgs, msg)
	msgs.byOff[off] = id
	return id
}

// Per-table (offset -> substitution code) rewrites for embedded variables.
var msgSubstitutions = [NumTables]map[uint16]byte{
	Table1: {
		0x1cf9: charCurPlayer, 0x1d91: charCurPlayer, 0x2249: charCurPlayer, 0x2288: charCurPlayer,
		0x2253: charCurBall, 0x228f: charCurBall,
		0x1d9b: charTotalPlayers,
		0x1db9: charBonusMultL,
		0x2237: charBonusMultR, 0x2238: charBonusMultR + 1,
	},
	Table2: {
		0x1d92: charCurPlayer, 0x1da9: charCurPlayer, 0x2058: charCurPlayer, 0x2097: charCurPlayer,
		0x2062: charCurBall, 0x209e: charCurBall,
		0x1db3: charTotalPlayers,
		0x1dd1: charBonusMultL,
		0x2046: charBonusMultR, 0x2047: charBonusMultR + 1,
		0x19b5: charNumCyclones, 0x19b6: charNumCyclones + 1, 0x19b7: charNumCyclones + 2,
		0x1924: charNumCyclonesTgt, 0x1925: charNumCyclonesTgt + 1, 0x1926: charNumCyclonesTgt + 2,
		0x1937: charNumCyclonesTgt, 0x1938: charNumCyclonesTgt + 1, 0x1939: charNumCyclonesTgt + 2,
	},
	Table3: {
		0x1a7c: charCurPlayer, 0x1a93: charCurPlayer, 0x1d09: charCurPlayer, 0x1d48: charCurPlayer,
		0x1d13: charCurBall, 0x1d4f: charCurBall,
		0x1ab2: charTotalPlayers,
		0x1ad0: charBonusMultL, 0x1ad1: charBonusMultL + 1,
		0x1cf7: charBonusMultR, 0x1cf8: charBonusMultR + 1,
		0x1aa8: charCurPlayer,
	},
	Table4: {
		0x2408: charCurPlayer, 0x1716: charCurPlayer, 0x26b4: charCurPlayer, 0x26f3: charCurPlayer,
		0x26be: charCurBall, 0x26fa: charCurBall,
		0x2412: charTotalPlayers,
		0x2424: charBonusMultL, 0x2425: charBonusMultL + 1,
		0x26a2: charBonusMultR, 0x26a3: charBonusMultR + 1,
		0x1e40: charNumCyclones, 0x1e41: charNumCyclones + 1, 0x1e42: charNumCyclones + 2,
		0x1eb0: charNumCyclonesTgt, 0x1eb1: charNumCyclonesTgt + 1, 0x1eb2: charNumCyclonesTgt + 2,
		0x1ec5: charNumCyclonesTgt, 0x1ec6: charNumCyclonesTgt + 1, 0x1ec7: charNumCyclonesTgt + 2,
	},
}

type animTable struct {
	byOff  map[uint16]AnimID
	fByOff map[uint16]FrameID
	anims  []DmAnim
	frames []DmAnimFrame
}

func extractDmAnim(exe *MzExe, table TableID, off uint16, anims *animTable) AnimID {
	if id, ok := anims.byOff[off]; ok {
		return id
	}
	seg := [NumTables]uint16{0x2056, 0x1f6f, 0x418c, 0x1d8f}[table]
	repeats := exe.Word(seg, off-4)
	numFrames := exe.Word(seg, off-2) / 4
	restart := 0
	realNumFrames := numFrames
	if repeats != 1 {
		restart = int(exe.Word(seg, off-6) / 4)
		realNumFrames = numFrames + 1
	}
	anim := DmAnim{
		Repeats:   repeats,
		Restart:   restart,
		NumFrames: int(numFrames),
	}
	for i := uint16(0); i < realNumFrames; i++ {
		foff := exe.Word(seg, off+i*4)
		dwell := exe.Word(seg, off+i*4+2)
		fid, ok := anims.fByOff[foff]
		if !ok {
			var frame DmAnimFrame
			fpos := foff
			for plane := uint8(0); plane < 2; plane++ {
				dpos := uint16(0xa7)
				cnt := exe.Word(seg, fpos)
				fpos += 2
				for j := uint16(0); j < cnt; j++ {
					b := exe.Byte(seg, fpos)
					fpos++
					dpos += uint16(b >> 1)
					if b != 0xfe {
						frame = append(frame, struct {
							Pos   DmCoord
							State bool
						}{dmAddrToXY(dpos, plane), b&1 != 0})
					}
				}
			}
			fid = FrameID(len(anims.frames))
			anims.frames = append(anims.frames, frame)
			anims.fByOff[foff] = fid
		}
		anim.Frames = append(anim.Frames, struct {
			Frame FrameID
			Dwell uint16
		}{fid, dwell})
	}
	id := AnimID(len(anims.anims))
	anims.anims = append(anims.anims, anim)
	anims.byOff[off] = id
	return id
}
