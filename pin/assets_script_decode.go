package pin

import "fmt"

// uopXlat is one entry of the literal handler-pointer to opcode lookup.
type uopXlat struct {
	kind   UopKind
	font   DmFont
	center bool
}

func k(kind UopKind) uopXlat                  { return uopXlat{kind: kind} }
func kf(kind UopKind, font DmFont) uopXlat    { return uopXlat{kind: kind, font: font} }
func kfc(kind UopKind, font DmFont) uopXlat   { return uopXlat{kind: kind, font: font, center: true} }

var uopXlats = [NumTables]map[uint16]uopXlat{
	Table1: {
		0x0317: k(UopAccBonus),
		0x047f: k(UopRecordHighScores),
		0x0705: k(UopRepeatLoop),
		0x071c: k(UopRepeatSetup),
		0x0735: k(UopFinalScoreSetup),
		0x0762: k(UopFinalScoreLoop),
		0x07e5: k(UopMatch),
		0x0a19: k(UopCheckMatch),
		0x0a6b: k(UopNextBallIfMatched),
		0x0ab2: k(UopNextBall),
		0x0b43: k(UopIssueBall),
		0x0b5b: k(UopGameOver),
		0x2bf4: k(UopSetupPartyOn),
		0x2c14: k(UopSetupShootAgain),
		0x2c2f: k(UopSetSpecialPlungerEvent),
		0x2c43: k(UopNoop),
		0x2c52: k(UopPartyArcadeReady),
		0x2c66: k(UopWaitWhileGameStarting),
		0x2c88: k(UopJccScoreZero),
		0x2ccd: k(UopJccNoBonusMult),
		0x2cf1: k(UopJump),
		0x2cfd: k(UopMultiplyBonus),
		0x2d3f: k(UopAccBonusModeRamp),
		0x2d69: k(UopAccBonusModeHit),
		0x2d93: k(UopAccBonusCyclones),
		0x2f6a: k(UopPartySecretDrop),
		0x2f7f: k(UopExtraBall),
		0x44dd: k(UopDmAnim),
		0x4519: k(UopDmLongMsg),
		0x453a: k(uopDmBigScore),
		0x454a: k(UopDmBlink),
		0x45f1: kf(UopDmPrintScore, FontH11),
		0x461a: kf(UopDmPrintScore, FontH13),
		0x4643: kf(UopDmPrintScore, FontH8),
		0x466c: kfc(UopDmPrintScore, FontH8),
		0x469b: kfc(UopDmPrintScore, FontH13),
		0x46ca: kf(UopDmPrintScore, FontH5),
		0x46f3: k(UopPlaySfx),
		0x471e: k(UopSetMusic),
		0x4736: k(UopPlayJingle),
		0x4757: k(UopModeContinue),
		0x4780: k(UopModeStart),
		0x47bc: k(UopModeStartOrContinue),
		0x4892: k(UopDmMsgScrollUp),
		0x48af: k(UopDmMsgScrollDown),
		0x4b53: kf(UopDmPuts, FontH13),
		0x4b94: kf(UopDmPuts, FontH11),
		0x4bd5: kf(UopDmPuts, FontH8),
		0x4c16: kf(UopDmPuts, FontH5),
		0x4ceb: k(UopDmStopBlink),
		0x4cfd: k(UopDmState),
		0x4d1e: k(UopSetJingleTimeout),
		0x4d52: k(UopDelay),
		0x4d62: k(UopDelayIfMultiplayer),
		0x4d82: k(UopHalt),
		0x4d96: k(UopConfirmQuit),
		0x4dbd: k(UopDmClear),
		0x4df0: k(UopDmWipeDown),
		0x4e2d: k(UopDmWipeRight),
		0x4e6d: k(UopDmWipeDownStriped),
		0x5273: k(UopWaitJingle),
		0x527c: k(UopWaitJingleTimeout),
		0x5456: k(UopCheckTopScore),
	},
	Table2: {
		0x022f: k(UopAccBonus),
		0x0349: k(UopRecordHighScores),
		0x05d5: k(UopRepeatLoop),
		0x05ec: k(UopRepeatSetup),
		0x0602: k(UopSpeedStartTurbo),
		0x0618: k(UopSpeedCheckTurboCont),
		0x063d: k(UopFinalScoreSetup),
		0x066f: k(UopFinalScoreLoop),
		0x06f6: k(UopSpeedClearFlagMode),
		0x0711: k(UopMatch),
		0x093a: k(UopCheckMatch),
		0x0987: k(UopNextBallIfMatched),
		0x09cd: k(UopNextBall),
		0x0a7a: k(UopIssueBall),
		0x0a92: k(UopGameOver),
		0x2535: k(UopSetupPartyOn),
		0x2550: k(UopSetupShootAgain),
		0x2578: k(UopSetSpecialPlungerEvent),
		0x258c: k(UopNoop),
		0x259b: k(UopWaitWhileGameStarting),
		0x25bd: k(UopJccScoreZero),
		0x2602: k(UopMultiplyBonus),
		0x2644: k(UopJccNoBonusMult),
		0x2668: k(UopJump),
		0x2674: k(UopAccBonusModeHit),
		0x269e: k(UopAccBonusModeRamp),
		0x26c8: k(UopAccBonusCyclones),
		0x277e: k(UopExtraBall),
		0x3cdc: k(UopDmAnim),
		0x3d18: k(UopDmLongMsg),
		0x3d39: k(uopDmBigScore),
		0x3d49: k(UopDmBlink),
		0x3df0: kf(UopDmPrintScore, FontH11),
		0x3e19: kf(UopDmPrintScore, FontH13),
		0x3e42: kf(UopDmPrintScore, FontH8),
		0x3e6b: kfc(UopDmPrintScore, FontH8),
		0x3e9a: kfc(UopDmPrintScore, FontH13),
		0x3ec9: kf(UopDmPrintScore, FontH5),
		0x3ef2: k(UopPlaySfx),
		0x3f1d: k(UopSetMusic),
		0x3f35: k(UopPlayJingle),
		0x3f56: k(UopModeContinue),
		0x3f7f: k(UopModeStart),
		0x3fbb: k(UopModeStartOrContinue),
		0x4091: k(UopDmMsgScrollUp),
		0x40ae: k(UopDmMsgScrollDown),
		0x4352: kf(UopDmPuts, FontH13),
		0x4393: kf(UopDmPuts, FontH11),
		0x43d4: kf(UopDmPuts, FontH8),
		0x4415: kf(UopDmPuts, FontH5),
		0x44ea: k(UopDmStopBlink),
		0x44fc: k(UopDmState),
		0x451d: k(UopSetJingleTimeout),
		0x4551: k(UopDelay),
		0x4561: k(UopDelayIfMultiplayer),
		0x4581: k(UopHalt),
		0x4595: k(UopConfirmQuit),
		0x45bc: k(UopDmClear),
		0x45ef: k(UopDmWipeDown),
		0x462c: k(UopDmWipeRight),
		0x466c: k(UopDmWipeDownStriped),
		0x4a72: k(UopWaitJingle),
		0x4a7b: k(UopWaitJingleTimeout),
		0x4c50: k(UopCheckTopScore),
	},
	Table3: {
		0x01f8: k(UopAccBonus),
		0x0312: k(UopRecordHighScores),
		0x0598: k(UopRepeatLoop),
		0x05af: k(UopRepeatSetup),
		0x05c8: k(UopFinalScoreSetup),
		0x05f5: k(UopFinalScoreLoop),
		0x0678: k(UopShowSpinWheelEnd),
		0x068f: k(UopShowEndMoneyMania),
		0x06b6: k(UopShowBlinkMoneyMania),
		0x06d0: k(UopMatch),
		0x08c5: k(UopCheckMatch),
		0x0912: k(UopNextBallIfMatched),
		0x0959: k(UopNextBall),
		0x09fd: k(UopIssueBall),
		0x0a15: k(UopGameOver),
		0x1fe1: k(UopSetupPartyOn),
		0x1fff: k(UopSetupShootAgain),
		0x201a: k(UopSetSpecialPlungerEvent),
		0x202e: k(UopNoop),
		0x203d: k(UopWaitWhileGameStarting),
		0x205f: k(UopJccScoreZero),
		0x20a4: k(UopMultiplyBonus),
		0x20fc: k(UopJccNoBonusMult),
		0x2120: k(UopAccBonusModeHit),
		0x214a: k(UopJump),
		0x215b: k(UopAccBonusCyclones),
		0x2211: k(UopExtraBall),
		0x376b: k(UopDmAnim),
		0x37a7: k(UopDmLongMsg),
		0x37c8: k(uopDmBigScore),
		0x37d8: k(UopDmBlink),
		0x387f: kf(UopDmPrintScore, FontH11),
		0x38a8: kf(UopDmPrintScore, FontH13),
		0x38d1: kf(UopDmPrintScore, FontH8),
		0x38fa: kfc(UopDmPrintScore, FontH8),
		0x3929: kfc(UopDmPrintScore, FontH13),
		0x3958: kf(UopDmPrintScore, FontH5),
		0x3981: k(UopPlaySfx),
		0x39ac: k(UopSetMusic),
		0x39c4: k(UopPlayJingle),
		0x39e5: k(UopModeContinue),
		0x3a0e: k(UopModeStart),
		0x3a4a: k(UopModeStartOrContinue),
		0x3b20: k(UopDmMsgScrollUp),
		0x3b3d: k(UopDmMsgScrollDown),
		0x3de1: kf(UopDmPuts, FontH13),
		0x3e22: kf(UopDmPuts, FontH11),
		0x3e63: kf(UopDmPuts, FontH8),
		0x3ea4: kf(UopDmPuts, FontH5),
		0x3f79: k(UopDmStopBlink),
		0x3f8b: k(UopDmState),
		0x3fac: k(UopSetJingleTimeout),
		0x3fe0: k(UopDelay),
		0x3ff0: k(UopDelayIfMultiplayer),
		0x4010: k(UopHalt),
		0x4024: k(UopConfirmQuit),
		0x404b: k(UopDmClear),
		0x407e: k(UopDmWipeDown),
		0x40bb: k(UopDmWipeRight),
		0x40fb: k(UopDmWipeDownStriped),
		0x4501: k(UopWaitJingle),
		0x450a: k(UopWaitJingleTimeout),
		0x46df: k(UopCheckTopScore),
	},
	Table4: {
		0x02d0: k(UopAccBonus),
		0x03ea: k(UopRecordHighScores),
		0x0676: k(UopRepeatLoop),
		0x068d: k(UopRepeatSetup),
		0x06a6: k(UopFinalScoreSetup),
		0x06d8: k(UopFinalScoreLoop),
		0x075f: k(UopStonesClearFlagMode),
		0x077a: k(UopStonesSetFlagMode),
		0x078f: k(UopStonesSetFlagModeRamp),
		0x07a3: k(UopStonesClearFlagModeRamp),
		0x07b7: k(UopStonesSetFlagModeHit),
		0x07cb: k(UopStonesClearFlagModeHit),
		0x07df: k(UopMatch),
		0x0a04: k(UopCheckMatch),
		0x0a51: k(UopNextBallIfMatched),
		0x0a97: k(UopNextBall),
		0x0b44: k(UopIssueBall),
		0x0b5c: k(UopGameOver),
		0x1fd6: k(UopStonesEndMode),
		0x2106: k(UopStonesTowerEject),
		0x233b: k(UopStonesWellEject),
		0x28d8: k(UopStonesEndGrimReaper),
		0x28f3: k(UopStonesVaultEject),
		0x29b7: k(UopStonesTiltEject),
		0x3359: k(UopWaitWhileGameStarting),
		0x337b: k(UopJccScoreZero),
		0x33bf: k(UopJccNoBonusMult),
		0x33e3: k(UopJump),
		0x33ee: k(UopAccBonusModeHit),
		0x3418: k(UopAccBonusCyclones),
		0x355c: k(UopSetupPartyOn),
		0x3577: k(UopSetupShootAgain),
		0x3592: k(UopSetSpecialPlungerEvent),
		0x35a6: k(UopNoop),
		0x35ff: k(UopMultiplyBonus),
		0x3657: k(UopAccBonusModeRamp),
		0x3681: k(UopDmTowerHunt),
		0x3732: k(UopExtraBall),
		0x4c89: k(UopDmAnim),
		0x4cc5: k(UopDmLongMsg),
		0x4cf6: k(UopDmBlink),
		0x4d9d: kf(UopDmPrintScore, FontH11),
		0x4dc6: kf(UopDmPrintScore, FontH13),
		0x4def: kf(UopDmPrintScore, FontH8),
		0x4e18: kfc(UopDmPrintScore, FontH8),
		0x4e47: kfc(UopDmPrintScore, FontH13),
		0x4e76: kf(UopDmPrintScore, FontH5),
		0x4e9f: k(UopPlaySfx),
		0x4eca: k(UopSetMusic),
		0x4ee2: k(UopPlayJingle),
		0x4f03: k(UopModeContinue),
		0x4f2c: k(UopModeStart),
		0x4f68: k(UopModeStartOrContinue),
		0x503e: k(UopDmMsgScrollUp),
		0x505b: k(UopDmMsgScrollDown),
		0x52ff: kf(UopDmPuts, FontH13),
		0x5340: kf(UopDmPuts, FontH11),
		0x5381: kf(UopDmPuts, FontH8),
		0x53c2: kf(UopDmPuts, FontH5),
		0x5497: k(UopDmStopBlink),
		0x54a9: k(UopDmState),
		0x54ca: k(UopSetJingleTimeout),
		0x54fe: k(UopDelay),
		0x550e: k(UopDelay),
		0x552e: k(UopHalt),
		0x5542: k(UopConfirmQuit),
		0x5569: k(UopDmClear),
		0x559c: k(UopDmWipeDown),
		0x55d9: k(UopDmWipeRight),
		0x5619: k(UopDmWipeDownStriped),
		0x5a1f: k(UopWaitJingle),
		0x5a28: k(UopWaitJingleTimeout),
		0x5bfd: k(UopCheckTopScore),
	},
}

func xlatUopKind(table TableID, ptr uint16) uopXlat {
	if ptr == 0 {
		return k(UopEnd)
	}
	x, ok := uopXlats[table][ptr]
	assert(ok, fmt.Sprintf("uop %04x", ptr))
	return x
}

func xlatScore(exe *MzExe, table TableID, ptr uint16) ScriptScore {
	constScore := func() ScriptScore {
		bcd, err := exe.DataBcd(ptr)
		assert(err == nil, "score literal digits")
		return ScriptScore{Kind: ScoreConst, Const: bcd}
	}
	switch table {
	case Table1:
		switch ptr {
		case 0x16, 0x26, 0x36, 0x46:
			return ScriptScore{Kind: ScoreHighScore, Index: int(ptr-0x16) / 0x10}
		case 0xb0:
			return ScriptScore{Kind: ScoreNumCyclone}
		case 0xbc:
			return ScriptScore{Kind: ScoreCycloneBonus}
		case 0xdc:
			return ScriptScore{Kind: ScorePartyTunnelSkillShot}
		case 0xe8:
			return ScriptScore{Kind: ScorePartyCycloneSkillShot}
		case 0xf4:
			return ScriptScore{Kind: ScoreModeHit}
		case 0x100:
			return ScriptScore{Kind: ScoreModeRamp}
		case 0x10c:
			return ScriptScore{Kind: ScoreJackpot}
		case 0x130, 0x13c, 0x148, 0x154, 0x1d8, 0x1e4, 0x1f0:
			return constScore()
		case 0x160:
			return ScriptScore{Kind: ScoreCycloneIncr}
		case 0x3399:
			return ScriptScore{Kind: ScoreBonus}
		}
	case Table2:
		switch ptr {
		case 0x16, 0x26, 0x36, 0x46:
			return ScriptScore{Kind: ScoreHighScore, Index: int(ptr-0x16) / 0x10}
		case 0x58:
			return ScriptScore{Kind: ScoreNumCyclone}
		case 0x64:
			return ScriptScore{Kind: ScoreCycloneBonus}
		case 0x96a:
			return ScriptScore{Kind: ScoreJackpot}
		case 0x99a:
			return ScriptScore{Kind: ScoreCycloneIncr}
		case 0x1168:
			return constScore()
		case 0x1373:
			return ScriptScore{Kind: ScoreModeHit}
		case 0x1424:
			return ScriptScore{Kind: ScoreModeRamp}
		case 0x3361:
			return ScriptScore{Kind: ScoreBonus}
		}
	case Table3:
		switch ptr {
		case 0x16, 0x26, 0x36, 0x46:
			return ScriptScore{Kind: ScoreHighScore, Index: int(ptr-0x16) / 0x10}
		case 0x125:
			return ScriptScore{Kind: ScoreShowRaisingMillions}
		case 0x13d:
			return ScriptScore{Kind: ScoreShowSpinWheel}
		case 0x1df:
			return ScriptScore{Kind: ScoreCycloneIncr}
		case 0x3a5:
			return ScriptScore{Kind: ScoreNumCyclone}
		case 0x3b1:
			return ScriptScore{Kind: ScoreCycloneBonus}
		case 0x617:
			return ScriptScore{Kind: ScoreJackpot}
		case 0x6cb:
			return ScriptScore{Kind: ScoreShowCashpot}
		case 0x6e7:
			return ScriptScore{Kind: ScoreShowCashpotX5}
		case 0x15fc:
			// shared by the hit and ramp modes
			return ScriptScore{Kind: ScoreModeHit}
		case 0x2c2b:
			return ScriptScore{Kind: ScoreBonus}
		}
	case Table4:
		switch ptr {
		case 0xa6, 0xb6, 0xc6, 0xd6:
			return ScriptScore{Kind: ScoreHighScore, Index: int(ptr-0xa6) / 0x10}
		case 0x1de:
			return constScore()
		case 0x1ee:
			return ScriptScore{Kind: ScoreNumCyclone}
		case 0x1fa:
			return ScriptScore{Kind: ScoreCycloneBonus}
		case 0x212:
			return ScriptScore{Kind: ScoreStonesSkillShot}
		case 0x22f:
			return ScriptScore{Kind: ScoreStonesMillionPlus}
		case 0x275:
			return ScriptScore{Kind: ScoreJackpot}
		case 0x299:
			return ScriptScore{Kind: ScoreStonesTowerBonus}
		case 0x2bd:
			return ScriptScore{Kind: ScoreStonesVault}
		case 0x2e1:
			return ScriptScore{Kind: ScoreStonesWell}
		case 0x8a8:
			return ScriptScore{Kind: ScoreCycloneIncr}
		case 0x1d3b:
			return ScriptScore{Kind: ScoreModeHit}
		case 0x1e30:
			return ScriptScore{Kind: ScoreModeRamp}
		case 0x38b1:
			return ScriptScore{Kind: ScoreBonus}
		}
	}
	assert(false, fmt.Sprintf("score %04x", ptr))
	return ScriptScore{}
}

var scriptRanges = [NumTables][][2]uint16{
	Table1: {
		{0x13cd, 0x177b},
		{0x1790, 0x1812},
		{0x1822, 0x1c02},
		{0x439c, 0x4432},
	},
	Table2: {
		{0x1102, 0x1168},
		{0x117a, 0x1312},
		{0x137f, 0x13eb},
		{0x1461, 0x1569},
		{0x157e, 0x1608},
		{0x1618, 0x1924},
		{0x1b65, 0x1c03},
		{0x1d1b, 0x1d2d},
		{0x4433, 0x44c9},
	},
	Table3: {
		{0xe30, 0xede},
		{0xf16, 0xf20},
		{0xf66, 0xf70},
		{0xfb4, 0xfbe},
		{0x1001, 0x100b},
		{0x104c, 0x1056},
		{0x10ad, 0x128f},
		{0x12a3, 0x12d3},
		{0x12e7, 0x1397},
		{0x1738, 0x17ce},
		{0x1629, 0x1723},
		{0x17de, 0x1a1a},
		{0x3c58, 0x3d0c},
	},
	Table4: {
		{0x1771, 0x1cc5},
		{0x1d47, 0x1dfb},
		{0x1e4c, 0x1eb0},
		{0x1efe, 0x2016},
		{0x203e, 0x20de},
		{0x20ee, 0x233e},
		{0x2368, 0x2382},
		{0x496c, 0x4a20},
	},
}

func extractScripts(exe *MzExe, table TableID) ([]Uop, map[uint16]ScriptPos, [][]byte, []DmAnim, []DmAnimFrame) {
	msgs := &msgTable{byOff: map[uint16]MsgID{}}
	anims := &animTable{byOff: map[uint16]AnimID{}, fByOff: map[uint16]FrameID{}}
	var uops []Uop
	uopsByAddr := map[uint16]ScriptPos{}
	type reloc struct {
		pos    ScriptPos
		target uint16
	}
	var relocs []reloc

	for _, r := range scriptRanges[table] {
		pos, end := r[0], r[1]
		wasEnd := true
		for pos != end {
			cur := ScriptPos(len(uops))
			uopsByAddr[pos] = cur
			x := xlatUopKind(table, exe.DataWord(pos))
			pos += 2
			wasEnd = false
			uop := Uop{Kind: x.kind, Target: NoScript}
			arg := func() uint16 {
				v := exe.DataWord(pos)
				pos += 2
				return v
			}
			argZero := func() {
				assert(arg() == 0, "uop zero arg")
			}
			switch x.kind {
			case UopEnd:
				wasEnd = true
			case UopNoop:
				assert(arg() == 1, "noop arg")
			case UopDelay, UopDelayIfMultiplayer, UopDmBlink, UopDmTowerHunt:
				uop.N = arg()
			case UopJump:
				relocs = append(relocs, reloc{cur, arg()})
			case UopJccScoreZero:
				uop.Score = xlatScore(exe, table, arg())
				relocs = append(relocs, reloc{cur, arg()})
			case UopJccNoBonusMult:
				relocs = append(relocs, reloc{cur, arg()})
			case UopRepeatSetup:
				uop.N = arg()
				argZero()
			case UopRepeatLoop:
				uop.N = arg()
				relocs = append(relocs, reloc{cur, arg()})
			case UopFinalScoreSetup:
				argZero()
			case UopFinalScoreLoop:
				relocs = append(relocs, reloc{cur, arg()})
			case UopDmStopBlink:
				arg()
			case UopDmState:
				v := arg()
				assert(v < 2, "dm state arg")
				uop.State = v != 0
			case UopDmClear, UopDmWipeDown, UopDmWipeRight, UopDmWipeDownStriped:
			case UopDmAnim:
				uop.Anim = extractDmAnim(exe, table, arg(), anims)
			case UopDmPuts:
				uop.Font = x.font
				msg := arg()
				dpos := arg()
				if dpos == 0x14e {
					assert(exe.DataByte(msg) == ' ', "dm puts pad")
					assert(exe.DataByte(msg+1) == ' ', "dm puts pad")
					msg += 2
					dpos += 8
				}
				uop.Msg = extractMsg(exe, table, msg, false, msgs)
				uop.Pos = dmAddrToXY(dpos, 0)
			case UopDmPrintScore:
				uop.Font = x.font
				uop.Center = x.center
				uop.Score = xlatScore(exe, table, arg())
				uop.Pos = dmAddrToXY(arg(), 0)
			case uopDmBigScore:
				uop.Kind = UopDmPrintScore
				uop.Font = FontH13
				uop.Score = xlatScore(exe, table, arg())
				uop.Pos = DmCoord{X: -16, Y: 1}
			case UopDmMsgScrollUp, UopDmMsgScrollDown:
				uop.Msg = extractMsg(exe, table, arg(), false, msgs)
				uop.ScrollTarget = int16(arg())
			case UopDmLongMsg:
				uop.Msg = extractMsg(exe, table, arg(), true, msgs)
			case UopPlaySfx:
				uop.Sfx = extractSfx(exe, arg())
				volume := arg()
				if volume == 0 {
					volume = 0x40
				}
				assert(volume <= 0xff, "sfx volume")
				uop.Volume = uint8(volume)
			case UopPlayJingle:
				uop.Jingle = extractJingle(exe, arg())
			case UopSetMusic:
				music := arg()
				assert(music <= 0xff, "music position")
				uop.Music = uint8(music)
			case UopSetJingleTimeout:
				uop.N = arg()
			case UopWaitJingle, UopWaitJingleTimeout:
				argZero()
			case UopModeContinue, UopModeStart, UopModeStartOrContinue:
				dig1 := arg()
				dig0 := arg()
				assert(dig1 < 10 && dig0 < 10, "mode timeout digits")
				uop.Time = uint8(dig1*10 + dig0)
				uop.Score = xlatScore(exe, table, arg())
			case UopHalt:
				assert(arg() == 1, "halt arg")
			case UopConfirmQuit, UopWaitWhileGameStarting, UopExtraBall:
				argZero()
			case UopSetupPartyOn, UopSetSpecialPlungerEvent:
				assert(arg() <= 1, "setup arg")
			case UopSetupShootAgain:
				assert(arg() == 1, "shoot again arg")
			case UopIssueBall, UopAccBonusCyclones, UopAccBonusModeHit,
				UopAccBonusModeRamp, UopAccBonus, UopCheckTopScore,
				UopNextBallIfMatched, UopNextBall, UopCheckMatch, UopGameOver,
				UopSpeedStartTurbo:
			case UopMultiplyBonus:
				argZero()
			case UopMatch, UopRecordHighScores:
				argZero()
			case UopPartyArcadeReady, UopPartySecretDrop,
				UopSpeedCheckTurboCont, UopSpeedClearFlagMode,
				UopShowSpinWheelEnd, UopShowEndMoneyMania,
				UopStonesTowerEject, UopStonesVaultEject, UopStonesWellEject,
				UopStonesTiltEject, UopStonesSetFlagMode,
				UopStonesSetFlagModeRamp, UopStonesSetFlagModeHit,
				UopStonesClearFlagMode, UopStonesClearFlagModeRamp,
				UopStonesClearFlagModeHit, UopStonesEndMode,
				UopStonesEndGrimReaper:
				argZero()
			case UopShowBlinkMoneyMania:
				assert(arg() == 32, "money mania arg")
			default:
				assert(false, "uop kind")
			}
			uops = append(uops, uop)
		}
		assert(wasEnd, "script range terminator")
	}
	for _, r := range relocs {
		tgt, ok := uopsByAddr[r.target]
		assert(ok, fmt.Sprintf("script relocation %04x", r.target))
		switch uops[r.pos].Kind {
		case UopJump, UopJccScoreZero, UopJccNoBonusMult, UopRepeatLoop, UopFinalScoreLoop:
			uops[r.pos].Target = tgt
		default:
			assert(false, "relocation to weird uop")
		}
	}
	return uops, uopsByAddr, msgs.msgs, anims.anims, anims.frames
}

var scriptBindOffsets = [NumTables]map[ScriptBind]uint16{
	Table1: {
		ScriptTopScoreInterball:    0x13cd,
		ScriptTopScoreIngame:       0x13f7,
		ScriptPartyOn:              0x1477,
		ScriptEnter:                0x148d,
		ScriptInit:                 0x14b9,
		ScriptPartyJackpot:         0x1647,
		ScriptPartyJackpotModeHit:  0x1651,
		ScriptPartyJackpotModeRamp: 0x166f,
		ScriptShootAgain:           0x1790,
		ScriptMatch:                0x17a8,
		ScriptCheckMatch:           0x17b6,
		ScriptPostMatch:            0x17b8,
		ScriptGameOver:             0x17c4,
		ScriptGameIdle:             0x18ea,
		ScriptAttract:              0x19d4,
		ScriptMain:                 0x1acc,
		ScriptGameStart:            0x1adc,
		ScriptGameStartPlayers:     0x1aea,
		ScriptTilt:                 0x1bf0,
		ScriptConfirmQuit:          0x4414,
	},
	Table2: {
		ScriptTopScoreInterball:     0x1102,
		ScriptTopScoreIngame:        0x1138,
		ScriptPartyOn:               0x128e,
		ScriptEnter:                 0x12a4,
		ScriptInit:                  0x12b0,
		ScriptSpeedModeHit:          0x12bc,
		ScriptSpeedModeRampContinue: 0x137f,
		ScriptSpeedModeRamp:         0x138f,
		ScriptShootAgain:            0x157e,
		ScriptMatch:                 0x1596,
		ScriptCheckMatch:            0x15a8,
		ScriptPostMatch:             0x15aa,
		ScriptGameOver:              0x15ba,
		ScriptGameIdle:              0x1618,
		ScriptAttract:               0x1702,
		ScriptMain:                  0x17fa,
		ScriptGameStart:             0x180a,
		ScriptGameStartPlayers:      0x1818,
		ScriptTilt:                  0x1d1b,
		ScriptConfirmQuit:           0x44ab,
	},
	Table3: {
		ScriptTopScoreInterball:      0x0e30,
		ScriptTopScoreIngame:         0x0e5e,
		ScriptPartyOn:                0x0e86,
		ScriptEnter:                  0x0e9e,
		ScriptInit:                   0x0eac,
		ScriptShowHintLoopRight:      0x10ef,
		ScriptShowHintLoopLeft:       0x10fd,
		ScriptShowMbX2:               0x110b,
		ScriptShowMbX3:               0x111d,
		ScriptShowMbX4:               0x112f,
		ScriptShowMbX6:               0x1141,
		ScriptShowMbX8:               0x1153,
		ScriptShowMbX10:              0x1165,
		ScriptShowSpinWheelBlink:     0x12e7,
		ScriptShowSpinWheelClear:     0x12f9,
		ScriptShowSpinWheelClearHalt: 0x12ff,
		ScriptShowSpinWheelScore:     0x1309,
		ScriptShootAgain:             0x1738,
		ScriptMatch:                  0x1752,
		ScriptCheckMatch:             0x1766,
		ScriptPostMatch:              0x1768,
		ScriptGameOver:               0x177a,
		ScriptGameIdle:               0x17de,
		ScriptAttract:                0x18de,
		ScriptMain:                   0x19dc,
		ScriptGameStart:              0x19ee,
		ScriptGameStartPlayers:       0x19fe,
		ScriptTilt:                   0x1a0a,
		ScriptConfirmQuit:            0x3cec,
	},
	Table4: {
		ScriptTopScoreInterball:      0x1771,
		ScriptTopScoreIngame:         0x17a9,
		ScriptPartyOn:                0x1bf7,
		ScriptEnter:                  0x1c0f,
		ScriptInit:                   0x1c1d,
		ScriptStonesModeHitContinue:  0x1ca3,
		ScriptStonesModeRampContinue: 0x1dd9,
		ScriptShootAgain:             0x203e,
		ScriptMatch:                  0x205c,
		ScriptCheckMatch:             0x2074,
		ScriptPostMatch:              0x2076,
		ScriptGameOver:               0x208a,
		ScriptGameIdle:               0x20ee,
		ScriptAttract:                0x21ee,
		ScriptMain:                   0x22fc,
		ScriptGameStart:              0x230e,
		ScriptGameStartPlayers:       0x231e,
		ScriptTilt:                   0x2368,
		ScriptConfirmQuit:            0x4a00,
	},
}

func extractScriptBinds(table TableID, uopsByAddr map[uint16]ScriptPos) [numScriptBinds]ScriptPos {
	var res [numScriptBinds]ScriptPos
	for i := range res {
		res[i] = NoScript
	}
	for bind, off := range scriptBindOffsets[table] {
		pos, ok := uopsByAddr[off]
		assert(ok, fmt.Sprintf("script bind %04x", off))
		res[bind] = pos
	}
	return res
}

func extractCheats(table TableID, uopsByAddr map[uint16]ScriptPos) []Cheat {
	offs := [NumTables][13]uint16{
		Table1: {0x439c, 0x43a4, 0x43ac, 0x43b4, 0x43bc, 0x43c4, 0x43cc, 0x43d4, 0x43dc, 0x43e4, 0x43ec, 0x43f4, 0x43fc},
		Table2: {0x4433, 0x443b, 0x4443, 0x444b, 0x4453, 0x445b, 0x4463, 0x446b, 0x4473, 0x447b, 0x4483, 0x448b, 0x4493},
		Table3: {0x3c58, 0x3c62, 0x3c6c, 0x3c76, 0x3c80, 0x3c8a, 0x3c94, 0x3c9e, 0x3ca8, 0x3cb2, 0x3cbc, 0x3cc6, 0x3cd0},
		Table4: {0x496c, 0x4976, 0x4980, 0x498a, 0x4994, 0x499e, 0x49a8, 0x49b2, 0x49bc, 0x49c6, 0x49d0, 0x49da, 0x49e4},
	}[table]
	// offset slots, in file order: tech, cheat, robban, stein, greet, daniel,
	// gabriel, johan, tsp, earthquake, snail, extra balls, fair play
	entries := []struct {
		keys   string
		slot   int
		effect CheatEffect
	}{
		{"JOHAN", 7, CheatNone},
		{"TECH", 0, CheatNone},
		{"TSP", 8, CheatNone},
		{"DANIEL", 5, CheatNone},
		{"GABRIEL", 6, CheatNone},
		{"CHEAT", 1, CheatNone},
		{"EARTHQUAKE", 9, CheatTilt},
		{"EXTRA BALLS", 11, CheatBalls},
		{"SNAIL", 10, CheatSlowdown},
		{"FAIR PLAY", 12, CheatReset},
		{"ROBBAN", 2, CheatNone},
		{"STEIN", 3, CheatNone},
		{"GREET", 4, CheatNone},
	}
	var res []Cheat
	for _, e := range entries {
		pos, ok := uopsByAddr[offs[e.slot]]
		assert(ok, "cheat script")
		res = append(res, Cheat{Keys: []byte(e.keys), Script: pos, Effect: e.effect})
	}
	return res
}

func extractEffect(exe *MzExe, off uint16, uopsByAddr map[uint16]ScriptPos) *Effect {
	e := &Effect{Script: NoScript}
	jingle := exe.DataWord(off)
	off += 2
	if jingle == 0 {
		e.SilentPriority = exe.DataByte(off)
		off++
	} else {
		j := extractJingle(exe, jingle)
		e.Jingle = &j
	}
	if script := exe.DataWord(off + 24); script != 0 {
		pos, ok := uopsByAddr[script]
		assert(ok, "effect script")
		e.Script = pos
	}
	var err error
	e.ScoreMain, err = exe.DataBcd(off)
	assert(err == nil, "effect main score")
	e.ScoreBonus, err = exe.DataBcd(off + 12)
	assert(err == nil, "effect bonus score")
	return e
}

var effectOffsets = [NumTables][]struct {
	off  uint16
	bind EffectBind
}{
	Table1: {
		{0x640, EffectPartyArcadeSideExtraBall},
		{0x65d, EffectPartyArcade5M},
		{0x679, EffectPartyArcade1M},
		{0x695, EffectPartyArcade500k},
		{0x6b1, EffectPartyArcadeNoScore},
		{0x6d5, EffectDrained},
		{0x6f1, EffectPartyArcade},
		{0x70d, EffectPartyPartyP},
		{0x729, EffectPartyPartyA},
		{0x745, EffectPartyPartyR},
		{0x761, EffectPartyPartyT},
		{0x77d, EffectPartyPartyY},
		{0x799, EffectPartyTunnel1M},
		{0x7b5, EffectPartyTunnel3M},
		{0x7d1, EffectPartyTunnel5M},
		{0x7ed, EffectPartyDemon250k},
		{0x809, EffectPartySnackNope},
		{0x825, EffectPartyOrbit250k},
		{0x841, EffectPartyOrbit500k},
		{0x85d, EffectPartyOrbit750k},
		{0x879, EffectPartyDemon5M},
		{0x895, EffectPartyDuckAll},
		{0x8b1, EffectPartySnack0},
		{0x8cd, EffectPartySnack1},
		{0x8e9, EffectPartySnack2},
		// unused 1M at 0x905
		{0x921, EffectPartySkyrideLitMb},
		{0x93e, EffectPartyOrbitMb2},
		{0x95a, EffectPartyOrbitMb4},
		{0x976, EffectPartyOrbitMb6},
		{0x992, EffectPartyOrbitMb8},
		{0x9ae, EffectPartyOrbitHoldBonus},
		{0x9ca, EffectPartyOrbitDoubleBonus},
		{0x9e6, EffectPartyDemonExtraBall},
		{0xa02, EffectPartySideExtraBall},
		{0xa1e, EffectPartyOrbitCrazy},
		{0xa3a, EffectPartyArcadeCrazy},
		{0xa56, EffectPartyOrbitMad0},
		{0xa72, EffectPartyOrbitMad1},
		{0xa8e, EffectPartyOrbitMad2},
		{0xaab, EffectPartySkyride0},
		{0xac7, EffectPartySkyride1},
		{0xae3, EffectPartySkyride2},
		{0xaff, EffectPartyCyclone},
		{0xb1b, EffectPartyCycloneX5},
		{0xb37, EffectPartySecret},
		{0xb54, EffectPartyCycloneSkillShot},
		{0xb70, EffectPartyTunnelSkillShot},
		{0xb8c, EffectPartyRollInner},
		{0xba9, EffectPartyHappyHour},
		{0xbc5, EffectPartyHappyHourEnd},
		{0xbe1, EffectPartyMegaLaugh},
		{0xbfd, EffectPartyMegaLaughEnd},
	},
	Table2: {
		{0x393, EffectSpeedTurboRamp},
		{0x3af, EffectSpeedMilesToJump},
		{0x3cc, EffectSpeedMilesToFirstOffroad},
		{0x3e9, EffectSpeedMilesToExtraBall},
		{0x406, EffectSpeedMilesToOffroad},
		{0x423, EffectSpeedSuperJackpot},
		{0x43f, EffectSpeedJackpot},
		{0x45b, EffectSpeedSuperJackpotGoal},
		{0x477, EffectSpeedHoldBonus},
		{0x493, EffectSpeedExtraGear},
		{0x4af, EffectSpeedExtraBall},
		{0x4cb, EffectSpeedMilesExtraBall},
		{0x4ea, EffectSpeedJump},
		{0x506, EffectSpeedMilesJump},
		{0x522, EffectSpeedCar0},
		{0x53e, EffectSpeedCar1},
		{0x55a, EffectSpeedCar2},
		{0x576, EffectSpeedCar3},
		{0x592, EffectSpeedCar4},
		{0x5ae, EffectSpeedGear},
		{0x5ca, EffectSpeedPedalMetal},
		{0x5e6, EffectSpeedOvertake},
		{0x602, EffectSpeedOvertakeFinal},
		{0x61e, EffectSpeedTurbo},
		{0x63a, EffectDrained},
		{0x657, EffectSpeedLaneOuter},
		{0x673, EffectSpeedLaneInner},
		{0x690, EffectSpeedPit},
		{0x6ad, EffectSpeedPitAll},
		{0x6c9, EffectSpeedOffroadExit},
		{0x6e6, EffectSpeedRampOffroad},
		{0x704, EffectSpeedMillion},
		{0x721, EffectSpeedMiles0},
		{0x73e, EffectSpeedMiles1},
		{0x75b, EffectSpeedMiles2},
		{0x778, EffectSpeedMiles3},
		{0x795, EffectSpeedMiles4},
		{0x7b2, EffectSpeedMiles5},
		{0x7cf, EffectSpeedMiles6},
		{0x7ec, EffectSpeedMiles7},
		{0x809, EffectSpeedMiles8},
		{0x826, EffectSpeedMiles9},
		{0x843, EffectSpeedMiles10},
		{0x860, EffectSpeedMiles11},
		{0x87d, EffectSpeedMb2},
		{0x899, EffectSpeedMb3},
		{0x8b5, EffectSpeedMb4},
		{0x8d1, EffectSpeedMb5},
		{0x8ed, EffectSpeedMb6},
		{0x909, EffectSpeedMb7},
		{0x925, EffectSpeedMb8},
		{0x941, EffectSpeedMb9},
	},
	Table3: {
		{0x3be, EffectShowCashpotLock},
		{0x3da, EffectShowBillion},
		{0x3f6, EffectShowLaneOuter},
		{0x413, EffectShowLaneInner},
		{0x430, EffectShowRampRight},
		{0x44d, EffectShowRampTop},
		{0x46a, EffectShowRampLoop},
		{0x487, EffectShowTopEntry},
		{0x4a4, EffectShowSkillsEntry},
		{0x4c1, EffectShowRampSkills},
		{0x4de, EffectShowOrbitLeft},
		{0x4fb, EffectShowOrbitRight},
		{0x518, EffectShowLoopEntry},
		{0x535, EffectShowPrizeTv},
		{0x551, EffectShowPrizeTrip},
		{0x56d, EffectShowPrizeCar},
		{0x589, EffectShowPrizeBoat},
		{0x5a5, EffectShowPrizeHouse},
		{0x5c1, EffectShowPrizePlane},
		{0x5dd, EffectShowModeHit},
		{0x5f9, EffectShowModeRamp},
		{0x615, EffectShowJackpot},
		{0x63d, EffectShowSuperJackpot},
		{0x659, EffectShowExtraBall},
		{0x675, EffectShowRaisingMillions},
		{0x691, EffectShowSkillsToMoneyMania},
		{0x6ad, EffectShowSkillsToExtraBall},
		{0x6c9, EffectShowCashpot},
		{0x6e5, EffectShowCashpotX5},
		{0x701, EffectShowDropCenter},
		{0x71e, EffectShowDropLeft},
		{0x73b, EffectShowDollar},
		{0x758, EffectShowDollarBoth},
		{0x774, EffectShowRampTopTwice},
		{0x790, EffectShowLitTv},
		{0x7ac, EffectShowLitTrip},
		{0x7c8, EffectShowLitCar},
		{0x7e4, EffectShowLitBoat},
		{0x800, EffectShowLitHouse},
		{0x81c, EffectShowLitPlane},
		{0x838, EffectDrained},
	},
	Table4: {
		{0x33d, EffectStonesLock},
		{0x359, EffectStonesGhostDemon},
		{0x376, EffectStonesStonesBonesAllRedundant},
		{0x393, EffectStonesGhostLit0},
		{0x3af, EffectStonesGhostLit1},
		{0x3cb, EffectStonesGhostLit2},
		{0x3e7, EffectStonesGhostLit3},
		{0x403, EffectStonesGhostLit4},
		{0x41f, EffectStonesGhostLit5},
		{0x43b, EffectStonesGhostLit6},
		{0x457, EffectStonesGhostLit7},
		{0x473, EffectStonesGhostExtraBall},
		{0x48f, EffectStonesTowerHunt0},
		{0x4ab, EffectStonesTowerHunt1},
		{0x4c7, EffectStonesTowerHunt2},
		{0x4e3, EffectStonesGhost5M},
		{0x4ff, EffectStonesGhost10M},
		{0x51b, EffectStonesGhost15M},
		{0x537, EffectStonesLoopCombo},
		{0x553, EffectStonesScreamsExtraBall},
		{0x56f, EffectStonesKickback},
		{0x58c, EffectStonesSkillShot},
		{0x5a8, EffectStonesTowerOpen},
		{0x5c4, EffectStonesGhostGhostHunter},
		{0x5e0, EffectStonesGhostGrimReaper},
		{0x5fc, EffectStonesGhostTowerHunt},
		{0x618, EffectStonesTopMillion},
		{0x634, EffectStonesTowerMillion},
		{0x650, EffectStonesDemon5M},
		{0x66c, EffectStonesTower5M},
		{0x688, EffectStonesTowerExtraBall},
		{0x6a4, EffectStonesDemon10M},
		{0x6c0, EffectStonesDemon20M},
		{0x6dc, EffectStonesTowerHoldBonus},
		{0x6f8, EffectStonesTowerDoubleBonus},
		{0x714, EffectStonesTowerJackpot},
		{0x730, EffectStonesTowerSuperJackpot},
		{0x74c, EffectStonesMillionPlus},
		{0x768, EffectStonesVault},
		{0x784, EffectStonesWell},
		{0x7a0, EffectStonesTowerBonus},
		{0x7bc, EffectStonesWellMb2},
		{0x7d8, EffectStonesWellMb4},
		{0x7f4, EffectStonesWellMb6},
		{0x810, EffectStonesWellMb8},
		{0x82c, EffectStonesWellMb10},
		{0x848, EffectStonesScreamsToExtraBall},
		{0x864, EffectStonesScreamsTo5M},
		{0x880, EffectDrained},
	},
}

func extractEffects(exe *MzExe, table TableID, uopsByAddr map[uint16]ScriptPos) [numEffectBinds]*Effect {
	var res [numEffectBinds]*Effect
	for _, e := range effectOffsets[table] {
		res[e.bind] = extractEffect(exe, e.off, uopsByAddr)
	}
	return res
}
