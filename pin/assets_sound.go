package pin

// Jingle is a short music cue: song position, loop count, interrupt priority.
type Jingle struct {
	Position uint8
	Repeat   uint8
	Priority uint8
}

// Sfx is a one-shot sample bound to a fixed mixer channel.
type Sfx struct {
	Sample  uint8
	Period  uint8
	Channel uint8
}

type JingleBind int

const (
	JingleSilence JingleBind = iota
	JingleGameStart
	JinglePlunger
	JingleMain
	JingleAttract
	JingleWarnTilt
	JingleTilt
	JingleGameOverSad
	JingleGameOverHighScore
	JingleDrained
	JingleMatchStart
	JingleMatchWin
	JingleModeEndHit
	JingleModeEndRamp
	JinglePartyJackpot
	JingleSpeedModeHit
	JingleShowSpinWheel
	JingleShowMultiBonus
	JingleShowJackpot
	JingleShowExtraBallLit
	JingleShowPrizeIncoming
	JingleStonesTowerHuntEnd
	numJingleBinds
)

type SfxBind int

const (
	SfxFlipperPress SfxBind = iota
	SfxBallDrained
	SfxIssueBall
	SfxSpringUp
	SfxRollInner
	SfxTickBonus
	SfxGameStart
	SfxRollTrigger
	SfxRaiseHitTargets
	SfxPartySnacksRelease
	SfxPartyHitDuck
	SfxPartyArcadeButton
	SfxSpeedEjectPit
	SfxSpeedHitTarget
	SfxShowEjectCashpot
	SfxShowHitTrigger
	SfxStonesEject
	SfxStonesHitStone
	SfxStonesHitBone
	numSfxBinds
)

func extractJingle(exe *MzExe, off uint16) Jingle {
	return Jingle{
		Position: exe.DataByte(off),
		Repeat:   exe.DataByte(off + 1),
		Priority: exe.DataByte(off + 2),
	}
}

func extractSfx(exe *MzExe, off uint16) Sfx {
	assert(exe.DataByte(off+2) == 0, "sfx record")
	return Sfx{
		Sample:  exe.DataByte(off),
		Period:  exe.DataByte(off + 1),
		Channel: exe.DataByte(off + 3),
	}
}

var jingleBindOffsets = [NumTables]map[JingleBind]uint16{
	Table1: {
		JingleSilence:           0xc6c,
		JinglePlunger:           0xc6f,
		JingleMain:              0xc72,
		JingleAttract:           0xc75,
		JingleWarnTilt:          0xc78,
		JingleTilt:              0xc7b,
		JingleGameOverSad:       0xc7e,
		JingleGameOverHighScore: 0xc81,
		JingleDrained:           0xc84,
		JingleGameStart:         0xc87,
		JingleMatchStart:        0xc90,
		JingleMatchWin:          0xc93,
		JinglePartyJackpot:      0xca2,
	},
	Table2: {
		JingleSilence:           0xa3e,
		JinglePlunger:           0xa41,
		JingleGameStart:         0xa41,
		JingleMain:              0xa44,
		JingleAttract:           0xa47,
		JingleWarnTilt:          0xa4a,
		JingleTilt:              0xa4d,
		JingleGameOverSad:       0xa50,
		JingleGameOverHighScore: 0xa53,
		JingleDrained:           0xa56,
		JingleMatchStart:        0xa62,
		JingleMatchWin:          0xa65,
		JingleModeEndRamp:       0xaa1,
		JingleSpeedModeHit:      0xaa7,
		JingleModeEndHit:        0xaaa,
	},
	Table3: {
		JingleSilence:           0x8ad,
		JingleGameStart:         0x8de,
		JinglePlunger:           0x8de,
		JingleMain:              0x8d2,
		JingleAttract:           0x8e1,
		JingleWarnTilt:          0x8b0,
		JingleTilt:              0x8b3,
		JingleGameOverSad:       0x8d5,
		JingleGameOverHighScore: 0x8d8,
		JingleDrained:           0x8b6,
		JingleMatchStart:        0x8c3,
		JingleMatchWin:          0x8c6,
		JingleModeEndHit:        0x8fd,
		JingleModeEndRamp:       0x8fd,
		JingleShowSpinWheel:     0x8c0,
		JingleShowMultiBonus:    0x8e8,
		JingleShowJackpot:       0x8eb,
		JingleShowExtraBallLit:  0x918,
		JingleShowPrizeIncoming: 0x91e,
	},
	Table4: {
		JingleSilence:            0x8ec,
		JingleGameStart:          0x8ef,
		JinglePlunger:            0x8f2,
		JingleMain:               0x8f5,
		JingleAttract:            0x8f8,
		JingleWarnTilt:           0x8fb,
		JingleTilt:               0x8fe,
		JingleGameOverSad:        0x901,
		JingleGameOverHighScore:  0x904,
		JingleDrained:            0x907,
		JingleMatchWin:           0x90d,
		JingleMatchStart:         0x910,
		JingleModeEndHit:         0x95b,
		JingleModeEndRamp:        0x95b,
		JingleStonesTowerHuntEnd: 0x94f,
	},
}

var sfxBindOffsets = [NumTables]map[SfxBind]uint16{
	Table1: {
		SfxFlipperPress:       0xc2d,
		SfxBallDrained:        0xc31,
		SfxIssueBall:          0xc35,
		SfxSpringUp:           0xc3d,
		SfxPartySnacksRelease: 0xc41,
		SfxRollTrigger:        0xc45,
		SfxRollInner:          0xc49,
		SfxTickBonus:          0xc61,
		SfxGameStart:          0xc65,
		SfxRaiseHitTargets:    0xc1d,
		SfxPartyHitDuck:       0xc19,
		SfxPartyArcadeButton:  0xc5d,
	},
	Table2: {
		SfxFlipperPress:    0x9fa,
		SfxBallDrained:     0x9fe,
		SfxIssueBall:       0xa02,
		SfxSpringUp:        0xa0a,
		SfxRollInner:       0xa1a,
		SfxTickBonus:       0xa36,
		SfxGameStart:       0xa12,
		SfxRaiseHitTargets: 0x9f2,
		SfxSpeedEjectPit:   0xa0e,
		SfxSpeedHitTarget:  0xa2a,
	},
	Table3: {
		SfxFlipperPress:     0x86d,
		SfxBallDrained:      0x871,
		SfxIssueBall:        0x875,
		SfxSpringUp:         0x87d,
		SfxRollTrigger:      0x885,
		SfxRollInner:        0x889,
		SfxTickBonus:        0x8a5,
		SfxGameStart:        0x8b9,
		SfxRaiseHitTargets:  0x865,
		SfxShowEjectCashpot: 0x881,
		SfxShowHitTrigger:   0x89d,
	},
	Table4: {
		SfxFlipperPress:   0x8b8,
		SfxBallDrained:    0x8bc,
		SfxIssueBall:      0x8c0,
		SfxSpringUp:       0x8c8,
		SfxRollTrigger:    0x8d0,
		SfxRollInner:      0x8d4,
		SfxTickBonus:      0x8e4,
		SfxGameStart:      0x8e8,
		SfxStonesEject:    0x8cc,
		SfxStonesHitStone: 0x8d8,
		SfxStonesHitBone:  0x8dc,
	},
}

func extractJingleBinds(exe *MzExe, table TableID) [numJingleBinds]*Jingle {
	var res [numJingleBinds]*Jingle
	for bind, off := range jingleBindOffsets[table] {
		j := extractJingle(exe, off)
		res[bind] = &j
	}
	return res
}

func extractSfxBinds(exe *MzExe, table TableID) [numSfxBinds]*Sfx {
	var res [numSfxBinds]*Sfx
	for bind, off := range sfxBindOffsets[table] {
		s := extractSfx(exe, off)
		res[bind] = &s
	}
	return res
}
