package pin

import "fmt"

// RollTrigger fires when the ball center first enters its rectangle.
type RollTrigger int

const (
	RollDummy RollTrigger = iota
	RollPlungerBottom
	RollPlungerGo
	RollPartyLaneInner
	RollPartyLaneOuter
	RollPartyOrbitTopLeft
	RollPartyOrbitTopRight
	RollPartySecret
	RollPartyTunnel
	RollPartyArcade
	RollPartyOrbitEntryRight
	RollPartyEnter
	RollPartyDemon
	RollPartySkyrideTop
	RollPartySkyrideRamp
	RollPartySkyridePuke0
	RollPartySkyridePuke1
	RollPartySkyridePuke2
	RollPartySkyridePuke3
	RollPartyRampCyclone
	RollPartyRampSnack
	RollPartySecretTilt
	RollPartyTunnelTilt
	RollSpeedLaneInner
	RollSpeedLaneOuter
	RollSpeedPitStop
	RollSpeedEnter
	RollSpeedPitLoopJump
	RollSpeedRampOffroad
	RollSpeedPitLoopPre
	RollSpeedPit0
	RollSpeedPit1
	RollSpeedPit2
	RollSpeedOffroadExit
	RollSpeedRampMilesRight
	RollSpeedRampMilesLeft
	RollSpeedJumpPre
	RollSpeedPlungerExit
	RollShowLaneInner
	RollShowLaneOuter
	RollShowEnter
	RollShowOrbitLeft
	RollShowOrbitRight
	RollShowCashpot
	RollShowVault
	RollShowVaultExit
	RollShowRampSkillEntry
	RollShowRampTopEntry
	RollShowRampLoopEntry
	RollShowRampTop
	RollShowRampSkillMark
	RollShowRampSkill
	RollShowRampRight
	RollShowRampLoop
	RollShowRampTopSecondary
	RollStonesLaneInnerLeft
	RollStonesLaneInnerRight
	RollStonesLaneOuterLeft
	RollStonesLaneOuterRight
	RollStonesKeyEntry
	RollStonesRampTower
	RollStonesKey0
	RollStonesKey1
	RollStonesKey2
	RollStonesWell
	RollStonesVault
	RollStonesKeyClose
	RollStonesTower
	RollStonesRampTop
	RollStonesRip0
	RollStonesRip1
	RollStonesRip2
	RollStonesRampTopExit
	RollStonesRampScreams
	RollStonesRampLeftToLane
	RollStonesRampLeftToVault
	RollStonesRampLeftFixup0
	RollStonesRampLeftFixup1
	RollStonesRampLeftFixup2
	RollStonesRampLeftFixup3
	RollStonesVaultExit
	RollStonesEnter
	RollStonesWellTilt
	RollStonesTowerTilt
)

type RollTriggerArea struct {
	Rect Rect
	Kind RollTrigger
}

// HitTrigger fires on a collision whose contact point lies in its rectangle.
type HitTrigger int

const (
	HitPartyArcadeButton HitTrigger = iota
	HitPartyDuck0
	HitPartyDuck1
	HitPartyDuck2
	HitSpeedBur0
	HitSpeedBur1
	HitSpeedBur2
	HitSpeedNin0
	HitSpeedNin1
	HitSpeedNin2
	HitShowDollar0
	HitShowDollar1
	HitShowCenter0
	HitShowCenter1
	HitShowLeft0
	HitShowLeft1
	HitStonesBone0
	HitStonesBone1
	HitStonesBone2
	HitStonesBone3
	HitStonesStone0
	HitStonesStone1
	HitStonesStone2
	HitStonesStone3
	HitStonesStone4
)

type HitTriggerArea struct {
	Rect Rect
	Kind HitTrigger
}

// Per-table handler pointer to trigger kind. These pointers are the ground
// truth offsets from the original binaries.
var rollTriggerPtrs = [NumTables]map[uint16]RollTrigger{
	Table1: {
		0x16b6: RollPartyOrbitTopLeft,
		0x18af: RollPartyOrbitTopRight,
		0x1a0e: RollPartySecret,
		0x1a6c: RollPartySecretTilt,
		0x1b29: RollPartyTunnel,
		0x1c9c: RollPartyTunnelTilt,
		0x1cda: RollPartyArcade,
		0x1f92: RollPartyRampSnack,
		0x225d: RollPartyOrbitEntryRight,
		0x2264: RollPartyEnter,
		0x2299: RollPartyDemon,
		0x24bc: RollPartyLaneInner,
		0x24d7: RollPartyLaneInner,
		0x24f2: RollPartyLaneOuter,
		0x2577: RollPartyLaneOuter,
		0x25c2: RollPlungerGo,
		0x25d5: RollPlungerBottom,
		0x25dc: RollPartySkyrideTop,
		0x26ca: RollPartySkyrideRamp,
		0x26ce: RollPartySkyridePuke0,
		0x272b: RollPartySkyridePuke3,
		0x2788: RollPartySkyridePuke1,
		0x27e5: RollPartySkyridePuke2,
		0x29e7: RollDummy,
		0x29e8: RollDummy,
		0x29e9: RollPartyRampCyclone,
	},
	Table2: {
		0x11d1: RollSpeedPlungerExit,
		0x193e: RollSpeedPitStop,
		0x1c04: RollSpeedRampOffroad,
		0x1d1f: RollSpeedPitLoopJump,
		0x1ec5: RollSpeedPitLoopPre,
		0x1ec6: RollSpeedJumpPre,
		0x1ee3: RollSpeedPit2,
		0x1f4f: RollSpeedPit1,
		0x1fc0: RollSpeedPit0,
		0x212f: RollSpeedLaneOuter,
		0x2136: RollSpeedLaneInner,
		0x2151: RollSpeedOffroadExit,
		0x2158: RollSpeedEnter,
		0x218d: RollPlungerGo,
		0x2194: RollPlungerBottom,
		0x2231: RollSpeedRampMilesRight,
		0x224e: RollSpeedRampMilesLeft,
	},
	Table3: {
		0x1077: RollShowEnter,
		0x10a9: RollShowVaultExit,
		0x10ad: RollPlungerGo,
		0x10b7: RollPlungerBottom,
		0x1219: RollShowVault,
		0x1587: RollShowCashpot,
		0x1713: RollShowRampRight,
		0x1768: RollShowRampLoop,
		0x18d6: RollShowOrbitLeft,
		0x19bd: RollShowOrbitRight,
		0x1a66: RollShowRampSkillMark,
		0x1a67: RollShowRampSkill,
		0x1cd9: RollShowLaneOuter,
		0x1cf4: RollShowLaneOuter,
		0x1d0f: RollShowLaneInner,
		0x1d2a: RollShowLaneInner,
		0x1d45: RollShowRampTopEntry,
		0x1d4c: RollShowRampSkillEntry,
		0x1d53: RollShowRampLoopEntry,
		0x1d5a: RollShowRampTopSecondary,
		0x1d5e: RollShowRampTop,
	},
	Table4: {
		0x1738: RollStonesEnter,
		0x1768: RollStonesKeyEntry,
		0x1783: RollDummy,
		0x1784: RollStonesRampTower,
		0x178e: RollStonesKeyClose,
		0x17cd: RollStonesKey0,
		0x18da: RollStonesKey1,
		0x19e7: RollStonesKey2,
		0x1c68: RollStonesTower,
		0x20bf: RollStonesTowerTilt,
		0x21c2: RollStonesWell,
		0x23bd: RollStonesWellTilt,
		0x23c9: RollDummy,
		0x23ca: RollStonesLaneInnerLeft,
		0x2425: RollStonesLaneInnerRight,
		0x2480: RollStonesLaneOuterLeft,
		0x24c3: RollStonesLaneOuterRight,
		0x2506: RollStonesVault,
		0x29f6: RollDummy,
		0x29f7: RollPlungerBottom,
		0x29fe: RollPlungerGo,
		0x2a05: RollStonesRampTop,
		0x2b5a: RollStonesRip0,
		0x2c19: RollStonesRip1,
		0x2cd8: RollStonesRip2,
		0x2d97: RollStonesRampTopExit,
		0x2d9e: RollStonesRampScreams,
		0x2ff7: RollStonesRampLeftToLane,
		0x30f5: RollStonesRampLeftToVault,
		0x3164: RollStonesRampLeftFixup0,
		0x316b: RollStonesRampLeftFixup1,
		0x3172: RollStonesRampLeftFixup2,
		0x3179: RollStonesRampLeftFixup3,
		0x3180: RollStonesVaultExit,
	},
}

var hitTriggerPtrs = [NumTables]map[uint16]HitTrigger{
	Table1: {
		0x134c: HitPartyArcadeButton,
		0x13ae: HitPartyDuck0,
		0x142e: HitPartyDuck1,
		0x14ae: HitPartyDuck2,
	},
	Table2: {
		0x11de: HitSpeedBur0,
		0x1236: HitSpeedBur1,
		0x128e: HitSpeedBur2,
		0x12e6: HitSpeedNin0,
		0x133e: HitSpeedNin1,
		0x1396: HitSpeedNin2,
	},
	Table3: {
		0xf57: HitShowDollar0,
		0xf95: HitShowDollar1,
		0xdeb: HitShowCenter0,
		0xe2b: HitShowCenter1,
		0xea1: HitShowLeft0,
		0xee1: HitShowLeft1,
	},
	Table4: {
		0x103e: HitStonesBone0,
		0x10ba: HitStonesBone1,
		0x1136: HitStonesBone2,
		0x11b2: HitStonesBone3,
		0x122e: HitStonesStone0,
		0x12aa: HitStonesStone1,
		0x1326: HitStonesStone2,
		0x13a2: HitStonesStone3,
		0x141e: HitStonesStone4,
	},
}

func extractRollTriggerList(exe *MzExe, table TableID, pos uint16) []RollTriggerArea {
	var res []RollTriggerArea
	for exe.DataWord(pos) != 0 {
		rect := extractRect(exe, pos)
		ptr := exe.DataWord(pos + 8)
		pos += 10
		kind, ok := rollTriggerPtrs[table][ptr]
		assert(ok, fmt.Sprintf("roll trigger %04x", ptr))
		res = append(res, RollTriggerArea{Rect: rect, Kind: kind})
	}
	return res
}

func extractRollTriggers(exe *MzExe, table TableID) (normal, tilt [numLayers][]RollTriggerArea) {
	offG := [NumTables]uint16{0xd9b, 0xb91, 0x9e0, 0xa5e}[table]
	offO := [NumTables]uint16{0xe29, 0xc29, 0xa78, 0xb14}[table]
	offGT := [NumTables]uint16{0xea3, 0xc53, 0xaca, 0xbac}[table]
	offOT := [NumTables]uint16{0xec3, 0xc53, 0xad6, 0xbcc}[table]
	normal[LayerGround] = extractRollTriggerList(exe, table, offG)
	normal[LayerOverhead] = extractRollTriggerList(exe, table, offO)
	tilt[LayerGround] = extractRollTriggerList(exe, table, offGT)
	tilt[LayerOverhead] = extractRollTriggerList(exe, table, offOT)
	return normal, tilt
}

func extractHitTriggers(exe *MzExe, table TableID) []HitTriggerArea {
	pos := [NumTables]uint16{0xd71, 0xb51, 0x9a2, 0xa00}[table]
	var res []HitTriggerArea
	for exe.DataWord(pos) != 0 {
		rect := extractRect(exe, pos)
		ptr := exe.DataWord(pos + 8)
		kind, ok := hitTriggerPtrs[table][ptr]
		assert(ok, fmt.Sprintf("hit trigger %04x", ptr))
		pos += 10
		res = append(res, HitTriggerArea{Rect: rect, Kind: kind})
	}
	return res
}
