package pin

// LightBind names a logical group of lights; the per-table lists map it onto
// concrete light IDs.
type LightBind int

const (
	LightPartyPuke LightBind = iota
	LightPartyDrop
	LightPartyMad
	LightPartyTunnel
	LightPartyCycloneX5
	LightPartySkyride
	LightPartyDuck
	LightPartyDuckDrop
	LightPartySnack
	LightPartyRightOrbitScore
	LightPartyRightOrbitMultiBonus
	LightPartyRightOrbitDoubleBonus
	LightPartyRightOrbitHoldBonus
	LightPartyDemonHead
	LightPartyDemon5M
	LightPartyDemonExtraBall
	LightPartyDemonJackpot
	LightPartyParty
	LightPartyCrazy
	LightPartyHappyHour
	LightPartyMegaLaugh
	LightPartySideExtraBall
	LightPartyBonus
	LightPartyExtraBall
	LightPartyArcade
	LightSpeedPitLoopExtraBall
	LightSpeedPitStopHoldBonus
	LightSpeedPitStopSuperJackpot
	LightSpeedOffroadMultiBonus
	LightSpeedMiniRampJump
	LightSpeedPit
	LightSpeedPitStopGoal
	LightSpeedCarPartLit
	LightSpeedMiniRampJackpot
	LightSpeedBur
	LightSpeedNin
	LightSpeedGear
	LightSpeedGearNum
	LightSpeedPlace
	LightSpeedBonus
	LightSpeedCarPart
	LightSpeedExtraBall
	LightSpeedSpeed
	LightShowSkills
	LightShowDollar
	LightShowTopLoop
	LightShowSuperJackpot
	LightShowCashpot
	LightShowDropLeft
	LightShowDropCenter
	LightShowOrbitExtraBall
	LightShowCashpotX5
	LightShowPrize
	LightShowJackpot
	LightShowCollectPrize
	LightShowSpinWheel
	LightShowWheel
	LightShowBillion
	LightShowExtraBall
	LightShowMoneyMania
	LightShowBonus
	LightStonesKey
	LightStonesRip
	LightStonesTower
	LightStonesTowerExtraBall
	LightStonesTowerJackpot
	LightStonesTowerSuperJackpot
	LightStonesTowerMillion
	LightStonesTower5M
	LightStonesTowerDoubleBonus
	LightStonesTowerHoldBonus
	LightStonesVaultLock
	LightStonesVaultGhost
	LightStonesScreamX2
	LightStonesScreamDemon
	LightStonesMillionPlus
	LightStonesWellLock
	LightStonesWellMultiBonus
	LightStonesBone
	LightStonesStone
	LightStonesGhost
	LightStonesBonus
	LightStonesKickback
	numLightBinds
)

func extractLightBinds(table TableID) [numLightBinds][]int {
	type set struct {
		bind   LightBind
		lights []int
	}
	var sets []set
	switch table {
	case Table1:
		sets = []set{
			{LightPartyPuke, []int{0x01, 0x04, 0x05, 0x02}},
			{LightPartyDrop, []int{0x03, 0x38}},
			{LightPartyMad, []int{0x06, 0x08, 0x09}},
			{LightPartyArcade, []int{0x07, 0x37}},
			{LightPartyTunnel, []int{0x0e, 0x0c, 0x0a}},
			{LightPartyCycloneX5, []int{0x0b}},
			{LightPartySkyride, []int{0x16, 0x0d, 0x0f}},
			{LightPartyDuck, []int{0x10, 0x12, 0x18}},
			{LightPartyDuckDrop, []int{0x34, 0x35, 0x36}},
			{LightPartyRightOrbitScore, []int{0x1a, 0x19, 0x13}},
			{LightPartySnack, []int{0x17, 0x11, 0x14}},
			{LightPartyDemonHead, []int{0x15}},
			{LightPartyDemon5M, []int{0x1b}},
			{LightPartyDemonExtraBall, []int{0x1e}},
			{LightPartyDemonJackpot, []int{0x23}},
			{LightPartyCrazy, []int{0x29, 0x26, 0x22, 0x1f, 0x1c}},
			{LightPartyRightOrbitMultiBonus, []int{0x1d}},
			{LightPartyRightOrbitHoldBonus, []int{0x21}},
			{LightPartyRightOrbitDoubleBonus, []int{0x24}},
			{LightPartyHappyHour, []int{0x20}},
			{LightPartyMegaLaugh, []int{0x25}},
			{LightPartySideExtraBall, []int{0x27}},
			{LightPartyParty, []int{0x2a, 0x2b, 0x2c, 0x2d, 0x2e}},
			{LightPartyBonus, []int{0x2f, 0x31, 0x32, 0x30}},
			{LightPartyExtraBall, []int{0x33}},
		}
	case Table2:
		sets = []set{
			{LightSpeedPitLoopExtraBall, []int{0x01}},
			{LightSpeedPitStopHoldBonus, []int{0x02}},
			{LightSpeedPitStopSuperJackpot, []int{0x03}},
			{LightSpeedOffroadMultiBonus, []int{0x04}},
			{LightSpeedMiniRampJump, []int{0x05}},
			{LightSpeedPit, []int{0x06, 0x07, 0x08}},
			{LightSpeedPitStopGoal, []int{0x09}},
			{LightSpeedCarPartLit, []int{0x0b, 0x0d, 0x0e, 0x0c, 0x0a}},
			{LightSpeedMiniRampJackpot, []int{0x0f}},
			{LightSpeedBur, []int{0x10, 0x11, 0x12}},
			{LightSpeedNin, []int{0x13, 0x14, 0x15}},
			{LightSpeedGear, []int{0x16, 0x17, 0x18, 0x19}},
			{LightSpeedGearNum, []int{0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f}},
			{LightSpeedPlace, []int{0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29}},
			{LightSpeedBonus, []int{0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30, 0x31}},
			{LightSpeedCarPart, []int{0x32, 0x35, 0x34, 0x33, 0x36}},
			{LightSpeedExtraBall, []int{0x37}},
			{LightSpeedSpeed, []int{0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f, 0x40, 0x41, 0x42, 0x43}},
		}
	case Table3:
		sets = []set{
			{LightShowSkills, []int{0x01}},
			{LightShowDollar, []int{0x02, 0x03}},
			{LightShowTopLoop, []int{0x04}},
			{LightShowSuperJackpot, []int{0x05}},
			{LightShowCashpot, []int{0x06}},
			{LightShowDropCenter, []int{0x07, 0x08}},
			{LightShowDropLeft, []int{0x09, 0x0a}},
			{LightShowOrbitExtraBall, []int{0x0b}},
			{LightShowCashpotX5, []int{0x0c}},
			{LightShowPrize, []int{0x0d, 0x0e, 0x0f, 0x1c, 0x1d, 0x1e}},
			{LightShowJackpot, []int{0x10}},
			{LightShowCollectPrize, []int{0x11}},
			{LightShowSpinWheel, []int{0x12}},
			{LightShowWheel, []int{0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a}},
			{LightShowBillion, []int{0x1b}},
			{LightShowExtraBall, []int{0x1f}},
			{LightShowMoneyMania, []int{0x20}},
			{LightShowBonus, []int{0x21, 0x22, 0x23, 0x24, 0x25, 0x26}},
		}
	case Table4:
		sets = []set{
			{LightStonesKey, []int{0x01, 0x02, 0x03}},
			{LightStonesRip, []int{0x04, 0x05, 0x06}},
			{LightStonesTower, []int{0x07}},
			{LightStonesTowerExtraBall, []int{0x08}},
			{LightStonesTowerJackpot, []int{0x09}},
			{LightStonesTowerSuperJackpot, []int{0x0a}},
			{LightStonesTowerMillion, []int{0x0b}},
			{LightStonesTower5M, []int{0x0c}},
			{LightStonesTowerHoldBonus, []int{0x0d}},
			{LightStonesTowerDoubleBonus, []int{0x0e}},
			{LightStonesVaultLock, []int{0x0f}},
			{LightStonesVaultGhost, []int{0x10}},
			{LightStonesScreamX2, []int{0x11}},
			{LightStonesScreamDemon, []int{0x12}},
			{LightStonesMillionPlus, []int{0x13}},
			{LightStonesBone, []int{0x14, 0x15, 0x16, 0x17}},
			{LightStonesWellMultiBonus, []int{0x18}},
			{LightStonesWellLock, []int{0x19}},
			{LightStonesStone, []int{0x1a, 0x1b, 0x1c, 0x1d, 0x1e}},
			{LightStonesGhost, []int{0x20, 0x22, 0x23, 0x25, 0x24, 0x1f, 0x21, 0x26}},
			{LightStonesBonus, []int{0x27, 0x28, 0x29, 0x2a, 0x2b}},
			{LightStonesKickback, []int{0x2c}},
		}
	}
	var res [numLightBinds][]int
	for _, s := range sets {
		ids := make([]int, len(s.lights))
		for i, l := range s.lights {
			ids[i] = l - 1
		}
		res[s.bind] = ids
	}
	return res
}
