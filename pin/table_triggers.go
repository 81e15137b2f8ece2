package pin

func (t *Table) doHitTriggers() {
	if t.tilted || !t.haveHitPos {
		return
	}
	hitX, hitY := t.hitPos[0], t.hitPos[1]+int16(t.push.offset())
	t.haveHitPos = false
	if t.ball.layer != LayerGround {
		return
	}
	for i := range t.assets.HitTriggers {
		area := &t.assets.HitTriggers[i]
		if !area.Rect.ContainsS(hitX, hitY) {
			continue
		}
		switch area.Kind {
		case HitPartyArcadeButton:
			t.partyArcadeButton()
		case HitPartyDuck0:
			t.partyHitDuck(0)
		case HitPartyDuck1:
			t.partyHitDuck(1)
		case HitPartyDuck2:
			t.partyHitDuck(2)
		case HitSpeedBur0:
			t.speedHitBur(0)
		case HitSpeedBur1:
			t.speedHitBur(1)
		case HitSpeedBur2:
			t.speedHitBur(2)
		case HitSpeedNin0:
			t.speedHitNin(0)
		case HitSpeedNin1:
			t.speedHitNin(1)
		case HitSpeedNin2:
			t.speedHitNin(2)
		case HitShowDollar0:
			t.showHitDollar(0)
		case HitShowDollar1:
			t.showHitDollar(1)
		case HitShowCenter0:
			t.showHitCenter(0)
		case HitShowCenter1:
			t.showHitCenter(1)
		case HitShowLeft0:
			t.showHitLeft(0)
		case HitShowLeft1:
			t.showHitLeft(1)
		case HitStonesBone0:
			t.stonesHitBone(0)
		case HitStonesBone1:
			t.stonesHitBone(1)
		case HitStonesBone2:
			t.stonesHitBone(2)
		case HitStonesBone3:
			t.stonesHitBone(3)
		case HitStonesStone0:
			t.stonesHitStone(0)
		case HitStonesStone1:
			t.stonesHitStone(1)
		case HitStonesStone2:
			t.stonesHitStone(2)
		case HitStonesStone3:
			t.stonesHitStone(3)
		case HitStonesStone4:
			t.stonesHitStone(4)
		}
		return
	}
}

func (t *Table) doRollTriggers() {
	x, y := t.ballCenter()
	list := t.assets.RollTriggers[t.ball.layer]
	if t.tilted {
		list = t.assets.RollTriggersTilt[t.ball.layer]
	}
	for i := range list {
		area := &list[i]
		if !area.Rect.Contains(x, y) {
			continue
		}
		if !t.haveRollTrigger || t.rollTrigger != area.Kind {
			t.rollTrigger = area.Kind
			t.haveRollTrigger = true
			t.doRollTrigger(area.Kind)
			t.prevRollTrigger = t.rollTrigger
			t.havePrevRoll = true
		}
		return
	}
	t.haveRollTrigger = false
}

func (t *Table) prevRollIs(kind RollTrigger) bool {
	return t.havePrevRoll && t.prevRollTrigger == kind
}

func (t *Table) doRollTrigger(kind RollTrigger) {
	switch kind {
	case RollDummy:
	case RollPlungerBottom:
		t.atSpring = true
	case RollPlungerGo:
		t.atSpring = false
		switch t.assets.Table {
		case Table1:
			t.party.timeoutSkillShot = 300
			t.party.timeoutSpringLoop = 120
		case Table3:
			t.dropPhysmap(PhysmapShowGatePlunger)
		}
	case RollPartyLaneInner:
		t.effect(EffectPartyRollInner)
		t.playSfxBind(SfxRollInner)
	case RollPartyLaneOuter:
		t.partyLaneOuter()
	case RollPartyOrbitTopLeft:
		if t.prevRollIs(RollPartyOrbitTopRight) {
			if t.party.timeoutSpringLoop != 0 {
				t.party.timeoutSpringLoop = 0
			} else {
				t.partyOrbitRight()
			}
		}
	case RollPartyOrbitTopRight:
		if t.prevRollIs(RollPartyOrbitTopLeft) {
			t.partyOrbitLeft()
		}
	case RollPartySecret:
		t.partySecret()
	case RollPartyTunnel:
		t.partyTunnel()
	case RollPartyArcade:
		t.partyArcade()
	case RollPartyOrbitEntryRight:
		t.party.timeoutSpringLoop = 0
	case RollPartyEnter:
		if t.prevRollIs(RollPlungerGo) {
			t.enter()
		}
	case RollPartyDemon:
		t.partyDemon()
	case RollPartySkyrideTop:
		if t.prevRollIs(RollPartySkyrideRamp) {
			t.partySkyrideTop()
		}
	case RollPartySkyrideRamp:
		t.dropPhysmap(PhysmapPartyGateSkyride)
	case RollPartySkyridePuke0:
		t.partyPuke(0)
	case RollPartySkyridePuke1:
		t.partyPuke(1)
	case RollPartySkyridePuke2:
		t.partyPuke(2)
	case RollPartySkyridePuke3:
		t.partyPuke(3)
	case RollPartyRampCyclone:
		t.partyRampCyclone()
	case RollPartyRampSnack:
		t.partyRampSnack()
	case RollPartySecretTilt:
		t.partySecretTilt()
	case RollPartyTunnelTilt:
		t.partyTunnelTilt()
	case RollSpeedLaneInner:
		t.playSfxBind(SfxRollInner)
		t.effect(EffectSpeedLaneInner)
	case RollSpeedLaneOuter:
		t.effect(EffectSpeedLaneOuter)
	case RollSpeedPitStop:
		t.speedPitStop()
	case RollSpeedEnter:
		if t.prevRollIs(RollSpeedPlungerExit) {
			t.enter()
		}
	case RollSpeedPitLoopJump:
		if t.prevRollIs(RollSpeedJumpPre) {
			t.speedRampJump()
		} else if t.prevRollIs(RollSpeedPitLoopPre) {
			t.speedPitLoop()
		}
	case RollSpeedRampOffroad:
		t.speedRampOffroad()
	case RollSpeedPitLoopPre:
	case RollSpeedPit0:
		t.speedRollPit(0)
	case RollSpeedPit1:
		t.speedRollPit(1)
	case RollSpeedPit2:
		t.speedRollPit(2)
	case RollSpeedOffroadExit:
		t.effect(EffectSpeedOffroadExit)
	case RollSpeedRampMilesRight:
		t.speed.timeoutMilesRight = 390
		if t.speed.timeoutMilesLeft != 0 {
			t.speed.timeoutMilesLeft = 0
			t.speedOvertake()
		}
		t.speedBumpMiles()
	case RollSpeedRampMilesLeft:
		t.speed.timeoutMilesLeft = 390
		if t.speed.timeoutMilesRight != 0 {
			t.speed.timeoutMilesRight = 0
			t.speedOvertake()
		}
		t.speedBumpMiles()
	case RollSpeedJumpPre:
	case RollSpeedPlungerExit:
		t.ball.speed[1] = 0
		t.ball.layer = LayerGround
	case RollShowLaneInner:
		t.effect(EffectShowLaneInner)
		t.playSfxBind(SfxRollInner)
	case RollShowLaneOuter:
		t.effect(EffectShowLaneOuter)
		t.playSfxBindVolume(SfxRollTrigger, 0x20)
	case RollShowEnter:
		if t.prevRollIs(RollPlungerGo) {
			t.raisePhysmap(PhysmapShowGatePlunger)
			t.enter()
		}
	case RollShowOrbitLeft:
		t.showOrbitLeft()
	case RollShowOrbitRight:
		t.showOrbitRight()
	case RollShowCashpot:
		t.showCashpot()
	case RollShowVault:
		t.showVault()
	case RollShowVaultExit:
		t.raisePhysmap(PhysmapShowGateVaultExit)
	case RollShowRampSkillEntry:
		t.effect(EffectShowSkillsEntry)
	case RollShowRampTopEntry:
		t.effect(EffectShowTopEntry)
	case RollShowRampLoopEntry:
		t.effect(EffectShowLoopEntry)
	case RollShowRampTop:
		t.showRampTop()
	case RollShowRampSkillMark:
	case RollShowRampSkill:
		if t.prevRollIs(RollShowRampSkillMark) {
			t.showRampSkills()
		}
	case RollShowRampRight:
		t.showRampRight()
	case RollShowRampLoop:
		t.showRampLoop()
	case RollShowRampTopSecondary:
		t.incrJackpot()
	case RollStonesLaneInnerLeft, RollStonesLaneInnerRight:
		t.playSfxBind(SfxRollInner)
		t.scorePremult(BcdFromASCII([]byte("10070")), BcdFromASCII([]byte("1080")))
	case RollStonesLaneOuterLeft:
		t.playSfxBind(SfxRollTrigger)
		t.score(BcdFromASCII([]byte("500010")), BcdZero)
	case RollStonesLaneOuterRight:
		t.playSfxBind(SfxRollTrigger)
		t.score(BcdFromASCII([]byte("500030")), BcdZero)
	case RollStonesKeyEntry:
		t.stonesRollKeyEntry()
	case RollStonesRampTower:
		t.dropPhysmap(PhysmapStonesGateRampTower)
		t.modeCountRamp()
	case RollStonesKey0:
		t.stonesRollKey(0)
	case RollStonesKey1:
		t.stonesRollKey(1)
	case RollStonesKey2:
		t.stonesRollKey(2)
	case RollStonesWell:
		t.stonesWell()
	case RollStonesVault:
		t.stonesVault()
	case RollStonesKeyClose:
		t.dropPhysmap(PhysmapStonesGateRampTower)
	case RollStonesTower:
		t.stonesTower()
	case RollStonesRampTop:
		t.stonesRampTop()
	case RollStonesRip0:
		t.stonesRollRip(0)
	case RollStonesRip1:
		t.stonesRollRip(1)
	case RollStonesRip2:
		t.stonesRollRip(2)
	case RollStonesRampTopExit:
		t.stones.timeoutTopLoop = 300
	case RollStonesRampScreams:
		t.stonesRampScreams()
	case RollStonesRampLeftToLane:
		t.stonesRampLeftToLane()
	case RollStonesRampLeftToVault:
		t.stonesRampLeftToVault()
	case RollStonesRampLeftFixup0:
		t.dropPhysmap(PhysmapStonesGateRampLeft1)
	case RollStonesRampLeftFixup1:
		t.raisePhysmap(PhysmapStonesGateRampLeft1)
	case RollStonesRampLeftFixup2:
		t.dropPhysmap(PhysmapStonesGateRampLeft2)
	case RollStonesRampLeftFixup3:
		t.raisePhysmap(PhysmapStonesGateRampLeft2)
	case RollStonesVaultExit:
		t.stones.vaultFromRamp = true
		t.stonesIncrVault()
	case RollStonesEnter:
		t.enter()
		t.ball.layer = LayerGround
	case RollStonesWellTilt:
		t.stonesWellTilt()
	case RollStonesTowerTilt:
		t.stonesTowerTilt()
	}
}
