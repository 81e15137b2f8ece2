package pin

func (t *Table) playSfxBind(bind SfxBind) {
	t.playSfxBindVolume(bind, 0x40)
}

func (t *Table) playSfxBindVolume(bind SfxBind, volume uint8) {
	if sfx := t.assets.SfxBinds[bind]; sfx != nil {
		t.player.PlaySfx(*sfx, volume)
	}
}

func (t *Table) playJingleBind(bind JingleBind) bool {
	return t.sequencer.PlayJingle(t.assets.jingle(bind), false, NoMusicOverride)
}

func (t *Table) playJingleBindForce(bind JingleBind) bool {
	return t.sequencer.PlayJingle(t.assets.jingle(bind), true, NoMusicOverride)
}

// playJingleBindSilence plays the jingle but parks the resume position on
// silence; tilt uses this so nothing comes back after the cue.
func (t *Table) playJingleBindSilence(bind JingleBind) bool {
	silence := t.assets.jingle(JingleSilence)
	return t.sequencer.PlayJingle(t.assets.jingle(bind), false, silence.Position)
}

func (t *Table) setMusicSilence() {
	t.sequencer.SetMusic(t.assets.jingle(JingleSilence).Position)
}

func (t *Table) setMusicPlunger() {
	bind := JinglePlunger
	if t.options.NoMusic {
		bind = JingleSilence
	}
	t.sequencer.SetMusic(t.assets.jingle(bind).Position)
}

func (t *Table) setMusicMain() {
	bind := JingleMain
	if t.options.NoMusic {
		bind = JingleSilence
	}
	t.sequencer.SetMusic(t.assets.jingle(bind).Position)
}

func (t *Table) playJinglePlunger() {
	bind := JinglePlunger
	if t.options.NoMusic {
		bind = JingleSilence
	}
	jingle := t.assets.jingle(bind)
	t.sequencer.PlayJingle(jingle, false, jingle.Position)
}
