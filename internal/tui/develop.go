package tui

import "filmroll/internal/modulegroups"

// sessionDevelop is the in-process develop pipeline backing the groups
// panel: it owns the module records and the focus state the visibility
// engine reports into.
type sessionDevelop struct {
	modules   []modulegroups.Module
	focusedOp string
}

func newSessionDevelop() *sessionDevelop {
	return &sessionDevelop{modules: builtinModules()}
}

func (d *sessionDevelop) FocusedOp() string { return d.focusedOp }

func (d *sessionDevelop) ReleaseFocus(handle any) {
	if op, ok := handle.(string); ok && op == d.focusedOp {
		d.focusedOp = ""
	}
}

func (d *sessionDevelop) UpdateMultiShow() {}

func (d *sessionDevelop) focus(op string) {
	d.focusedOp = op
}

func (d *sessionDevelop) toggle(op string) {
	for i := range d.modules {
		if d.modules[i].Op == op {
			d.modules[i].Enabled = !d.modules[i].Enabled
			return
		}
	}
}

// builtinModules is the darkroom processing catalog. Handles double as the
// focus-release tokens.
func builtinModules() []modulegroups.Module {
	mk := func(op, name string, group modulegroups.Group, aliases ...string) modulegroups.Module {
		return modulegroups.Module{Op: op, Name: name, Aliases: aliases, DefaultGroup: group, Handle: op}
	}
	mods := []modulegroups.Module{
		mk("exposure", "exposure", modulegroups.GroupTones, "brightness"),
		mk("filmicrgb", "filmic rgb", modulegroups.GroupTones, "tone mapping", "curve"),
		mk("toneequal", "tone equalizer", modulegroups.GroupTones, "shadows", "highlights"),
		mk("colorbalancergb", "color balance rgb", modulegroups.GroupColor, "grading"),
		mk("temperature", "white balance", modulegroups.GroupColor, "wb"),
		mk("channelmixerrgb", "color calibration", modulegroups.GroupColor),
		mk("grain", "grain", modulegroups.GroupFilm, "film grain"),
		mk("negadoctor", "negadoctor", modulegroups.GroupFilm, "negative"),
		mk("denoiseprofile", "denoise (profiled)", modulegroups.GroupRepair, "noise"),
		mk("retouch", "retouch", modulegroups.GroupRepair, "heal", "clone"),
		mk("sharpen", "sharpen", modulegroups.GroupSharpness, "sharpness", "unsharp mask"),
		mk("diffuse", "diffuse or sharpen", modulegroups.GroupSharpness, "dehaze"),
		mk("vignette", "vignetting", modulegroups.GroupEffects),
		mk("watermark", "watermark", modulegroups.GroupEffects, "overlay"),
		mk("lens", "lens correction", modulegroups.GroupTechnical, "distortion"),
		mk("demosaic", "demosaic", modulegroups.GroupTechnical),
		mk("rotatepixels", "rotate pixels", modulegroups.GroupTechnical),
	}

	base := mk("basecurve", "base curve", modulegroups.GroupTones)
	base.Deprecated = true
	invert := mk("invert", "invert", modulegroups.GroupFilm, "negative")
	invert.Deprecated = true
	gamma := mk("gamma", "display encoding", modulegroups.GroupTechnical)
	gamma.Hidden = true

	mods = append(mods, base, invert, gamma)
	for i := range mods {
		switch mods[i].Op {
		case "exposure", "demosaic":
			mods[i].Enabled = true
		}
	}
	return mods
}
