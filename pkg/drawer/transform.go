package drawer

// slideScaleFactor is how much the content shrinks at full progress:
// scale runs from 1.0 down to 0.75.
const slideScaleFactor = 0.25

// RenderTransform is the per-frame visual output the host renderer applies
// to the primary content.
type RenderTransform struct {
	// TranslationX shifts the content right by maxSlide · progress.
	TranslationX float64
	// Scale shrinks the content from 1.0 toward 0.75 as the drawer opens.
	Scale float64
	// RotationY tilts the content about the vertical axis. Zero when
	// rotation is disabled.
	RotationY float64
}

// Transform computes the content transform for the current progress.
// Renderers call this once per frame after [animation.StepTickers].
func (d *Drawer) Transform() RenderTransform {
	return d.TransformAt(d.progress.Value())
}

// TransformAt computes the content transform for an arbitrary progress
// value. Useful for renderers that interpolate or capture frames.
func (d *Drawer) TransformAt(value float64) RenderTransform {
	t := RenderTransform{
		TranslationX: d.MaxSlide() * value,
		Scale:        1.0 - slideScaleFactor*value,
	}
	if d.opts.Rotate {
		t.RotationY = value * d.opts.RotateAngle
	}
	return t
}

// ShouldClipContent reports whether the renderer should round the content's
// corners. True only at rest fully open.
func (d *Drawer) ShouldClipContent() bool {
	return d.progress.IsCompleted()
}

// BlocksContentPointer reports whether pointer events should stop reaching
// the slid content. True only at rest fully open, so an outside tap can
// close the drawer while a closed drawer's content behaves normally.
func (d *Drawer) BlocksContentPointer() bool {
	return d.progress.IsCompleted()
}
