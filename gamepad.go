package forms

import (
	"fmt"
	"image"
)

// ButtonState is the press state of a gamepad button.
type ButtonState int

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

// String returns "released" or "pressed".
func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "released"
}

// padButton is one on-screen button: a screen-space hit region and up to
// two sprites, the focus sprite shown while pressed.
type padButton struct {
	bounds Rect

	defaultUV  UVs
	focusUV    UVs
	hasDefault bool
	hasFocus   bool

	state   ButtonState
	contact int
}

// padJoystick is one on-screen joystick. The inner and outer region X, Y
// are the joystick center in screen space; W, H are the sprite draw sizes.
type padJoystick struct {
	inner Rect
	outer Rect

	innerUV  UVs
	outerUV  UVs
	hasInner bool
	hasOuter bool

	radius       float64
	displacement Vec2
	direction    Vec2
	contact      int
}

// Gamepad is a virtual gamepad: a set of touch buttons and joysticks laid
// out in screen space and drawn from a shared sprite texture. It consumes
// raw touch events and exposes button and joystick state for game code to
// poll each frame.
//
// Gamepad is not safe for concurrent use; feed it events and poll it from
// one goroutine, typically the frame loop.
type Gamepad struct {
	tw, th float64
	atlas  image.Image

	buttons   []padButton
	joysticks []padJoystick
}

// NewGamepad creates a gamepad with the given number of joystick and
// button slots, drawing from a texture of texW by texH pixels. Slots are
// inert until configured with SetButton or SetJoystick.
func NewGamepad(texW, texH float64, joysticks, buttons int) *Gamepad {
	g := &Gamepad{
		tw:        texW,
		th:        texH,
		buttons:   make([]padButton, buttons),
		joysticks: make([]padJoystick, joysticks),
	}
	for i := range g.buttons {
		g.buttons[i].contact = invalidContact
	}
	for i := range g.joysticks {
		g.joysticks[i].contact = invalidContact
	}
	return g
}

// Atlas returns the gamepad's sprite texture, when it was loaded from a
// gamepad file. Gamepads built with NewGamepad return nil.
func (g *Gamepad) Atlas() image.Image { return g.atlas }

// TextureSize returns the sprite texture dimensions in pixels.
func (g *Gamepad) TextureSize() (w, h float64) { return g.tw, g.th }

// ButtonCount returns the number of button slots.
func (g *Gamepad) ButtonCount() int { return len(g.buttons) }

// JoystickCount returns the number of joystick slots.
func (g *Gamepad) JoystickCount() int { return len(g.joysticks) }

// SetButton configures a button slot. bounds is the screen-space hit and
// draw rectangle. defaultRegion and focusRegion are pixel regions within
// the texture; either may be nil to leave that sprite unset. The focus
// sprite, when set, is drawn while the button is pressed.
func (g *Gamepad) SetButton(index int, bounds Rect, defaultRegion, focusRegion *Rect) error {
	if index < 0 || index >= len(g.buttons) {
		return fmt.Errorf("forms: button index %d out of range [0, %d)", index, len(g.buttons))
	}

	b := &g.buttons[index]
	b.bounds = bounds

	if defaultRegion != nil {
		b.defaultUV = GenerateUVs(g.tw, g.th, defaultRegion.X, defaultRegion.Y, defaultRegion.W, defaultRegion.H)
		b.hasDefault = true
	}
	if focusRegion != nil {
		b.focusUV = GenerateUVs(g.tw, g.th, focusRegion.X, focusRegion.Y, focusRegion.W, focusRegion.H)
		b.hasFocus = true
	}
	return nil
}

// SetJoystick configures a joystick slot. The inner and outer rectangles
// position the joggle sprites: X, Y is the joystick center in screen space
// and W, H the draw size. innerTex and outerTex are pixel regions within
// the texture; either may be nil. radius is the maximum thumb travel in
// pixels and also sizes the square hit area around the center.
func (g *Gamepad) SetJoystick(index int, inner Rect, innerTex *Rect, outer Rect, outerTex *Rect, radius float64) error {
	if index < 0 || index >= len(g.joysticks) {
		return fmt.Errorf("forms: joystick index %d out of range [0, %d)", index, len(g.joysticks))
	}
	if radius <= 0 {
		return fmt.Errorf("forms: joystick %d: radius must be positive, got %g", index, radius)
	}

	j := &g.joysticks[index]
	j.radius = radius
	j.inner = inner
	j.outer = outer

	if innerTex != nil {
		j.innerUV = GenerateUVs(g.tw, g.th, innerTex.X, innerTex.Y, innerTex.W, innerTex.H)
		j.hasInner = true
	}
	if outerTex != nil {
		j.outerUV = GenerateUVs(g.tw, g.th, outerTex.X, outerTex.Y, outerTex.W, outerTex.H)
		j.hasOuter = true
	}
	return nil
}

// ButtonBounds returns the screen-space hit rectangle of the button at
// index, or the zero Rect when index is out of range.
func (g *Gamepad) ButtonBounds(index int) Rect {
	if index < 0 || index >= len(g.buttons) {
		return Rect{}
	}
	return g.buttons[index].bounds
}

// JoystickCenter returns the screen-space center of the joystick at index.
func (g *Gamepad) JoystickCenter(index int) Vec2 {
	if index < 0 || index >= len(g.joysticks) {
		return Vec2{}
	}
	j := &g.joysticks[index]
	return Vec2{X: j.inner.X, Y: j.inner.Y}
}

// JoystickRadius returns the travel radius of the joystick at index.
func (g *Gamepad) JoystickRadius(index int) float64 {
	if index < 0 || index >= len(g.joysticks) {
		return 0
	}
	return g.joysticks[index].radius
}

// ButtonState returns the press state of the button at index.
func (g *Gamepad) ButtonState(index int) ButtonState {
	if index < 0 || index >= len(g.buttons) {
		return ButtonReleased
	}
	return g.buttons[index].state
}

// JoystickActive reports whether a contact currently owns the joystick.
func (g *Gamepad) JoystickActive(index int) bool {
	if index < 0 || index >= len(g.joysticks) {
		return false
	}
	return g.joysticks[index].contact != invalidContact
}

// JoystickDirection returns the joystick direction with Y positive up.
// Within the travel radius the magnitude scales from 0 at center to 1 at
// the rim; beyond the radius it is a unit vector. Inactive joysticks
// return the zero vector.
func (g *Gamepad) JoystickDirection(index int) Vec2 {
	if index < 0 || index >= len(g.joysticks) {
		return Vec2{}
	}
	return g.joysticks[index].direction
}

// JoystickDisplacement returns the raw thumb offset from the joystick
// center in screen coordinates (Y positive down), unclamped.
func (g *Gamepad) JoystickDisplacement(index int) Vec2 {
	if index < 0 || index >= len(g.joysticks) {
		return Vec2{}
	}
	return g.joysticks[index].displacement
}

// Touch feeds one touch event into the gamepad. x, y are screen
// coordinates and contact identifies the finger; each button or joystick
// is owned by the contact that pressed it and ignores all others until
// that contact releases. Contacts at or above MaxTouchPoints are ignored.
func (g *Gamepad) Touch(x, y float64, event TouchEventType, contact int) {
	if contact < 0 || contact >= MaxTouchPoints {
		return
	}

	for i := range g.buttons {
		b := &g.buttons[i]
		switch event {
		case TouchPress:
			if b.contact == invalidContact && b.bounds.Contains(x, y) {
				b.contact = contact
				b.state = ButtonPressed
			}
		case TouchRelease:
			if b.contact == contact {
				b.contact = invalidContact
				b.state = ButtonReleased
			}
		}
	}

	for i := range g.joysticks {
		j := &g.joysticks[i]
		switch event {
		case TouchPress:
			// Claim the joystick when pressed within the square hit area
			// around its center.
			cx, cy, r := j.inner.X, j.inner.Y, j.radius
			if j.contact == invalidContact &&
				x >= cx-r && x <= cx+r && y >= cy-r && y <= cy+r {
				j.contact = contact
				j.displacement = Vec2{}
				j.direction = Vec2{}
			}
			// A press also updates the thumb, like a move.
			j.update(x, y, contact)
		case TouchMove:
			j.update(x, y, contact)
		case TouchRelease:
			if j.contact == contact {
				j.contact = invalidContact
				j.displacement = Vec2{}
				j.direction = Vec2{}
			}
		}
	}
}

// update recomputes displacement and direction from the contact position,
// if the contact owns this joystick.
func (j *padJoystick) update(x, y float64, contact int) {
	if j.contact != contact {
		return
	}

	dx := x - j.inner.X
	dy := y - j.inner.Y

	// Y is negated so the direction is positive up. Beyond the travel
	// radius the direction clamps to a unit vector.
	dir := Vec2{X: dx, Y: -dy}
	if dir.LengthSq() <= j.radius*j.radius {
		j.direction = dir.Mul(1 / j.radius)
	} else {
		j.direction = dir.Normalize()
	}

	j.displacement = Vec2{X: dx, Y: dy}
}

// Draw emits the gamepad sprites through the batch: every configured
// button (focus sprite while pressed, when set), then each joystick's
// outer joggle centered on the joystick and inner joggle offset by the
// thumb displacement, clamped to the travel radius.
func (g *Gamepad) Draw(batch SpriteBatch, tint RGBA) error {
	batch.Begin()

	for i := range g.buttons {
		b := &g.buttons[i]
		switch {
		case b.state == ButtonPressed && b.hasFocus:
			batch.Draw(b.bounds.X, b.bounds.Y, b.bounds.W, b.bounds.H, b.focusUV, tint)
		case b.hasDefault:
			batch.Draw(b.bounds.X, b.bounds.Y, b.bounds.W, b.bounds.H, b.defaultUV, tint)
		}
	}

	for i := range g.joysticks {
		j := &g.joysticks[i]

		if j.hasOuter {
			x := j.outer.X - j.outer.W/2
			y := j.outer.Y - j.outer.H/2
			batch.Draw(x, y, j.outer.W, j.outer.H, j.outerUV, tint)
		}

		if j.hasInner {
			offset := j.displacement.ClampLength(j.radius)
			x := j.inner.X + offset.X - j.inner.W/2
			y := j.inner.Y + offset.Y - j.inner.H/2
			batch.Draw(x, y, j.inner.W, j.inner.H, j.innerUV, tint)
		}
	}

	return batch.End()
}
