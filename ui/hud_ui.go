package ui

import (
	"bytes"
	"image"
	"image/color"
	"log"

	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/systems"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD holds the ebitenui widgets drawn over the greeting: the audio
// buttons, the start gate and the optional image override panel.
type HUD struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	controls      *widget.Container
	gatePanel     *widget.Container
	overridePanel *widget.Container

	muteButton  *widget.Button
	playButton  *widget.Button
	slotButton  *widget.Button
	linkInput   *widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the HUD for a configured greeting scene
func NewHUD(e *ecs.ECS) *HUD {
	h := &HUD{ecs: e}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HUD) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	h.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	h.controls = h.buildControls()
	rootContainer.AddChild(h.controls)

	h.overridePanel = h.buildOverridePanel()
	rootContainer.AddChild(h.overridePanel)

	h.gatePanel = h.buildGatePanel()
	rootContainer.AddChild(h.gatePanel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildControls lays out the Mute and Play buttons in the top-right corner
func (h *HUD) buildControls() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.muteButton = h.newButton(muteLabel(true), h.buttonImage(), func() {
		systems.PressMute(h.ecs)
		h.UpdateUI()
	})
	container.AddChild(h.muteButton)

	h.playButton = h.newButton(playLabel(false), h.buttonImage(), func() {
		systems.PressPlay(h.ecs)
		h.UpdateUI()
	})
	container.AddChild(h.playButton)

	return container
}

func (h *HUD) buildGatePanel() *widget.Container {
	padding := widget.Insets{Top: 22, Bottom: 22, Left: 28, Right: 28}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.GateTitle, &h.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.GateBody, &h.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))
	panel.AddChild(h.newButton("Start", h.startButtonImage(), func() {
		systems.DismissGate(h.ecs)
		h.UpdateUI()
	}))

	return panel
}

// buildOverridePanel lets the viewer swap any photo or the skyline for a
// link or a dropped image file
func (h *HUD) buildOverridePanel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.RGBA{17, 17, 17, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Your photos (drop a file or paste a link)", &h.smallFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	h.slotButton = h.newButton(cfg.Assets.Slots()[0], h.buttonImage(), func() {
		systems.CycleOverrideSlot(h.ecs)
		h.UpdateUI()
	})
	row.AddChild(h.slotButton)

	h.linkInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     euiimage.NewNineSliceColor(color.RGBA{50, 50, 60, 255}),
			Disabled: euiimage.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&h.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("https://..."),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(h.linkInput)

	row.AddChild(h.newButton("Apply", h.buttonImage(), func() {
		systems.ApplyLink(h.ecs, h.linkInput.GetText())
		h.linkInput.SetText("")
		h.UpdateUI()
	}))
	row.AddChild(h.newButton("Clear all", h.buttonImage(), func() {
		systems.ClearAllOverrides(h.ecs)
		h.UpdateUI()
	}))
	panel.AddChild(row)

	h.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(h.statusLabel)

	return panel
}

func (h *HUD) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonMinWidth, 28),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &h.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.TextColor,
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (h *HUD) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     euiimage.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    euiimage.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  euiimage.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: euiimage.NewNineSliceColor(color.RGBA{40, 40, 40, 120}),
	}
}

func (h *HUD) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     euiimage.NewNineSliceColor(cfg.UI.StartIdle),
		Hover:    euiimage.NewNineSliceColor(cfg.UI.StartHover),
		Pressed:  euiimage.NewNineSliceColor(cfg.UI.StartPressed),
		Disabled: euiimage.NewNineSliceColor(color.RGBA{40, 50, 70, 255}),
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "Unmute"
	}
	return "Mute"
}

func playLabel(playing bool) string {
	if playing {
		return "Pause"
	}
	return "Play"
}

// UpdateUI syncs labels and panel visibility with the scene state
func (h *HUD) UpdateUI() {
	state := systems.GetInteraction(h.ecs)
	if state == nil {
		return
	}

	if textWidget := h.muteButton.Text(); textWidget != nil {
		textWidget.Label = muteLabel(state.Muted())
	}
	if textWidget := h.playButton.Text(); textWidget != nil {
		textWidget.Label = playLabel(state.Playing())
	}

	setVisible(h.gatePanel, state.GateShown())

	ov := systems.GetOverride(h.ecs)
	showOverrides := ov != nil && ov.Enabled && !state.GateShown()
	setVisible(h.overridePanel, showOverrides)
	if ov != nil {
		if textWidget := h.slotButton.Text(); textWidget != nil {
			textWidget.Label = systems.SelectedSlot(ov)
		}
		h.statusLabel.Label = ov.Status
	}
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide_Blocking
	}
}

// Blockers returns the screen rectangles where pointer presses belong to the HUD
func (h *HUD) Blockers() []image.Rectangle {
	var rects []image.Rectangle
	for _, c := range []*widget.Container{h.controls, h.overridePanel, h.gatePanel} {
		w := c.GetWidget()
		if w.Visibility == widget.Visibility_Show && !w.Rect.Empty() {
			rects = append(rects, w.Rect)
		}
	}
	return rects
}

// Update runs ebitenui and then resyncs the widgets with the scene
func (h *HUD) Update() {
	h.UI.Update()
	h.UpdateUI()
	systems.SetTextFocus(h.ecs, h.TypingLink())
}

// TypingLink reports whether the link field on the visible override panel has focus
func (h *HUD) TypingLink() bool {
	return h.overridePanel.GetWidget().Visibility == widget.Visibility_Show && h.linkInput.IsFocused()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
