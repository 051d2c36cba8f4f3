// Package ui is the fyne overlay window. It implements control.Surface: the
// refresh loop pushes display values in through the setters and the buttons
// invoke the callbacks registered by control.Bind.
package ui

import (
	"image/color"
	"strconv"
	"sync"

	"QuakeTools/control"
	"QuakeTools/i18n"
	"QuakeTools/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ItemWidget renders one countdown with its start and reset buttons.
type ItemWidget struct {
	mu      sync.Mutex
	display timer.Display
	onStart func()
	onReset func()

	nameText        *canvas.Text
	timeText        *canvas.Text
	colorFilterRect *canvas.Rectangle
	borderRect      *canvas.Rectangle
	startButton     *widget.Button
	resetButton     *widget.Button
	content         fyne.CanvasObject
}

// NewItemWidget builds the panel for an item showing its full duration.
func NewItemWidget(cfg timer.ItemConfig) *ItemWidget {
	w := &ItemWidget{display: timer.Display{Seconds: int(cfg.Duration)}}

	w.nameText = canvas.NewText(i18n.T(cfg.Item.String()), color.White)
	w.nameText.TextSize = timer.FontSize

	w.timeText = canvas.NewText(strconv.Itoa(int(cfg.Duration)), color.White)
	w.timeText.TextStyle.Bold = true
	w.timeText.TextSize = timer.FontSizeTime

	w.colorFilterRect = canvas.NewRectangle(timer.BackgroundColor)
	w.colorFilterRect.CornerRadius = timer.CornerRadius

	w.borderRect = canvas.NewRectangle(color.Transparent)
	w.borderRect.SetMinSize(fyne.NewSize(timer.ItemWidth, timer.ItemHeight))
	w.borderRect.CornerRadius = timer.CornerRadius
	w.borderRect.StrokeWidth = 2

	w.startButton = widget.NewButton(i18n.T("Start"), func() { w.invoke(&w.onStart) })
	w.resetButton = widget.NewButton(i18n.T("Reset"), func() { w.invoke(&w.onReset) })

	labels := container.New(layout.NewVBoxLayout(),
		container.New(layout.NewCenterLayout(), w.nameText),
		container.New(layout.NewCenterLayout(), w.timeText),
		container.NewGridWithColumns(2, w.startButton, w.resetButton),
	)
	w.content = container.NewStack(w.colorFilterRect, container.NewPadded(labels), w.borderRect)
	return w
}

func (w *ItemWidget) invoke(fn *func()) {
	w.mu.Lock()
	f := *fn
	w.mu.Unlock()
	if f != nil {
		f()
	}
}

// GetCanvasObject returns the root object of the panel.
func (w *ItemWidget) GetCanvasObject() fyne.CanvasObject {
	return w.content
}

// StartButton returns the panel's start button.
func (w *ItemWidget) StartButton() *widget.Button {
	return w.startButton
}

// ResetButton returns the panel's reset button.
func (w *ItemWidget) ResetButton() *widget.Button {
	return w.resetButton
}

// Display returns the values last pushed to the panel.
func (w *ItemWidget) Display() timer.Display {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.display
}

func (w *ItemWidget) set(fn func(*timer.Display)) {
	w.mu.Lock()
	fn(&w.display)
	d := w.display
	w.mu.Unlock()

	fyne.Do(func() { w.render(d) })
}

func (w *ItemWidget) render(d timer.Display) {
	var fill, stroke color.Color = timer.BackgroundColor, color.Transparent
	if d.Active {
		fill = withAlpha(timer.ActiveColor, 0x80)
		switch {
		case d.Critical:
			stroke = timer.CriticalColor
			fill = withAlpha(timer.CriticalColor, 0x80)
		case d.Warning:
			stroke = timer.WarningColor
			fill = withAlpha(timer.WarningColor, 0x80)
		}
	}

	w.timeText.Text = strconv.Itoa(d.Seconds)
	w.colorFilterRect.FillColor = fill
	w.borderRect.StrokeColor = stroke

	w.timeText.Refresh()
	w.colorFilterRect.Refresh()
	w.borderRect.Refresh()
}

// Overlay is the main window. It implements control.Surface and
// control.Handle.
type Overlay struct {
	mu       sync.Mutex
	window   fyne.Window
	closed   bool
	onClosed func()
	items    map[timer.Item]*ItemWidget
}

var _ control.Surface = (*Overlay)(nil)
var _ control.Handle = (*Overlay)(nil)

// CreateMainWindow builds the overlay window with one panel per item.
func CreateMainWindow(fyneApp fyne.App, items []timer.ItemConfig) *Overlay {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "QuakeLive Tools"
	}
	o := &Overlay{
		window: fyneApp.NewWindow(title),
		items:  make(map[timer.Item]*ItemWidget, len(items)),
	}

	list := container.NewVBox()
	for _, cfg := range items {
		w := NewItemWidget(cfg)
		o.items[cfg.Item] = w
		list.Add(w.GetCanvasObject())

		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(0, timer.ItemSpacing))
		list.Add(spacer)
	}

	o.window.SetContent(list)
	o.window.SetFixedSize(true)
	o.window.SetOnClosed(o.markClosed)
	return o
}

// Window returns the underlying fyne window.
func (o *Overlay) Window() fyne.Window {
	return o.window
}

// Item returns the panel for an item.
func (o *Overlay) Item(item timer.Item) *ItemWidget {
	return o.items[item]
}

// SetOnClosed sets a function to run after the window is closed.
func (o *Overlay) SetOnClosed(fn func()) {
	o.mu.Lock()
	o.onClosed = fn
	o.mu.Unlock()
}

func (o *Overlay) markClosed() {
	o.mu.Lock()
	o.closed = true
	fn := o.onClosed
	o.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Acquire returns the overlay while its window is open.
func (o *Overlay) Acquire() (control.Surface, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil, false
	}
	return o, true
}

func (o *Overlay) update(item timer.Item, fn func(*timer.Display)) {
	if w, ok := o.items[item]; ok {
		w.set(fn)
	}
}

func (o *Overlay) register(item timer.Item, start bool, fn func()) {
	w, ok := o.items[item]
	if !ok {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if start {
		w.onStart = fn
	} else {
		w.onReset = fn
	}
}

func (o *Overlay) SetMegahealthTimer(v int) {
	o.update(timer.Megahealth, func(d *timer.Display) { d.Seconds = v })
}

func (o *Overlay) SetIsMegahealthActive(v bool) {
	o.update(timer.Megahealth, func(d *timer.Display) { d.Active = v })
}

func (o *Overlay) SetIsMegahealthWarning(v bool) {
	o.update(timer.Megahealth, func(d *timer.Display) { d.Warning = v })
}

func (o *Overlay) SetIsMegahealthCritical(v bool) {
	o.update(timer.Megahealth, func(d *timer.Display) { d.Critical = v })
}

func (o *Overlay) SetRedArmorTimer(v int) {
	o.update(timer.RedArmor, func(d *timer.Display) { d.Seconds = v })
}

func (o *Overlay) SetIsRedArmorActive(v bool) {
	o.update(timer.RedArmor, func(d *timer.Display) { d.Active = v })
}

func (o *Overlay) SetIsRedArmorWarning(v bool) {
	o.update(timer.RedArmor, func(d *timer.Display) { d.Warning = v })
}

func (o *Overlay) SetIsRedArmorCritical(v bool) {
	o.update(timer.RedArmor, func(d *timer.Display) { d.Critical = v })
}

func (o *Overlay) OnStartMegahealthTimer(fn func()) { o.register(timer.Megahealth, true, fn) }
func (o *Overlay) OnResetMegahealthTimer(fn func()) { o.register(timer.Megahealth, false, fn) }
func (o *Overlay) OnStartRedArmorTimer(fn func())   { o.register(timer.RedArmor, true, fn) }
func (o *Overlay) OnResetRedArmorTimer(fn func())   { o.register(timer.RedArmor, false, fn) }

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
