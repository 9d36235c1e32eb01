// Package ui runs the interactive drawing window on top of shiny. It owns
// the event loop: pointer events feed the editor's gesture dispatcher, key
// events feed shortcuts and the inline text entry mode, and paint events
// rasterize the document with the window chrome around it.
package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/vectorpad/internal/clipboard"
	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/notify"
	"github.com/example/vectorpad/internal/render"
	"github.com/example/vectorpad/internal/svg"
	"github.com/example/vectorpad/internal/theme"
)

// UI holds the state of the interactive window.
type UI struct {
	ed       *editor.Editor
	theme    *theme.Theme
	output   string
	notifier *notify.Notifier

	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies a UI during creation.
type Option func(*UI)

// WithEditor sets the editor driven by the window.
func WithEditor(ed *editor.Editor) Option { return func(u *UI) { u.ed = ed } }

// WithTheme sets the chrome palette.
func WithTheme(th *theme.Theme) Option { return func(u *UI) { u.theme = th } }

// WithOutput sets the file path used when exporting the drawing.
func WithOutput(out string) Option { return func(u *UI) { u.output = out } }

// WithNotifier routes export and copy events to desktop notifications.
func WithNotifier(n *notify.Notifier) Option { return func(u *UI) { u.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(u *UI) { u.onClose = fn } }

// New creates a UI with the provided options.
func New(opts ...Option) *UI {
	u := &UI{
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(u)
	}
	if u.ed == nil {
		u.ed = editor.New()
	}
	if u.theme == nil {
		u.theme = theme.Default()
	}
	if u.output == "" {
		u.output = editor.ExportBaseName + svg.Ext
	}
	return u
}

// NotifyDocumentChanged requests a repaint when the document mutates outside
// the event loop.
func (u *UI) NotifyDocumentChanged() {
	if u.updateCh == nil {
		return
	}
	select {
	case u.updateCh <- struct{}{}:
	default:
	}
}

func (u *UI) notifyClose() {
	u.closeOnce.Do(func() {
		if u.onClose != nil {
			u.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (u *UI) Run() { driver.Main(u.Main) }

func (u *UI) Main(s screen.Screen) {
	ed := u.ed
	th := u.theme

	// Ensure the toolbar is wide enough to fit every tool button label so
	// the UI contents are not clipped on start up.
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString("VectorPad").Ceil() + 8
	for _, entry := range toolEntries {
		if w := d.MeasureString(entry.label).Ceil() + 8; w > max {
			max = w
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	doc := ed.Document()
	width := int(doc.Width) + toolbarWidth
	height := int(doc.Height) + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "VectorPad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer u.notifyClose()

	if u.updateCh != nil {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-u.updateCh:
					w.Send(paint.Event{})
				case <-done:
					return
				}
			}
		}()
		defer close(done)
	}

	renderer := render.New(th)

	var message string
	var messageUntil time.Time
	var textInput string
	var quitRequested bool

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, th, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
		}
	}()

	announce := func(msg string) {
		message = msg
		log.Print(msg)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	actions := map[string]func(){}
	keyboardAction := map[KeyShortcut]string{}

	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}

	register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, func() {
		if err := ed.ExportFile(u.output); err != nil {
			log.Printf("save: %v", err)
			return
		}
		u.notifier.Export(u.output)
		announce(fmt.Sprintf("exported %s", u.output))
	})

	register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := clipboard.WriteText(ed.Document().Serialize()); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		u.notifier.Copy("markup")
		announce("markup copied to clipboard")
	})

	register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() {
		if n := ed.Undo(); n != nil {
			announce(fmt.Sprintf("removed %s", n.Kind))
		}
	})

	register("clear", shortcutList{{Rune: 'l', Modifiers: key.ModControl}}, func() {
		ed.Clear()
		announce("canvas cleared")
	})

	register("theme", shortcutList{{Rune: 't', Modifiers: key.ModControl}}, func() {
		announce(fmt.Sprintf("canvas theme: %s", ed.ToggleTheme()))
	})

	register("export-png", shortcutList{{Rune: 'e', Modifiers: key.ModControl}}, func() {
		out := strings.TrimSuffix(u.output, svg.Ext) + ".png"
		f, err := os.Create(out)
		if err != nil {
			log.Printf("export png: %v", err)
			return
		}
		err = renderer.EncodePNG(f, ed.Document())
		if cerr := f.Close(); cerr != nil {
			log.Printf("error closing %q: %v", out, cerr)
		}
		if err != nil {
			log.Printf("export png: %v", err)
			return
		}
		u.notifier.Render(out, nil)
		announce(fmt.Sprintf("rendered %s", out))
	})

	register("delete", shortcutList{{Code: key.CodeDeleteForward}, {Code: key.CodeDeleteBackspace}}, func() {
		ed.DeleteSelected()
	})

	register("quit", shortcutList{{Rune: 'q'}}, func() {
		quitRequested = true
	})

	handleShortcut := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	buildToolbar(th, func(t editor.Tool) {
		ed.SetTool(t)
		textInput = ""
	})

	shortcutBar = nil
	for _, entry := range []struct{ label, action string }{
		{"^S Save", "save"},
		{"^E PNG", "export-png"},
		{"^C Copy", "copy"},
		{"^Z Undo", "undo"},
		{"^L Clear", "clear"},
		{"^T Theme", "theme"},
		{"Q Quit", "quit"},
	} {
		name := entry.action
		shortcutBar = append(shortcutBar, &Shortcut{
			label:  entry.label,
			theme:  th,
			action: func() { handleShortcut(name) },
		})
	}

	canvasPoint := func(e mouse.Event) editor.Point {
		return editor.Point{X: float64(int(e.X) - toolbarWidth), Y: float64(int(e.Y))}
	}
	inCanvas := func(e mouse.Event) bool {
		return int(e.X) >= toolbarWidth && int(e.Y) < height-bottomHeight &&
			int(e.X) < toolbarWidth+int(ed.Document().Width) && int(e.Y) < int(ed.Document().Height)
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThresh {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			var textPos editor.Point
			if req := ed.TextPending(); req != nil {
				textPos = req.At
			}
			st := paintState{
				width:        width,
				height:       height,
				frame:        renderer.Render(ed.Document()),
				tool:         ed.Tool(),
				style:        ed.Style(),
				textActive:   ed.TextPending() != nil,
				textInput:    textInput,
				textPos:      textPos,
				message:      message,
				messageUntil: messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case mouse.Event:
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			p := image.Point{int(e.X), int(e.Y)}

			if p.Y >= height-bottomHeight {
				if ed.Drawing() || ed.Dragging() {
					ed.PointerLeave()
					w.Send(paint.Event{})
				}
				hoverBar = -1
				for i, sc := range shortcutBar {
					if p.In(sc.Rect()) {
						hoverBar = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							sc.Activate()
						}
						break
					}
				}
				if quitRequested {
					paintMu.Lock()
					if paintCancel != nil {
						paintCancel()
					}
					paintMu.Unlock()
					return
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}

			if p.X < toolbarWidth {
				if ed.Drawing() || ed.Dragging() {
					ed.PointerLeave()
					w.Send(paint.Event{})
				}
				hoverTool, hoverStroke, hoverFill, hoverWidth = -1, -1, -1, -1
				press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
				handled := false
				for i, cb := range toolButtons {
					if p.In(cb.Rect()) {
						hoverTool = i
						if press {
							cb.Activate()
						}
						handled = true
						break
					}
				}
				if !handled {
					for i, r := range strokeRects {
						if p.In(r) {
							hoverStroke = i
							if press {
								ed.SetStroke(strokePalette[i].Paint)
							}
							handled = true
							break
						}
					}
				}
				if !handled {
					for i, r := range fillRects {
						if p.In(r) {
							hoverFill = i
							if press {
								ed.SetFill(fillPalette[i].Paint)
							}
							handled = true
							break
						}
					}
				}
				if !handled {
					for i, r := range widthRects {
						if p.In(r) {
							hoverWidth = i
							if press {
								ed.SetStrokeWidth(widthOptions[i])
							}
							break
						}
					}
				}
				if press || e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}

			pt := canvasPoint(e)
			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				if inCanvas(e) {
					ed.PointerDown(pt)
					if ed.TextPending() != nil {
						textInput = ""
					}
					w.Send(paint.Event{})
				}
				continue
			}
			if e.Direction == mouse.DirRelease {
				if ed.Drawing() || ed.Dragging() {
					ed.PointerUp()
					w.Send(paint.Event{})
				}
				continue
			}
			if e.Direction == mouse.DirNone && (ed.Drawing() || ed.Dragging()) {
				if inCanvas(e) {
					ed.PointerMove(pt)
				} else {
					ed.PointerLeave()
				}
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if ed.TextPending() != nil {
				switch e.Code {
				case key.CodeReturnEnter:
					ed.CommitText(textInput)
					textInput = ""
					w.Send(paint.Event{})
					continue
				case key.CodeEscape:
					ed.CancelText()
					textInput = ""
					w.Send(paint.Event{})
					continue
				case key.CodeDeleteBackspace:
					if len(textInput) > 0 {
						textInput = textInput[:len(textInput)-1]
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Rune > 0 {
					textInput += string(e.Rune)
					w.Send(paint.Event{})
				}
				continue
			}
			// Shortcuts bind either a rune or a key code, never both.
			action, ok := "", false
			if e.Rune >= 0 {
				action, ok = keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]
			}
			if !ok {
				action, ok = keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
			}
			if ok {
				handleShortcut(action)
				if quitRequested {
					paintMu.Lock()
					if paintCancel != nil {
						paintCancel()
					}
					paintMu.Unlock()
					return
				}
				continue
			}
			switch unicode.ToLower(e.Rune) {
			case 's':
				ed.SetTool(editor.ToolSelect)
				w.Send(paint.Event{})
			case 'x':
				ed.SetTool(editor.ToolRect)
				w.Send(paint.Event{})
			case 'o':
				ed.SetTool(editor.ToolCircle)
				w.Send(paint.Event{})
			case 'l':
				ed.SetTool(editor.ToolLine)
				w.Send(paint.Event{})
			case 'p':
				ed.SetTool(editor.ToolPencil)
				w.Send(paint.Event{})
			case 't':
				ed.SetTool(editor.ToolText)
				w.Send(paint.Event{})
			default:
				if e.Rune == -1 {
					dx, dy := 0.0, 0.0
					switch e.Code {
					case key.CodeLeftArrow:
						dx = -1
					case key.CodeRightArrow:
						dx = 1
					case key.CodeUpArrow:
						dy = -1
					case key.CodeDownArrow:
						dy = 1
					default:
						continue
					}
					for _, rec := range ed.Selection() {
						editor.Translate(rec.Node, dx, dy)
					}
					w.Send(paint.Event{})
				}
			}
		}
	}
}
