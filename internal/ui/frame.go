package ui

import (
	"context"
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/render"
	"github.com/example/vectorpad/internal/theme"
)

type paintState struct {
	width, height int
	frame         *image.RGBA // document rasterized by the event loop
	tool          editor.Tool
	style         editor.Style
	textActive    bool
	textInput     string
	textPos       editor.Point
	message       string
	messageUntil  time.Time
}

// drawFrame composites one frame: window chrome around the pre-rendered
// document. The context cancels mid-frame when a newer paint request
// supersedes this one.
func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, th *theme.Theme, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	fillRect(b.RGBA(), b.Bounds(), th.Background)
	if ctx.Err() != nil {
		return
	}

	if st.frame != nil {
		dst := st.frame.Bounds().Add(image.Pt(toolbarWidth, 0))
		draw.Draw(b.RGBA(), dst, st.frame, st.frame.Bounds().Min, draw.Src)
	}
	if ctx.Err() != nil {
		return
	}

	drawToolbar(b.RGBA(), th, st.tool, st.style, st.height)
	drawShortcutBar(b.RGBA(), th, st.width, st.height)
	if ctx.Err() != nil {
		return
	}

	if st.textActive {
		px := toolbarWidth + int(st.textPos.X)
		py := int(st.textPos.Y)
		col := th.Foreground
		if idx := fillIndexOf(st.style.Fill); idx >= 0 && fillPalette[idx].Paint != "none" {
			col = fillPalette[idx].Color
		}
		if err := render.DrawText(b.RGBA(), px, py, st.textInput+"|", col, editor.TextFontSize); err != nil {
			log.Printf("text preview: %v", err)
		}
	}
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		const msgSize = 24
		wmsg, hmsg, baseline, err := render.MeasureText(st.message, msgSize)
		if err == nil {
			px := (st.width - wmsg) / 2
			py := (st.height-hmsg)/2 + baseline
			rect := image.Rect(px-8, py-baseline-8, px+wmsg+8, py+hmsg-baseline+8)
			fillRect(b.RGBA(), rect, th.ButtonBackground)
			strokeRect(b.RGBA(), rect, th.ButtonBorder, 2)
			if err := render.DrawText(b.RGBA(), px, py, st.message, th.Foreground, msgSize); err != nil {
				log.Printf("message: %v", err)
			}
		}
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
