package tui

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/game"
)

// Board layout constants. Each board column is two characters wide so the
// playfield looks roughly square in a terminal.
const (
	boardLeft = 2
	boardTop  = 1
	cellWidth = 2

	previewBoxW = 12
	previewBoxH = 6
)

// pieceColor maps a board color id (1-7) to a screen color.
func pieceColor(id int) core.Color {
	switch id {
	case 1:
		return core.ColorCyan
	case 2:
		return core.ColorYellow
	case 3:
		return core.ColorMagenta
	case 4:
		return core.ColorGreen
	case 5:
		return core.ColorRed
	case 6:
		return core.ColorBlue
	case 7:
		return core.ColorOrange
	}
	return core.ColorDefault
}

// drawGame renders a full simulation snapshot into the screen buffer:
// playfield, ghost and current piece, next-piece preview, score panel and
// the status banner for the non-playing states.
func drawGame(s *core.Screen, st game.State) {
	s.Clear()

	boardW := st.Board.Width()
	boardH := st.Board.Height()
	frame := core.NewRect(boardLeft, boardTop, boardW*cellWidth+2, boardH+2)
	s.DrawBox(frame)

	ox := frame.X + 1
	oy := frame.Y + 1

	// Settled cells
	for y := 0; y < boardH; y++ {
		for x := 0; x < boardW; x++ {
			if id := st.Board.Cell(x, y); id != 0 {
				drawBlock(s, ox+x*cellWidth, oy+y, '█', pieceColor(id))
			}
		}
	}

	// Ghost first so the current piece draws over it when they overlap
	if st.Status == game.StatusPlaying && st.Ghost != nil {
		for _, c := range st.Ghost.Cells() {
			if c.Y >= 0 {
				drawBlock(s, ox+c.X*cellWidth, oy+c.Y, '░', core.ColorGray)
			}
		}
	}

	if st.Current != nil {
		color := pieceColor(st.Current.Color())
		for _, c := range st.Current.Cells() {
			if c.Y >= 0 {
				drawBlock(s, ox+c.X*cellWidth, oy+c.Y, '█', color)
			}
		}
	}

	drawSidePanel(s, st, frame.Right()+2)
	drawBanner(s, st, frame)
}

// drawBlock paints one board cell as cellWidth screen characters.
func drawBlock(s *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		s.SetCell(x+i, y, r, c)
	}
}

// drawSidePanel renders the next-piece preview, counters and key help to
// the right of the playfield.
func drawSidePanel(s *core.Screen, st game.State, x int) {
	s.DrawStyledText(x+1, boardTop, "NEXT", core.ColorWhite)

	preview := core.NewRect(x, boardTop+1, previewBoxW, previewBoxH)
	s.DrawBox(preview)
	if st.Next != nil {
		color := pieceColor(st.Next.Color())
		for dy, row := range st.Next.Shape() {
			for dx, occupied := range row {
				if occupied {
					drawBlock(s, preview.X+2+dx*cellWidth, preview.Y+1+dy, '█', color)
				}
			}
		}
	}

	y := preview.Bottom() + 1
	s.DrawText(x+1, y, fmt.Sprintf("Score %6d", st.Score))
	s.DrawText(x+1, y+1, fmt.Sprintf("Level %6d", st.Level))
	s.DrawText(x+1, y+2, fmt.Sprintf("Lines %6d", st.Lines))

	help := []string{
		"←/→  move",
		"↓    soft drop",
		"spc  hard drop",
		"z/x  rotate",
		"p    pause",
		"q    quit",
	}
	for i, line := range help {
		s.DrawStyledText(x+1, y+4+i, line, core.ColorGray)
	}
}

// drawBanner overlays the status message for the menu, paused and
// game-over states, centered on the playfield.
func drawBanner(s *core.Screen, st game.State, frame core.Rect) {
	centered := func(y int, text string, c core.Color) {
		x := frame.X + 1 + (frame.W-2-len([]rune(text)))/2
		s.DrawStyledText(x, y, text, c)
	}
	midY := frame.Y + frame.H/2

	switch st.Status {
	case game.StatusMenu:
		centered(midY-2, "T E R M T R I S", core.ColorCyan)
		centered(midY, "press enter", core.ColorWhite)
		centered(midY+1, "to start", core.ColorWhite)
	case game.StatusPaused:
		centered(midY, "P A U S E D", core.ColorYellow)
	case game.StatusGameOver:
		centered(midY-2, "GAME OVER", core.ColorRed)
		centered(midY, fmt.Sprintf("score %d", st.Score), core.ColorWhite)
		centered(midY+2, "r to restart", core.ColorGray)
	}
}
