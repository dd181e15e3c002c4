package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds returns the background rectangle of a label whose text measures
// textSize. The label is centred horizontally on ScreenPos.
func (l *Label) Bounds(textSize rl.Vector2, padding float32) rl.Rectangle {
	return rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}
}

// Draw renders the measurement label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	color := l.BaseColor
	borderWidth := float32(2)
	switch l.Priority {
	case PrioritySelected:
		color = rl.Yellow
		borderWidth = 3
	case PriorityHovered:
		color = l.HoverColor
		borderWidth = 2.5
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	rect := l.Bounds(textSize, padding)

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, borderWidth, color)

	textPos := rl.Vector2{
		X: l.ScreenPos.X - textSize.X/2,
		Y: l.ScreenPos.Y,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, color)

	return rect
}
