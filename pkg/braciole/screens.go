package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const weatherIconSize int32 = 44

// render clears the panel and draws the screen selected by the menu
// position. Called only when the dispatcher reported a visible change.
func (c *Controller) render(now time.Time) {
	win := internal.GetWindow()
	renderer := win.Renderer
	theme := internal.GetTheme()

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	switch c.menu.CurrentScreen() {
	case ScreenTime:
		c.drawTimeScreen(renderer, theme, now)
	case ScreenWeather:
		if c.menu.Sub() == 0 {
			c.drawWeatherMain(renderer, theme)
		} else {
			c.drawWeatherDetails(renderer, theme)
		}
	case ScreenCrypto:
		c.drawCryptoScreen(renderer, theme)
	case ScreenSearch:
		c.drawSearchScreen(renderer, theme)
	case ScreenSettings:
		c.drawSettingsScreen(renderer, theme)
	}

	win.Present()
}

func (c *Controller) drawTimeScreen(renderer *sdl.Renderer, theme internal.Theme, now time.Time) {
	width := constants.DisplayWidth
	fonts := internal.Fonts

	c.text.DrawCentered(renderer, fonts.MediumFont, "TIME", width, 50, theme.DimColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, now.Format("2006-01-02"), width, 95, theme.DimColor)
	c.text.DrawCentered(renderer, fonts.LargeFont, now.Format("15:04:05"), width, 130, theme.TextColor)

	c.text.DrawCentered(renderer, fonts.MediumFont, "v", width, 200, theme.AccentColor)
}

func (c *Controller) drawWeatherMain(renderer *sdl.Renderer, theme internal.Theme) {
	width := constants.DisplayWidth
	fonts := internal.Fonts
	snapshot := c.weatherSnapshot()

	c.text.DrawCentered(renderer, fonts.MediumFont, "WEATHER", width, 30, theme.DimColor)

	if icon := c.icons.Texture(renderer, internal.IconForCode(snapshot.Code)); icon != nil {
		renderer.Copy(icon, nil, &sdl.Rect{
			X: (width - weatherIconSize) / 2,
			Y: 68,
			W: weatherIconSize,
			H: weatherIconSize,
		})
	}

	c.text.DrawCentered(renderer, fonts.MediumFont, snapshot.Desc, width, 130, theme.CoolColor)
	c.text.DrawCentered(renderer, fonts.LargeFont, snapshot.Temp, width, 160, theme.WarmColor)

	c.text.DrawCentered(renderer, fonts.MediumFont, "^", width, 10, theme.AccentColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, "v", width, 210, theme.AccentColor)
	c.text.Draw(renderer, fonts.MediumFont, "->", width-40, 115, theme.ConfirmColor)
}

func (c *Controller) drawWeatherDetails(renderer *sdl.Renderer, theme internal.Theme) {
	width := constants.DisplayWidth
	fonts := internal.Fonts
	snapshot := c.weatherSnapshot()

	c.text.DrawCentered(renderer, fonts.MediumFont, "DETAILS", width, 30, theme.DimColor)

	c.text.Draw(renderer, fonts.MediumFont, "Temp", 30, 75, theme.DimColor)
	c.text.Draw(renderer, fonts.MediumFont, snapshot.Temp, 150, 75, theme.WarmColor)

	c.text.Draw(renderer, fonts.MediumFont, "Wind", 30, 110, theme.DimColor)
	c.text.Draw(renderer, fonts.MediumFont, snapshot.Wind, 150, 110, theme.ConfirmColor)

	c.text.Draw(renderer, fonts.MediumFont, "Humidity", 30, 145, theme.DimColor)
	c.text.Draw(renderer, fonts.MediumFont, snapshot.Humidity, 150, 145, theme.CoolColor)

	c.text.DrawCentered(renderer, fonts.MediumFont, "^", width, 10, theme.AccentColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, "v", width, 210, theme.AccentColor)
	c.text.Draw(renderer, fonts.MediumFont, "<-", 15, 115, theme.ConfirmColor)
}

func (c *Controller) drawCryptoScreen(renderer *sdl.Renderer, theme internal.Theme) {
	width := constants.DisplayWidth
	fonts := internal.Fonts
	snapshot := c.cryptoSnapshot()

	c.text.DrawCentered(renderer, fonts.MediumFont, "CRYPTO", width, 30, theme.TextColor)

	rowColors := []sdl.Color{theme.WarmColor, theme.CoolColor, theme.DimColor}
	y := int32(75)
	for i, quote := range snapshot.Quotes {
		color := rowColors[i%len(rowColors)]
		c.text.Draw(renderer, fonts.MediumFont, quote.Base, 20, y, color)
		c.text.Draw(renderer, fonts.MediumFont, quote.Display, 90, y, color)
		y += 45
	}

	c.text.DrawCentered(renderer, fonts.MediumFont, "^", width, 10, theme.AccentColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, "v", width, 210, theme.AccentColor)
}

func (c *Controller) drawSearchScreen(renderer *sdl.Renderer, theme internal.Theme) {
	width := constants.DisplayWidth
	fonts := internal.Fonts

	c.text.DrawCentered(renderer, fonts.SmallFont, "SEARCH", width, 8, theme.TextColor)
	c.text.Draw(renderer, fonts.MediumFont, c.entry.Tail(10), 20, 24, theme.WarmColor)

	dim := theme.DimColor
	renderer.SetDrawColor(dim.R, dim.G, dim.B, dim.A)
	renderer.DrawLine(20, 45, 220, 45)

	c.drawKeyboard(renderer, theme)

	if len(c.matches) > 0 {
		c.text.DrawCentered(renderer, fonts.SmallFont, c.matches[0], width, 212, theme.ConfirmColor)
	}
}

func (c *Controller) drawKeyboard(renderer *sdl.Renderer, theme internal.Theme) {
	fonts := internal.Fonts
	mode := c.entry.Mode()

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			rect := sdl.Rect{
				X: constants.KeyColBands[col][0],
				Y: constants.KeyRowBands[row][0],
				W: constants.KeyColBands[col][1] - constants.KeyColBands[col][0],
				H: constants.KeyRowBands[row][1] - constants.KeyRowBands[row][0],
			}

			label := mode.CellLabel(cell)
			labelColor := theme.TextColor
			frameColor := theme.DimColor

			switch cell {
			case constants.CellBackspace:
				label = "DEL"
				labelColor = theme.AlertColor
				frameColor = theme.AlertColor
			case constants.CellModeToggle:
				label = mode.Label()
				labelColor = theme.AccentColor
				frameColor = theme.AccentColor
			case constants.CellSubmit:
				label = "GO"
				labelColor = theme.ConfirmColor
				frameColor = theme.ConfirmColor
			}

			renderer.SetDrawColor(frameColor.R, frameColor.G, frameColor.B, frameColor.A)
			renderer.DrawRect(&rect)

			if label != "" {
				c.drawKeyLabel(renderer, fonts, label, rect, labelColor)
			}
		}
	}
}

func (c *Controller) drawKeyLabel(renderer *sdl.Renderer, fonts internal.FontSet, label string, rect sdl.Rect, color sdl.Color) {
	texture := c.text.Texture(renderer, fonts.SmallFont, label, color)
	if texture == nil {
		return
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	})
}

func (c *Controller) drawSettingsScreen(renderer *sdl.Renderer, theme internal.Theme) {
	width := constants.DisplayWidth
	fonts := internal.Fonts

	c.text.DrawCentered(renderer, fonts.MediumFont, "SETTINGS", width, 80, theme.TextColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, "(empty)", width, 120, theme.DimColor)
	c.text.DrawCentered(renderer, fonts.MediumFont, "^", width, 10, theme.AccentColor)
}
