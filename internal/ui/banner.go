package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

const bannerText = `
▄▄███▄▄· █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗    ███╗   ███╗ █████╗ ██████╗
██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝    ████╗ ████║██╔══██╗██╔══██╗
███████╗███████║██║     ███████║██████╔╝ ╚████╔╝     ██╔████╔██║███████║██████╔╝
╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝      ██║╚██╔╝██║██╔══██║██╔═══╝
███████║██║  ██║███████╗██║  ██║██║  ██║   ██║       ██║ ╚═╝ ██║██║  ██║██║
╚═▀▀▀══╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝       ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
 @fr4nk3nst1ner
`

// ColorizeText applies a random colour fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")
	half := len(strs) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, s := range strs {
		b.WriteString(startColor.Fade(0, float32(len(strs)), float32(i%half), firstPoint).Sprint(s))
	}
	return b.String()
}

// PrintBanner writes the application banner to w unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary applies colour formatting to a salary amount
func ColorizeSalary(v float64) string {
	formatted := utils.FormatSalary(v)
	switch {
	case v >= 250000:
		return pterm.Green(formatted)
	case v >= 150000:
		return pterm.LightGreen(formatted)
	case v >= 75000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// ColorizeOptionalSalary colours v when ok and prints the no-data placeholder otherwise.
func ColorizeOptionalSalary(v float64, ok bool) string {
	if !ok {
		return pterm.Gray(utils.NoData)
	}
	return ColorizeSalary(v)
}
