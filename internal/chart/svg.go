package chart

import (
	"fmt"
	"io"
	"strings"

	"TrendChart/internal/model"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func dashAttr(dash string) string {
	if dash == "" {
		return ""
	}
	return fmt.Sprintf(" stroke-dasharray=\"%s\"", dash)
}

// WriteSVG serializes the drawable list as an SVG document on w. All
// coordinates are written with two decimal places, so identical element
// lists always produce byte-identical output.
func WriteSVG(w io.Writer, vp Viewport, elements []model.Element) error {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		vp.Width, vp.Height, vp.Width, vp.Height)

	for _, el := range elements {
		switch e := el.(type) {
		case model.Rect:
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
				e.X, e.Y, e.Width, e.Height, e.Fill)
		case model.Line:
			fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%g\"%s/>\n",
				e.X1, e.Y1, e.X2, e.Y2, e.Color, e.Width, dashAttr(e.Dash))
		case model.Polyline:
			coords := make([]string, len(e.Points))
			for i, p := range e.Points {
				coords[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
			}
			fmt.Fprintf(&b, "<polyline fill=\"none\" stroke=\"%s\" stroke-width=\"%g\"%s points=\"%s\"/>\n",
				e.Color, e.Width, dashAttr(e.Dash), strings.Join(coords, " "))
		case model.Text:
			fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"%s\" font-family=\"Arial, sans-serif\" font-size=\"%d\" fill=\"#333\">%s</text>\n",
				e.X, e.Y, e.Anchor, e.Size, textEscaper.Replace(e.Content))
		default:
			return fmt.Errorf("unknown drawable element %T", el)
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Render builds the scene for series on the default viewport and returns the
// serialized SVG document together with its numeric summary.
func Render(series *model.PriceSeries) ([]byte, Summary, error) {
	elements, sum := BuildScene(series, DefaultViewport)
	var b strings.Builder
	if err := WriteSVG(&b, DefaultViewport, elements); err != nil {
		return nil, Summary{}, err
	}
	return []byte(b.String()), sum, nil
}
