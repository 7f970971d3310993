package website

import (
	"fmt"
	"strings"
)

// FontFamily is the system font stack used by every generated page.
const FontFamily = `-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif`

// paletteCSS declares the resolved colors as custom properties.
func paletteCSS(colors ColorScheme) (css string) {
	var sb strings.Builder

	sb.WriteString(":root {\n")
	sb.WriteString(fmt.Sprintf("  --primary: %s;\n", colors.Primary))
	sb.WriteString(fmt.Sprintf("  --secondary: %s;\n", colors.Secondary))
	sb.WriteString(fmt.Sprintf("  --accent: %s;\n", colors.Accent))
	sb.WriteString(fmt.Sprintf("  --background: %s;\n", colors.Background.CSS()))
	sb.WriteString(fmt.Sprintf("  --background-solid: %s;\n", colors.Background.Solid()))
	sb.WriteString(fmt.Sprintf("  --surface: %s;\n", colors.Surface))
	sb.WriteString(fmt.Sprintf("  --text: %s;\n", colors.Text))
	sb.WriteString(fmt.Sprintf("  --muted: %s;\n", colors.Muted))
	sb.WriteString("  --radius: 16px;\n")
	sb.WriteString("}\n")

	return sb.String()
}

// bodyCSS paints the page background. Gradients get the solid fallback underneath and a fixed
// attachment so the gradient spans the viewport.
func bodyCSS(colors ColorScheme) (css string) {
	var sb strings.Builder

	sb.WriteString("body {\n")
	sb.WriteString(fmt.Sprintf("  font-family: %s;\n", FontFamily))
	sb.WriteString("  color: var(--text);\n")
	sb.WriteString("  background: var(--background);\n")
	if colors.Background.IsGradient() {
		sb.WriteString("  background-color: var(--background-solid);\n")
		sb.WriteString("  background-attachment: fixed;\n")
	}
	sb.WriteString("  line-height: 1.6;\n")
	sb.WriteString("  min-height: 100vh;\n")
	sb.WriteString("  -webkit-font-smoothing: antialiased;\n")
	sb.WriteString("}\n")

	return sb.String()
}

const resetCSS = `*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
img { max-width: 100%; display: block; }
a { color: inherit; text-decoration: none; }
`

const layoutCSS = `.container { width: 100%; max-width: 1080px; margin: 0 auto; padding: 0 1.5rem; }
.section { padding: 5rem 0; }
.section-title { font-size: 2rem; font-weight: 800; text-align: center; margin-bottom: 3rem; }
.section-title span { background: linear-gradient(135deg, var(--primary), var(--secondary)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.card { background: var(--surface); border: 1px solid rgba(127, 127, 127, 0.15); border-radius: var(--radius); padding: 2rem; transition: transform 0.3s ease, box-shadow 0.3s ease; }
.card:hover { transform: translateY(-4px); box-shadow: 0 20px 40px rgba(0, 0, 0, 0.15); }
.btn { display: inline-block; padding: 0.875rem 2rem; border-radius: 999px; font-weight: 600; border: none; cursor: pointer; font-size: 1rem; transition: transform 0.2s ease, opacity 0.2s ease; }
.btn:hover { transform: translateY(-2px); opacity: 0.9; }
.btn-primary { background: linear-gradient(135deg, var(--primary), var(--secondary)); color: #ffffff; }
.btn-outline { background: transparent; border: 2px solid var(--primary); color: var(--text); }
.animate { opacity: 0; animation: fadeInUp 0.6s ease forwards; }
@keyframes fadeInUp { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: translateY(0); } }
`

const footerCSS = `.site-footer { padding: 3rem 0; text-align: center; color: var(--muted); font-size: 0.875rem; border-top: 1px solid rgba(127, 127, 127, 0.15); }
.footer-social { display: flex; justify-content: center; gap: 1rem; margin-bottom: 1rem; font-size: 1.25rem; }
.footer-credit { margin-top: 0.5rem; opacity: 0.7; }
`

const responsiveCSS = `@media (max-width: 768px) {
  .section { padding: 3.5rem 0; }
  .section-title { font-size: 1.6rem; margin-bottom: 2rem; }
}
`

// baseCSS is the stylesheet shared by every page, independent of which sections render.
func baseCSS(colors ColorScheme) (css string) {
	var sb strings.Builder

	sb.WriteString(paletteCSS(colors))
	sb.WriteString(resetCSS)
	sb.WriteString(bodyCSS(colors))
	sb.WriteString(layoutCSS)
	sb.WriteString(footerCSS)

	return sb.String()
}
