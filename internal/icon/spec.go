// Package icon renders the placeholder company icons: a filled circle in a
// brand color with the label's initial drawn in white, written as PNG.
package icon

// Spec describes one icon to generate.
type Spec struct {
	Filename string
	Label    string
	ColorHex string
}

// Companies is the fixed set of placeholder icons, in generation order.
var Companies = []Spec{
	{Filename: "iconocliente1.png", Label: "Innovatech", ColorHex: "#1E3A8A"},
	{Filename: "iconocliente2.png", Label: "EcoLogistics", ColorHex: "#065F46"},
	{Filename: "iconocliente3.png", Label: "Precision Group", ColorHex: "#7C2D12"},
	{Filename: "iconocliente4.png", Label: "GreenSolutions", ColorHex: "#4B5563"},
	{Filename: "iconocliente5.png", Label: "VentureCorp", ColorHex: "#5B21B6"},
	{Filename: "iconoempresa.png", Label: "Empresas", ColorHex: "#D4AF37"},
}
