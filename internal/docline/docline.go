package docline

// Line is one visually merged line of extracted text with its
// position and font metadata. Coordinates use a top-left origin:
// Y0 < Y1 and X0 < X1, with lines on a page ordered by ascending Y0.
type Line struct {
	Text      string  // Merged line text
	Page      int     // 1-based page number
	FontSize  float64 // Dominant font size in points
	Bold      bool    // Any span rendered in a bold face
	X0        float64 // Left edge
	Y0        float64 // Top edge
	X1        float64 // Right edge
	Y1        float64 // Bottom edge
	PageWidth float64 // Width of the source page
}

// Candidate is a line scored with a heading probability.
type Candidate struct {
	Line
	Prob float64
}
