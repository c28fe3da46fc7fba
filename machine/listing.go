package machine

// Line is one program line of an assembled listing.
type Line struct {
	LineNo int    // Source line number.
	Text   string // Program text submitted to the machine.
}

// Preset is a memory cell initialised by a listing.
type Preset struct {
	Address string
	Label   string
	Value   string
}

// Listing is the output of the assembler.
type Listing struct {
	Lines []Line
	Cells []Preset
}

// Program returns the program text of the listing.
func (listing *Listing) Program() (lines []string) {
	for _, line := range listing.Lines {
		lines = append(lines, line.Text)
	}

	return
}

// LineNo returns the source line number of a program index, or 0.
func (listing *Listing) LineNo(index int) int {
	if index < 0 || index >= len(listing.Lines) {
		return 0
	}

	return listing.Lines[index].LineNo
}

// Text returns the program text of a program index, or "".
func (listing *Listing) Text(index int) string {
	if index < 0 || index >= len(listing.Lines) {
		return ""
	}

	return listing.Lines[index].Text
}
