package layout

import "strings"

// Page is a sequence of lines.
type Page []Line

func (p Page) String() string {
	s := make([]string, len(p))
	for i, l := range p {
		s[i] = l.String()
	}
	return strings.Join(s, "\n")
}

// Grid is the layout of a text: a sequence of pages. A grid is not modified
// after creation.
type Grid []Page

// Paginate groups lines into pages of colLength lines. The last page is
// filled up with blank lines of rowLength cells.
func Paginate(lines []Line, rowLength, colLength int) Grid {
	if colLength <= 0 {
		tracer().Errorf("cannot paginate to column length %d", colLength)
		return nil
	}
	grid := make(Grid, 0, (len(lines)+colLength-1)/colLength)
	for start := 0; start < len(lines); start += colLength {
		end := start + colLength
		if end > len(lines) {
			end = len(lines)
		}
		page := make(Page, 0, colLength)
		page = append(page, lines[start:end]...)
		for len(page) < colLength {
			page = append(page, Pad(nil, rowLength))
		}
		grid = append(grid, page)
	}
	tracer().Debugf("%d lines make %d pages", len(lines), len(grid))
	return grid
}

// Layout normalizes text, wraps it into rows of rowLength cells and arranges
// the rows on pages of colLength lines.
func Layout(text string, rowLength, colLength int) Grid {
	return Paginate(Wrap(Normalize(text), rowLength), rowLength, colLength)
}
