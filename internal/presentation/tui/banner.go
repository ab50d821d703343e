package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"                        _              ", "#818cf8"},
	{"  _ __ ___   __ _ _ __| | _______   __", "#a78bfa"},
	{" | '_ ' _ \\ / _' | '__| |/ / _ \\ \\ / /", "#c084fc"},
	{" | | | | | | (_| | |  |   < (_) \\ V / ", "#e879f9"},
	{" |_| |_| |_|\\__,_|_|  |_|\\_\\___/ \\_/  ", "#f472b6"},
}

// PrintBanner writes the markov banner to w, coloured when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
