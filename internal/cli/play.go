// Package cli runs a word scramble round in the terminal.
//
// Commands read from the input, one per line:
//
//	:new   start a new round
//	:used  list accepted words
//	:quit  exit
//
// Any other line is submitted as a guess.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/spell"
)

// Player drives one terminal session.
type Player struct {
	Words     []string
	Checker   spell.Checker
	Suggester game.Suggester // optional

	in  io.Reader
	out io.Writer

	title   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	subtle  lipgloss.Style
	accents lipgloss.Style
}

// NewPlayer builds a Player reading from in and writing to out.
// Styles degrade to plain text when out is not a terminal.
func NewPlayer(in io.Reader, out io.Writer, list []string, checker spell.Checker) *Player {
	re := lipgloss.NewRenderer(out)
	return &Player{
		Words:   list,
		Checker: checker,
		in:      in,
		out:     out,
		title:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		good:    re.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		bad:     re.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")),
		subtle:  re.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		accents: re.NewStyle().Foreground(lipgloss.Color("#fab387")),
	}
}

// Run plays until :quit or end of input.
func (p *Player) Run() error {
	rd := game.NewRound(p.Checker)
	rd.Start(p.Words)
	p.announce(rd)

	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":new":
			rd.Start(p.Words)
			p.announce(rd)
		case ":used":
			p.printUsed(rd)
		default:
			p.report(rd, rd.Submit(line))
		}
	}
	return sc.Err()
}

func (p *Player) announce(rd *game.Round) {
	fmt.Fprintln(p.out, p.title.Render("Base word: "+strings.ToUpper(rd.BaseWord)))
	fmt.Fprintln(p.out, p.subtle.Render("type a word, :used, :new or :quit"))
}

func (p *Player) report(rd *game.Round, res game.Result) {
	if res.OK() {
		s := rd.Score()
		fmt.Fprintf(p.out, "%s %s\n", p.good.Render("✓ "+res.Word),
			p.subtle.Render(fmt.Sprintf("(%d words, %d letters)", s.Words, s.Letters)))
		return
	}
	fmt.Fprintf(p.out, "%s: %s\n", p.bad.Render(res.Title()), res.Message())
	if res.Outcome == game.WordNotRecognized && p.Suggester != nil {
		if hints := rd.Suggest(p.Suggester, res.Word, 3); len(hints) > 0 {
			fmt.Fprintln(p.out, p.accents.Render("did you mean: "+strings.Join(hints, ", ")))
		}
	}
}

func (p *Player) printUsed(rd *game.Round) {
	used := rd.Used()
	if len(used) == 0 {
		fmt.Fprintln(p.out, p.subtle.Render("no words yet"))
		return
	}
	for _, w := range used {
		fmt.Fprintln(p.out, "  "+w)
	}
}
