package main

import "os"
import "fmt"
import "log"
import "image"
import "image/png"
import "image/color"
import "strconv"
import "strings"
import "unicode/utf8"
import "path/filepath"

import "github.com/tdewolff/argp"
import "golang.org/x/image/draw"
import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"

import "github.com/tinne26/kerntab"
import "github.com/tinne26/kerntab/kface"

type Dump struct {
	Input string `short:"i" desc:"Kerning table file (.bin or .c), the built-in xkcd table by default"`
}

type Lookup struct {
	Input  string `short:"i" desc:"Kerning table file (.bin or .c), the built-in xkcd table by default"`
	First  string `index:"0" desc:"First character or numeric code"`
	Second string `index:"1" desc:"Second character or numeric code"`
}

type Convert struct {
	Input  string `short:"i" desc:"Kerning table file (.bin or .c), the built-in xkcd table by default"`
	Output string `short:"o" desc:"Output file, .bin for binary or .c for C source"`
	Name   string `short:"n" default:"xkcd" desc:"Array name prefix for C source output"`
}

type Render struct {
	Input  string `short:"i" desc:"Kerning table file (.bin or .c), the built-in xkcd table by default"`
	Output string `short:"o" default:"kerning.png" desc:"Output PNG file"`
	Scale  int    `short:"s" default:"4" desc:"Integer magnification of the output image"`
	Text   string `index:"0" desc:"Text to render"`
}

func main() {
	log.SetFlags(0)
	root := argp.NewCmd(&Dump{}, "Toolkit for u8g2 kerning tables")
	root.AddCmd(&Lookup{}, "lookup", "Get the kerning value of a character pair")
	root.AddCmd(&Convert{}, "convert", "Convert a kerning table to binary or C source")
	root.AddCmd(&Render{}, "render", "Render text with and without kerning to a PNG image")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Dump) Run() error {
	table, err := loadTable(cmd.Input)
	if err != nil { return err }

	fmt.Println(table.String())
	table.EachPair(func(first, second kerntab.CharCode, value uint8) {
		fmt.Printf("%s %s %d\n", formatCode(first), formatCode(second), value)
	})
	return nil
}

func (cmd *Lookup) Run() error {
	if cmd.First == "" || cmd.Second == "" { return argp.ShowUsage }
	table, err := loadTable(cmd.Input)
	if err != nil { return err }

	first, err := parseCode(cmd.First)
	if err != nil { return err }
	second, err := parseCode(cmd.Second)
	if err != nil { return err }
	fmt.Println(table.Lookup(first, second))
	return nil
}

func (cmd *Convert) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	table, err := loadTable(cmd.Input)
	if err != nil { return err }

	file, err := os.Create(cmd.Output)
	if err != nil { return err }
	switch strings.ToLower(filepath.Ext(cmd.Output)) {
	case ".bin":
		_, err = table.WriteTo(file)
	case ".c":
		err = table.WriteCSource(file, cmd.Name)
	default:
		err = fmt.Errorf("unsupported output extension '%s'", filepath.Ext(cmd.Output))
	}
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if err != nil { return err }
	log.Printf("%s written to %s", table, cmd.Output)
	return nil
}

func (cmd *Render) Run() error {
	if cmd.Text == "" { return argp.ShowUsage }
	if cmd.Scale < 1 { return fmt.Errorf("scale must be positive") }
	table, err := loadTable(cmd.Input)
	if err != nil { return err }

	// first line without table kerning, second line with it
	plain := font.Face(basicfont.Face7x13)
	kerned := kface.NewFace(basicfont.Face7x13, table)
	lineHeight := plain.Metrics().Height.Ceil()
	width := kface.Measure(plain, cmd.Text).ToIntCeil() + 4
	lines := strings.Count(cmd.Text, "\n") + 1
	height := 2*lines*lineHeight + 4
	ascent := plain.Metrics().Ascent.Ceil()

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	kface.Draw(img, plain, image.White, 2, 2 + ascent, cmd.Text)
	kface.Draw(img, kerned, image.NewUniform(color.Gray{0xC0}), 2, 2 + ascent + lines*lineHeight, cmd.Text)

	scaled := image.NewGray(image.Rect(0, 0, width*cmd.Scale, height*cmd.Scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	file, err := os.Create(cmd.Output)
	if err != nil { return err }
	err = png.Encode(file, scaled)
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if err != nil { return err }
	log.Printf("rendered %q to %s (%dx%d)", cmd.Text, cmd.Output, scaled.Bounds().Dx(), scaled.Bounds().Dy())
	return nil
}

// ---- helpers ----

func loadTable(path string) (*kerntab.Table, error) {
	if path == "" { return kerntab.Xkcd, nil }
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	if strings.ToLower(filepath.Ext(path)) == ".c" {
		return kerntab.ParseCSource(data)
	}
	return kerntab.Parse(data)
}

// Single characters are taken as is, anything else must be a
// numeric code (decimal, or hex with 0x prefix).
func parseCode(arg string) (kerntab.CharCode, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		if r >= rune(kerntab.Sentinel) { return 0, fmt.Errorf("character '%s' out of range", arg) }
		return kerntab.CharCode(r), nil
	}
	code, err := strconv.ParseUint(arg, 0, 16)
	if err != nil { return 0, fmt.Errorf("invalid character code '%s'", arg) }
	return kerntab.CharCode(code), nil
}

func formatCode(code kerntab.CharCode) string {
	if code > ' ' && code < 0x7F { return string(rune(code)) }
	return "0x" + strconv.FormatUint(uint64(code), 16)
}
