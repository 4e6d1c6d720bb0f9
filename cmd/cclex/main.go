package main

import (
	"fmt"
	"io"
	"log"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	cc "github.com/lambdageek/language-c"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	log.SetFlags(0)
	log.SetPrefix("cclex: ")

	app := &cli.App{
		Name:      "cclex",
		Usage:     "tokenize preprocessed C source",
		ArgsUsage: "[path|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the token stream as JSON",
			},
			&cli.StringSliceFlag{
				Name:  "env",
				Usage: "treat `NAME` as a typedef name (repeatable)",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "lex lines interactively",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	env := cc.NameSetEnv{}
	for _, name := range c.StringSlice("env") {
		env[name] = true
	}

	if c.Bool("interactive") {
		return interact(env)
	}

	path := c.Args().First()
	if path == "" {
		path = "-"
	}
	src, err := cc.ReadSource(path)
	if err != nil {
		return err
	}
	file := path
	if path == "-" {
		file = "<stdin>"
	}

	toks, err := cc.Tokenize(src, file, cc.WithEnv(env))
	if err != nil {
		lexErr := err.(*cc.LexError)
		fmt.Fprintln(os.Stderr, cc.RenderSnippet(src, lexErr))
		os.Exit(1)
	}

	if c.Bool("json") {
		return dumpJSON(os.Stdout, src, toks)
	}
	dumpText(os.Stdout, src, toks)
	return nil
}

func dumpText(w io.Writer, src []byte, toks []*cc.Token) {
	for _, t := range toks {
		if t.Kind == cc.TK_EOF {
			fmt.Fprintf(w, "%s\tEOF\n", t.Pos)
			break
		}
		fmt.Fprintf(w, "%s\t%s\t%q\n", t.Pos, t.Kind, t.Text(src))
	}
}

// jsonToken is the stable dump shape; big.Int payloads are rendered as
// decimal strings so arbitrary magnitudes survive the trip.
type jsonToken struct {
	Kind   string `json:"kind"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Off    int    `json:"off"`
	Len    int    `json:"len"`
	Text   string `json:"text,omitempty"`
	Value  string `json:"value,omitempty"`
	NameID int    `json:"nameId,omitempty"`
}

func dumpJSON(w io.Writer, src []byte, toks []*cc.Token) error {
	out := make([]jsonToken, 0, len(toks))
	for _, t := range toks {
		jt := jsonToken{
			Kind: t.Kind.String(),
			File: t.Pos.File,
			Line: t.Pos.Line,
			Col:  t.Pos.Col,
			Off:  t.Pos.Off,
			Len:  t.Length,
		}
		if t.Kind != cc.TK_EOF {
			jt.Text = t.Text(src)
		}
		switch t.Kind {
		case cc.TK_IDENT, cc.TK_TYPEIDENT:
			jt.NameID = t.Name.ID
			jt.Value = t.Name.Text
		case cc.TK_INT:
			jt.Value = t.Int.Value.String()
		case cc.TK_FLOAT:
			jt.Value = t.Float.Text
		}
		out = append(out, jt)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encoding token dump")
	}
	return nil
}

// interact lexes one line at a time with history, which is handy for
// poking at suffix and escape corner cases.
func interact(env cc.Env) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("cclex> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		src := cc.LoadSource([]byte(input))
		toks, lexErr := cc.Tokenize(src, "<repl>", cc.WithEnv(env))
		if lexErr != nil {
			fmt.Println(cc.RenderSnippet(src, lexErr.(*cc.LexError)))
			continue
		}
		dumpText(os.Stdout, src, toks)
	}
}
