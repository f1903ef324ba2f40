// Command lex tokenizes a source file with one of the bundled front-ends
// and prints the annotated token stream.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/lexkit/lex"
	"github.com/lexkit/lex/lang/bnf"
	"github.com/lexkit/lex/lang/ebnf"
	"github.com/lexkit/lex/lang/golang"
)

var cli struct {
	Lang         string `help:"Front-end to tokenize with (${enum})." enum:"bnf,ebnf,go" default:"ebnf"`
	KeepComments bool   `help:"Keep comment tokens in the output."`
	Debug        bool   `help:"Dump tokens with their Go representation."`
	File         string `arg:"" help:"Source file to tokenize." type:"existingfile"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Tokenize a source file and print one token per line.`),
	)

	source, err := os.ReadFile(cli.File)
	kctx.FatalIfErrorf(err)

	switch cli.Lang {
	case "bnf":
		err = dump[bnf.Token](os.Stdout, bnf.New().Tokens(string(source), cli.File))
	case "ebnf":
		ts := lex.TokenStream[ebnf.Token](ebnf.New().Tokens(string(source), cli.File))
		if !cli.KeepComments {
			ts = ebnf.DropComments(ts)
		}
		err = dump[ebnf.Token](os.Stdout, ts)
	case "go":
		ts := lex.TokenStream[golang.Token](golang.New().Tokens(string(source), cli.File))
		if !cli.KeepComments {
			ts = lex.Filter[golang.Token](ts, func(tok golang.Token) bool {
				return tok.Type != golang.Comment
			})
		}
		err = dump[golang.Token](os.Stdout, ts)
	}
	kctx.FatalIfErrorf(err)
}

func dump[T lex.Token](w io.Writer, ts lex.TokenStream[T]) error {
	for {
		meta, err := ts.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if cli.Debug {
			fmt.Fprintf(w, "%s\t%s\n", meta.Pos, repr.String(meta.Token))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", meta.Pos, meta.Token.Descriptor(), meta.Token.Describe())
		}
	}
}
