package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"gopkg.in/yaml.v2"

	"github.com/meta1203/OpenModsLib/calc"
)

var defaultOperators = []string{
	"+", "-", "*", "/", "%", "**",
	"==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "!",
	"&", "|", "^", "~", "<<", ">>",
	"=",
}

var cli struct {
	Ops  string   `help:"YAML file with an operator vocabulary (operators: [...])." type:"existingfile" placeholder:"FILE"`
	Expr []string `arg:"" help:"Expression to tokenize."`
}

type vocabulary struct {
	Operators []string `yaml:"operators"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Tokenize a calculator expression and dump the token stream.`),
	)

	operators := defaultOperators
	if cli.Ops != "" {
		data, err := os.ReadFile(cli.Ops)
		kctx.FatalIfErrorf(err)
		vocab := vocabulary{}
		kctx.FatalIfErrorf(yaml.Unmarshal(data, &vocab))
		operators = vocab.Operators
	}

	tok := calc.New()
	for _, op := range operators {
		tok.AddOperator(op)
	}

	tokens, err := tok.Tokenize(strings.Join(cli.Expr, " "))
	kctx.FatalIfErrorf(err)
	for _, token := range tokens {
		repr.Println(token)
	}
}
