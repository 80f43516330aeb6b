package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/lexer"
	"github.com/xiam/lazy/parser"
)

const (
	appName     = "lazy"
	version     = "0.1.0"
	historyFile = ".lazy_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("%s %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", appName, version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "parse":
		os.Exit(cmdParse(os.Args[2:], os.Stdout, os.Stderr))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:], os.Stdout, os.Stderr))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:], os.Stdout, os.Stderr))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`%s %s

Usage:
  %s parse [-trace] <file>     Print the syntax tree of a file.
  %s fmt <file>                Print the canonical form of a file.
  %s tokens [-offsets] <file>  Print the tokens of a file.
  %s repl [-trace]             Start the REPL.
  %s version                   Print the version

`, appName, version, appName, appName, appName, appName, appName)
}

// position converts a byte offset into a 1-based line and column
func position(src []byte, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := offset - bytes.LastIndexByte(before, '\n')
	return line, col
}

func report(w io.Writer, name string, src []byte, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(src, syntaxErr.Token.Pos())
		fmt.Fprintf(w, "%s:%d:%d: %v\n", name, line, col, syntaxErr.Err)
		fmt.Fprintf(w, "\tnear %v\n", syntaxErr.Token)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
}

func parseFile(src []byte, trace *log.Logger) (*ast.File, error) {
	lx, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	p := parser.New(lx)
	p.SetOptions(parser.Options{Trace: trace})
	return p.ParseFile()
}

func readSource(fs *flag.FlagSet, stderr io.Writer) (string, []byte, bool) {
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "usage: %s %s <file>\n", appName, fs.Name())
		return "", nil, false
	}
	name := fs.Arg(0)
	src, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, name, err)
		return "", nil, false
	}
	return name, src, true
}

func cmdParse(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	traceFlag := fs.Bool("trace", false, "log every consumed token")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	name, src, ok := readSource(fs, stderr)
	if !ok {
		return 1
	}

	var trace *log.Logger
	if *traceFlag {
		trace = log.New(stderr, "trace: ", 0)
	}

	file, err := parseFile(src, trace)
	if err != nil {
		report(stderr, name, src, err)
		return 1
	}

	ast.Fprint(stdout, file)
	return 0
}

func cmdFmt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	name, src, ok := readSource(fs, stderr)
	if !ok {
		return 1
	}

	file, err := parseFile(src, nil)
	if err != nil {
		report(stderr, name, src, err)
		return 1
	}

	_, _ = stdout.Write(ast.Encode(file))
	return 0
}

func cmdTokens(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	offsets := fs.Bool("offsets", false, "print line and column instead of byte offsets")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	name, src, ok := readSource(fs, stderr)
	if !ok {
		return 1
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		report(stderr, name, src, err)
		return 1
	}

	for i, tok := range tokens {
		if *offsets {
			line, col := position(src, tok.Pos())
			fmt.Fprintf(stdout, "token[%d] (type: %v, line: %d, col: %d) %q\n", i, tok.Type(), line, col, tok.Text())
			continue
		}
		fmt.Fprintf(stdout, "token[%d] %v\n", i, tok)
	}
	return 0
}

// evalLine parses one line of REPL input: definitions when it starts with
// the Define token, a single expression otherwise.
func evalLine(w io.Writer, line string, trace *log.Logger) error {
	lx, err := lexer.New([]byte(line))
	if err != nil {
		return err
	}

	p := parser.New(lx)
	p.SetOptions(parser.Options{Trace: trace})

	if p.Token().Is(lexer.TokenDefine) {
		file, err := p.ParseFile()
		if err != nil {
			return err
		}
		for _, definition := range file.Definitions {
			ast.Fprint(w, definition)
		}
		return nil
	}

	expr, err := p.ParseExpr()
	if err != nil {
		return err
	}
	ast.Fprint(w, expr)
	return nil
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	traceFlag := fs.Bool("trace", false, "log every consumed token")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var trace *log.Logger
	if *traceFlag {
		trace = log.New(os.Stderr, "trace: ", 0)
	}

	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			log.Printf("cannot write history: %v", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Println()
			return 0
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if err := evalLine(os.Stdout, line, trace); err != nil {
			var buf bytes.Buffer
			report(&buf, "<repl>", []byte(line), err)
			fmt.Fprint(os.Stderr, red(buf.String()))
		}
	}
}
