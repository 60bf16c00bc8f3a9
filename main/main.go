/*
File    : achronyme/main/main.go

Package main is the entry point for the Achronyme Core engine. It
provides three modes of operation:
1. REPL mode (default): interactive read-eval-print loop
2. File mode: evaluate a source file given on the command line
3. Server mode: one REPL session per TCP connection

The engine uses a lexer-parser-evaluator pipeline to process source
text; main only wires that pipeline to the command line and to the
network, exactly as go-mix's own main package did for its interpreter.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/achronyme/core/eval"
	"github.com/achronyme/core/repl"
)

// MODE defines the default operating mode of the engine.
var MODE = "repl"

// VERSION is the current version of Achronyme Core.
var VERSION = "v1.0.0"

// AUTHOR contains the maintainer contact information.
var AUTHOR = "achronyme"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "achronyme>>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▄▄▄▄▄   ▄▄▄▄▄▄  ▄▄▄  ▄▄▄  ▄▄▄▄▄    ▄▄▄▄    ▄▄▄▄▄   ▄▄▄   ▄▄▄ ▄▄    ▄ ▄▄▄▄▄▄ ▄▄▄▄▄▄▄▄
  ██▀▀▀██ ██▀▀▀▀▀▀ ██▀  ▀██▀ ██▀▀▀██ ██▀▀▀▀██ ██▀▀▀▀██ ████▄ ██ ███  ███ ██▀▀▀▀ ▀▀▀██▀▀▀
 ██     ██ ██      ██    ██  ██    ██ ██    ██ ██    ██ ██ ███ ██ ████ ██ ██         ██
 █████████ ██      ██    ██  ██    ██ ██    ██ ██    ██ ██  ██ ██ ██ ████ █████      ██
 ██     ██ ██      ██    ██  ██    ██ ██    ██ ██    ██ ██  ██▄██ ██  ██▀ ██         ██
 ██     ██ ██▄▄▄▄▄▄  ██▄▄██   ██▄▄▄██  ██▄▄▄▄██ ██▄▄▄▄██ ██   ███ ██   █  ██▄▄▄▄▄▄    ██
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main determines the operating mode from command-line arguments:
//
//	achronyme                 - start in REPL (interactive) mode
//	achronyme <filename>      - evaluate the given source file
//	achronyme server <port>   - start a REPL server on the given port
//	achronyme --help          - display help information
//	achronyme --version       - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}
		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: achronyme server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}
		runFile(arg)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

func showHelp() {
	cyanColor.Println("Achronyme Core - A Mathematical Expression Engine")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  achronyme                    Start interactive REPL mode")
	yellowColor.Println("  achronyme <path-to-file>     Evaluate an expression source file")
	yellowColor.Println("  achronyme server <port>      Start REPL server on specified port")
	yellowColor.Println("  achronyme --help             Display this help message")
	yellowColor.Println("  achronyme --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                        Exit the REPL")
	yellowColor.Println("  .reset                       Clear all let bindings")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  achronyme                    # Start REPL")
	yellowColor.Println("  achronyme samples/fft.ach")
	yellowColor.Println("  achronyme server 8080        # Start REPL server on port 8080")
}

func showVersion() {
	cyanColor.Println("Achronyme Core - A Mathematical Expression Engine")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
}

// runFile reads and evaluates a single source file. A file may hold a
// sequence of ';'-separated expressions; only the value of the last
// one is printed, matching eval.EvalSource's Sequence semantics.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

// startServer listens on port, handing each accepted connection its
// own REPL session and its own Evaluator (so one client's bindings
// never leak into another's).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Achronyme Core REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery evaluates source with panic recovery, exiting
// non-zero on a kernel panic, a parse error, or an evaluation error.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	evaluator := eval.New()
	result, err := evaluator.EvalSource(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
}
