package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isConnected() bool
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Read(ctx context.Context) error
	Verify(ctx context.Context) error
	Proof(ctx context.Context) error
	Access(ctx context.Context) error
	Buy(ctx context.Context) error
	List(ctx context.Context) error
}

// runREPL reads a line from scanner, takes the first token as the command
// and dispatches to a. The loop exits on EOF or on "exit"/"quit".
//
//	Not connected:
//	  help, connect, proof, verify, exit | quit
//
//	Connected:
//	  help, read, verify, proof, access, buy, (l)ist, disconnect, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("astro %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isConnected() {
				printlnFn("Available commands: read, verify, proof, access, buy, (l)ist, disconnect, exit")
			} else {
				printlnFn("Available commands: connect, proof, verify, exit")
			}

		case "connect":
			_ = a.Connect(ctx)

		case "disconnect":
			_ = a.Disconnect(ctx)

		case "read":
			_ = a.Read(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "proof":
			_ = a.Proof(ctx)

		case "access":
			_ = a.Access(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
