package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Each command receives the words after its name; an empty args makes it
// prompt for what it needs.
type execIface interface {
	canManage() bool
	Upload(ctx context.Context, args []string) error
	Info(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Log(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the otpshare CLI.
//
// It reads a line from r, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on EOF
// or when the user types "exit" or "quit".
//
//	Always:
//	  - help                 show available commands
//	  - info [id]            describe a share
//	  - download [id]        fetch a file (prompts for the OTP)
//	  - exit | quit          leave the program
//
//	With an access token:
//	  - upload [path]        share a file
//	  - (l)ist               list own shares
//	  - revoke [id]          stop further downloads
//	  - delete [id]          delete a share
//	  - log [id]             show the access log of a share
//
// Errors returned by command handlers are printed and the loop continues.
// Command prompts must read from the same r.
func runREPL(ctx context.Context, a execIface, r *bufio.Reader) {
	for {
		printlnFn("otpshare> ")
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.canManage() {
				printlnFn("Available commands: upload, (l)ist, info, download, revoke, delete, log, exit")
			} else {
				printlnFn("Available commands: info, download, exit (set an access token to upload)")
			}

		case "info":
			err = a.Info(ctx, args)
		case "download", "get":
			err = a.Download(ctx, args)

		case "upload", "l", "list", "revoke", "delete", "log":
			if !a.canManage() {
				printlnFn("This command needs an access token (-t)")
				continue
			}
			switch cmd {
			case "upload":
				err = a.Upload(ctx, args)
			case "l", "list":
				err = a.List(ctx, args)
			case "revoke":
				err = a.Revoke(ctx, args)
			case "delete":
				err = a.Delete(ctx, args)
			case "log":
				err = a.Log(ctx, args)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
