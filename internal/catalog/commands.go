// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/art-explorer/pkg/types"
)

const commandHelp = `commands:
  n            next page
  p            previous page
  g <card>     open the card's additional images
  c            close the gallery
  h <card>     toggle the card's date
  s [keyword]  search again (blank keyword searches "flowers")
  d [id]       set the department filter (blank clears)
  l [location] set the location filter (blank clears)
  q            quit`

// RunCommands reads one command per line from in and applies it to c until
// "q", end of input, or ctx is done. f holds the filters of the running
// search and is updated by the s, d and l commands.
func RunCommands(ctx context.Context, c *Controller, f types.Filters, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	hovered := map[int]bool{}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "n":
			clear(hovered)
			if !c.NextPage(ctx) {
				fmt.Fprintln(out, "no next page")
			}
		case "p":
			clear(hovered)
			if !c.PrevPage(ctx) {
				fmt.Fprintln(out, "no previous page")
			}
		case "g", "h":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "%s needs a card number\n", cmd)
				continue
			}
			i := n - 1
			ok := false
			if cmd == "g" {
				ok = c.OpenGallery(i)
			} else {
				hovered[i] = !hovered[i]
				ok = c.Hover(i, hovered[i])
			}
			if !ok {
				fmt.Fprintf(out, "no card %d\n", n)
			}
		case "c":
			c.CloseGallery()
		case "s":
			f.Keyword = arg
			clear(hovered)
			c.ApplyFilters(ctx, f)
		case "d":
			f.Department = arg
			clear(hovered)
			c.ApplyFilters(ctx, f)
		case "l":
			f.Location = arg
			clear(hovered)
			c.ApplyFilters(ctx, f)
		case "?", "help":
			fmt.Fprintln(out, commandHelp)
		default:
			fmt.Fprintf(out, "unknown command %q (? for help)\n", cmd)
		}
	}
}
