// cmd/camtest/main.go
//
// Interactive bring-up shell for the GC2145 control core, run against the
// in-memory simulated sensor. Exercises the same capability surface the host
// pipeline consumes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"camcode-go/services/hal"
	"camcode-go/services/hal/sim"
	"camcode-go/types"
)

const (
	busID    = "i2c0"
	pwdnPin  = 0
	resetPin = 1
	xclkHz   = 24_000_000
)

func main() {
	board := sim.NewBoard()
	builder, ok := hal.FindBuilder("gc2145")
	if !ok {
		fmt.Fprintln(os.Stderr, "gc2145 builder not registered")
		os.Exit(1)
	}
	ad, err := builder.Build(hal.BuildInput{
		Buses:    board,
		Pins:     board,
		DeviceID: "cam0",
		Type:     "gc2145",
		Params:   hal.Params{Bus: busID, PwdnPin: pwdnPin, ResetPin: resetPin, XCLKHz: xclkHz, AllModes: true},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "attach failed:", err)
		os.Exit(1)
	}
	fmt.Println("cam0 attached (simulated sensor). Type 'help'.")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("camtest> ")
		if !in.Scan() {
			return
		}
		args, err := shlex.Split(in.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		run(ad, board, args)
	}
}

func run(ad hal.Adaptor, board *sim.Board, args []string) {
	ctl := func(method string, payload any) {
		res, err := ad.Control(string(types.KindCamera), method, payload)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if res != nil {
			fmt.Printf("%+v\n", res)
		}
	}

	switch args[0] {
	case "help":
		fmt.Println(`commands:
  caps                     show capability info
  codes                    list supported wire codes
  sizes <code>             list frame sizes for a code
  get [try]                show committed (or try) format
  try <code> <w> <h>       negotiate without committing
  set <code> <w> <h>       negotiate and commit
  power on|off             adjust the power reference count
  status                   show the session snapshot
  stream on|off            start/stop streaming
  hflip on|off, vflip on|off
  pins                     show control line levels
  quit`)
	case "caps":
		for _, c := range ad.Capabilities() {
			fmt.Printf("%s: %+v\n", c.Kind, c.Info)
		}
	case "codes":
		ctl("enum_codes", nil)
	case "sizes":
		if len(args) != 2 {
			fmt.Println("usage: sizes <code>")
			return
		}
		ctl("enum_frame_sizes", types.CodeRef{Code: parseU16(args[1])})
	case "get":
		which := "active"
		if len(args) > 1 {
			which = args[1]
		}
		ctl("get_format", types.FormatSet{Which: which})
	case "try", "set":
		if len(args) != 4 {
			fmt.Printf("usage: %s <code> <w> <h>\n", args[0])
			return
		}
		method := "set_format"
		which := "active"
		if args[0] == "try" {
			method = "try_format"
			which = "try"
		}
		w, _ := strconv.Atoi(args[2])
		h, _ := strconv.Atoi(args[3])
		ctl(method, types.FormatSet{Which: which, Code: parseU16(args[1]), Width: w, Height: h})
	case "power":
		ctl("set_power", types.PowerSet{On: wantOn(args)})
	case "status":
		ctl("status", nil)
	case "stream":
		ctl("stream", types.StreamSet{On: wantOn(args)})
	case "hflip", "vflip":
		ctl("set_ctrl", hal.CtrlSet{ID: args[0], On: wantOn(args)})
	case "pins":
		fmt.Printf("pwdn=%v reset=%v\n", board.Pwdn.High(), board.Reset.High())
	default:
		fmt.Println("unknown command; try 'help'")
	}
}

func wantOn(args []string) bool {
	return len(args) > 1 && strings.EqualFold(args[1], "on")
}

func parseU16(s string) uint16 {
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
