package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"pckbd/internal/log"
	"pckbd/keyboard"
	"pckbd/keycode"
	"pckbd/layouts"
	"pckbd/scancode"
)

// Replay feeds recorded scancodes through the full decode pipeline and
// prints the decoded keys. Input comes from the arguments, or from stdin
// when no arguments are given (one or more hex values per line).
type Replay struct {
	Set    int      `help:"Scancode set to decode with" enum:"1,2" default:"2" env:"PCKBD_SET"`
	Layout string   `help:"Keyboard layout" default:"us104" env:"PCKBD_LAYOUT"`
	Words  bool     `help:"Treat input as raw 11-bit frame words instead of bytes"`
	Ctrl   string   `help:"Control key handling" enum:"unicode,ignore" default:"unicode"`
	Codes  []string `arg:"" optional:"" name:"codes" help:"Hex scancodes, e.g. 29 f0 29"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	layout, err := layouts.ByName(r.Layout)
	if err != nil {
		return err
	}

	var set scancode.Set
	switch r.Set {
	case 1:
		set = scancode.NewSet1()
	default:
		set = scancode.NewSet2()
	}

	ctrl := keycode.MapLettersToUnicode
	if r.Ctrl == "ignore" {
		ctrl = keycode.Ignore
	}

	kb := keyboard.New(set, layout, ctrl)
	logger.Debug("replay starting", "set", r.Set, "layout", r.Layout, "words", r.Words)

	codes := r.Codes
	if len(codes) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no scancodes given and stdin is a terminal")
		}
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			codes = append(codes, strings.Fields(scanner.Text())...)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	for _, tok := range codes {
		if err := r.feed(kb, logger, rawLogger, tok); err != nil {
			return err
		}
	}
	return nil
}

func (r *Replay) feed(kb *keyboard.Keyboard, logger *slog.Logger, rawLogger log.RawLogger, tok string) error {
	value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(tok), "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("bad scancode %q: %w", tok, err)
	}

	var ev keycode.KeyEvent
	var ok bool
	if r.Words {
		if value > 0x7ff {
			return fmt.Errorf("frame word %q exceeds 11 bits", tok)
		}
		rawLogger.Log("words", []byte{byte(value >> 8), byte(value)})
		ev, ok, err = kb.AddWord(uint16(value))
	} else {
		if value > 0xff {
			return fmt.Errorf("scancode %q exceeds one byte", tok)
		}
		rawLogger.Log("bytes", []byte{byte(value)})
		ev, ok, err = kb.AddByte(byte(value))
	}
	if err != nil {
		logger.Warn("decode error, state reset", "input", tok, "error", err)
		return nil
	}
	if !ok {
		logger.Log(context.Background(), log.LevelTrace, "sequence in progress", "input", tok)
		return nil
	}

	logger.Debug("key event", "key", ev.Code, "state", ev.State)
	if decoded, handled := kb.ProcessKeyevent(ev); handled {
		fmt.Println(decoded)
	}
	return nil
}
