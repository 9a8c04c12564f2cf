package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/tollan/keywire/decode"
	"github.com/tollan/keywire/internal/log"
	"github.com/tollan/keywire/keyboard"
	"github.com/tollan/keywire/keycode"
	"github.com/tollan/keywire/layout"
	"github.com/tollan/keywire/scancode"
)

// Decode runs the full pipeline over hex input from the arguments or stdin.
type Decode struct {
	Set        string `help:"Scan code set" enum:"set1,set2" default:"set2" env:"KEYWIRE_SET"`
	Layout     string `help:"Keyboard layout" default:"us104" env:"KEYWIRE_LAYOUT"`
	LayoutFile string `help:"Custom layout file (TOML or YAML), overrides --layout" env:"KEYWIRE_LAYOUT_FILE"`
	Ctrl       string `help:"Control key policy" enum:"ignore,map-letters,map-letters-mask" default:"map-letters" env:"KEYWIRE_CTRL"`
	RawKeys    bool   `help:"Emit unmapped keys as raw key identities" default:"true" negatable:""`
	KeyUps     bool   `help:"Emit key release events too"`
	Words      bool   `help:"Treat input as 11-bit serial words instead of bytes"`
	Events     bool   `help:"Print key events instead of decoded output"`

	Input []string `arg:"" optional:"" help:"Hex values to decode; reads stdin when omitted"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	kb, err := d.buildPipeline()
	if err != nil {
		return err
	}

	if len(d.Input) > 0 {
		for _, tok := range d.Input {
			d.feedToken(kb, tok, logger, rawLogger)
		}
		return nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("reading hex values from stdin, one or more per line; end with Ctrl-D")
	}
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		d.feedToken(kb, sc.Text(), logger, rawLogger)
	}
	return sc.Err()
}

func (d *Decode) buildPipeline() (*keyboard.Keyboard, error) {
	var l decode.Layout
	if d.LayoutFile != "" {
		custom, err := layout.LoadFile(d.LayoutFile)
		if err != nil {
			return nil, err
		}
		l = custom
	} else {
		builtin, ok := layout.ByName(d.Layout)
		if !ok {
			return nil, fmt.Errorf("unknown layout %q, available: %s", d.Layout, strings.Join(layout.Names(), ", "))
		}
		l = builtin
	}

	cfg := decode.Config{RawKeys: d.RawKeys, KeyUps: d.KeyUps}
	switch d.Ctrl {
	case "ignore":
		cfg.Control = decode.ControlIgnore
	case "map-letters":
		cfg.Control = decode.ControlMapLetters
	case "map-letters-mask":
		cfg.Control = decode.ControlMapLettersMask
	}

	var set scancode.Set
	switch d.Set {
	case "set1":
		set = scancode.NewSet1()
	default:
		set = scancode.NewSet2()
	}
	return keyboard.New(set, l, cfg), nil
}

func (d *Decode) feedToken(kb *keyboard.Keyboard, tok string, logger *slog.Logger, rawLogger log.RawLogger) {
	tok = strings.TrimPrefix(strings.TrimSuffix(tok, ","), "0x")
	if tok == "" {
		return
	}

	bits := 8
	if d.Words {
		bits = 16
	}
	v, err := strconv.ParseUint(tok, 16, bits)
	if err != nil {
		logger.Warn("skipping unparsable input", "token", tok, "error", err)
		return
	}

	var ev *keycode.KeyEvent
	if d.Words {
		e, err := kb.AddWord(uint16(v))
		if err != nil {
			logger.Error("word rejected", "word", fmt.Sprintf("%#03x", v), "error", err)
			return
		}
		ev = e
	} else {
		rawLogger.Log([]byte{byte(v)})
		log.Trace(logger, "rx byte", "byte", fmt.Sprintf("%#02x", v))
		e, err := kb.AddByte(byte(v))
		if err != nil {
			logger.Error("byte rejected", "byte", fmt.Sprintf("%#02x", v), "error", err)
			return
		}
		ev = e
	}
	if ev == nil {
		return
	}

	if d.Events {
		fmt.Fprintln(os.Stdout, ev)
		return
	}
	if dk := kb.ProcessEvent(*ev); dk != nil {
		fmt.Fprintln(os.Stdout, dk)
	}
}
