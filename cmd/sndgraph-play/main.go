// Command sndgraph-play compiles a text program read from stdin (or a
// -program flag) and streams its mono output through the system's audio
// device. Grounded on play_stack/src/main.rs's read-compile-sample-write
// loop, adapted from a cpal callback into oto's push-style player.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sndgraph/engine"
	"github.com/sndgraph/engine/lang"
)

const sampleRate = 44100

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	programFlag := flag.String("program", "", "RPN/text program; reads stdin if empty")
	seconds := flag.Float64("seconds", 5, "duration to play")
	flag.Parse()

	program := *programFlag
	if program == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("reading program from stdin")
		}
		program = string(src)
	}

	g, err := lang.Compile(program, 1, sampleRate, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("compiling program")
	}
	if err := g.CheckArity(); err != nil {
		log.Fatal().Err(err).Msg("graph has unwired sources")
	}

	ctx, ready, err := oto.NewContext(sampleRate, 1, 2)
	if err != nil {
		log.Fatal().Err(err).Msg("opening audio context")
	}
	<-ready

	total := int(*seconds * sampleRate)
	buf := make([]byte, total*2)
	ext := graph.Frame{0}
	for i := 0; i < total; i++ {
		g.Sample(ext)
		v := float64(g.Output()[0])
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}

	player := ctx.NewPlayer(bytes.NewReader(buf))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		log.Error().Err(err).Msg("closing player")
	}
}
