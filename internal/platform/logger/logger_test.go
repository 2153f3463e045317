package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONFormatCarriesService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Options{Level: "debug", Format: "json", Service: "labpair", Writer: &buf})
	log.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"service":"labpair"`) || !strings.Contains(out, `"message":"hello"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Options{Level: "warn", Format: "json", Writer: &buf})
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("level filtering broken: %s", out)
	}
}

func TestParseLevel_Defaults(t *testing.T) {
	t.Parallel()

	if got := parseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("parseLevel(\"\")=%v, want info", got)
	}
	if got := parseLevel("bogus"); got != zerolog.InfoLevel {
		t.Fatalf("parseLevel(bogus)=%v, want info", got)
	}
	if got := parseLevel("WARNING"); got != zerolog.WarnLevel {
		t.Fatalf("parseLevel(WARNING)=%v, want warn", got)
	}
}
