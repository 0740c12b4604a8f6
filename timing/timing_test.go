//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTiming(t *testing.T) {
	timing := NewTiming("Bits")

	var buf bytes.Buffer
	timing.Print(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty timing printed %q", buf.String())
	}

	sample := timing.Sample("Parse", []string{"512"})
	sample.SubSample("Hex", time.Now())
	sample.AbsSubSample("Norm", time.Millisecond)
	timing.Sample("PowMod", []string{"1024"})

	if len(timing.Samples) != 2 {
		t.Fatalf("got %d samples, expected 2", len(timing.Samples))
	}
	if timing.Samples[1].Start != timing.Samples[0].End {
		t.Errorf("samples are not contiguous")
	}
	if sample.Samples[1].Duration() != time.Millisecond {
		t.Errorf("absolute sub-sample duration %v", sample.Samples[1].Duration())
	}
	if timing.Total() < timing.Samples[0].Duration() {
		t.Errorf("total %v less than the first sample", timing.Total())
	}

	timing.Print(&buf)
	out := buf.String()
	for _, label := range []string{"Op", "Bits", "Parse", "Hex", "Norm",
		"PowMod", "1024", "Total"} {
		if !strings.Contains(out, label) {
			t.Errorf("report does not contain %q:\n%s", label, out)
		}
	}
}

func TestPercent(t *testing.T) {
	if p := percent(time.Second, 0); p != "-" {
		t.Errorf("percent of zero total: %s", p)
	}
	if p := percent(time.Second, 4*time.Second); p != "25.00%" {
		t.Errorf("percent(1s, 4s)=%s", p)
	}
}
