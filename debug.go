package pwz

import (
	"bytes"

	"github.com/npillmayer/schuko/tracing"
)

func debugging() bool {
	return tracer().GetTraceLevel() == tracing.LevelDebug
}

func dumpSteps(steps []Step, position int, cycle int) {
	tracer().Debugf("--- Cycle %04d @ %d ----------------------------------", cycle, position)
	for i, s := range steps {
		tracer().Debugf("[%2d] %s", i, s)
	}
}

// StepsString returns a one-line representation of a frontier.
func StepsString(steps []Step) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, s := range steps {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" }")
	return b.String()
}
