package fibre

import "math"

// probe is a fibre that yields a fixed list of commands, counts pulls and
// records Stop calls.
type probe struct {
	cmds    []WaitCommand
	pos     int
	pulls   int
	stopped int
	trace   *[]string
	name    string
}

func newProbe(name string, trace *[]string, cmds ...WaitCommand) *probe {
	return &probe{name: name, trace: trace, cmds: cmds}
}

func (p *probe) Next() (WaitCommand, bool) {
	p.pulls++
	if p.trace != nil {
		*p.trace = append(*p.trace, p.name)
	}
	if p.pos >= len(p.cmds) {
		return WaitCommand{}, false
	}
	c := p.cmds[p.pos]
	p.pos++
	return c, true
}

func (p *probe) Stop() {
	p.stopped++
}

// forever yields WaitForNextFrame on every pull.
type forever struct {
	pulls   int
	stopped int
}

func (f *forever) Next() (WaitCommand, bool) {
	f.pulls++
	return WaitForNextFrame, true
}

func (f *forever) Stop() {
	f.stopped++
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
