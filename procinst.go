package microdom

import "strings"

// ProcInst is a processing instruction with a target and optional data.
type ProcInst struct {
	leafNode
	target string
	data   string
}

// NewProcInst creates a detached processing instruction. It panics if
// target is empty or if data contains the "?>" terminator, which cannot be
// written as well-formed XML.
func NewProcInst(target, data string) *ProcInst {
	if target == "" {
		panic("microdom: processing instruction target must not be empty")
	}
	checkProcInstData(data)
	p := &ProcInst{target: target, data: data}
	p.init(p)
	return p
}

func checkProcInstData(data string) {
	if strings.Contains(data, "?>") {
		panic(`microdom: processing instruction data must not contain "?>"`)
	}
}

// Type returns ProcessingInstructionNode.
func (p *ProcInst) Type() NodeType { return ProcessingInstructionNode }

// Name returns the instruction target.
func (p *ProcInst) Name() string { return p.target }

// Target returns the instruction target.
func (p *ProcInst) Target() string { return p.target }

// Data returns the instruction data, or "".
func (p *ProcInst) Data() string { return p.data }

// SetData replaces the instruction data, with the same validation as
// NewProcInst.
func (p *ProcInst) SetData(data string) {
	checkProcInstData(data)
	p.data = data
}

// Clone returns a parentless copy.
func (p *ProcInst) Clone() Node { return NewProcInst(p.target, p.data) }
