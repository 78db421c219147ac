package dataset

import "fmt"

// PairingError reports the first position where the input and target
// listings stop describing the same samples.
type PairingError struct {
	Index       int
	Input       string
	Target      string
	InputCount  int
	TargetCount int
}

func (e *PairingError) Error() string {
	if e.InputCount != e.TargetCount && (e.Input == "" || e.Target == "") {
		return fmt.Sprintf("base filenames do not match: input has %d files, target has %d (first unmatched at position %d: input %q, target %q)",
			e.InputCount, e.TargetCount, e.Index, e.Input, e.Target)
	}
	return fmt.Sprintf("base filenames do not match at position %d: input %q vs target %q", e.Index, e.Input, e.Target)
}

// CheckPairing verifies that both sets, in sorted order, carry identical
// basename keys element by element. Extensions may differ.
func CheckPairing(inputs, targets FileSet) error {
	n := min(inputs.Len(), targets.Len())
	for i := 0; i < n; i++ {
		if BasenameKey(inputs.Names[i]) != BasenameKey(targets.Names[i]) {
			return &PairingError{
				Index:       i,
				Input:       inputs.Names[i],
				Target:      targets.Names[i],
				InputCount:  inputs.Len(),
				TargetCount: targets.Len(),
			}
		}
	}
	if inputs.Len() == targets.Len() {
		return nil
	}
	err := &PairingError{Index: n, InputCount: inputs.Len(), TargetCount: targets.Len()}
	if n < inputs.Len() {
		err.Input = inputs.Names[n]
	}
	if n < targets.Len() {
		err.Target = targets.Names[n]
	}
	return err
}
