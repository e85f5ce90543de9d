package untrust

// Input is a wrapper around []byte that helps in writing panic-free code.
type Input []byte

// Returns the length of the Input.
func (i Input) Len() int { return len(i) }
