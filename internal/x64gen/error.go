package x64gen

import "fmt"

// GenError is a single error encountered while turning one
// instruction table entry into Go source. It is a plain data struct,
// not an error interface implementation, so a run can accumulate every
// malformed entry instead of aborting at the first one.
type GenError struct {
	UID     string
	Message string
}

func (e GenError) String() string {
	return fmt.Sprintf("%s: %s", e.UID, e.Message)
}
