//go:build !unix

package out

import "errors"

var errNoJobControl = errors.New("pausing speech is not supported on this platform")

func suspend(int) error { return errNoJobControl }
func resume(int) error  { return errNoJobControl }
