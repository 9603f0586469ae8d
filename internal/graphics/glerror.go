package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CheckError drains the GL error queue and reports the first error seen.
func CheckError(label string) error {
	var first uint32
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = e
		}
	}
	if first != 0 {
		return fmt.Errorf("gl error %s: 0x%x", label, first)
	}
	return nil
}
