package options

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestProgramQuirks(t *testing.T) {
	var opts Program
	assert.Equal(t, vm.Quirks{}, opts.Quirks())

	opts.VFReset = true
	assert.Equal(t, vm.Quirks{LogicResetsFlag: true}, opts.Quirks())

	opts.ShiftVY = true
	assert.Equal(t, vm.Quirks{LogicResetsFlag: true, ShiftUsesVY: true}, opts.Quirks())
}
