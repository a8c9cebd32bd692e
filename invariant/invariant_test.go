package invariant

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCheck(t *testing.T) {
	assert.NotPanics(t, func() {
		Check("holds", true)
		CheckFunc("also holds", func() bool {
			return true
		})
	})
}

func TestCheck_Violated(t *testing.T) {
	if !Enabled {
		t.Skip("Checks are compiled out")
	}
	tests := map[string]func(){
		"Check": func() {
			Check("broken", false)
		},
		"CheckFunc": func() {
			CheckFunc("broken", func() bool {
				return false
			})
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				msg, ok := r.(string)
				if assert.True(t, ok, "Should have panicked with a string") {
					assert.Contains(t, msg, "invariant 'broken' violated at")
					assert.Contains(t, msg, "invariant_test.go")
				}
			}()
			fn()
		})
	}
}
