package own_test

import (
	"testing"

	"github.com/mesh-intelligence/cowl/pkg/own"
)

// tracked implements Cloner and records that the explicit path ran.
type tracked struct {
	data   []int
	cloned bool
}

func (c tracked) Clone() tracked {
	return tracked{data: append([]int(nil), c.data...), cloned: true}
}

func TestCopyUsesClonerWhenDeclared(t *testing.T) {
	orig := tracked{data: []int{1, 2, 3}}
	dup := own.Copy(orig)

	if !dup.cloned {
		t.Fatal("Copy bypassed the declared Clone")
	}
	dup.data[0] = 99
	if orig.data[0] != 1 {
		t.Error("clone shares backing data with the original")
	}
}

func TestCopyFallsBackToAssignment(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "int",
			run: func(t *testing.T) {
				if got := own.Copy(42); got != 42 {
					t.Errorf("Copy(42) = %d", got)
				}
			},
		},
		{
			name: "string",
			run: func(t *testing.T) {
				if got := own.Copy("abc"); got != "abc" {
					t.Errorf("Copy(%q) = %q", "abc", got)
				}
			},
		},
		{
			name: "struct without Clone",
			run: func(t *testing.T) {
				type point struct{ x, y int }
				p := point{1, 2}
				if got := own.Copy(p); got != p {
					t.Errorf("Copy(%v) = %v", p, got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}
