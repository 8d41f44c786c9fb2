package floatutils

import (
	"reflect"
	"testing"
)

func TestClip(t *testing.T) {
	if got := Clip(5.0, 0.0, 1.0); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
	if got := Clip(-5.0, 0.0, 1.0); got != 0.0 {
		t.Errorf("got %v, want 0.0", got)
	}
	if got := Clip(0.5, 0.0, 1.0); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestMaxSlice(t *testing.T) {
	max, indices := MaxSlice([]float64{1.0, 3.0, 3.0, 2.0})
	if max != 3.0 {
		t.Errorf("got max %v, want 3.0", max)
	}
	if !reflect.DeepEqual(indices, []int{1, 2}) {
		t.Errorf("got indices %v, want [1 2]", indices)
	}

	max, indices = MaxSlice([]float64{0.0, 0.0})
	if max != 0.0 || !reflect.DeepEqual(indices, []int{0, 1}) {
		t.Errorf("got (%v, %v), want (0, [0 1])", max, indices)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3.0, -1.0, 2.0); got != -1.0 {
		t.Errorf("got %v, want -1.0", got)
	}
	if got := Max(3.0, -1.0, 2.0); got != 3.0 {
		t.Errorf("got %v, want 3.0", got)
	}
}
