package engine

import (
	"image"
	"reflect"
	"testing"

	"github.com/albumoftheday/aotd/engine/layout"
)

func TestFitTextReturnsStartSizeWhenItFits(t *testing.T) {
	sizer := &fakeSizer{}
	result := FitText(sizer, "abc", "hi", image.Rect(0, 0, 100, 60), 50, 20)
	if !result.Fitted || result.Size != 50 || result.Text != "hi" {
		t.Errorf("FitText() = %+v, want fitted at 50", result)
	}
	if !reflect.DeepEqual(sizer.tried, []int{50}) {
		t.Errorf("tried sizes %v, want [50]", sizer.tried)
	}
}

func TestFitTextDescendsOneSizeAtATime(t *testing.T) {
	sizer := &fakeSizer{}
	// Two lines of size s are 2s tall; they fit 40 pixels from size 20 down.
	result := FitText(sizer, "abc", "aaaa bbbb", image.Rect(0, 0, 50, 40), 24, 10)
	if !result.Fitted || result.Size != 20 {
		t.Fatalf("FitText() = %+v, want fitted at 20", result)
	}
	if !reflect.DeepEqual(sizer.tried, []int{24, 23, 22, 21, 20}) {
		t.Errorf("tried sizes %v, want 24..20", sizer.tried)
	}
}

func TestFitTextOverflowNeverTriesFloor(t *testing.T) {
	sizer := &fakeSizer{}
	result := FitText(sizer, "abc", "hello", image.Rect(0, 0, 828, 10), 25, 15)
	if result.Fitted {
		t.Fatalf("FitText() = %+v, want overflow", result)
	}
	if result.Size != 16 {
		t.Errorf("last attempted size = %d, want 16", result.Size)
	}
	if len(sizer.tried) != 10 || sizer.tried[len(sizer.tried)-1] != 16 {
		t.Errorf("tried sizes %v, want 25..16", sizer.tried)
	}
}

func TestFitTextStartAtFloor(t *testing.T) {
	sizer := &fakeSizer{}
	result := FitText(sizer, "abc", "hello", image.Rect(0, 0, 828, 10), 15, 15)
	if result.Fitted {
		t.Fatalf("FitText() = %+v, want overflow", result)
	}
	if !reflect.DeepEqual(sizer.tried, []int{15}) {
		t.Errorf("tried sizes %v, want [15]", sizer.tried)
	}
}

func TestFitTextIsMonotonic(t *testing.T) {
	geometry := layout.Default()
	sizer := newFontSizer(testFont(t).WithLineGap(geometry.LineGap))
	rect := geometry.Rect(layout.Comments)
	sizes := geometry.FontSizes(layout.Comments)

	for _, count := range []int{10, 150, 300} {
		text := words(count)
		result := FitText(sizer, geometry.Alphabet, text, rect, sizes.Start, sizes.Floor)
		if !result.Fitted {
			continue
		}
		for size := result.Size; size > sizes.Floor; size-- {
			single := FitText(sizer, geometry.Alphabet, text, rect, size, size-1)
			if !single.Fitted {
				t.Errorf("%d words fit at %d but not at smaller size %d", count, result.Size, size)
			}
		}
	}
}
