package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_BackToBackIsNotAConflict(t *testing.T) {
	existing := []Interval{{Start: at(10, 30), End: at(11, 0)}}

	assert.False(t, Overlaps(at(10, 0), at(10, 30), existing))
	assert.False(t, Overlaps(at(11, 0), at(11, 30), existing))
}

func TestOverlaps_OneMinuteIntoExisting(t *testing.T) {
	existing := []Interval{{Start: at(10, 30), End: at(11, 0)}}

	assert.True(t, Overlaps(at(10, 0), at(10, 31), existing))
	assert.True(t, Overlaps(at(10, 59), at(11, 30), existing))
}

func TestOverlaps_ContainmentBothWays(t *testing.T) {
	existing := []Interval{{Start: at(10, 0), End: at(12, 0)}}

	assert.True(t, Overlaps(at(10, 30), at(11, 0), existing))
	assert.True(t, Overlaps(at(9, 0), at(13, 0), existing))
}

func TestOverlaps_EmptyList(t *testing.T) {
	assert.False(t, Overlaps(at(10, 0), at(11, 0), nil))
}
