package cnab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remessa-dev/remessa/internal/field"
)

func allLayouts() map[string]Layout {
	return map[string]Layout{
		"file header":       fileHeaderLayout,
		"batch header":      batchHeaderLayout,
		"segment A":         segmentALayout,
		"segment A savings": segmentASavingsLayout,
		"segment B":         segmentBLayout,
		"batch trailer":     batchTrailerLayout,
		"file trailer":      fileTrailerLayout,
	}
}

func TestLayoutWidthsSumToRecordLen(t *testing.T) {
	for name, l := range allLayouts() {
		assert.Equal(t, RecordLen, l.TotalWidth(), "%s layout width", name)
	}
}

func TestLayoutBuildAlwaysFullWidth(t *testing.T) {
	// With no values at all, every layout still renders a full record of
	// its fillers and constants.
	for name, l := range allLayouts() {
		line := l.Build(nil)
		assert.Len(t, line, RecordLen, "%s empty build", name)
	}
}

func TestBuildPadsAndTruncates(t *testing.T) {
	l := Layout{
		num("seq", 5),
		text("name", 10),
		lit("X", 1),
		filler(4),
	}
	line := l.Build(map[string]string{
		"seq":  "42",
		"name": "A VERY LONG NAME",
	})
	assert.Equal(t, "00042A VERY LONX    ", line)
}

func TestBuildConstOverridesValue(t *testing.T) {
	l := Layout{litNum("103", 3)}
	assert.Equal(t, "103", l.Build(map[string]string{"": "999"}))
}

func TestSavingsVariantDiffersOnlyInComplement(t *testing.T) {
	for i, f := range segmentALayout {
		variant := segmentASavingsLayout[i]
		if f.Name == "account_complement" {
			assert.Equal(t, savingsComplement, variant.Const)
			assert.Equal(t, byte('0'), variant.Fill)
			continue
		}
		assert.Equal(t, f, variant, "field %d", i)
	}
}

func TestSavingsVariantDoesNotMutateOriginal(t *testing.T) {
	for _, f := range segmentALayout {
		if f.Name == "account_complement" {
			assert.Empty(t, f.Const)
			assert.Equal(t, field.AlignLeft, f.Align)
			return
		}
	}
	t.Fatal("segment A has no account_complement field")
}

func TestNumericFieldsZeroFillRight(t *testing.T) {
	line := Layout{num("n", 6)}.Build(map[string]string{"n": "15"})
	assert.Equal(t, "000015", line)
	assert.False(t, strings.Contains(line, " "))
}
