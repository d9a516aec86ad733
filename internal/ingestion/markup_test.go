package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/patterns"
)

func TestStripMarkup_ListItemsBecomeBullets(t *testing.T) {
	input := "<p>Platform team lead.</p><ul><li>Led 6 engineers</li><li>Cut <b>latency</b> by 40%</li></ul>"

	got, err := StripMarkup(input)
	require.NoError(t, err)

	assert.Equal(t, "Platform team lead.\n\n- Led 6 engineers\n- Cut latency by 40%", got)
	assert.Equal(t, 2, patterns.CountBulletPoints(got))
}

func TestStripMarkup_PlainTextUnchanged(t *testing.T) {
	got, err := StripMarkup("Reduced p99   latency\n- from 2s to 300ms")
	require.NoError(t, err)

	assert.Equal(t, "Reduced p99 latency\n- from 2s to 300ms", got)
}

func TestStripMarkup_DropsScriptsAndEntities(t *testing.T) {
	got, err := StripMarkup(`<div>R&amp;D<script>alert(1)</script></div><style>p{}</style>`)
	require.NoError(t, err)

	assert.Equal(t, "R&D", got)
}

func TestStripMarkup_LineBreaks(t *testing.T) {
	got, err := StripMarkup("First line<br>Second line")
	require.NoError(t, err)

	assert.Equal(t, "First line\nSecond line", got)
}

func TestStripMarkup_LessThanInText(t *testing.T) {
	got, err := StripMarkup("Kept error rate < 1% for 2 years")
	require.NoError(t, err)

	assert.Equal(t, "Kept error rate < 1% for 2 years", got)
}
