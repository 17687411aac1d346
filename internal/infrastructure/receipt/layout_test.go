package receipt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domain/turno"
)

func newLayoutTurno(t *testing.T) *turno.Turno {
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	entity, err := turno.ReconstructTurno(
		7,
		"u-900",
		"Maria Lopez",
		"Certificado de residencia para tramite escolar",
		"T-0042",
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return entity
}

func blockText(b Block) string {
	var sb strings.Builder
	for _, span := range b.Spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

func TestBuildLayout_ContainsTurnoFields(t *testing.T) {
	entity := newLayoutTurno(t)
	renderedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	blocks := BuildLayout(entity, renderedAt)

	var all strings.Builder
	for _, block := range blocks {
		all.WriteString(blockText(block))
		all.WriteString("\n")
	}
	content := all.String()

	assert.Contains(t, content, "T-0042")
	assert.Contains(t, content, "Maria Lopez")
	assert.Contains(t, content, "u-900")
	assert.Contains(t, content, entity.Request())
	assert.Contains(t, content, "14/03/2026 09:30")
	assert.Contains(t, content, "15/03/2026 10:00")
}

func TestBuildLayout_Structure(t *testing.T) {
	blocks := BuildLayout(newLayoutTurno(t), time.Now())

	var rules int
	for _, block := range blocks {
		if block.Kind == BlockRule {
			rules++
		}
	}
	assert.Equal(t, 2, rules)

	// Title opens the receipt, centered and bold.
	require.NotEmpty(t, blocks)
	title := blocks[0]
	assert.Equal(t, BlockText, title.Kind)
	assert.Equal(t, "C", title.Align)
	require.Len(t, title.Spans, 1)
	assert.True(t, title.Spans[0].Bold)

	// The request body is the only justified block.
	var justified []Block
	for _, block := range blocks {
		if block.Align == "J" {
			justified = append(justified, block)
		}
	}
	require.Len(t, justified, 1)
	assert.Equal(t, newLayoutTurno(t).Request(), blockText(justified[0]))
}

func TestBuildLayout_LabelIsLargestBlock(t *testing.T) {
	entity := newLayoutTurno(t)
	blocks := BuildLayout(entity, time.Now())

	var largest Block
	for _, block := range blocks {
		if block.Size > largest.Size {
			largest = block
		}
	}
	assert.Equal(t, entity.Label(), blockText(largest))
}

func TestWritePDF_ProducesDocument(t *testing.T) {
	blocks := BuildLayout(newLayoutTurno(t), time.Now())

	var buf bytes.Buffer
	err := WritePDF(blocks, &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 500)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWritePDF_WriterFailure(t *testing.T) {
	blocks := BuildLayout(newLayoutTurno(t), time.Now())

	err := WritePDF(blocks, failingWriter{})
	require.Error(t, err)
}

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(newLayoutTurno(t), time.Now(), &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
}
