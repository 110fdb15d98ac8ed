package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/modules/console"
)

func TestDisplayMessage_DefaultPrefix(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	d := console.New(out, &console.Input{})

	require.NoError(t, d.DisplayMessage(context.Background(), "hello"))
	require.Equal(t, "Message: hello\n", out.String())
}

func TestShowRecord_DefaultPrefixAndValueFormatting(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	d := console.New(out, &console.Input{})

	rec, err := record.New(1, "demo record", record.MustGrid(1, 1, []float64{101}))
	require.NoError(t, err)

	require.NoError(t, d.ShowRecord(context.Background(), rec))
	// 101.0 renders without a decimal point.
	require.Equal(t, "From C++: 101\n", out.String())
}

func TestCustomPrefixes(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	d := console.New(out, &console.Input{
		MessagePrefix: "msg> ",
		RecordPrefix:  "rec> ",
	})

	require.NoError(t, d.DisplayMessage(context.Background(), "x"))
	rec, err := record.New(7, "labelled", record.MustGrid(1, 2, []float64{2.5, 3}))
	require.NoError(t, err)
	require.NoError(t, d.ShowRecord(context.Background(), rec))

	require.Equal(t, "msg> x\nrec> 2.5\n", out.String())
}
