package hcl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/fanoutgo/internal/hcl"
)

type fakeInput struct {
	Text  string `hcl:"text"`
	Count int    `hcl:"count,optional"`
}

func TestDecodeArguments_PopulatesStruct(t *testing.T) {
	t.Parallel()

	path := writeCast(t, t.TempDir(), "cast.hcl", `
producer "static" "x" {
  arguments {
    text  = "hello"
    count = 2
  }
}
`)
	model, converter, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	var input fakeInput
	require.NoError(t, converter.DecodeArguments(context.Background(), &input, model.Producers[0].Arguments))
	require.Equal(t, "hello", input.Text)
	require.Equal(t, 2, input.Count)
}

func TestDecodeArguments_NilBodyLeavesZeroValue(t *testing.T) {
	t.Parallel()

	var input fakeInput
	require.NoError(t, hcl.NewConverter().DecodeArguments(context.Background(), &input, nil))
	require.Zero(t, input)
}

func TestDecodeArguments_UnknownAttributeFailsLoudly(t *testing.T) {
	t.Parallel()

	path := writeCast(t, t.TempDir(), "cast.hcl", `
producer "static" "x" {
  arguments {
    text = "hello"
    typo = true
  }
}
`)
	model, converter, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	var input fakeInput
	err = converter.DecodeArguments(context.Background(), &input, model.Producers[0].Arguments)
	require.Error(t, err)
}

func TestDecodeArguments_MissingRequiredAttributeFails(t *testing.T) {
	t.Parallel()

	path := writeCast(t, t.TempDir(), "cast.hcl", `
producer "static" "x" {
  arguments {
    count = 1
  }
}
`)
	model, converter, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	var input fakeInput
	err = converter.DecodeArguments(context.Background(), &input, model.Producers[0].Arguments)
	require.Error(t, err)
}
