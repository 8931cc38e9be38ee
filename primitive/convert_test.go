package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdict-generator/primitive"
)

func TestKindEnum_GoType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string", primitive.KindChar.GoType())
	assert.Equal(t, "bool", primitive.KindBoolean.GoType())
	assert.Equal(t, "int", primitive.KindInt.GoType())
	assert.Equal(t, "float64", primitive.KindFloat.GoType())
	assert.Equal(t, "time.Time", primitive.KindTimestamp.GoType())
	assert.Equal(t, "string", primitive.KindDate.EnumGoType())
	assert.Equal(t, "String", primitive.KindTimestamp.EnumConverter())
	assert.Equal(t, "Timestamp", primitive.KindTimestamp.Converter())
	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.True(t, primitive.KindDate.IsValid())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())
}

func TestConvertEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    primitive.KindEnum
		literal string
		want    any
		goLit   string
		wantErr bool
	}{
		{name: "string", kind: primitive.KindString, literal: "ABC", want: "ABC", goLit: `"ABC"`},
		{name: "char", kind: primitive.KindChar, literal: "1", want: "1", goLit: `"1"`},
		{name: "empty char", kind: primitive.KindChar, literal: "", wantErr: true},
		{name: "bool yes", kind: primitive.KindBoolean, literal: "Y", want: true, goLit: "true"},
		{name: "bool invalid", kind: primitive.KindBoolean, literal: "yes", wantErr: true},
		{name: "int", kind: primitive.KindInt, literal: "42", want: 42, goLit: "42"},
		{name: "int invalid", kind: primitive.KindInt, literal: "4x", wantErr: true},
		{name: "float", kind: primitive.KindFloat, literal: "1.5", want: 1.5, goLit: "1.5"},
		{name: "whole float", kind: primitive.KindFloat, literal: "2", want: 2.0, goLit: "2.0"},
		{name: "timestamp", kind: primitive.KindTimestamp, literal: "20240102-03:04:05", want: "20240102-03:04:05", goLit: `"20240102-03:04:05"`},
		{name: "timestamp invalid", kind: primitive.KindTimestamp, literal: "2024", wantErr: true},
		{name: "date", kind: primitive.KindDate, literal: "20240102", want: "20240102", goLit: `"20240102"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.ConvertEnum(tt.kind, tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.goLit, primitive.GoLiteral(tt.kind, got))
		})
	}
}

func TestFormatEnum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N", primitive.FormatEnum(primitive.KindBoolean, false))
	assert.Equal(t, "7", primitive.FormatEnum(primitive.KindInt, 7))
	assert.Equal(t, "0.25", primitive.FormatEnum(primitive.KindFloat, 0.25))
	assert.Equal(t, "X", primitive.FormatEnum(primitive.KindChar, "X"))
}

func TestDictionaryTypes_Sorted(t *testing.T) {
	t.Parallel()

	names := primitive.DictionaryTypes()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "MULTIPLEVALUESTRING")
}
