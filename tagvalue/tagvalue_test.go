package tagvalue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdict-generator/tagvalue"
)

func TestFieldMap_SetFieldKeepsOrder(t *testing.T) {
	t.Parallel()

	m := tagvalue.NewFieldMap()
	m.SetField(55, "IBM")
	m.SetField(54, "1")
	m.SetField(55, "MSFT")

	assert.Equal(t, []tagvalue.Tag{55, 54}, m.Tags())
	assert.Equal(t, "55=MSFT|54=1|", m.String())
	assert.True(t, m.Has(54))
	assert.False(t, m.Has(38))
}

func TestFieldMap_Groups(t *testing.T) {
	t.Parallel()

	m := tagvalue.NewFieldMap()
	m.SetField(11, "A")

	for _, sym := range []string{"X", "Y"} {
		e := m.NewGroup(555)
		e.SetField(600, sym)
		m.AddGroup(555, e)
	}

	m.SetField(58, "note")

	assert.Equal(t, "11=A|555=2|600=X|600=Y|58=note|", m.String())
	assert.Equal(t, 2, m.GroupLen(555))

	e, err := m.Group(555, 1)
	require.NoError(t, err)
	v, ok := e.Field(600)
	assert.True(t, ok)
	assert.Equal(t, "Y", v)

	_, err = m.Group(555, 2)
	require.ErrorIs(t, err, tagvalue.ErrGroupIndexOutOfRange)
}

func TestMessage_String(t *testing.T) {
	t.Parallel()

	msg := tagvalue.NewMessage()
	msg.Header.SetField(tagvalue.TagBeginString, "FIX.4.2")
	msg.SetMsgType("0")
	msg.SetField(112, "ping")

	mt, ok := msg.MsgType()
	assert.True(t, ok)
	assert.Equal(t, "0", mt)
	assert.Equal(t, "8=FIX.4.2|35=0|112=ping|", msg.String())
}

func TestConverters(t *testing.T) {
	t.Parallel()

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		b, err := tagvalue.ParseBool("Y")
		require.NoError(t, err)
		assert.True(t, b)
		assert.Equal(t, "N", tagvalue.FormatBool(false))

		_, err = tagvalue.ParseBool("true")
		require.ErrorIs(t, err, tagvalue.ErrInvalidBoolean)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "100", tagvalue.FormatFloat(100))
		assert.Equal(t, "0.0001", tagvalue.FormatFloat(0.0001))
		assert.Equal(t, "1234567.891", tagvalue.FormatFloat(1234567.891))

		f, err := tagvalue.ParseFloat("101.25")
		require.NoError(t, err)
		assert.InDelta(t, 101.25, f, 0)
	})

	t.Run("timestamp precision", func(t *testing.T) {
		t.Parallel()

		base := time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC)
		cases := map[string]time.Time{
			"20240305-14:30:15.000":       base,
			"20240305-14:30:15.123":       base.Add(123 * time.Millisecond),
			"20240305-14:30:15.123456":    base.Add(123456 * time.Microsecond),
			"20240305-14:30:15.123456789": base.Add(123456789),
		}

		for want, ts := range cases {
			assert.Equal(t, want, tagvalue.FormatTimestamp(ts))

			back, err := tagvalue.ParseTimestamp(want)
			require.NoError(t, err)
			assert.True(t, ts.Equal(back), want)
		}
	})

	t.Run("timestamp without fraction", func(t *testing.T) {
		t.Parallel()

		ts, err := tagvalue.ParseTimestamp("20240305-14:30:15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC), ts)

		_, err = tagvalue.ParseTimestamp("2024-03-05T14:30:15Z")
		require.Error(t, err)
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()

		d, err := tagvalue.ParseDate("20240229")
		require.NoError(t, err)
		assert.Equal(t, "20240229", tagvalue.FormatDate(d))

		_, err = tagvalue.ParseDate("20230229")
		require.Error(t, err)
	})
}

func TestRequireOptional(t *testing.T) {
	t.Parallel()

	m := tagvalue.NewFieldMap()
	m.SetField(38, "100")
	m.SetField(44, "abc")

	qty, err := tagvalue.Require(m, 38, tagvalue.ParseInt)
	require.NoError(t, err)
	assert.Equal(t, 100, qty)

	_, err = tagvalue.Require(m, 11, tagvalue.ParseString)
	var missing *tagvalue.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, tagvalue.Tag(11), missing.Tag)

	px, err := tagvalue.Optional(m, 99, tagvalue.ParseFloat)
	require.NoError(t, err)
	assert.Nil(t, px)

	_, err = tagvalue.Optional(m, 44, tagvalue.ParseFloat)
	var bad *tagvalue.FieldValueError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, tagvalue.Tag(44), bad.Tag)
	assert.Equal(t, "abc", bad.Value)
}

func TestGroupCount(t *testing.T) {
	t.Parallel()

	m := tagvalue.NewFieldMap()

	n, err := tagvalue.GroupCount(m, 78, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = tagvalue.GroupCount(m, 78, true)
	var missing *tagvalue.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)

	m.SetField(78, "-1")
	_, err = tagvalue.GroupCount(m, 78, false)
	require.ErrorIs(t, err, tagvalue.ErrNegativeGroupCount)
}

func TestRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	qty := 2.5
	in := &testOrder{
		ClOrdID: "ORD-1",
		Legs: []testLeg{
			{Symbol: "IBM", Qty: &qty},
			{Symbol: "MSFT"},
		},
	}

	msg := tagvalue.NewMessage()
	in.Encode(msg)
	assert.Equal(t, "35=D|11=ORD-1|555=2|600=IBM|687=2.5|600=MSFT|", msg.String())

	var out testOrder
	require.NoError(t, out.Decode(msg))
	assert.Equal(t, in, &out)
}

func TestRecord_RequiredEmptyGroup(t *testing.T) {
	t.Parallel()

	msg := tagvalue.NewMessage()
	(&testOrder{ClOrdID: "X"}).Encode(msg)
	assert.Equal(t, "35=D|11=X|555=0|", msg.String())

	var out testOrder
	require.NoError(t, out.Decode(msg))
	assert.Nil(t, out.Legs)
}

func TestRegistry_Decode(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	assert.Equal(t, "FIX.4.4", reg.BeginString())

	route, ok := reg.Lookup("D")
	require.True(t, ok)
	assert.Equal(t, "OnTestOrder", route.Handler)
	assert.Len(t, reg.Routes(), 1)

	msg := (&testOrder{ClOrdID: "A"}).toMessage()
	rec, err := reg.Decode(msg)
	require.NoError(t, err)
	assert.Equal(t, &testOrder{ClOrdID: "A"}, rec)

	unknown := tagvalue.NewMessage()
	unknown.SetMsgType("ZZ")
	_, err = reg.Decode(unknown)
	var ute *tagvalue.UnknownMessageTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "ZZ", ute.MsgType)

	_, err = reg.Decode(tagvalue.NewMessage())
	require.ErrorIs(t, err, tagvalue.ErrMissingMsgType)

	broken := tagvalue.NewMessage()
	broken.SetMsgType("D")
	_, err = reg.Decode(broken)
	var missing *tagvalue.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
}

func TestRegistry_Crack(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	ctx := context.Background()

	t.Run("handled", func(t *testing.T) {
		t.Parallel()

		sink := &orderSink{}
		err := reg.Crack(ctx, sink, (&testOrder{ClOrdID: "A"}).toMessage(), func(context.Context, tagvalue.MessageView, tagvalue.Record) error {
			return errors.New("fallback must not run")
		})
		require.NoError(t, err)
		require.Len(t, sink.got, 1)
		assert.Equal(t, "A", sink.got[0].ClOrdID)
	})

	t.Run("unhandled goes to fallback with record", func(t *testing.T) {
		t.Parallel()

		var got tagvalue.Record
		err := reg.Crack(ctx, struct{}{}, (&testOrder{ClOrdID: "B"}).toMessage(), func(_ context.Context, _ tagvalue.MessageView, rec tagvalue.Record) error {
			got = rec
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, &testOrder{ClOrdID: "B"}, got)
	})

	t.Run("unknown goes to fallback without record", func(t *testing.T) {
		t.Parallel()

		msg := tagvalue.NewMessage()
		msg.SetMsgType("ZZ")

		called := false
		err := reg.Crack(ctx, &orderSink{}, msg, func(_ context.Context, _ tagvalue.MessageView, rec tagvalue.Record) error {
			called = true
			assert.Nil(t, rec)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)

		err = reg.Crack(ctx, &orderSink{}, msg, nil)
		var ute *tagvalue.UnknownMessageTypeError
		require.ErrorAs(t, err, &ute)
	})
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	route := tagvalue.Route{MsgType: "D"}
	assert.Panics(t, func() { tagvalue.NewRegistry("FIX.4.2", route, route) })
}
