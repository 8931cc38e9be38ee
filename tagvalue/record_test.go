package tagvalue_test

import (
	"context"

	"fixdict-generator/tagvalue"
)

type testLeg struct {
	Symbol string
	Qty    *float64
}

func (g *testLeg) Decode(v tagvalue.View) error {
	*g = testLeg{}

	var err error
	if g.Symbol, err = tagvalue.Require(v, 600, tagvalue.ParseString); err != nil {
		return err
	}

	if g.Qty, err = tagvalue.Optional(v, 687, tagvalue.ParseFloat); err != nil {
		return err
	}

	return nil
}

func (g *testLeg) Encode(v tagvalue.View) {
	v.SetField(600, tagvalue.FormatString(g.Symbol))
	if g.Qty != nil {
		v.SetField(687, tagvalue.FormatFloat(*g.Qty))
	}
}

type testOrder struct {
	ClOrdID string
	Legs    []testLeg
}

func (m *testOrder) MsgType() string { return "D" }

func (m *testOrder) Decode(v tagvalue.View) error {
	*m = testOrder{}

	var err error
	if m.ClOrdID, err = tagvalue.Require(v, 11, tagvalue.ParseString); err != nil {
		return err
	}

	if m.Legs, err = tagvalue.DecodeGroup[testLeg](v, 555, true); err != nil {
		return err
	}

	return nil
}

func (m *testOrder) Encode(v tagvalue.MessageView) {
	v.SetMsgType("D")
	v.SetField(11, tagvalue.FormatString(m.ClOrdID))
	tagvalue.EncodeGroup(v, 555, m.Legs, true)
}

type testOrderHandler interface {
	OnTestOrder(ctx context.Context, msg *testOrder) error
}

type orderSink struct {
	got []*testOrder
}

func (s *orderSink) OnTestOrder(_ context.Context, msg *testOrder) error {
	s.got = append(s.got, msg)
	return nil
}

func testRegistry() *tagvalue.Registry {
	return tagvalue.NewRegistry("FIX.4.4",
		tagvalue.Route{
			MsgType: "D",
			Name:    "TestOrder",
			Handler: "OnTestOrder",
			New:     func() tagvalue.Record { return new(testOrder) },
			Dispatch: func(ctx context.Context, h any, rec tagvalue.Record) (bool, error) {
				handler, ok := h.(testOrderHandler)
				if !ok {
					return false, nil
				}

				return true, handler.OnTestOrder(ctx, rec.(*testOrder))
			},
		},
	)
}

func (m *testOrder) toMessage() *tagvalue.Message {
	msg := tagvalue.NewMessage()
	m.Encode(msg)

	return msg
}
