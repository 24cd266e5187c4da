package models

import (
	"context"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/store"
)

// EventRequestSchema is the schema of the visitor event requests.
var EventRequestSchema = pydis.MustSchema("EventRequest",
	pydis.Field("requester_phone", codec.Text),
	pydis.Field("visitor_count", codec.Int),
	pydis.Field("timestamp", codec.Float),
	pydis.Field("requester_email", codec.Text),
	pydis.Field("start", codec.Float),
	pydis.Field("extra", codec.Text),
	pydis.Field("end", codec.Int),
	pydis.Field("location", codec.Text),
	pydis.Field("requester_name", codec.Text),
	pydis.Field("event_name", codec.Text),
)

// EventRequest is the record of the visitor event request. It is identified by its request timestamp.
type EventRequest struct {
	*pydis.Record
}

// NewEventRequest creates the event request record requested at 'timestamp' with the 'defaults' values.
func NewEventRequest(ctx context.Context, s store.Store, timestamp float64, defaults map[string]interface{}, options ...pydis.Option) (*EventRequest, error) {
	values := map[string]interface{}{"timestamp": timestamp}
	for k, v := range defaults {
		values[k] = v
	}
	opts := append([]pydis.Option{pydis.WithID(codec.Encode(timestamp))}, options...)
	opts = append(opts, pydis.WithDefaults(values))

	r, err := pydis.NewRecord(ctx, s, EventRequestSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &EventRequest{Record: r}, nil
}
