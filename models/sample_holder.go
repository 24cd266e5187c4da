package models

import (
	"context"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/store"
)

// SampleHolderSchema is the schema of the sample holders. All its fields are child sequences.
var SampleHolderSchema = pydis.MustSchema("SampleHolder",
	pydis.Child("climate", "climate", ClimateSampleType),
	pydis.Child("sentinel", "sentinel", SentinelSampleType),
	pydis.Child("event_request", "event_request", pydis.IdentityType),
)

// SampleHolder groups the samples gathered by a station.
type SampleHolder struct {
	*pydis.Record
}

// NewSampleHolder creates the sample holder identified by 'id'. Empty 'id' gets generated.
func NewSampleHolder(ctx context.Context, s store.Store, id string, options ...pydis.Option) (*SampleHolder, error) {
	r, err := pydis.NewRecord(ctx, s, SampleHolderSchema, append([]pydis.Option{pydis.WithID(id)}, options...)...)
	if err != nil {
		return nil, err
	}
	return &SampleHolder{Record: r}, nil
}

// Climate gets the climate samples sequence.
func (h *SampleHolder) Climate() *pydis.Sequence[ClimateSample] {
	return pydis.AsChild(h, "climate", ClimateSampleType)()
}

// Sentinel gets the sentinel samples sequence.
func (h *SampleHolder) Sentinel() *pydis.Sequence[SentinelSample] {
	return pydis.AsChild(h, "sentinel", SentinelSampleType)()
}

// EventRequests gets the sequence of the event request identities.
func (h *SampleHolder) EventRequests() *pydis.Sequence[pydis.Identity] {
	return pydis.AsChild(h, "event_request", pydis.IdentityType)()
}

// AddEventRequest appends the identity of the 'request' to the holder event requests.
func (h *SampleHolder) AddEventRequest(ctx context.Context, request *EventRequest) error {
	return h.EventRequests().Append(ctx, request.Identity())
}
