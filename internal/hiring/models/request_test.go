package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

var now = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func pending(t *testing.T) *HiringRequest {
	t.Helper()
	r, err := NewHiringRequest(id.HiringRequestID(uuid.New()), id.UserID(uuid.New()), id.UserID(uuid.New()), id.CaseID(uuid.New()), Terms{Title: " Tail the suspect "}, now)
	require.NoError(t, err)
	return r
}

func TestNewHiringRequest(t *testing.T) {
	r := pending(t)
	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, "Tail the suspect", r.Terms.Title)

	self := id.UserID(uuid.New())
	_, err := NewHiringRequest(id.HiringRequestID(uuid.New()), self, self, id.CaseID(uuid.New()), Terms{Title: "x"}, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	negative := -5.0
	_, err = NewHiringRequest(id.HiringRequestID(uuid.New()), id.UserID(uuid.New()), id.UserID(uuid.New()), id.CaseID(uuid.New()), Terms{Title: "x", ProposedRate: &negative}, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestTransitions(t *testing.T) {
	type step struct {
		name  string
		check func(*HiringRequest) error
		apply func(*HiringRequest)
	}
	accept := step{"accept", func(r *HiringRequest) error { return r.CanRespond("accept") }, func(r *HiringRequest) { r.ApplyAccept("ok", now) }}
	reject := step{"reject", func(r *HiringRequest) error { return r.CanRespond("reject") }, func(r *HiringRequest) { r.ApplyReject("no", now) }}
	start := step{"start", (*HiringRequest).CanStart, func(r *HiringRequest) { r.ApplyStart(now) }}
	complete := step{"complete", (*HiringRequest).CanComplete, func(r *HiringRequest) { r.ApplyComplete(now) }}
	cancel := step{"cancel", (*HiringRequest).CanCancel, func(r *HiringRequest) { r.ApplyCancel(now) }}

	tests := []struct {
		name    string
		path    []step
		next    step
		allowed bool
	}{
		{"pending accepts", nil, accept, true},
		{"pending rejects", nil, reject, true},
		{"pending cannot start", nil, start, false},
		{"pending cannot complete", nil, complete, false},
		{"pending cancels", nil, cancel, true},
		{"accepted cannot be re-accepted", []step{accept}, accept, false},
		{"accepted completes", []step{accept}, complete, true},
		{"accepted starts", []step{accept}, start, true},
		{"in progress completes", []step{accept, start}, complete, true},
		{"in progress cancels", []step{accept, start}, cancel, true},
		{"declined cannot be accepted", []step{reject}, accept, false},
		{"declined cannot be cancelled", []step{reject}, cancel, false},
		{"completed cannot be cancelled", []step{accept, complete}, cancel, false},
		{"cancelled cannot complete", []step{cancel}, complete, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pending(t)
			for _, s := range tt.path {
				require.NoError(t, s.check(r), s.name)
				s.apply(r)
			}
			err := tt.next.check(r)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
			}
		})
	}
}

func TestAcceptStampsTimes(t *testing.T) {
	r := pending(t)
	r.ApplyAccept(" on my way ", now)
	assert.Equal(t, "on my way", r.InvestigatorResponse)
	require.NotNil(t, r.AcceptedAt)
	require.NotNil(t, r.RespondedAt)
	assert.Equal(t, now, *r.AcceptedAt)

	c := r.Clone()
	*c.AcceptedAt = now.Add(time.Hour)
	assert.Equal(t, now, *r.AcceptedAt)
}
