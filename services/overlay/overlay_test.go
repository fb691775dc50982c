package overlay

import (
	"context"
	"errors"
	"testing"
	"triggerby_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	resp  *models.AuditResponse
	err   error
	calls []models.AuditRequest
}

func (s *stubSubmitter) RequestAudit(ctx context.Context, req models.AuditRequest) (*models.AuditResponse, error) {
	s.calls = append(s.calls, req)
	return s.resp, s.err
}

func openWithFields(t *testing.T, email, url string) *Machine {
	t.Helper()
	m := New()
	require.True(t, m.HashChanged("#ai-overlay"))
	require.NoError(t, m.Edit(email, url))
	return m
}

func TestScrollOpensOnce(t *testing.T) {
	m := New()

	assert.False(t, m.Scroll(50))
	assert.Equal(t, Closed, m.State())

	assert.True(t, m.Scroll(150))
	assert.Equal(t, Idle, m.State())

	m.Dismiss()

	// down, up, down again
	assert.False(t, m.Scroll(10))
	assert.False(t, m.Scroll(400))
	assert.False(t, m.Scroll(900))
	assert.Equal(t, Closed, m.State())
}

func TestScrollThresholdIsExclusive(t *testing.T) {
	m := New()
	assert.False(t, m.Scroll(ScrollThreshold))
	assert.True(t, m.Scroll(ScrollThreshold+1))
}

func TestFragmentNavigation(t *testing.T) {
	t.Run("Fragment on load opens", func(t *testing.T) {
		m := New()
		assert.True(t, m.Load("#ai-overlay"))
		assert.Equal(t, Idle, m.State())
	})

	t.Run("Other fragments do not open", func(t *testing.T) {
		m := New()
		assert.False(t, m.Load("#automations"))
		assert.False(t, m.HashChanged(""))
		assert.Equal(t, Closed, m.State())
	})

	t.Run("Dismiss clears the fragment and renavigation reopens", func(t *testing.T) {
		m := New()
		require.True(t, m.HashChanged("ai-overlay"))

		assert.Equal(t, "", m.Dismiss())
		assert.Equal(t, Closed, m.State())
		assert.Equal(t, "", m.Fragment())

		assert.True(t, m.HashChanged("#ai-overlay"))
		assert.Equal(t, Idle, m.State())
	})

	t.Run("Dismiss keeps unrelated fragments", func(t *testing.T) {
		m := New()
		m.HashChanged("#automations")
		m.Scroll(200)

		assert.Equal(t, "automations", m.Dismiss())
	})

	t.Run("Opening an open overlay is a no-op", func(t *testing.T) {
		m := New()
		require.True(t, m.Open())
		assert.False(t, m.HashChanged("#ai-overlay"))
		assert.False(t, m.Scroll(500))
		assert.Equal(t, Idle, m.State())
	})
}

func TestSubmitSuccess(t *testing.T) {
	m := openWithFields(t, "jane@store.com", "https://jane-store.myshopify.com")
	s := &stubSubmitter{resp: &models.AuditResponse{OK: true, Message: "ok"}}

	require.NoError(t, m.Submit(context.Background(), s))
	assert.Equal(t, Submitted, m.State())
	assert.Equal(t, "jane@store.com", m.View().Email)
	assert.Len(t, s.calls, 1)
	assert.Equal(t, models.AuditRequest{Email: "jane@store.com", URL: "https://jane-store.myshopify.com"}, s.calls[0])

	t.Run("Reopening shows the confirmation", func(t *testing.T) {
		m.Dismiss()
		require.True(t, m.HashChanged("#ai-overlay"))
		assert.Equal(t, Submitted, m.State())
	})

	t.Run("Confirmation is not editable", func(t *testing.T) {
		assert.ErrorIs(t, m.Edit("x@y.com", "https://y.com"), ErrNotEditable)
	})
}

func TestSubmitFailure(t *testing.T) {
	cases := map[string]*stubSubmitter{
		"Network rejection": {err: errors.New("connection refused")},
		"Non-success":       {resp: &models.AuditResponse{OK: false}},
		"Empty response":    {},
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			m := openWithFields(t, "jane@store.com", "https://jane-store.myshopify.com")

			require.NoError(t, m.Submit(context.Background(), s))
			assert.Equal(t, Error, m.State())

			v := m.View()
			assert.Equal(t, RetryMessage, v.Error)
			assert.Equal(t, "jane@store.com", v.Email)
			assert.Equal(t, "https://jane-store.myshopify.com", v.URL)

			// still editable, and a manual resubmit performs exactly one new call
			require.NoError(t, m.Edit("jane@store.com", "https://other.myshopify.com"))
			s.err, s.resp = nil, &models.AuditResponse{OK: true}
			require.NoError(t, m.Submit(context.Background(), s))
			assert.Equal(t, Submitted, m.State())
			assert.Len(t, s.calls, 2)
		})
	}
}

func TestSubmitRequiresFields(t *testing.T) {
	m := openWithFields(t, "jane@store.com", "")
	s := &stubSubmitter{resp: &models.AuditResponse{OK: true}}

	assert.ErrorIs(t, m.Submit(context.Background(), s), ErrFieldsRequired)
	assert.Equal(t, Idle, m.State())
	assert.Empty(t, s.calls)
}

func TestSubmitWhileClosed(t *testing.T) {
	m := New()
	_, err := m.Begin()
	assert.ErrorIs(t, err, ErrNotEditable)
	assert.ErrorIs(t, m.Edit("a@b.co", "https://b.co"), ErrNotEditable)
}

func TestDismissDuringSubmission(t *testing.T) {
	m := openWithFields(t, "jane@store.com", "https://jane-store.myshopify.com")

	_, err := m.Begin()
	require.NoError(t, err)
	assert.Equal(t, Submitting, m.State())
	assert.ErrorIs(t, m.Edit("x@y.com", "https://y.com"), ErrNotEditable)

	m.Dismiss()

	// the late outcome is ignored
	assert.ErrorIs(t, m.Resolve(&models.AuditResponse{OK: true}, nil), ErrNotSubmitting)
	assert.Equal(t, Closed, m.State())

	require.True(t, m.Open())
	assert.Equal(t, Idle, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open/idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "submitted", Submitted.String())
	assert.Equal(t, "open/error", Error.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.False(t, Closed.IsOpen())
	assert.True(t, Error.IsOpen())
}
