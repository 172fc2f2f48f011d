package slack_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"recipecatalog"
	"recipecatalog/slack"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

var _ recipecatalog.Notifier = (*slack.Client)(nil)

type mockDoer struct {
	resp   *http.Response
	err    error
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	if m.doFunc != nil {
		return m.doFunc(req)
	}
	return m.resp, m.err
}

func TestNewClient(t *testing.T) {
	client := slack.NewClient("http://slack.com/webhook", "#recipes", &mockDoer{})
	must.NotNil(t, client, "expected non-nil client")
}

func TestPostMessage(t *testing.T) {
	tests := []struct {
		name    string
		doFunc  func(req *http.Request) (*http.Response, error)
		wantErr error
	}{
		{
			name: "success",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBufferString("ok"))}, nil
			},
			wantErr: nil,
		},
		{
			name: "failure status",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusBadRequest, Status: "400 Bad Request", Body: io.NopCloser(bytes.NewBufferString("bad request"))}, nil
			},
			wantErr: fmt.Errorf("failed to post message: 400 Bad Request"),
		},
		{
			name: "do error",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("network error")
			},
			wantErr: fmt.Errorf("network error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := slack.NewClient("http://example.com/webhook", "#recipes", &mockDoer{doFunc: tt.doFunc})
			err := client.PostMessage(context.Background(), "#general", "Hello, world!")
			should.Equal(t, tt.wantErr, err)
		})
	}
}

func TestNotify(t *testing.T) {
	var got map[string]any
	doer := &mockDoer{doFunc: func(req *http.Request) (*http.Response, error) {
		must.Equal(t, "application/json", req.Header.Get("Content-Type"))
		must.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBufferString("ok"))}, nil
	}}

	client := slack.NewClient("http://example.com/webhook", "#recipes", doer)
	must.NoError(t, client.Notify(context.Background(), "Unable to load recipes"))
	should.Equal(t, map[string]any{"channel": "#recipes", "text": "Unable to load recipes"}, got)
}

type recordingNotifier struct{ messages []string }

func (r *recordingNotifier) Notify(_ context.Context, msg string) error {
	r.messages = append(r.messages, msg)
	return nil
}

func TestReportLoadFailure(t *testing.T) {
	n := &recordingNotifier{}
	recipecatalog.ReportLoadFailure(context.Background(), n, "recipes.json", errors.New("boom"))
	should.Equal(t, []string{"Unable to load recipes from recipes.json: boom"}, n.messages)

	// nil notifier only logs
	recipecatalog.ReportLoadFailure(context.Background(), nil, "recipes.json", errors.New("boom"))
}
