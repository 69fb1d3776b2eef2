package mail

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lixenwraith/archive/config"
	"github.com/lixenwraith/archive/status"
)

func testConfig(endpoint string) config.Mail {
	return config.Mail{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk", Endpoint: endpoint}
}

func TestClientSend(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		io.WriteString(w, "OK")
	}))
	defer srv.Close()

	err := NewClient(srv.Client()).Send(context.Background(), testConfig(srv.URL), map[string]string{"msg": "hello"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pk" {
		t.Errorf("Unexpected request ids %+v", got)
	}
	if got.TemplateParams["msg"] != "hello" {
		t.Errorf("Expected msg hello, got %q", got.TemplateParams["msg"])
	}
}

func TestClientSendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "The Public Key is invalid")
	}))
	defer srv.Close()

	err := NewClient(srv.Client()).Send(context.Background(), testConfig(srv.URL), nil)
	if err == nil || !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Public Key") {
		t.Errorf("Expected status error with body, got %v", err)
	}
}

func TestClientSendMissingConfig(t *testing.T) {
	err := NewClient(nil).Send(context.Background(), config.Mail{ServiceID: "svc"}, nil)
	if !errors.Is(err, ErrMissingConfig) {
		t.Errorf("Expected ErrMissingConfig, got %v", err)
	}
}

type fakeSender struct {
	err   error
	calls int
	msg   string
}

func (f *fakeSender) Send(_ context.Context, _ config.Mail, params map[string]string) error {
	f.calls++
	f.msg = params["msg"]
	return f.err
}

func TestDispatcher(t *testing.T) {
	reg := status.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := &fakeSender{}
	d := NewDispatcher(ok, logger, reg)
	d.SetLoader(func() (config.Mail, error) { return testConfig("http://unused"), nil })
	d.Send("dinner")
	d.Wait()
	if ok.calls != 1 || ok.msg != "dinner" {
		t.Errorf("Expected one send of dinner, got %d %q", ok.calls, ok.msg)
	}
	if reg.Ints.Get(status.KeyMailSent).Load() != 1 {
		t.Error("Expected sent counter 1")
	}

	bad := &fakeSender{err: errors.New("boom")}
	d = NewDispatcher(bad, logger, reg)
	d.SetLoader(func() (config.Mail, error) { return testConfig("http://unused"), nil })
	d.Send("x")
	d.Wait()
	if bad.calls != 1 {
		t.Errorf("Expected no retry, got %d calls", bad.calls)
	}
	if reg.Ints.Get(status.KeyMailFailed).Load() != 1 {
		t.Error("Expected failed counter 1")
	}

	skipped := &fakeSender{}
	d = NewDispatcher(skipped, logger, reg)
	d.SetLoader(func() (config.Mail, error) { return config.Mail{}, nil })
	d.Send("x")
	d.Wait()
	if skipped.calls != 0 {
		t.Errorf("Expected no send without config, got %d", skipped.calls)
	}
	if reg.Ints.Get(status.KeyMailFailed).Load() != 2 {
		t.Error("Expected failed counter 2")
	}
}
