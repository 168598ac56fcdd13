package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/engine"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDirFunc = old })
	return dir
}

func withProcess(t *testing.T, exe string) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if exe == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
	t.Cleanup(func() { findProcessFunc = old })
}

func TestGetTrayAppConfigDir(t *testing.T) {
	base := withConfigDir(t)

	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("GetTrayAppConfigDir failed: %v", err)
	}
	trayDir := filepath.Join(base, constants.TrayAppIdentifier)
	if dir != trayDir {
		t.Errorf("expected %s, got %s", trayDir, dir)
	}

	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(base, "elsewhere")
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, custom)
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("GetTrayAppConfigDir failed: %v", err)
	}
	if dir != custom {
		t.Errorf("expected %s, got %s", custom, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	lockfile := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, _, err := findAndValidateTrayProcess(lockfile); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("missing lockfile: error = %v, want ErrTrayNotRunning", err)
	}

	withProcess(t, "dawg-tray")
	bad := map[string]string{
		"two parts":     "8080|12345",
		"garbage":       "invalid",
		"empty port":    "|12345|secret",
		"port too high": "70000|12345|secret",
		"bad pid":       "8080|abc|secret",
		"empty secret":  "8080|12345|  ",
	}
	for name, content := range bad {
		t.Run(name, func(t *testing.T) {
			if err := os.WriteFile(lockfile, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
				t.Errorf("expected an error for %q", content)
			}
		})
	}

	if err := os.WriteFile(lockfile, []byte("8080|12345|testsecret123\n"), 0644); err != nil {
		t.Fatal(err)
	}
	port, secret, err := findAndValidateTrayProcess(lockfile)
	if err != nil {
		t.Fatalf("valid lockfile: %v", err)
	}
	if port != "8080" || secret != "testsecret123" {
		t.Errorf("got port %q secret %q", port, secret)
	}

	withProcess(t, "firefox")
	if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
		t.Error("expected an error when the pid belongs to another program")
	}

	withProcess(t, "")
	if _, _, err := findAndValidateTrayProcess(lockfile); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("dead pid: error = %v, want ErrTrayNotRunning", err)
	}
}

type trayServer struct {
	mu       sync.Mutex
	received []WebhookPayload
	server   *httptest.Server
}

func newTrayServer(t *testing.T, secret string) *trayServer {
	t.Helper()
	ts := &trayServer{}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Dawg-Secret") != secret {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		ts.mu.Lock()
		ts.received = append(ts.received, payload)
		ts.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *trayServer) port(t *testing.T) string {
	u, err := url.Parse(ts.server.URL)
	if err != nil {
		t.Fatal(err)
	}
	return u.Port()
}

func TestSendNotification(t *testing.T) {
	ts := newTrayServer(t, "test-secret")
	port := ts.port(t)
	n := New()

	if err := n.sendNotification(port, "test-secret", WebhookPayload{Text: "hello"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := n.sendNotification(port, "", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for missing secret")
	}
	if err := n.sendNotification(port, "wrong-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := n.sendNotification(port, "test-secret", WebhookPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		note engine.Notification
		want string
	}{
		{
			note: engine.Notification{Kind: engine.KindLevelUp, Emoji: "🐺", AnimalName: "WOLF", Title: "THE WARRIOR"},
			want: "🐺 LEVEL UP! You are now WOLF, THE WARRIOR",
		},
		{
			note: engine.Notification{Kind: engine.KindDayComplete, Streak: 8},
			want: "Day complete! Streak: 8 days",
		},
		{
			note: engine.Notification{Kind: engine.KindTaskCompleted, Points: 12},
			want: "",
		},
	}
	for _, tt := range tests {
		if got := Message(tt.note); got != tt.want {
			t.Errorf("Message(%s) = %q, want %q", tt.note.Kind, got, tt.want)
		}
	}
}

func TestNotifyForwardsToTray(t *testing.T) {
	base := withConfigDir(t)
	withProcess(t, "dawg-tray")
	ts := newTrayServer(t, "s3cret")

	trayDir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%s|4242|s3cret", ts.port(t))
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0644); err != nil {
		t.Fatal(err)
	}

	var sink engine.Sink = New()
	sink.Notify(engine.Notification{Kind: engine.KindTaskCompleted, Points: 6})
	sink.Notify(engine.Notification{Kind: engine.KindDayComplete, Streak: 3, DisplayFor: 3 * time.Second})

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.received) != 1 {
		t.Fatalf("tray received %d notifications, want 1", len(ts.received))
	}
	if got := ts.received[0]; got.Text != "Day complete! Streak: 3 days" || got.DurationMs != 3000 {
		t.Errorf("payload = %+v", got)
	}
}

func TestNotifyWithoutTrayIsSilent(t *testing.T) {
	withConfigDir(t)
	// No lockfile: must neither panic nor block.
	New().Notify(engine.Notification{Kind: engine.KindLevelUp, AnimalName: "LION"})
}
