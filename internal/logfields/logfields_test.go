package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"Source", Source("content/a.md"), KeySource, "content/a.md"},
		{"Output", Output("dist/a.html"), KeyOutput, "dist/a.html"},
		{"Path", Path("styles"), KeyPath, "styles"},
		{"Section", Section("posts"), KeySection, "posts"},
		{"Previous", Previous("index.md"), KeyPrevious, "index.md"},
		{"Count", Count(3), KeyCount, "3"},
		{"Failed", Failed(1), KeyFailed, "1"},
		{"Workers", Workers(4), KeyWorkers, "4"},
		{"Error", Error(errors.New("boom")), KeyError, "boom"},
		{"NilError", Error(nil), KeyError, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if c.attr.Key != c.key {
				t.Errorf("key = %q, want %q", c.attr.Key, c.key)
			}
			if got := c.attr.Value.String(); got != c.want {
				t.Errorf("value = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	attr := Duration(1500 * time.Microsecond)
	if attr.Key != KeyDurationMS {
		t.Errorf("key = %q, want %q", attr.Key, KeyDurationMS)
	}
	if got := attr.Value.Float64(); got != 1.5 {
		t.Errorf("value = %v, want 1.5", got)
	}
}
