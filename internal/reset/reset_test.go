package reset

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	collections []string
	pingErr     error
	listErr     error
	dropErr     map[string]error

	listCalls int
	dropped   []string
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

func (f *fakeStore) DropCollection(ctx context.Context, name string) error {
	if err, ok := f.dropErr[name]; ok {
		return err
	}
	f.dropped = append(f.dropped, name)
	return nil
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact match", "YES\n", true},
		{"surrounding whitespace trimmed", "  YES  \n", true},
		{"lowercase is not a match", "yes\n", false},
		{"mixed case is not a match", "Yes\n", false},
		{"empty line", "\n", false},
		{"no input at all", "", false},
		{"arbitrary text", "drop it\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "mongodb://localhost:27017/edu-resource")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmBannerNamesTarget(t *testing.T) {
	var out bytes.Buffer
	Confirm(strings.NewReader("no\n"), &out, "mongodb://db.example.com:27017/edu-resource")

	banner := out.String()
	assert.Contains(t, banner, "mongodb://db.example.com:27017/edu-resource")
	assert.Contains(t, banner, "WARNING: DATABASE RESET")

	// The static warning list is illustrative text, not the deletion scope.
	assert.Contains(t, banner, "users")
	assert.Contains(t, banner, "notifications")
	assert.Contains(t, banner, "And any other collections")
}

func TestRunEmptyDatabase(t *testing.T) {
	store := &fakeStore{}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, store.dropped)
	assert.Contains(t, out.String(), "already empty")
}

func TestRunDropsEveryCollection(t *testing.T) {
	store := &fakeStore{collections: []string{"users", "courses"}}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"users", "courses"}, store.dropped)
	assert.Equal(t, 2, strings.Count(out.String(), "Dropped:"))
	assert.Contains(t, out.String(), "DATABASE RESET COMPLETE")
	assert.Contains(t, out.String(), "All collections in 'edu-resource' have been dropped.")
}

func TestRunPreservesDriverOrder(t *testing.T) {
	store := &fakeStore{collections: []string{"zeta", "alpha", "mid"}}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, store.dropped)
}

func TestRunPingFailure(t *testing.T) {
	store := &fakeStore{
		collections: []string{"users"},
		pingErr:     errors.New("server selection timeout"),
	}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "liveness check failed")
	assert.Zero(t, store.listCalls)
	assert.Empty(t, store.dropped)
}

func TestRunListFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("not authorized")}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.Error(t, err)
	assert.Empty(t, store.dropped)
}

func TestRunDropFailureMidLoop(t *testing.T) {
	store := &fakeStore{
		collections: []string{"users", "courses", "messages"},
		dropErr:     map[string]error{"courses": errors.New("connection reset")},
	}
	var out bytes.Buffer

	err := New(store, "edu-resource", &out).Run(context.Background())

	require.Error(t, err)
	// No rollback: the first drop sticks, the rest never happen.
	assert.Equal(t, []string{"users"}, store.dropped)
	assert.Equal(t, 1, strings.Count(out.String(), "Dropped:"))
}

func TestAdminHint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHint bool
	}{
		{"affirmative lowercase", "y\n", true},
		{"affirmative uppercase", "Y\n", true},
		{"negative", "n\n", false},
		{"full word is not accepted", "yes\n", false},
		{"empty", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			AdminHint(strings.NewReader(tt.input), &out)

			if tt.wantHint {
				assert.Contains(t, out.String(), "create-admin")
			} else {
				assert.NotContains(t, out.String(), "create-admin")
			}
		})
	}
}
