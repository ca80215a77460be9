package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nexuslabs/showrunner/pkg/adapters/prefs/file"
	"github.com/nexuslabs/showrunner/pkg/ports"
	"github.com/nexuslabs/showrunner/pkg/ports/tests"
)

func TestFileStore_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	tests.PrefsStoreContractTest(t, file.NewStore(path))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	ctx := context.Background()

	first := file.NewStore(path)
	if err := first.Set(ctx, ports.PrefPersona, "ops"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh store over the same path must see the value.
	second := file.NewStore(path)
	got, err := second.Get(ctx, ports.PrefPersona)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "ops" {
		t.Errorf("expected 'ops' after reopen, got %q", got)
	}
}
