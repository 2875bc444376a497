package database

import (
	"strings"
	"testing"
)

func TestGetCaseInsensitive(t *testing.T) {
	e, err := Get("w27c512")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if e.Name != "W27C512" {
		t.Errorf("name = %q, want W27C512", e.Name)
	}
	if e.MemorySize != 0x10000 {
		t.Errorf("memory size = %#x, want 0x10000", e.MemorySize)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-chip"); err == nil {
		t.Error("Get() on unknown chip should fail")
	}
}

func TestCommandFieldsStripsPresentation(t *testing.T) {
	e, err := Get("27256")
	if err != nil {
		t.Fatal(err)
	}
	fields, err := e.CommandFields()
	if err != nil {
		t.Fatalf("CommandFields() error = %v", err)
	}
	for _, key := range []string{"name", "manufacturer", "verified"} {
		if _, ok := fields[key]; ok {
			t.Errorf("presentation field %q leaked into command fields", key)
		}
	}
	if _, ok := fields["memory-size"]; !ok {
		t.Error("memory-size missing from command fields")
	}
	if _, ok := fields["vpp"]; !ok {
		t.Error("vpp missing from command fields")
	}
}

func TestSearch(t *testing.T) {
	found := Search("27c")
	if len(found) == 0 {
		t.Fatal("Search(27c) found nothing")
	}
	for _, e := range found {
		if !strings.Contains(strings.ToLower(e.Name), "27c") {
			t.Errorf("Search returned %q which does not match", e.Name)
		}
	}
}

func TestListVerified(t *testing.T) {
	all := List(false)
	verified := List(true)
	if len(verified) == 0 || len(verified) >= len(all) {
		t.Fatalf("verified filter looks wrong: %d of %d", len(verified), len(all))
	}
	for _, e := range verified {
		if !e.Verified {
			t.Errorf("%s is not verified but passed the filter", e.Name)
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Errorf("list not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}
