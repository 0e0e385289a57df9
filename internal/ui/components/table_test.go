package components_test

import (
	"strings"
	"testing"

	"bikeshare/internal/ui/components"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	t.Parallel()
	out := components.Table([]string{"Start Station", "End Station"}, [][]string{{"Wood St", "Damen Ave"}, {"Clark St", "Lake St"}})
	for _, want := range []string{"Start Station", "End Station", "Wood St", "Damen Ave", "Clark St", "Lake St"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if strings.Index(out, "Wood St") > strings.Index(out, "Clark St") {
		t.Fatalf("rows rendered out of order:\n%s", out)
	}
}

func TestTableWithoutRowsKeepsHeader(t *testing.T) {
	t.Parallel()
	out := components.Table([]string{"User Type"}, nil)
	if !strings.Contains(out, "User Type") {
		t.Fatalf("expected header in empty table:\n%s", out)
	}
}
