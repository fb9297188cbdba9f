// Where: cli/internal/domain/funcconfig/function_id_test.go
// What: Tests for function resource id parsing.
package funcconfig

import (
	"errors"
	"testing"
)

func TestFunctionNameFromID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{
			id:   "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/sites/app/functions/HttpTrigger1",
			want: "HttpTrigger1",
		},
		{
			id:   "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/sites/app/slots/staging/functions/Timer",
			want: "Timer",
		},
	}
	for _, tt := range tests {
		got, err := FunctionNameFromID(tt.id)
		if err != nil {
			t.Fatalf("FunctionNameFromID(%q): %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("FunctionNameFromID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFunctionNameFromIDRejectsOtherResources(t *testing.T) {
	for _, id := range []string{
		"",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/sites/app",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/acct",
	} {
		if _, err := FunctionNameFromID(id); !errors.Is(err, ErrInvalidFunctionID) {
			t.Errorf("FunctionNameFromID(%q) error = %v", id, err)
		}
	}
}
