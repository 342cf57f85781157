package filter

import (
	"reflect"
	"testing"
)

type report struct {
	Path         string `json:"path"`
	RemovedLines int    `json:"removedLines"`
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		expression string
		want       any
		wantErr    bool
	}{
		{
			name:       "empty expression returns data unchanged",
			data:       map[string]string{"key": "value"},
			expression: "",
			want:       map[string]string{"key": "value"},
		},
		{
			name:       "select field",
			data:       map[string]any{"name": "test", "id": 123},
			expression: ".name",
			want:       "test",
		},
		{
			name:       "struct is normalized through json",
			data:       report{Path: "portal.php", RemovedLines: 305},
			expression: ".removedLines",
			want:       float64(305),
		},
		{
			name:       "pointer to struct",
			data:       &report{Path: "portal.php"},
			expression: ".path",
			want:       "portal.php",
		},
		{
			name:       "multiple results",
			data:       map[string]any{"items": []any{"a", "b"}},
			expression: ".items[]",
			want:       []any{"a", "b"},
		},
		{
			name:       "invalid expression",
			data:       map[string]any{"key": "value"},
			expression: ".invalid[",
			wantErr:    true,
		},
		{
			name:       "runtime error",
			data:       map[string]any{"key": "value"},
			expression: ".key | keys",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.data, tt.expression)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
