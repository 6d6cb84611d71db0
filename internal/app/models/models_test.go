package models

import "testing"

func TestBatchValid(t *testing.T) {
	tests := []struct {
		batch Batch
		want  bool
	}{
		{BatchA, true},
		{BatchB, true},
		{"", false},
		{"a", false},
		{"C", false},
		{"AB", false},
	}

	for _, tt := range tests {
		if got := tt.batch.Valid(); got != tt.want {
			t.Errorf("Batch(%q).Valid() = %v, want %v", tt.batch, got, tt.want)
		}
	}
}

func TestPreferenceNames(t *testing.T) {
	pref := &Preference{Choices: []string{"a2", "a3"}}

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact order", "a2", "a3", true},
		{"reversed order", "a3", "a2", true},
		{"one mismatch", "a2", "a4", false},
		{"both mismatch", "a5", "a4", false},
		{"same roll twice", "a2", "a2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pref.Names(tt.a, tt.b); got != tt.want {
				t.Errorf("Names(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStudentAssigned(t *testing.T) {
	st := &Student{RollNo: "a1"}
	if st.Assigned() {
		t.Error("student with nil team reported assigned")
	}
}
